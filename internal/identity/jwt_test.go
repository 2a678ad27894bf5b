package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CarPacks_Go/internal/domain"
)

const (
	testSecret      = "test-secret-with-enough-entropy"
	testParticipant = "6ad7e0c2-1f3b-4b9a-a2d4-0e5c7f9b1d23"
)

func TestResolve_ValidToken(t *testing.T) {
	token, err := NewIssuer(testSecret, "").Issue(testParticipant, time.Hour)
	require.NoError(t, err)

	id, err := NewJWTResolver(testSecret, "").Resolve(context.Background(), "Bearer "+token)

	require.NoError(t, err)
	assert.Equal(t, testParticipant, id)
}

func TestResolve_CaseInsensitiveScheme(t *testing.T) {
	token, err := NewIssuer(testSecret, "").Issue(testParticipant, time.Hour)
	require.NoError(t, err)

	id, err := NewJWTResolver(testSecret, "").Resolve(context.Background(), "bearer "+token)

	require.NoError(t, err)
	assert.Equal(t, testParticipant, id)
}

func TestResolve_Issuer(t *testing.T) {
	token, err := NewIssuer(testSecret, "car-packs").Issue(testParticipant, time.Hour)
	require.NoError(t, err)

	_, err = NewJWTResolver(testSecret, "car-packs").Resolve(context.Background(), "Bearer "+token)
	assert.NoError(t, err)

	_, err = NewJWTResolver(testSecret, "someone-else").Resolve(context.Background(), "Bearer "+token)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestResolve_Rejections(t *testing.T) {
	valid, err := NewIssuer(testSecret, "").Issue(testParticipant, time.Hour)
	require.NoError(t, err)
	wrongSecret, err := NewIssuer("other-secret", "").Issue(testParticipant, time.Hour)
	require.NoError(t, err)

	expiredIssuer := NewIssuer(testSecret, "")
	expiredIssuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredIssuer.Issue(testParticipant, time.Hour)
	require.NoError(t, err)

	notUUID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "player-one",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: testParticipant,
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{"empty header", "", ErrMissingCredential},
		{"bearer without token", "Bearer ", ErrMissingCredential},
		{"basic scheme", "Basic dXNlcjpwYXNz", ErrInvalidCredential},
		{"garbage token", "Bearer not-a-jwt", ErrInvalidCredential},
		{"wrong secret", "Bearer " + wrongSecret, ErrInvalidCredential},
		{"expired", "Bearer " + expired, ErrInvalidCredential},
		{"subject not uuid", "Bearer " + notUUID, ErrInvalidCredential},
		{"missing expiry", "Bearer " + noExpiry, ErrInvalidCredential},
		{"token without scheme", valid, ErrInvalidCredential},
	}

	r := NewJWTResolver(testSecret, "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(context.Background(), tt.header)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		})
	}
}

func TestResolve_RejectsOtherAlgorithms(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   testParticipant,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewJWTResolver(testSecret, "").Resolve(context.Background(), "Bearer "+token)

	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestIssue_RejectsNonUUID(t *testing.T) {
	_, err := NewIssuer(testSecret, "").Issue("not-a-uuid", time.Hour)
	assert.Error(t, err)
}

func TestParticipantContext(t *testing.T) {
	_, ok := ParticipantFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithParticipant(context.Background(), testParticipant)
	id, ok := ParticipantFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, testParticipant, id)
}
