package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const bearerPrefix = "bearer "

// DefaultTokenTTL is the lifetime of tokens minted by Issuer when none is given.
const DefaultTokenTTL = 24 * time.Hour

// JWTResolver validates HS256 tokens whose subject is the participant UUID.
type JWTResolver struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewJWTResolver creates a resolver. An empty issuer skips the iss check.
func NewJWTResolver(secret, issuer string) *JWTResolver {
	return &JWTResolver{secret: []byte(secret), issuer: issuer, now: time.Now}
}

// Resolve implements Resolver.
func (r *JWTResolver) Resolve(_ context.Context, authorization string) (string, error) {
	raw, err := bearerToken(authorization)
	if err != nil {
		return "", err
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(r.now),
		jwt.WithExpirationRequired(),
	}
	if r.issuer != "" {
		opts = append(opts, jwt.WithIssuer(r.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return r.secret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	if !token.Valid {
		return "", ErrInvalidCredential
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("%w: subject is not a participant id", ErrInvalidCredential)
	}
	return id.String(), nil
}

func bearerToken(authorization string) (string, error) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return "", ErrMissingCredential
	}
	if len(authorization) < len(bearerPrefix) || !strings.EqualFold(authorization[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrInvalidCredential
	}
	raw := strings.TrimSpace(authorization[len(bearerPrefix):])
	if raw == "" {
		return "", ErrMissingCredential
	}
	return raw, nil
}

// Issuer mints tokens accepted by JWTResolver. Used by local tooling and tests.
type Issuer struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewIssuer creates a token issuer.
func NewIssuer(secret, issuer string) *Issuer {
	return &Issuer{secret: []byte(secret), issuer: issuer, now: time.Now}
}

// Issue signs a token for participantID valid for ttl.
func (i *Issuer) Issue(participantID string, ttl time.Duration) (string, error) {
	if _, err := uuid.Parse(participantID); err != nil {
		return "", errors.New("participant id must be a UUID")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   participantID,
		Issuer:    i.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}
