// Package identity turns a bearer credential into a participant ID.
package identity

import (
	"context"
	"fmt"

	"github.com/osse101/CarPacks_Go/internal/domain"
)

// Resolver extracts the participant from an Authorization header value.
type Resolver interface {
	Resolve(ctx context.Context, authorization string) (string, error)
}

// Both errors match domain.ErrUnauthenticated.
var (
	ErrMissingCredential = fmt.Errorf("%w: missing bearer credential", domain.ErrUnauthenticated)
	ErrInvalidCredential = fmt.Errorf("%w: invalid bearer credential", domain.ErrUnauthenticated)
)

type contextKey struct{}

// WithParticipant stores the resolved participant ID in ctx.
func WithParticipant(ctx context.Context, participantID string) context.Context {
	return context.WithValue(ctx, contextKey{}, participantID)
}

// ParticipantFromContext returns the participant resolved by the auth middleware.
func ParticipantFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}
