package repository

import (
	"context"

	"github.com/osse101/CarPacks_Go/internal/domain"
)

// Profiles persists participant records.
type Profiles interface {
	GetParticipant(ctx context.Context, participantID string) (*domain.Participant, error)
	// EnsureParticipant provisions a profile with the default username when none exists.
	EnsureParticipant(ctx context.Context, participantID string) (*domain.Participant, error)
	// IncrementXP atomically adds delta and returns the new total.
	// It returns domain.ErrParticipantNotFound when there is no profile.
	IncrementXP(ctx context.Context, participantID string, delta int) (int, error)
}
