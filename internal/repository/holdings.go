package repository

import (
	"context"
	"time"

	"github.com/osse101/CarPacks_Go/internal/domain"
)

// Holdings persists participant-to-card counts.
type Holdings interface {
	// GetHolding returns nil, nil when the participant does not hold the card.
	GetHolding(ctx context.Context, participantID, cardID string) (*domain.Holding, error)
	// InsertHolding creates a holding with count 1. It returns ErrHoldingExists
	// when a concurrent request created the row first.
	InsertHolding(ctx context.Context, participantID, cardID string, obtainedAt time.Time) error
	// IncrementHolding atomically adds one to the holding, creating it if absent,
	// and returns the new count.
	IncrementHolding(ctx context.Context, participantID, cardID string, obtainedAt time.Time) (int, error)
}
