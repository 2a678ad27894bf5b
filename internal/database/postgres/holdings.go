package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CarPacks_Go/internal/database/generated"
	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/repository"
)

// HoldingRepository implements repository.Holdings for PostgreSQL
type HoldingRepository struct {
	q *generated.Queries
}

// NewHoldingRepository creates a new HoldingRepository
func NewHoldingRepository(db *pgxpool.Pool) *HoldingRepository {
	return &HoldingRepository{q: generated.New(db)}
}

// GetHolding returns nil, nil when the participant does not hold the card
func (r *HoldingRepository) GetHolding(ctx context.Context, participantID, cardID string) (*domain.Holding, error) {
	pid, err := parseParticipantUUID(participantID)
	if err != nil {
		return nil, err
	}

	row, err := r.q.GetHolding(ctx, generated.GetHoldingParams{ProfileID: pid, CardID: cardID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetHolding, err)
	}

	return &domain.Holding{
		ParticipantID:   row.ProfileID.String(),
		CardID:          row.CardID,
		Count:           int(row.Count),
		FirstObtainedAt: row.FirstObtainedAt.UTC(),
	}, nil
}

// InsertHolding creates a holding with count 1
func (r *HoldingRepository) InsertHolding(ctx context.Context, participantID, cardID string, obtainedAt time.Time) error {
	pid, err := parseParticipantUUID(participantID)
	if err != nil {
		return err
	}

	err = r.q.InsertHolding(ctx, generated.InsertHoldingParams{
		ProfileID:       pid,
		CardID:          cardID,
		FirstObtainedAt: obtainedAt,
	})
	if err != nil {
		if isPgError(err, PgErrorCodeUniqueViolation) {
			return repository.ErrHoldingExists
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertHolding, err)
	}
	return nil
}

// IncrementHolding adds one to the holding in a single statement, creating it when absent
func (r *HoldingRepository) IncrementHolding(ctx context.Context, participantID, cardID string, obtainedAt time.Time) (int, error) {
	pid, err := parseParticipantUUID(participantID)
	if err != nil {
		return 0, err
	}

	count, err := r.q.IncrementHolding(ctx, generated.IncrementHoldingParams{
		ProfileID:       pid,
		CardID:          cardID,
		FirstObtainedAt: obtainedAt,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToIncrementHolding, err)
	}
	return int(count), nil
}
