package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CarPacks_Go/internal/database/generated"
	"github.com/osse101/CarPacks_Go/internal/domain"
)

// ProfileRepository implements repository.Profiles for PostgreSQL
type ProfileRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db, q: generated.New(db)}
}

// GetParticipant retrieves a participant profile
func (r *ProfileRepository) GetParticipant(ctx context.Context, participantID string) (*domain.Participant, error) {
	pid, err := parseParticipantUUID(participantID)
	if err != nil {
		return nil, err
	}
	return getParticipant(ctx, r.q, pid)
}

// EnsureParticipant provisions the profile and currencies rows when missing
func (r *ProfileRepository) EnsureParticipant(ctx context.Context, participantID string) (*domain.Participant, error) {
	pid, err := parseParticipantUUID(participantID)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	q := r.q.WithTx(tx)
	if err := q.InsertProfileIfAbsent(ctx, generated.InsertProfileIfAbsentParams{
		ID:       pid,
		Username: domain.DefaultUsername(pid.String()),
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertProfile, err)
	}
	if err := q.InsertCurrenciesIfAbsent(ctx, pid); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertCurrency, err)
	}

	participant, err := getParticipant(ctx, q, pid)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return participant, nil
}

// IncrementXP adds delta in a single UPDATE and returns the new total
func (r *ProfileRepository) IncrementXP(ctx context.Context, participantID string, delta int) (int, error) {
	pid, err := parseParticipantUUID(participantID)
	if err != nil {
		return 0, err
	}
	d, err := toInt32(delta)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToIncrementXP, err)
	}

	xp, err := r.q.IncrementXP(ctx, generated.IncrementXPParams{Delta: d, ID: pid})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: %s", domain.ErrParticipantNotFound, participantID)
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToIncrementXP, err)
	}
	return int(xp), nil
}

func getParticipant(ctx context.Context, q *generated.Queries, pid uuid.UUID) (*domain.Participant, error) {
	row, err := q.GetProfile(ctx, pid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrParticipantNotFound, pid)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProfile, err)
	}
	return &domain.Participant{
		ID:        row.ID.String(),
		Username:  row.Username,
		Level:     int(row.Level),
		XP:        int(row.Xp),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}, nil
}
