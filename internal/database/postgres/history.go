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

// HistoryRepository implements repository.History for PostgreSQL
type HistoryRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db, q: generated.New(db)}
}

// GetLatestOpen returns the most recent open, or nil when there is none
func (r *HistoryRepository) GetLatestOpen(ctx context.Context, participantID, packID string) (*time.Time, error) {
	return getLatestOpen(ctx, r.q, participantID, packID)
}

// InsertOpen appends an open event
func (r *HistoryRepository) InsertOpen(ctx context.Context, event domain.OpenEvent) error {
	return insertOpen(ctx, r.q, event)
}

// CountOpens returns how many times the participant opened the pack
func (r *HistoryRepository) CountOpens(ctx context.Context, participantID, packID string) (int64, error) {
	pid, err := parseParticipantUUID(participantID)
	if err != nil {
		return 0, err
	}
	n, err := r.q.CountOpens(ctx, generated.CountOpensParams{ProfileID: pid, PackID: packID})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountOpens, err)
	}
	return n, nil
}

// WithOpenLock runs fn in a transaction holding pg_advisory_xact_lock keyed by
// (participantID, packID). Advisory locks work even when no history row exists yet.
func (r *HistoryRepository) WithOpenLock(ctx context.Context, participantID, packID string, fn func(ctx context.Context, tx repository.HistoryTx) error) error {
	if _, err := parseParticipantUUID(participantID); err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	q := r.q.WithTx(tx)
	if err := q.AcquireOpenLock(ctx, hashParticipantPack(participantID, packID)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAcquireOpenLock, err)
	}

	if err := fn(ctx, &historyTx{q: q}); err != nil {
		return err
	}

	// Commit releases the advisory lock
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

type historyTx struct {
	q *generated.Queries
}

func (t *historyTx) GetLatestOpen(ctx context.Context, participantID, packID string) (*time.Time, error) {
	return getLatestOpen(ctx, t.q, participantID, packID)
}

func (t *historyTx) InsertOpen(ctx context.Context, event domain.OpenEvent) error {
	return insertOpen(ctx, t.q, event)
}

func getLatestOpen(ctx context.Context, q *generated.Queries, participantID, packID string) (*time.Time, error) {
	pid, err := parseParticipantUUID(participantID)
	if err != nil {
		return nil, err
	}

	openedAt, err := q.GetLatestOpen(ctx, generated.GetLatestOpenParams{ProfileID: pid, PackID: packID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLatestOpen, err)
	}
	t := openedAt.UTC()
	return &t, nil
}

func insertOpen(ctx context.Context, q *generated.Queries, event domain.OpenEvent) error {
	pid, err := parseParticipantUUID(event.ParticipantID)
	if err != nil {
		return err
	}

	err = q.InsertOpen(ctx, generated.InsertOpenParams{
		ProfileID: pid,
		PackID:    event.PackID,
		OpenedAt:  event.OpenedAt,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertOpen, err)
	}
	return nil
}
