package repository

import (
	"context"
	"time"

	"github.com/osse101/CarPacks_Go/internal/domain"
)

// HistoryReader reads the open history.
type HistoryReader interface {
	// GetLatestOpen returns nil, nil when the participant never opened the pack.
	GetLatestOpen(ctx context.Context, participantID, packID string) (*time.Time, error)
}

// HistoryWriter appends to the open history.
type HistoryWriter interface {
	InsertOpen(ctx context.Context, event domain.OpenEvent) error
}

// HistoryTx is the history view available while a participant/pack lock is held.
type HistoryTx interface {
	HistoryReader
	HistoryWriter
}

// History is the append-only open log.
type History interface {
	HistoryReader
	HistoryWriter

	// WithOpenLock runs fn inside a transaction holding an exclusive lock scoped to
	// (participantID, packID). The transaction commits when fn returns nil.
	WithOpenLock(ctx context.Context, participantID, packID string, fn func(ctx context.Context, tx HistoryTx) error) error
}
