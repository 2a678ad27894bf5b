package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/CarPacks_Go/internal/concurrency"
	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// parseParticipantUUID parses a participant ID string to uuid.UUID with consistent error message.
func parseParticipantUUID(participantID string) (uuid.UUID, error) {
	u, err := uuid.Parse(participantID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, ErrMsgInvalidParticipantID, err)
	}
	return u, nil
}

// isPgError reports whether err carries the given PostgreSQL error code.
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// hashParticipantPack creates a consistent int64 hash from participantID + packID for advisory locking
func hashParticipantPack(participantID, packID string) int64 {
	h := sha256.Sum256([]byte(concurrency.OpenKey(participantID, packID)))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func int4ToPtr(i pgtype.Int4) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int32)
	return &v
}

func ptrToInt4(i *int) (pgtype.Int4, error) {
	if i == nil {
		return pgtype.Int4{}, nil
	}
	v, err := toInt32(*i)
	if err != nil {
		return pgtype.Int4{}, err
	}
	return pgtype.Int4{Int32: v, Valid: true}, nil
}

func toInt32(v int) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("value %d overflows int32", v)
	}
	return int32(v), nil
}
