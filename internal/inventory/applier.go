package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/CarPacks_Go/internal/clock"
	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/logger"
	"github.com/osse101/CarPacks_Go/internal/metrics"
	"github.com/osse101/CarPacks_Go/internal/repository"
)

// Applier commits the effects of a successful draw. Every counter change goes
// through an atomic storage primitive.
type Applier struct {
	holdings repository.Holdings
	profiles repository.Profiles
	history  repository.HistoryWriter
	clock    clock.Clock
}

// NewApplier creates an outcome applier. A nil clock uses the system clock.
func NewApplier(holdings repository.Holdings, profiles repository.Profiles, history repository.HistoryWriter, clk clock.Clock) *Applier {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Applier{
		holdings: holdings,
		profiles: profiles,
		history:  history,
		clock:    clk,
	}
}

// WithHistory returns a copy of the applier that logs opens through w.
// Used to write the open inside a locked transaction.
func (a *Applier) WithHistory(w repository.HistoryWriter) *Applier {
	cp := *a
	cp.history = w
	return &cp
}

// ApplyOutcome grants one copy of card to the participant. A first win inserts
// the holding; a lost insert race, or any other insert failure, is retried once
// as an atomic increment. first_obtained_at is only set by the insert.
func (a *Applier) ApplyOutcome(ctx context.Context, participantID string, card domain.Card) (*domain.HoldingChange, error) {
	log := logger.FromContext(ctx)
	now := a.clock.Now()

	existing, err := a.holdings.GetHolding(ctx, participantID, card.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadHoldingFailed, err)
	}

	if existing == nil {
		insertErr := a.holdings.InsertHolding(ctx, participantID, card.ID, now)
		if insertErr == nil {
			log.Debug(LogMsgHoldingCreated, "card_id", card.ID)
			return &domain.HoldingChange{CardID: card.ID, Count: 1, Created: true}, nil
		}

		metrics.HoldingFallbacks.Inc()
		if errors.Is(insertErr, repository.ErrHoldingExists) {
			log.Debug(LogMsgInsertFallback, "card_id", card.ID, "reason", "concurrent_insert")
		} else {
			log.Warn(LogMsgInsertFallback, "card_id", card.ID, "error", insertErr)
		}

		count, err := a.holdings.IncrementHolding(ctx, participantID, card.ID, now)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgIncrementHoldingFailed, errors.Join(err, insertErr))
		}
		return &domain.HoldingChange{CardID: card.ID, Count: count, Fallback: true}, nil
	}

	count, err := a.holdings.IncrementHolding(ctx, participantID, card.ID, now)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgIncrementHoldingFailed, err)
	}
	log.Debug(LogMsgHoldingIncremented, "card_id", card.ID, "count", count)
	return &domain.HoldingChange{CardID: card.ID, Count: count}, nil
}

// GrantExperience atomically adds amount to the participant's XP.
func (a *Applier) GrantExperience(ctx context.Context, participantID string, amount int) error {
	if amount == 0 {
		return nil
	}
	total, err := a.profiles.IncrementXP(ctx, participantID, amount)
	if err != nil {
		return fmt.Errorf(ErrMsgGrantXPFailed, err)
	}
	logger.FromContext(ctx).Debug(LogMsgExperienceGranted, "amount", amount, "xp", total)
	return nil
}

// LogOpen appends one open event.
func (a *Applier) LogOpen(ctx context.Context, participantID, packID string, at time.Time) error {
	err := a.history.InsertOpen(ctx, domain.OpenEvent{
		ParticipantID: participantID,
		PackID:        packID,
		OpenedAt:      at,
	})
	if err != nil {
		return fmt.Errorf(ErrMsgLogOpenFailed, err)
	}
	return nil
}
