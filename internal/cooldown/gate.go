package cooldown

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/CarPacks_Go/internal/clock"
	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/logger"
	"github.com/osse101/CarPacks_Go/internal/repository"
)

// Gate decides whether a participant may open a pack right now.
type Gate struct {
	catalog repository.Catalog
	history repository.History
	clock   clock.Clock
	config  Config
}

// NewGate creates an eligibility gate. A nil clock uses the system clock.
func NewGate(catalog repository.Catalog, history repository.History, clk clock.Clock, config Config) *Gate {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Gate{
		catalog: catalog,
		history: history,
		clock:   clk,
		config:  config,
	}
}

// CheckEligibility loads the pack and evaluates the participant against its cooldown.
// It is a pure read.
func (g *Gate) CheckEligibility(ctx context.Context, participantID, packID string) (*domain.Eligibility, error) {
	pack, err := g.catalog.GetPack(ctx, packID)
	if err != nil {
		return nil, storeError(ErrMsgLoadPackFailed, err)
	}
	return g.Check(ctx, participantID, *pack)
}

// Check evaluates an already loaded pack.
func (g *Gate) Check(ctx context.Context, participantID string, pack domain.Pack) (*domain.Eligibility, error) {
	return g.evaluate(ctx, g.history, participantID, pack)
}

// Reject converts an ineligible result into the typed cooldown error.
func (g *Gate) Reject(elig *domain.Eligibility) error {
	return newErrOnCooldown(elig, g.clock.Now())
}

// EnforceCooldown re-checks eligibility and runs fn while an exclusive
// participant/pack lock is held. fn receives the locked history view and must
// record the open through it for the lock to cover the insert.
func (g *Gate) EnforceCooldown(ctx context.Context, participantID string, pack domain.Pack, fn func(ctx context.Context, tx repository.HistoryTx) error) error {
	log := logger.FromContext(ctx)

	var rejected *ErrOnCooldown
	err := g.history.WithOpenLock(ctx, participantID, pack.ID, func(ctx context.Context, tx repository.HistoryTx) error {
		elig, err := g.evaluate(ctx, tx, participantID, pack)
		if err != nil {
			return err
		}
		if !elig.Eligible {
			rejected = newErrOnCooldown(elig, g.clock.Now())
			return rejected
		}
		return fn(ctx, tx)
	})
	if rejected != nil {
		log.Warn(LogMsgRaceConditionDetected, "pack_id", pack.ID, "remaining", rejected.Remaining)
		return rejected
	}
	if err != nil {
		return fmt.Errorf(ErrMsgLockedCheckFailed, err)
	}
	return nil
}

func (g *Gate) evaluate(ctx context.Context, reader repository.HistoryReader, participantID string, pack domain.Pack) (*domain.Eligibility, error) {
	elig := &domain.Eligibility{
		PackID:                   pack.ID,
		Eligible:                 true,
		EffectiveCooldownMinutes: pack.EffectiveCooldownMinutes(),
	}

	if g.config.DevMode {
		logger.FromContext(ctx).Debug(LogMsgDevModeBypass, "pack_id", pack.ID)
		return elig, nil
	}

	last, err := reader.GetLatestOpen(ctx, participantID, pack.ID)
	if err != nil {
		return nil, storeError(ErrMsgReadLatestOpenFailed, err)
	}
	if last == nil {
		return elig, nil
	}

	elig.LastOpenedAt = last
	elig.Eligible = isElapsed(*last, g.clock.Now(), pack.EffectiveCooldown())
	if !elig.Eligible {
		logger.FromContext(ctx).Debug(LogMsgCooldownActive,
			"pack_id", pack.ID,
			"last_opened_at", last,
			"cooldown_minutes", elig.EffectiveCooldownMinutes)
	}
	return elig, nil
}

// isElapsed reports whether at least window has passed since last.
// Exactly at the boundary counts as elapsed.
func isElapsed(last, now time.Time, window time.Duration) bool {
	return now.Sub(last) >= window
}

// storeError passes caller-facing domain errors through and marks the rest as
// storage failures.
func storeError(msg string, err error) error {
	if errors.Is(err, domain.ErrPackNotFound) || errors.Is(err, domain.ErrInvalidInput) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, msg, err)
}
