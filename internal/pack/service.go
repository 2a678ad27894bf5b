package pack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/osse101/CarPacks_Go/internal/clock"
	"github.com/osse101/CarPacks_Go/internal/cooldown"
	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/event"
	"github.com/osse101/CarPacks_Go/internal/inventory"
	"github.com/osse101/CarPacks_Go/internal/logger"
	"github.com/osse101/CarPacks_Go/internal/metrics"
	"github.com/osse101/CarPacks_Go/internal/repository"
	"github.com/osse101/CarPacks_Go/internal/reward"
)

// Service is the pack opening entry point used by the HTTP layer.
type Service interface {
	// OpenPack validates eligibility, draws a card and applies the outcome.
	OpenPack(ctx context.Context, participantID, packID string) (*domain.OpenResult, error)
	// GetStatus reports whether the participant may open the pack now.
	GetStatus(ctx context.Context, participantID, packID string) (*domain.Eligibility, error)
}

// Config holds pack service configuration
type Config struct {
	StorageTimeout time.Duration
	XPPerOpen      int
	CooldownMode   string
}

type service struct {
	catalog  repository.Catalog
	gate     *cooldown.Gate
	selector *reward.Selector
	applier  *inventory.Applier
	bus      event.Bus
	clock    clock.Clock
	config   Config
}

// NewService creates the pack opening service. bus and clk may be nil.
func NewService(
	catalog repository.Catalog,
	gate *cooldown.Gate,
	selector *reward.Selector,
	applier *inventory.Applier,
	bus event.Bus,
	clk clock.Clock,
	config Config,
) Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	if config.StorageTimeout <= 0 {
		config.StorageTimeout = DefaultStorageTimeout
	}
	if config.CooldownMode == "" {
		config.CooldownMode = CooldownModeReference
	}
	return &service{
		catalog:  catalog,
		gate:     gate,
		selector: selector,
		applier:  applier,
		bus:      bus,
		clock:    clk,
		config:   config,
	}
}

// run carries the per-request stage and logger.
type run struct {
	participantID string
	packID        string
	stage         Stage
	base          *slog.Logger
	log           *slog.Logger
	mutated       bool
}

func (r *run) enter(stage Stage) {
	r.stage = stage
	r.log = r.base.With("stage", string(stage))
}

// OpenPack implements Service.
func (s *service) OpenPack(ctx context.Context, participantID, packID string) (*domain.OpenResult, error) {
	start := time.Now()
	ctx = logger.WithParticipantID(ctx, participantID)
	r := &run{
		participantID: participantID,
		packID:        strings.TrimSpace(packID),
		base:          logger.FromContext(ctx).With("pack_id", strings.TrimSpace(packID)),
	}
	r.enter(StageAuthCheck)

	result, newHolding, err := s.openPack(ctx, r)
	took := time.Since(start)

	switch {
	case err == nil:
		metrics.PackOpenOutcomes.WithLabelValues(string(OutcomeSuccess)).Inc()
		r.log.Info(LogMsgOpenSucceeded,
			"card_id", result.Card.ID,
			"rarity", result.Rarity,
			"duration_ms", took.Milliseconds(),
			"degraded", result.Degraded)
		s.publish(ctx, r, event.NewPackOpenedEvent(participantID, r.packID, *result, newHolding, took))
		return result, nil

	case errors.Is(err, domain.ErrOnCooldown):
		metrics.PackOpenOutcomes.WithLabelValues(string(OutcomeRejected)).Inc()
		var remaining time.Duration
		var cooldownErr *cooldown.ErrOnCooldown
		if errors.As(err, &cooldownErr) {
			remaining = cooldownErr.Remaining
		}
		r.log.Info(LogMsgOpenRejected, "remaining", remaining)
		s.publish(ctx, r, event.NewPackOpenRejectedEvent(participantID, r.packID, remaining, s.clock.Now()))
		return nil, err

	default:
		metrics.PackOpenOutcomes.WithLabelValues(string(OutcomeFailed)).Inc()
		if isCallerError(err) {
			r.log.Info(LogMsgOpenFailed, "error", err)
		} else {
			r.log.Error(LogMsgOpenFailed, "error", err, "mutated", r.mutated)
		}
		return nil, err
	}
}

func (s *service) openPack(ctx context.Context, r *run) (*domain.OpenResult, bool, error) {
	// AUTH_CHECK
	if strings.TrimSpace(r.participantID) == "" {
		return nil, false, fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgMissingParticipant)
	}
	if r.packID == "" {
		return nil, false, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingPackID)
	}
	r.log.Debug(LogMsgOpenStarted)

	r.enter(StagePackLookup)
	pack, err := s.loadPack(ctx, r.packID)
	if err != nil {
		return nil, false, err
	}

	r.enter(StageEligibilityCheck)
	tctx, cancel := s.withTimeout(ctx)
	elig, err := s.gate.Check(tctx, r.participantID, *pack)
	cancel()
	if err != nil {
		return nil, false, err
	}
	if !elig.Eligible {
		return nil, false, s.gate.Reject(elig)
	}

	if s.config.CooldownMode == CooldownModeLocked {
		return s.openLocked(ctx, r, *pack)
	}
	return s.drawAndApply(ctx, r, *pack, s.applier)
}

// openLocked repeats the eligibility check under the participant/pack lock and
// writes the open inside the same transaction.
func (s *service) openLocked(ctx context.Context, r *run, pack domain.Pack) (*domain.OpenResult, bool, error) {
	lockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.StorageTimeout*lockedSectionCalls)
	defer cancel()

	var result *domain.OpenResult
	var newHolding bool
	err := s.gate.EnforceCooldown(lockCtx, r.participantID, pack, func(_ context.Context, tx repository.HistoryTx) error {
		var err error
		result, newHolding, err = s.drawAndApply(ctx, r, pack, s.applier.WithHistory(tx))
		return err
	})
	if err != nil && r.mutated && result != nil {
		// The reward is committed; only the history row was lost.
		r.log.Warn(LogMsgLockCommitFailed, "error", err)
		metrics.DegradedWrites.WithLabelValues(DegradedStepLog).Inc()
		if !slices.Contains(result.Degraded, DegradedStepLog) {
			result.Degraded = append(result.Degraded, DegradedStepLog)
		}
		return result, newHolding, nil
	}
	if err != nil {
		return nil, false, err
	}
	return result, newHolding, nil
}

// drawAndApply runs the draw stages on the request context, then detaches it so
// a caller disconnect cannot interrupt the mutation sequence.
func (s *service) drawAndApply(ctx context.Context, r *run, pack domain.Pack, applier *inventory.Applier) (*domain.OpenResult, bool, error) {
	r.enter(StageRarityDraw)
	tctx, cancel := s.withTimeout(ctx)
	rarity, _, err := s.selector.DrawRarity(tctx, pack.ID)
	cancel()
	if err != nil {
		return nil, false, err
	}

	r.enter(StageItemDraw)
	tctx, cancel = s.withTimeout(ctx)
	card, _, err := s.selector.DrawCard(tctx, pack.ID, rarity)
	cancel()
	if err != nil {
		return nil, false, err
	}

	// No mutation happened yet; honour a caller that already went away.
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	mctx := context.WithoutCancel(ctx)
	openedAt := s.clock.Now()

	r.enter(StageInventoryUpdate)
	r.mutated = true
	tctx, cancel = s.withTimeout(mctx)
	change, err := applier.ApplyOutcome(tctx, r.participantID, *card)
	cancel()
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", ErrMsgApplyOutcomeFailed, err)
	}

	result := &domain.OpenResult{
		Card:            *card,
		Rarity:          rarity,
		CooldownMinutes: pack.EffectiveCooldownMinutes(),
		OpenedAt:        openedAt,
		HoldingCount:    change.Count,
	}

	r.enter(StageXPUpdate)
	tctx, cancel = s.withTimeout(mctx)
	err = applier.GrantExperience(tctx, r.participantID, s.config.XPPerOpen)
	cancel()
	if err != nil {
		s.degraded(r, result, DegradedStepXP, err)
	}

	r.enter(StageLogWrite)
	tctx, cancel = s.withTimeout(mctx)
	err = applier.LogOpen(tctx, r.participantID, pack.ID, openedAt)
	cancel()
	if err != nil {
		s.degraded(r, result, DegradedStepLog, err)
	}

	r.enter(StageResponse)
	return result, change.Created, nil
}

// GetStatus implements Service.
func (s *service) GetStatus(ctx context.Context, participantID, packID string) (*domain.Eligibility, error) {
	if strings.TrimSpace(participantID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgMissingParticipant)
	}
	packID = strings.TrimSpace(packID)
	if packID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingPackID)
	}

	pack, err := s.loadPack(ctx, packID)
	if err != nil {
		return nil, err
	}

	tctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.gate.Check(tctx, participantID, *pack)
}

func (s *service) loadPack(ctx context.Context, packID string) (*domain.Pack, error) {
	tctx, cancel := s.withTimeout(ctx)
	defer cancel()
	pack, err := s.catalog.GetPack(tctx, packID)
	if err != nil {
		if errors.Is(err, domain.ErrPackNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, ErrMsgLoadPackFailed, err)
	}
	return pack, nil
}

func (s *service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.config.StorageTimeout)
}

func (s *service) degraded(r *run, result *domain.OpenResult, step string, err error) {
	r.log.Warn(LogMsgDegradedWrite, "step", step, "error", err)
	metrics.DegradedWrites.WithLabelValues(step).Inc()
	result.Degraded = append(result.Degraded, step)
}

func (s *service) publish(ctx context.Context, r *run, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(context.WithoutCancel(ctx), evt); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		r.log.Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func isCallerError(err error) bool {
	return errors.Is(err, domain.ErrUnauthenticated) ||
		errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrPackNotFound)
}
