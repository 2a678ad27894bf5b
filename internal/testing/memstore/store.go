// Package memstore is an in-memory implementation of the repository
// interfaces for service-level tests.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/CarPacks_Go/internal/concurrency"
	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/repository"
)

// Op names a store operation for failure injection and hooks.
type Op string

const (
	OpGetPack          Op = "GetPack"
	OpGetRarityWeights Op = "GetRarityWeights"
	OpGetPoolCards     Op = "GetPoolCards"
	OpGetLatestOpen    Op = "GetLatestOpen"
	OpInsertOpen       Op = "InsertOpen"
	OpGetHolding       Op = "GetHolding"
	OpInsertHolding    Op = "InsertHolding"
	OpIncrementHolding Op = "IncrementHolding"
	OpIncrementXP      Op = "IncrementXP"
	OpWithOpenLock     Op = "WithOpenLock"
)

type holdingKey struct {
	participantID string
	cardID        string
}

// Store satisfies every repository interface. All methods honour context
// cancellation the way a database driver would.
type Store struct {
	mu       sync.Mutex
	packs    map[string]domain.Pack
	weights  map[string][]domain.RarityWeight
	pools    map[string][]string
	cards    map[string]domain.Card
	holdings map[holdingKey]domain.Holding
	profiles map[string]domain.Participant
	opens    []domain.OpenEvent
	failures map[Op]error
	hooks    map[Op]func(ctx context.Context)
	calls    map[Op]int

	locks *concurrency.LockManager
}

var (
	_ repository.Catalog       = (*Store)(nil)
	_ repository.CatalogWriter = (*Store)(nil)
	_ repository.Holdings      = (*Store)(nil)
	_ repository.Profiles      = (*Store)(nil)
	_ repository.History       = (*Store)(nil)
)

// New returns an empty store.
func New() *Store {
	return &Store{
		packs:    make(map[string]domain.Pack),
		weights:  make(map[string][]domain.RarityWeight),
		pools:    make(map[string][]string),
		cards:    make(map[string]domain.Card),
		holdings: make(map[holdingKey]domain.Holding),
		profiles: make(map[string]domain.Participant),
		failures: make(map[Op]error),
		hooks:    make(map[Op]func(ctx context.Context)),
		calls:    make(map[Op]int),
		locks:    concurrency.NewLockManager(),
	}
}

// Fail makes every later call of op return err. A nil err clears the failure.
func (s *Store) Fail(op Op, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// Hook runs fn at the start of every call of op, outside the store lock.
func (s *Store) Hook(op Op, fn func(ctx context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks[op] = fn
}

// Calls returns how many times op was invoked.
func (s *Store) Calls(op Op) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *Store) enter(ctx context.Context, op Op) error {
	s.mu.Lock()
	s.calls[op]++
	hook := s.hooks[op]
	s.mu.Unlock()

	if hook != nil {
		hook(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures[op]
}

// =============================================================================
// Fixtures
// =============================================================================

// AddParticipant provisions a profile with zero XP.
func (s *Store) AddParticipant(participantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[participantID] = domain.Participant{
		ID:       participantID,
		Username: domain.DefaultUsername(participantID),
		Level:    1,
	}
}

// AddPack stores a pack with its weights and pool in one call.
func (s *Store) AddPack(pack domain.Pack, weights []domain.RarityWeight, cards []domain.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packs[pack.ID] = pack
	s.weights[pack.ID] = append([]domain.RarityWeight(nil), weights...)
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		s.cards[c.ID] = c
		ids = append(ids, c.ID)
	}
	s.pools[pack.ID] = ids
}

// SetHolding writes a holding directly.
func (s *Store) SetHolding(h domain.Holding) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.holdings[holdingKey{h.ParticipantID, h.CardID}] = h
}

// AddOpen appends a history row directly.
func (s *Store) AddOpen(evt domain.OpenEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opens = append(s.opens, evt)
}

// Holding returns the stored holding without running hooks or failures.
func (s *Store) Holding(participantID, cardID string) (domain.Holding, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.holdings[holdingKey{participantID, cardID}]
	return h, ok
}

// Holdings returns every holding of a participant ordered by card ID.
func (s *Store) Holdings(participantID string) []domain.Holding {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Holding
	for k, h := range s.holdings {
		if k.participantID == participantID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CardID < out[j].CardID })
	return out
}

// XP returns the participant's experience total.
func (s *Store) XP(participantID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profiles[participantID].XP
}

// Opens returns a copy of the history.
func (s *Store) Opens() []domain.OpenEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.OpenEvent(nil), s.opens...)
}

// =============================================================================
// repository.Catalog / CatalogWriter
// =============================================================================

func (s *Store) GetPack(ctx context.Context, packID string) (*domain.Pack, error) {
	if err := s.enter(ctx, OpGetPack); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.packs[packID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPackNotFound, packID)
	}
	return &p, nil
}

func (s *Store) ListPacks(ctx context.Context) ([]domain.Pack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Pack, 0, len(s.packs))
	for _, p := range s.packs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetRarityWeights(ctx context.Context, packID string) ([]domain.RarityWeight, error) {
	if err := s.enter(ctx, OpGetRarityWeights); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.RarityWeight(nil), s.weights[packID]...), nil
}

func (s *Store) GetPoolCards(ctx context.Context, packID string) ([]domain.Card, error) {
	if err := s.enter(ctx, OpGetPoolCards); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Card
	for _, id := range s.pools[packID] {
		if c, ok := s.cards[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) UpsertPack(_ context.Context, pack domain.Pack) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packs[pack.ID] = pack
	return nil
}

func (s *Store) ReplaceRarityWeights(_ context.Context, packID string, weights []domain.RarityWeight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weights[packID] = append([]domain.RarityWeight(nil), weights...)
	return nil
}

func (s *Store) UpsertCard(_ context.Context, card domain.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards[card.ID] = card
	return nil
}

func (s *Store) ReplacePool(_ context.Context, packID string, cardIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range cardIDs {
		if _, ok := s.cards[id]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrCardNotFound, id)
		}
	}
	s.pools[packID] = append([]string(nil), cardIDs...)
	return nil
}

// =============================================================================
// repository.Holdings
// =============================================================================

func (s *Store) GetHolding(ctx context.Context, participantID, cardID string) (*domain.Holding, error) {
	if err := s.enter(ctx, OpGetHolding); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.holdings[holdingKey{participantID, cardID}]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (s *Store) InsertHolding(ctx context.Context, participantID, cardID string, obtainedAt time.Time) error {
	if err := s.enter(ctx, OpInsertHolding); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := holdingKey{participantID, cardID}
	if _, ok := s.holdings[key]; ok {
		return repository.ErrHoldingExists
	}
	s.holdings[key] = domain.Holding{
		ParticipantID:   participantID,
		CardID:          cardID,
		Count:           1,
		FirstObtainedAt: obtainedAt,
	}
	return nil
}

func (s *Store) IncrementHolding(ctx context.Context, participantID, cardID string, obtainedAt time.Time) (int, error) {
	if err := s.enter(ctx, OpIncrementHolding); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := holdingKey{participantID, cardID}
	h, ok := s.holdings[key]
	if !ok {
		h = domain.Holding{ParticipantID: participantID, CardID: cardID, FirstObtainedAt: obtainedAt}
	}
	h.Count++
	s.holdings[key] = h
	return h.Count, nil
}

// =============================================================================
// repository.Profiles
// =============================================================================

func (s *Store) GetParticipant(ctx context.Context, participantID string) (*domain.Participant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[participantID]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	return &p, nil
}

func (s *Store) EnsureParticipant(ctx context.Context, participantID string) (*domain.Participant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[participantID]
	if !ok {
		p = domain.Participant{ID: participantID, Username: domain.DefaultUsername(participantID), Level: 1}
		s.profiles[participantID] = p
	}
	return &p, nil
}

func (s *Store) IncrementXP(ctx context.Context, participantID string, delta int) (int, error) {
	if err := s.enter(ctx, OpIncrementXP); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[participantID]
	if !ok {
		return 0, domain.ErrParticipantNotFound
	}
	p.XP += delta
	s.profiles[participantID] = p
	return p.XP, nil
}

// =============================================================================
// repository.History
// =============================================================================

func (s *Store) GetLatestOpen(ctx context.Context, participantID, packID string) (*time.Time, error) {
	if err := s.enter(ctx, OpGetLatestOpen); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latestOpenLocked(participantID, packID), nil
}

func (s *Store) latestOpenLocked(participantID, packID string) *time.Time {
	var latest *time.Time
	for i := range s.opens {
		o := s.opens[i]
		if o.ParticipantID != participantID || o.PackID != packID {
			continue
		}
		if latest == nil || o.OpenedAt.After(*latest) {
			at := o.OpenedAt
			latest = &at
		}
	}
	return latest
}

func (s *Store) InsertOpen(ctx context.Context, evt domain.OpenEvent) error {
	if err := s.enter(ctx, OpInsertOpen); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opens = append(s.opens, evt)
	return nil
}

// WithOpenLock serializes callers per (participant, pack). Opens written through
// the tx become visible only when fn succeeds.
func (s *Store) WithOpenLock(ctx context.Context, participantID, packID string, fn func(ctx context.Context, tx repository.HistoryTx) error) error {
	if err := s.enter(ctx, OpWithOpenLock); err != nil {
		return err
	}

	return s.locks.WithLock(concurrency.OpenKey(participantID, packID), func() error {
		tx := &lockedTx{store: s}
		if err := fn(ctx, tx); err != nil {
			return err
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		s.opens = append(s.opens, tx.pending...)
		return nil
	})
}

type lockedTx struct {
	store   *Store
	pending []domain.OpenEvent
}

func (t *lockedTx) GetLatestOpen(ctx context.Context, participantID, packID string) (*time.Time, error) {
	return t.store.GetLatestOpen(ctx, participantID, packID)
}

func (t *lockedTx) InsertOpen(ctx context.Context, evt domain.OpenEvent) error {
	if err := t.store.enter(ctx, OpInsertOpen); err != nil {
		return err
	}
	t.pending = append(t.pending, evt)
	return nil
}
