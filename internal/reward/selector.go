package reward

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/logger"
	"github.com/osse101/CarPacks_Go/internal/repository"
	"github.com/osse101/CarPacks_Go/internal/utils"
)

// Draw is the outcome of a two-stage selection.
type Draw struct {
	Card      domain.Card
	Rarity    string
	TierRoll  float64 // r in [0, total weight)
	CardIndex int     // index into the rarity-filtered pool
}

// Selector performs the weighted rarity draw followed by a uniform card draw.
// It only reads the catalog.
type Selector struct {
	catalog repository.Catalog
	rnd     func() float64
}

// NewSelector creates a selector backed by the process RNG.
func NewSelector(catalog repository.Catalog) *Selector {
	return NewSelectorWithRand(catalog, utils.RandomFloat)
}

// NewSelectorWithRand creates a selector with an injected [0,1) source.
func NewSelectorWithRand(catalog repository.Catalog, rnd func() float64) *Selector {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Selector{catalog: catalog, rnd: rnd}
}

// SelectReward runs both stages for a pack that has already been validated.
func (s *Selector) SelectReward(ctx context.Context, packID string) (*Draw, error) {
	rarity, roll, err := s.DrawRarity(ctx, packID)
	if err != nil {
		return nil, err
	}
	card, idx, err := s.DrawCard(ctx, packID, rarity)
	if err != nil {
		return nil, err
	}
	return &Draw{Card: *card, Rarity: rarity, TierRoll: roll, CardIndex: idx}, nil
}

// DrawRarity picks a rarity tier with probability weight/total.
func (s *Selector) DrawRarity(ctx context.Context, packID string) (string, float64, error) {
	weights, err := s.catalog.GetRarityWeights(ctx, packID)
	if err != nil {
		return "", 0, catalogError(ErrMsgLoadWeightsFailed, err)
	}

	rarity, roll, err := selectTier(weights, s.rnd())
	if err != nil {
		return "", 0, fmt.Errorf("pack %s: %w", packID, err)
	}

	logger.FromContext(ctx).Debug(LogMsgRarityDrawn, "pack_id", packID, "rarity", rarity, "roll", roll)
	return rarity, roll, nil
}

// DrawCard picks uniformly among the pool cards of the given rarity.
func (s *Selector) DrawCard(ctx context.Context, packID, rarity string) (*domain.Card, int, error) {
	cards, err := s.catalog.GetPoolCards(ctx, packID)
	if err != nil {
		return nil, 0, catalogError(ErrMsgLoadPoolFailed, err)
	}

	card, idx, err := selectCard(cards, rarity, s.rnd())
	if err != nil {
		return nil, 0, fmt.Errorf("pack %s rarity %s: %w", packID, rarity, err)
	}

	logger.FromContext(ctx).Debug(LogMsgCardDrawn, "pack_id", packID, "card_id", card.ID, "index", idx)
	return card, idx, nil
}

// selectTier walks weights in order subtracting each weight from r = rnd*total.
// The first tier that takes the remainder below zero wins, so tier i owns the
// half-open interval [c_{i-1}, c_i). The last tier absorbs rounding leftovers.
func selectTier(weights []domain.RarityWeight, rnd float64) (string, float64, error) {
	if len(weights) == 0 {
		return "", 0, domain.ErrNoProbabilities
	}

	var total float64
	for _, w := range weights {
		if w.Weight <= 0 || math.IsNaN(w.Weight) || math.IsInf(w.Weight, 0) {
			return "", 0, fmt.Errorf("%w: %s=%v", domain.ErrInvalidWeight, w.Rarity, w.Weight)
		}
		total += w.Weight
	}
	if math.IsInf(total, 0) {
		return "", 0, fmt.Errorf("%w: total overflows", domain.ErrInvalidWeight)
	}

	roll := rnd * total
	remaining := roll
	for _, w := range weights {
		remaining -= w.Weight
		if remaining < 0 {
			return w.Rarity, roll, nil
		}
	}
	return weights[len(weights)-1].Rarity, roll, nil
}

// selectCard filters cards to rarity and picks index int(rnd*n), clamped to n-1.
func selectCard(cards []domain.Card, rarity string, rnd float64) (*domain.Card, int, error) {
	if len(cards) == 0 {
		return nil, 0, domain.ErrEmptyPool
	}

	matching := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if c.Rarity == rarity {
			matching = append(matching, c)
		}
	}
	if len(matching) == 0 {
		return nil, 0, domain.ErrNoCardsForRarity
	}

	idx := int(rnd * float64(len(matching)))
	if idx >= len(matching) {
		idx = len(matching) - 1
	}
	if idx < 0 {
		idx = 0
	}
	card := matching[idx]
	return &card, idx, nil
}

func catalogError(msg string, err error) error {
	if errors.Is(err, domain.ErrPackNotFound) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, msg, err)
}
