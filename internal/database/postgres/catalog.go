package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CarPacks_Go/internal/database/generated"
	"github.com/osse101/CarPacks_Go/internal/domain"
)

// CatalogRepository implements repository.Catalog and repository.CatalogWriter for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db, q: generated.New(db)}
}

// GetPack retrieves a pack by ID
func (r *CatalogRepository) GetPack(ctx context.Context, packID string) (*domain.Pack, error) {
	row, err := r.q.GetPack(ctx, packID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPackNotFound, packID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPack, err)
	}
	return mapPack(row), nil
}

// ListPacks returns every pack ordered by ID
func (r *CatalogRepository) ListPacks(ctx context.Context) ([]domain.Pack, error) {
	rows, err := r.q.ListPacks(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPacks, err)
	}
	packs := make([]domain.Pack, 0, len(rows))
	for _, row := range rows {
		packs = append(packs, *mapPack(row))
	}
	return packs, nil
}

// GetRarityWeights returns the pack's rarity weights in catalog order
func (r *CatalogRepository) GetRarityWeights(ctx context.Context, packID string) ([]domain.RarityWeight, error) {
	rows, err := r.q.GetRarityWeights(ctx, packID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRarityWeights, err)
	}
	weights := make([]domain.RarityWeight, 0, len(rows))
	for _, row := range rows {
		weights = append(weights, domain.RarityWeight{
			PackID: row.PackID,
			Rarity: row.Rarity,
			Weight: row.Weight,
		})
	}
	return weights, nil
}

// GetPoolCards returns the cards in the pack's pool
func (r *CatalogRepository) GetPoolCards(ctx context.Context, packID string) ([]domain.Card, error) {
	rows, err := r.q.GetPoolCards(ctx, packID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPoolCards, err)
	}
	cards := make([]domain.Card, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, mapCard(row))
	}
	return cards, nil
}

// UpsertPack creates or updates a pack definition
func (r *CatalogRepository) UpsertPack(ctx context.Context, pack domain.Pack) error {
	minutes, err := toInt32(pack.CooldownMinutes)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCooldownMinutesOutOfRange, err)
	}
	err = r.q.UpsertPack(ctx, generated.UpsertPackParams{
		ID:              pack.ID,
		Title:           pack.Title,
		DailyFree:       pack.DailyFree,
		CooldownMinutes: minutes,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertPack, err)
	}
	return nil
}

// ReplaceRarityWeights swaps the pack's weights for the given list in one transaction.
// List position becomes the tier's sort order.
func (r *CatalogRepository) ReplaceRarityWeights(ctx context.Context, packID string, weights []domain.RarityWeight) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	q := r.q.WithTx(tx)
	if err := q.DeleteRarityWeights(ctx, packID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToReplaceWeights, err)
	}
	for i, w := range weights {
		order, err := toInt32(i)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSortOrderOutOfRange, err)
		}
		if err := q.InsertRarityWeight(ctx, generated.InsertRarityWeightParams{
			PackID:    packID,
			Rarity:    w.Rarity,
			Weight:    w.Weight,
			SortOrder: order,
		}); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToReplaceWeights, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// UpsertCard creates or updates a card
func (r *CatalogRepository) UpsertCard(ctx context.Context, card domain.Card) error {
	year, err := ptrToInt4(card.Year)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCardYearOutOfRange, err)
	}
	err = r.q.UpsertCard(ctx, generated.UpsertCardParams{
		ID:        card.ID,
		SetID:     ptrToText(card.SetID),
		Make:      card.Make,
		Model:     card.Model,
		Year:      year,
		Rarity:    card.Rarity,
		ImagePath: ptrToText(card.ImagePath),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertCard, err)
	}
	return nil
}

// ReplacePool swaps the pack's pool for the given card IDs in one transaction
func (r *CatalogRepository) ReplacePool(ctx context.Context, packID string, cardIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	q := r.q.WithTx(tx)
	if err := q.DeletePool(ctx, packID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToReplacePool, err)
	}
	for _, cardID := range cardIDs {
		if err := q.InsertPoolEntry(ctx, generated.InsertPoolEntryParams{PackID: packID, CardID: cardID}); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToReplacePool, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func mapPack(row generated.Pack) *domain.Pack {
	return &domain.Pack{
		ID:              row.ID,
		Title:           row.Title,
		DailyFree:       row.DailyFree,
		CooldownMinutes: int(row.CooldownMinutes),
	}
}

func mapCard(row generated.CarCard) domain.Card {
	return domain.Card{
		ID:        row.ID,
		SetID:     textToPtr(row.SetID),
		Make:      row.Make,
		Model:     row.Model,
		Year:      int4ToPtr(row.Year),
		Rarity:    row.Rarity,
		ImagePath: textToPtr(row.ImagePath),
	}
}
