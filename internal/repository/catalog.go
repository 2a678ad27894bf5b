package repository

import (
	"context"

	"github.com/osse101/CarPacks_Go/internal/domain"
)

// Catalog is the read API over packs, rarity weights and pools.
type Catalog interface {
	// GetPack returns domain.ErrPackNotFound when the pack does not exist.
	GetPack(ctx context.Context, packID string) (*domain.Pack, error)
	ListPacks(ctx context.Context) ([]domain.Pack, error)
	// GetRarityWeights returns the pack's weights in catalog order.
	GetRarityWeights(ctx context.Context, packID string) ([]domain.RarityWeight, error)
	// GetPoolCards returns every card in the pack's pool, resolved to its attributes.
	GetPoolCards(ctx context.Context, packID string) ([]domain.Card, error)
}

// CatalogWriter seeds catalog data. Used by tooling only.
type CatalogWriter interface {
	UpsertPack(ctx context.Context, pack domain.Pack) error
	ReplaceRarityWeights(ctx context.Context, packID string, weights []domain.RarityWeight) error
	UpsertCard(ctx context.Context, card domain.Card) error
	ReplacePool(ctx context.Context, packID string, cardIDs []string) error
}
