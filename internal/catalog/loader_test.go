package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/testing/memstore"
)

const validCatalog = `{
	"version": "1.0",
	"packs": [{
		"id": "starter",
		"title": "Starter Pack",
		"daily_free": true,
		"cooldown_minutes": 60,
		"weights": [{"rarity": "common", "weight": 80}, {"rarity": "RARE", "weight": 20}],
		"pool": ["civic", "supra"]
	}],
	"cards": [
		{"id": "civic", "make": "Honda", "model": "Civic", "year": 1997, "rarity": "common"},
		{"id": "supra", "make": "Toyota", "model": "Supra", "year": null, "rarity": "rare", "image_path": "cards/supra.png"}
	]
}`

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	l, err := NewLoader()
	require.NoError(t, err)
	return l
}

func TestLoader_ParseNormalizesRarities(t *testing.T) {
	l := newTestLoader(t)

	f, err := l.Parse([]byte(validCatalog))
	require.NoError(t, err)

	assert.Equal(t, domain.RarityCommon, f.Cards[0].Rarity)
	assert.Equal(t, domain.RarityRare, f.Cards[1].Rarity)
	assert.Equal(t, domain.RarityCommon, f.Packs[0].Weights[0].Rarity)
	assert.Equal(t, domain.RarityRare, f.Packs[0].Weights[1].Rarity)
	assert.Nil(t, f.Cards[1].Year)
	require.NoError(t, l.Validate(f))
}

func TestLoader_SchemaRejects(t *testing.T) {
	l := newTestLoader(t)

	tests := []struct {
		name string
		data string
	}{
		{name: "missing packs", data: `{"version": "1.0", "cards": []}`},
		{name: "zero weight", data: `{"version": "1.0", "cards": [], "packs": [{"id": "p", "title": "P", "cooldown_minutes": 0, "weights": [{"rarity": "Common", "weight": 0}], "pool": []}]}`},
		{name: "negative cooldown", data: `{"version": "1.0", "cards": [], "packs": [{"id": "p", "title": "P", "cooldown_minutes": -5, "weights": [], "pool": []}]}`},
		{name: "bad pack id", data: `{"version": "1.0", "cards": [], "packs": [{"id": "no spaces", "title": "P", "cooldown_minutes": 0, "weights": [], "pool": []}]}`},
		{name: "unknown field", data: `{"version": "1.0", "cards": [], "packs": [], "extra": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestLoader_ValidateCrossReferences(t *testing.T) {
	l := newTestLoader(t)
	card := func(id, rarity string) CardDef { return CardDef{ID: id, Make: "M", Model: "X", Rarity: rarity} }
	pack := func(pool []string, weights ...WeightDef) PackDef {
		return PackDef{ID: "p", Title: "P", Weights: weights, Pool: pool}
	}

	tests := []struct {
		name string
		file File
		msg  string
	}{
		{
			name: "duplicate card",
			file: File{Cards: []CardDef{card("a", "Common"), card("a", "Common")}},
			msg:  "duplicate card",
		},
		{
			name: "duplicate pack",
			file: File{Packs: []PackDef{pack(nil), pack(nil)}},
			msg:  "duplicate pack",
		},
		{
			name: "unknown pool card",
			file: File{Packs: []PackDef{pack([]string{"ghost"})}},
			msg:  "unknown card",
		},
		{
			name: "tier without cards",
			file: File{
				Cards: []CardDef{card("a", "Common")},
				Packs: []PackDef{pack([]string{"a"}, WeightDef{"Common", 1}, WeightDef{"Rare", 1})},
			},
			msg: "no pool cards",
		},
		{
			name: "duplicate tier",
			file: File{
				Cards: []CardDef{card("a", "Common")},
				Packs: []PackDef{pack([]string{"a"}, WeightDef{"Common", 1}, WeightDef{"Common", 2})},
			},
			msg: "twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := l.Validate(&tt.file)
			require.ErrorIs(t, err, ErrInvalidCatalog)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	assert.ErrorIs(t, l.Validate(nil), ErrInvalidCatalog)
}

func TestLoader_SyncToDatabase(t *testing.T) {
	l := newTestLoader(t)
	store := memstore.New()
	ctx := context.Background()

	f, err := l.Parse([]byte(validCatalog))
	require.NoError(t, err)

	result, err := l.SyncToDatabase(ctx, f, store)
	require.NoError(t, err)
	assert.Equal(t, &SyncResult{Packs: 1, Cards: 2, Weights: 2, PoolEntries: 2}, result)

	pack, err := store.GetPack(ctx, "starter")
	require.NoError(t, err)
	assert.Equal(t, 1440, pack.EffectiveCooldownMinutes(), "daily free floor applies to seeded pack")

	weights, err := store.GetRarityWeights(ctx, "starter")
	require.NoError(t, err)
	assert.Equal(t, []domain.RarityWeight{
		{PackID: "starter", Rarity: domain.RarityCommon, Weight: 80},
		{PackID: "starter", Rarity: domain.RarityRare, Weight: 20},
	}, weights)

	cards, err := store.GetPoolCards(ctx, "starter")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Supra", cards[1].Model)
	require.NotNil(t, cards[1].ImagePath)
	assert.Equal(t, "cards/supra.png", *cards[1].ImagePath)
}

func TestLoader_SyncStopsOnWriteError(t *testing.T) {
	l := newTestLoader(t)
	store := memstore.New()

	f := &File{Packs: []PackDef{{ID: "p", Title: "P", Pool: []string{"missing"}}}}
	result, err := l.SyncToDatabase(context.Background(), f, store)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCardNotFound))
	assert.Equal(t, 1, result.Packs)
	assert.Zero(t, result.PoolEntries)
}

func TestLoader_ShippedStarterCatalog(t *testing.T) {
	l := newTestLoader(t)

	f, err := l.Load("../../configs/catalog.json")
	require.NoError(t, err)
	require.NoError(t, l.Validate(f))
	assert.Equal(t, "starter", f.Packs[0].ID)
}
