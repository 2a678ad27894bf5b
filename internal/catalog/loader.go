package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/logger"
	"github.com/osse101/CarPacks_Go/internal/repository"
	"github.com/osse101/CarPacks_Go/internal/validation"
)

//go:embed schema/catalog.schema.json
var catalogSchema []byte

const catalogSchemaName = "catalog.schema.json"

// ErrInvalidCatalog is returned when a catalog file fails structural checks.
var ErrInvalidCatalog = errors.New("invalid catalog")

// File is the JSON seed format for packs, weights, cards and pools.
type File struct {
	Version     string    `json:"version"`
	Description string    `json:"description,omitempty"`
	Packs       []PackDef `json:"packs"`
	Cards       []CardDef `json:"cards"`
}

// PackDef is one pack with its odds and pool.
type PackDef struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	DailyFree       bool        `json:"daily_free"`
	CooldownMinutes int         `json:"cooldown_minutes"`
	Weights         []WeightDef `json:"weights"`
	Pool            []string    `json:"pool"`
}

type WeightDef struct {
	Rarity string  `json:"rarity"`
	Weight float64 `json:"weight"`
}

type CardDef struct {
	ID        string  `json:"id"`
	SetID     *string `json:"set_id"`
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	Year      *int    `json:"year"`
	Rarity    string  `json:"rarity"`
	ImagePath *string `json:"image_path"`
}

// SyncResult counts what SyncToDatabase wrote.
type SyncResult struct {
	Packs       int
	Cards       int
	Weights     int
	PoolEntries int
}

// Loader reads, checks and seeds catalog files.
type Loader struct {
	schema validation.SchemaValidator
}

// NewLoader compiles the embedded catalog schema.
func NewLoader() (*Loader, error) {
	v, err := validation.NewSchemaValidator(catalogSchemaName, catalogSchema)
	if err != nil {
		return nil, err
	}
	return &Loader{schema: v}, nil
}

// Load reads path, validates it against the schema and normalizes rarity names to title case.
func (l *Loader) Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return l.Parse(data)
}

// Parse is Load for bytes already in memory.
func (l *Loader) Parse(data []byte) (*File, error) {
	if err := l.schema.ValidateBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	title := cases.Title(language.English)
	for i := range f.Cards {
		f.Cards[i].Rarity = title.String(f.Cards[i].Rarity)
	}
	for i := range f.Packs {
		for j := range f.Packs[i].Weights {
			f.Packs[i].Weights[j].Rarity = title.String(f.Packs[i].Weights[j].Rarity)
		}
	}
	return &f, nil
}

// Validate checks cross references the schema cannot express.
// Every weighted tier must be backed by at least one pool card of that rarity.
func (l *Loader) Validate(f *File) error {
	if f == nil {
		return fmt.Errorf("%w: catalog is nil", ErrInvalidCatalog)
	}

	cards := make(map[string]CardDef, len(f.Cards))
	for _, c := range f.Cards {
		if _, dup := cards[c.ID]; dup {
			return fmt.Errorf("%w: duplicate card id %q", ErrInvalidCatalog, c.ID)
		}
		cards[c.ID] = c
	}

	packs := make(map[string]bool, len(f.Packs))
	for _, p := range f.Packs {
		if packs[p.ID] {
			return fmt.Errorf("%w: duplicate pack id %q", ErrInvalidCatalog, p.ID)
		}
		packs[p.ID] = true

		tiers := make(map[string]int, len(p.Weights))
		for _, w := range p.Weights {
			if _, dup := tiers[w.Rarity]; dup {
				return fmt.Errorf("%w: pack %q lists rarity %q twice", ErrInvalidCatalog, p.ID, w.Rarity)
			}
			tiers[w.Rarity] = 0
		}

		for _, id := range p.Pool {
			c, ok := cards[id]
			if !ok {
				return fmt.Errorf("%w: pack %q pool references unknown card %q", ErrInvalidCatalog, p.ID, id)
			}
			if _, ok := tiers[c.Rarity]; ok {
				tiers[c.Rarity]++
			}
		}

		for _, w := range p.Weights {
			if tiers[w.Rarity] == 0 {
				return fmt.Errorf("%w: pack %q has weight for %q but no pool cards of that rarity", ErrInvalidCatalog, p.ID, w.Rarity)
			}
		}
	}
	return nil
}

// SyncToDatabase writes cards first, then each pack with its weights and pool.
func (l *Loader) SyncToDatabase(ctx context.Context, f *File, w repository.CatalogWriter) (*SyncResult, error) {
	log := logger.FromContext(ctx)
	result := &SyncResult{}

	for _, c := range f.Cards {
		card := domain.Card{
			ID:        c.ID,
			SetID:     c.SetID,
			Make:      c.Make,
			Model:     c.Model,
			Year:      c.Year,
			Rarity:    c.Rarity,
			ImagePath: c.ImagePath,
		}
		if err := w.UpsertCard(ctx, card); err != nil {
			return result, fmt.Errorf("failed to upsert card %s: %w", c.ID, err)
		}
		result.Cards++
	}

	for _, p := range f.Packs {
		pack := domain.Pack{ID: p.ID, Title: p.Title, DailyFree: p.DailyFree, CooldownMinutes: p.CooldownMinutes}
		if err := w.UpsertPack(ctx, pack); err != nil {
			return result, fmt.Errorf("failed to upsert pack %s: %w", p.ID, err)
		}
		result.Packs++

		weights := make([]domain.RarityWeight, 0, len(p.Weights))
		for _, wd := range p.Weights {
			weights = append(weights, domain.RarityWeight{PackID: p.ID, Rarity: wd.Rarity, Weight: wd.Weight})
		}
		if err := w.ReplaceRarityWeights(ctx, p.ID, weights); err != nil {
			return result, fmt.Errorf("failed to replace weights for %s: %w", p.ID, err)
		}
		result.Weights += len(weights)

		if err := w.ReplacePool(ctx, p.ID, p.Pool); err != nil {
			return result, fmt.Errorf("failed to replace pool for %s: %w", p.ID, err)
		}
		result.PoolEntries += len(p.Pool)

		log.Debug("Pack synced", "pack_id", p.ID, "weights", len(weights), "pool", len(p.Pool))
	}

	return result, nil
}
