package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CarPacks_Go/internal/catalog"
	"github.com/osse101/CarPacks_Go/internal/repository"
)

// SyncCatalog loads, validates and writes a catalog seed file.
func SyncCatalog(ctx context.Context, w repository.CatalogWriter, path string) (*catalog.SyncResult, error) {
	slog.Info(LogMsgSyncingCatalog, "path", path)

	loader, err := catalog.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	file, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	if err := loader.Validate(file); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidCatalog, err)
	}

	result, err := loader.SyncToDatabase(ctx, file, w)
	if err != nil {
		return result, fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	slog.Info(LogMsgCatalogSynced,
		"packs", result.Packs,
		"cards", result.Cards,
		"weights", result.Weights,
		"pool_entries", result.PoolEntries)
	return result, nil
}
