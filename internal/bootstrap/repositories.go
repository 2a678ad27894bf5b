package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CarPacks_Go/internal/catalog"
	"github.com/osse101/CarPacks_Go/internal/config"
	"github.com/osse101/CarPacks_Go/internal/database/postgres"
	"github.com/osse101/CarPacks_Go/internal/repository"
)

// Repositories holds the storage implementations used by the application.
// Catalog is the cached view; CatalogCache is nil when caching is disabled.
type Repositories struct {
	Catalog      repository.Catalog
	CatalogCache *catalog.CachedCatalog
	History      repository.History
	Holdings     repository.Holdings
	Profiles     repository.Profiles
}

// InitializeRepositories creates the Postgres repositories and wraps the catalog in the read cache.
func InitializeRepositories(dbPool *pgxpool.Pool, cfg *config.Config) *Repositories {
	cached := catalog.NewCachedCatalog(postgres.NewCatalogRepository(dbPool), cfg.CatalogCacheSize, cfg.CatalogCacheTTL)
	if cached.Enabled() {
		slog.Info(LogMsgCatalogCacheEnabled, "size", cfg.CatalogCacheSize, "ttl", cfg.CatalogCacheTTL)
	} else {
		slog.Info(LogMsgCatalogCacheDisabled)
	}

	return &Repositories{
		Catalog:      cached,
		CatalogCache: cached,
		History:      postgres.NewHistoryRepository(dbPool),
		Holdings:     postgres.NewHoldingRepository(dbPool),
		Profiles:     postgres.NewProfileRepository(dbPool),
	}
}

// WarmCatalog preloads every pack into the cache. Failure is logged and otherwise ignored.
func WarmCatalog(ctx context.Context, repos *Repositories) {
	if repos.CatalogCache == nil || !repos.CatalogCache.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, CatalogWarmTimeout)
	defer cancel()

	if err := repos.CatalogCache.Warm(ctx); err != nil {
		slog.Warn(LogMsgCatalogWarmFailed, "error", err)
	}
}
