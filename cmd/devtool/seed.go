package main

import (
	"github.com/osse101/CarPacks_Go/internal/bootstrap"
	"github.com/osse101/CarPacks_Go/internal/config"
	"github.com/osse101/CarPacks_Go/internal/database/postgres"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Load packs, weights, cards and pools from a catalog JSON file"
}

func (c *SeedCommand) Run(args []string) error {
	path := config.PathSeedCatalog
	switch len(args) {
	case 0:
	case 1:
		path = args[0]
	default:
		return usageError("seed [catalog.json]")
	}

	ctx, cancel := commandContext()
	defer cancel()

	pool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	result, err := bootstrap.SyncCatalog(ctx, postgres.NewCatalogRepository(pool), path)
	if err != nil {
		return err
	}

	PrintSuccess("Seeded %d packs, %d cards, %d weights, %d pool entries",
		result.Packs, result.Cards, result.Weights, result.PoolEntries)
	return nil
}
