package bootstrap

import (
	"log/slog"

	"github.com/osse101/CarPacks_Go/internal/clock"
	"github.com/osse101/CarPacks_Go/internal/config"
	"github.com/osse101/CarPacks_Go/internal/cooldown"
	"github.com/osse101/CarPacks_Go/internal/event"
	"github.com/osse101/CarPacks_Go/internal/inventory"
	"github.com/osse101/CarPacks_Go/internal/pack"
	"github.com/osse101/CarPacks_Go/internal/reward"
)

// NewPackService wires the gate, selector and applier over repos into the pack opening service.
func NewPackService(cfg *config.Config, repos *Repositories, bus event.Bus, clk clock.Clock) pack.Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}

	gate := cooldown.NewGate(repos.Catalog, repos.History, clk, cooldown.Config{DevMode: cfg.DevMode})
	selector := reward.NewSelector(repos.Catalog)
	applier := inventory.NewApplier(repos.Holdings, repos.Profiles, repos.History, clk)

	svc := pack.NewService(repos.Catalog, gate, selector, applier, bus, clk, pack.Config{
		StorageTimeout: cfg.StorageTimeout,
		XPPerOpen:      cfg.XPPerOpen,
		CooldownMode:   cfg.CooldownMode,
	})

	slog.Info(LogMsgPackServiceReady,
		"cooldown_mode", cfg.CooldownMode,
		"xp_per_open", cfg.XPPerOpen,
		"storage_timeout", cfg.StorageTimeout,
		"dev_mode", cfg.DevMode)
	return svc
}
