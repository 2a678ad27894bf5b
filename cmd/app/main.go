package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/CarPacks_Go/docs"
	"github.com/osse101/CarPacks_Go/internal/bootstrap"
	"github.com/osse101/CarPacks_Go/internal/clock"
	"github.com/osse101/CarPacks_Go/internal/config"
	"github.com/osse101/CarPacks_Go/internal/database"
	"github.com/osse101/CarPacks_Go/internal/identity"
	"github.com/osse101/CarPacks_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

// @title CarPacks API
// @version 1.0
// @description Pack opening service: cooldown-gated weighted card draws.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "car-packs: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLifetime)
	if err != nil {
		_ = logFile.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		_ = logFile.Close()
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	bus, err := bootstrap.InitializeEventSystem()
	if err != nil {
		dbPool.Close()
		_ = logFile.Close()
		return err
	}

	clk := clock.NewRealClock()
	repos := bootstrap.InitializeRepositories(dbPool, cfg)
	bootstrap.WarmCatalog(ctx, repos)
	packService := bootstrap.NewPackService(cfg, repos, bus, clk)

	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		TrustedProxies:     cfg.TrustedProxies,
		CORSAllowedOrigins: server.ParseOrigins(cfg.CORSAllowedOrigins),
		MaxBodyBytes:       server.DefaultMaxBodyBytes,
	}, server.Dependencies{
		DBPool:   dbPool,
		Catalog:  repos.Catalog,
		Packs:    packService,
		Resolver: identity.NewJWTResolver(cfg.JWTSecret, cfg.JWTIssuer),
		Clock:    clk,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		DBPool:  dbPool,
		LogFile: logFile,
	})
	return err
}
