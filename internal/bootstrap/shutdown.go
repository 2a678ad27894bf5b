package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CarPacks_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	DBPool  *pgxpool.Pool
	LogFile *os.File
}

// GracefulShutdown stops accepting requests, waits for in-flight ones, then releases the pool.
// In-flight opens past the mutation point run on a detached context and finish before Stop returns.
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)

	if components.LogFile != nil {
		if err := components.LogFile.Close(); err != nil {
			slog.Error(LogMsgLogFileCloseFailed, "error", err)
		}
	}
}
