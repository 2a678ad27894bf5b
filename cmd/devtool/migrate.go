package main

import (
	"fmt"

	"github.com/osse101/CarPacks_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) != 1 {
		return usageError("migrate up|down|status")
	}

	ctx, cancel := commandContext()
	defer cancel()

	pool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
	case "down":
		if err := database.Rollback(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Rolled back one migration")
	case "status":
		statuses, err := database.Status(ctx, pool)
		if err != nil {
			return err
		}
		PrintHeader("Migration status")
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Printf("  %05d  %-8s %s\n", s.Version, state, s.Path)
		}
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
	return nil
}
