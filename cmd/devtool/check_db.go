package main

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const (
	defaultDBAttempts = 30
	retryInterval     = 2 * time.Second
)

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Wait for the database to accept connections (optional attempt count)"
}

func (c *CheckDBCommand) Run(args []string) error {
	attempts := defaultDBAttempts
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return usageError("check-db [attempts]")
		}
		attempts = n
	} else if len(args) > 1 {
		return usageError("check-db [attempts]")
	}

	PrintHeader("Checking database...")
	for i := 1; i <= attempts; i++ {
		err := pingOnce()
		if err == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		fmt.Printf("Database not ready (%d/%d): %v\n", i, attempts, err)
		if i < attempts {
			time.Sleep(retryInterval)
		}
	}
	return fmt.Errorf("database failed to become ready after %d attempts", attempts)
}

func pingOnce() error {
	ctx, cancel := context.WithTimeout(context.Background(), retryInterval)
	defer cancel()

	pool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()
	return pool.Ping(ctx)
}
