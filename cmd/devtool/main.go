package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func newRegistry() *Registry {
	r := NewRegistry()
	r.Register(&MigrateCommand{})
	r.Register(&SeedCommand{})
	r.Register(&TokenCommand{})
	r.Register(&CheckDBCommand{})
	return r
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := newRegistry()
	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp()
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}

func usageError(usage string) error {
	return fmt.Errorf("usage: devtool %s", usage)
}
