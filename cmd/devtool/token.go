package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CarPacks_Go/internal/config"
	"github.com/osse101/CarPacks_Go/internal/database/postgres"
	"github.com/osse101/CarPacks_Go/internal/identity"
)

// TokenCommand mints a bearer token for local testing and provisions the participant's profile.
type TokenCommand struct{}

func (c *TokenCommand) Name() string {
	return "token"
}

func (c *TokenCommand) Description() string {
	return "Mint a bearer token for a participant (creates the profile if missing)"
}

func (c *TokenCommand) Run(args []string) error {
	participantID, ttl, err := parseTokenArgs(args)
	if err != nil {
		return err
	}

	cfg := config.LoadDatabase()
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set to mint tokens")
	}

	ctx, cancel := commandContext()
	defer cancel()

	pool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	participant, err := postgres.NewProfileRepository(pool).EnsureParticipant(ctx, participantID)
	if err != nil {
		return fmt.Errorf("failed to provision participant: %w", err)
	}
	PrintInfo("Participant %s (%s)", participant.ID, participant.Username)

	token, err := identity.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer).Issue(participantID, ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

// parseTokenArgs accepts "<participant-id|new> [ttl]".
func parseTokenArgs(args []string) (string, time.Duration, error) {
	if len(args) < 1 || len(args) > 2 {
		return "", 0, usageError("token <participant-id|new> [ttl]")
	}

	participantID := args[0]
	if participantID == "new" {
		participantID = uuid.NewString()
	} else if _, err := uuid.Parse(participantID); err != nil {
		return "", 0, fmt.Errorf("participant id must be a UUID: %w", err)
	}

	ttl := identity.DefaultTokenTTL
	if len(args) == 2 {
		d, err := time.ParseDuration(args[1])
		if err != nil || d <= 0 {
			return "", 0, fmt.Errorf("invalid ttl %q", args[1])
		}
		ttl = d
	}
	return participantID, ttl, nil
}
