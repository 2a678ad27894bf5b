package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Caller errors
	ErrMsgUnauthenticated = "missing or invalid credential"
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgPackNotFound    = "pack not found"
	ErrMsgOnCooldown      = "pack on cooldown"

	// Configuration errors
	ErrMsgNoProbabilities   = "no probabilities for pack"
	ErrMsgInvalidWeight     = "invalid rarity weight"
	ErrMsgEmptyPool         = "pack pool is empty"
	ErrMsgNoCardsForRarity  = "no cards for chosen rarity in pool"
	ErrMsgCardNotFound      = "card not found"
	ErrMsgParticipantAbsent = "participant not found"

	// Infrastructure errors
	ErrMsgStoreUnavailable = "store unavailable"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUnauthenticated = errors.New(ErrMsgUnauthenticated)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrPackNotFound    = errors.New(ErrMsgPackNotFound)
	ErrOnCooldown      = errors.New(ErrMsgOnCooldown)

	ErrNoProbabilities     = errors.New(ErrMsgNoProbabilities)
	ErrInvalidWeight       = errors.New(ErrMsgInvalidWeight)
	ErrEmptyPool           = errors.New(ErrMsgEmptyPool)
	ErrNoCardsForRarity    = errors.New(ErrMsgNoCardsForRarity)
	ErrCardNotFound        = errors.New(ErrMsgCardNotFound)
	ErrParticipantNotFound = errors.New(ErrMsgParticipantAbsent)

	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)
)

// IsConfigurationError reports whether err stems from broken catalog data rather than the caller.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrNoProbabilities) ||
		errors.Is(err, ErrInvalidWeight) ||
		errors.Is(err, ErrEmptyPool) ||
		errors.Is(err, ErrNoCardsForRarity)
}
