package pack

import "time"

// Stage names a step of the open state machine. Every log line of a request
// carries the stage it was emitted from.
type Stage string

const (
	StageAuthCheck        Stage = "AUTH_CHECK"
	StagePackLookup       Stage = "PACK_LOOKUP"
	StageEligibilityCheck Stage = "ELIGIBILITY_CHECK"
	StageRarityDraw       Stage = "RARITY_DRAW"
	StageItemDraw         Stage = "ITEM_DRAW"
	StageInventoryUpdate  Stage = "INVENTORY_UPDATE"
	StageXPUpdate         Stage = "XP_UPDATE"
	StageLogWrite         Stage = "LOG_WRITE"
	StageResponse         Stage = "RESPONSE"
)

// Outcome is the terminal state of an open attempt.
type Outcome string

const (
	OutcomeSuccess  Outcome = "SUCCESS"
	OutcomeRejected Outcome = "REJECTED"
	OutcomeFailed   Outcome = "FAILED"
)

// Degraded step names, reported in OpenResult.Degraded and metrics.
const (
	DegradedStepXP  = "xp"
	DegradedStepLog = "log"
)

// Cooldown enforcement modes, selected with COOLDOWN_MODE
const (
	// CooldownModeReference checks eligibility with a plain read before mutating.
	CooldownModeReference = "reference"
	// CooldownModeLocked serializes the check and the history insert per participant and pack.
	CooldownModeLocked = "locked"
)

const (
	// DefaultStorageTimeout bounds a single storage call when Config leaves it unset.
	DefaultStorageTimeout = 5 * time.Second

	// DefaultXPPerOpen is the experience granted for every successful open.
	DefaultXPPerOpen = 5
)

// lockedSectionCalls is the number of storage calls made while the open lock is held.
const lockedSectionCalls = 6

// Log message constants
const (
	LogMsgOpenStarted      = "Pack open started"
	LogMsgOpenSucceeded    = "Pack opened"
	LogMsgOpenRejected     = "Pack open rejected: cooldown active"
	LogMsgOpenFailed       = "Pack open failed"
	LogMsgDegradedWrite    = "Best-effort write failed after reward was granted"
	LogMsgPublishFailed    = "Failed to publish pack event"
	LogMsgLockCommitFailed = "Open lock commit failed after reward was granted"
)

// Error message constants
const (
	ErrMsgMissingParticipant = "participant id is required"
	ErrMsgMissingPackID      = "pack_id is required"
	ErrMsgLoadPackFailed     = "failed to load pack"
	ErrMsgApplyOutcomeFailed = "failed to apply outcome"
)
