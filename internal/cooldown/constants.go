package cooldown

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	// ErrMsgLoadPackFailed is returned when the pack cannot be read
	ErrMsgLoadPackFailed = "failed to load pack"

	// ErrMsgReadLatestOpenFailed is returned when the open history cannot be read
	ErrMsgReadLatestOpenFailed = "failed to read latest open"

	// ErrMsgLockedCheckFailed is returned when the locked check-and-run fails
	ErrMsgLockedCheckFailed = "failed to enforce cooldown under lock: %w"
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	// LogMsgDevModeBypass is logged when dev mode bypasses cooldown enforcement
	LogMsgDevModeBypass = "DEV_MODE: Bypassing cooldown enforcement"

	// LogMsgCooldownActive is logged when a participant is rejected by the gate
	LogMsgCooldownActive = "Pack on cooldown"

	// LogMsgRaceConditionDetected is logged when a locked re-check rejects a request
	LogMsgRaceConditionDetected = "Race condition detected - concurrent open on cooldown"
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	// ErrFmtCooldownWithMinutes formats cooldown error with minutes and seconds
	ErrFmtCooldownWithMinutes = "pack '%s' on cooldown: %dm %ds remaining"

	// ErrFmtCooldownSecondsOnly formats cooldown error with seconds only
	ErrFmtCooldownSecondsOnly = "pack '%s' on cooldown: %ds remaining"
)

// SecondsPerMinute is used for time duration calculations
const SecondsPerMinute = 60
