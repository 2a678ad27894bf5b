package inventory

// Error message constants
const (
	ErrMsgReadHoldingFailed      = "failed to read holding: %w"
	ErrMsgIncrementHoldingFailed = "failed to increment holding: %w"
	ErrMsgGrantXPFailed          = "failed to grant experience: %w"
	ErrMsgLogOpenFailed          = "failed to log open: %w"
)

// Log message constants
const (
	LogMsgHoldingCreated     = "Holding created"
	LogMsgHoldingIncremented = "Holding incremented"
	LogMsgInsertFallback     = "Holding insert failed, falling back to increment"
	LogMsgExperienceGranted  = "Experience granted"
)
