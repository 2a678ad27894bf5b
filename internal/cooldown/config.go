package cooldown

// Config holds eligibility gate configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool
}
