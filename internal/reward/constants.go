package reward

// Error message constants
const (
	ErrMsgLoadWeightsFailed = "failed to load rarity weights"
	ErrMsgLoadPoolFailed    = "failed to load pack pool"
)

// Log message constants
const (
	LogMsgRarityDrawn = "Rarity drawn"
	LogMsgCardDrawn   = "Card drawn"
)
