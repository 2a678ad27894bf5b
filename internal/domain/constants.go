package domain

// Rarity tiers used by the starter catalog. Tiers are opaque strings to the
// selector; these names exist for seeding and tests.
const (
	RarityCommon    = "Common"
	RarityUncommon  = "Uncommon"
	RarityRare      = "Rare"
	RarityEpic      = "Epic"
	RarityLegendary = "Legendary"
)

// KnownRarities lists the catalog tiers from most to least common.
var KnownRarities = []string{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

const (
	// DailyFreeMinCooldownMinutes is the floor applied to packs flagged daily_free.
	DailyFreeMinCooldownMinutes = 1440

	// DefaultUsernamePrefix is prepended to the first 8 characters of a new participant ID.
	DefaultUsernamePrefix = "carfan_"
)
