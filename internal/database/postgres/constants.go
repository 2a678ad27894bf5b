package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced profile, pack or card is missing
	PgErrorCodeForeignKeyViolation = "23503"
)

// Advisory lock key derivation
const (
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToAcquireOpenLock   = "failed to acquire open lock"
)

// Error Messages - Participant Operations
const (
	ErrMsgInvalidParticipantID   = "invalid participant id"
	ErrMsgFailedToGetProfile     = "failed to get profile"
	ErrMsgFailedToInsertProfile  = "failed to insert profile"
	ErrMsgFailedToInsertCurrency = "failed to insert currencies"
	ErrMsgFailedToIncrementXP    = "failed to increment xp"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToGetPack           = "failed to get pack"
	ErrMsgFailedToListPacks         = "failed to list packs"
	ErrMsgFailedToGetRarityWeights  = "failed to get rarity weights"
	ErrMsgFailedToGetPoolCards      = "failed to get pool cards"
	ErrMsgFailedToUpsertPack        = "failed to upsert pack"
	ErrMsgFailedToReplaceWeights    = "failed to replace rarity weights"
	ErrMsgFailedToUpsertCard        = "failed to upsert card"
	ErrMsgFailedToReplacePool       = "failed to replace pool"
	ErrMsgCardYearOutOfRange        = "card year out of range"
	ErrMsgSortOrderOutOfRange       = "sort order out of range"
	ErrMsgCooldownMinutesOutOfRange = "cooldown minutes out of range"
)

// Error Messages - Holding Operations
const (
	ErrMsgFailedToGetHolding       = "failed to get holding"
	ErrMsgFailedToInsertHolding    = "failed to insert holding"
	ErrMsgFailedToIncrementHolding = "failed to increment holding"
)

// Error Messages - History Operations
const (
	ErrMsgFailedToGetLatestOpen = "failed to get latest open"
	ErrMsgFailedToInsertOpen    = "failed to insert open event"
	ErrMsgFailedToCountOpens    = "failed to count opens"
)
