package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a new session starts
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting car-packs"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Catalog Configuration
// =============================================================================

const (
	// CatalogWarmTimeout bounds the startup cache warm-up
	CatalogWarmTimeout = 10 * time.Second

	LogMsgCatalogCacheEnabled  = "Catalog cache enabled"
	LogMsgCatalogCacheDisabled = "Catalog cache disabled"
	LogMsgCatalogWarmFailed    = "Catalog warm-up failed, continuing with cold cache"
	LogMsgSyncingCatalog       = "Syncing catalog from JSON config..."
	LogMsgCatalogSynced        = "Catalog synced successfully"
	ErrMsgFailedLoadCatalog    = "failed to load catalog config"
	ErrMsgInvalidCatalog       = "invalid catalog config"
	ErrMsgFailedSyncCatalog    = "failed to sync catalog to database"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Service Wiring
// =============================================================================

const (
	LogMsgPackServiceReady = "Pack service ready"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
	LogMsgLogFileCloseFailed   = "Failed to close log file"
)
