package config

import "time"

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "car-packs"
	DefaultVersion          = "dev"
	DefaultLogDir           = "logs"
	DefaultDBUser           = "postgres"
	DefaultDBPassword       = "postgres"
	DefaultDBHost           = "localhost"
	DefaultDBPort           = "5432"
	DefaultDBName           = "carpacks"
	DefaultDBSSLMode        = "disable"
	DefaultDBMaxConns       = 20
	DefaultDBMaxIdle        = 5 * time.Minute
	DefaultDBMaxLifetime    = 30 * time.Minute
	DefaultCatalogCacheSize = 256
	DefaultCatalogCacheTTL  = time.Minute
	DefaultCORSOrigins      = "*"
)

// PathSeedCatalog is the catalog file read by the devtool seed command when no path is given.
const PathSeedCatalog = "configs/catalog.json"
