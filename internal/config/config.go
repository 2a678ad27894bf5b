package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/CarPacks_Go/internal/pack"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBSSLMode     string
	DBMaxConns    int
	DBMaxIdle     time.Duration
	DBMaxLifetime time.Duration

	JWTSecret string // HS256 key used to verify bearer credentials
	JWTIssuer string // optional; checked when set

	StorageTimeout   time.Duration // bound on every storage call made while opening a pack
	XPPerOpen        int
	CooldownMode     string
	DevMode          bool // bypasses cooldowns for local testing
	CatalogCacheSize int
	CatalogCacheTTL  time.Duration

	TrustedProxies     []string
	CORSAllowedOrigins string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		DBUser:        getEnv("DB_USER", DefaultDBUser),
		DBPassword:    getEnv("DB_PASSWORD", DefaultDBPassword),
		DBHost:        getEnv("DB_HOST", DefaultDBHost),
		DBPort:        getEnv("DB_PORT", DefaultDBPort),
		DBName:        getEnv("DB_NAME", DefaultDBName),
		DBSSLMode:     getEnv("DB_SSLMODE", DefaultDBSSLMode),
		DBMaxConns:    getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdle:     getEnvAsDuration("DB_MAX_IDLE", DefaultDBMaxIdle),
		DBMaxLifetime: getEnvAsDuration("DB_MAX_LIFETIME", DefaultDBMaxLifetime),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", ""),

		StorageTimeout:   getEnvAsDuration("STORAGE_TIMEOUT", pack.DefaultStorageTimeout),
		XPPerOpen:        getEnvAsInt("XP_PER_OPEN", pack.DefaultXPPerOpen),
		CooldownMode:     strings.ToLower(getEnv("COOLDOWN_MODE", pack.CooldownModeReference)),
		DevMode:          getEnvAsBool("DEV_MODE", false),
		CatalogCacheSize: getEnvAsInt("CATALOG_CACHE_SIZE", DefaultCatalogCacheSize),
		CatalogCacheTTL:  getEnvAsDuration("CATALOG_CACHE_TTL", DefaultCatalogCacheTTL),

		TrustedProxies:     getEnvAsList("TRUSTED_PROXIES"),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", DefaultCORSOrigins),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDatabase reads only the database settings. Tooling uses it so it can run without JWT_SECRET.
func LoadDatabase() *Config {
	_ = godotenv.Load()

	return &Config{
		DBUser:        getEnv("DB_USER", DefaultDBUser),
		DBPassword:    getEnv("DB_PASSWORD", DefaultDBPassword),
		DBHost:        getEnv("DB_HOST", DefaultDBHost),
		DBPort:        getEnv("DB_PORT", DefaultDBPort),
		DBName:        getEnv("DB_NAME", DefaultDBName),
		DBSSLMode:     getEnv("DB_SSLMODE", DefaultDBSSLMode),
		DBMaxConns:    getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdle:     getEnvAsDuration("DB_MAX_IDLE", DefaultDBMaxIdle),
		DBMaxLifetime: getEnvAsDuration("DB_MAX_LIFETIME", DefaultDBMaxLifetime),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTIssuer:     getEnv("JWT_ISSUER", ""),
	}
}

// Validate checks cross-field constraints after loading
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable must be set for security")
	}
	if c.CooldownMode != pack.CooldownModeReference && c.CooldownMode != pack.CooldownModeLocked {
		return fmt.Errorf("invalid COOLDOWN_MODE %q: expected %s or %s", c.CooldownMode, pack.CooldownModeReference, pack.CooldownModeLocked)
	}
	if c.StorageTimeout <= 0 {
		return fmt.Errorf("STORAGE_TIMEOUT must be positive, got %s", c.StorageTimeout)
	}
	if c.XPPerOpen < 0 {
		return fmt.Errorf("XP_PER_OPEN must not be negative, got %d", c.XPPerOpen)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	sslMode := c.DBSSLMode
	if sslMode == "" {
		sslMode = DefaultDBSSLMode
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		sslMode,
	)
}
