package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Catalog backends
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL PostgreSQLConfig
	Server     ServerConfig
	Catalog    CatalogConfig
	Chat       ChatConfig
	Logging    LoggingConfig
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // full connection string, preferred over the fields below
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
	StaticDir      string // chat widget assets, served at / when set
}

// CatalogConfig selects and tunes the property catalog
type CatalogConfig struct {
	Backend          string // postgres or memory
	SeedFile         string // YAML snapshot for the memory backend
	LocationCacheTTL time.Duration
}

// ChatConfig bounds the size of chatbot replies and browse pages
type ChatConfig struct {
	MaxListings     int
	SellResidential int
	SellCommercial  int
	Amenities       int
	NearbyPlaces    int
	LocationTypes   int
	PageSize        int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or text
	Color  bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("POSTGRESQL_URI", getEnv("PG_DSN", ""))),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "horizon_reality"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization,X-Requested-With"),
			StaticDir:      getEnv("STATIC_DIR", ""),
		},
		Catalog: CatalogConfig{
			Backend:          strings.ToLower(getEnv("CATALOG_BACKEND", BackendPostgres)),
			SeedFile:         getEnv("CATALOG_SEED_FILE", ""),
			LocationCacheTTL: time.Duration(getEnvAsFloat("CATALOG_LOCATION_CACHE_TTL_SECONDS", 300) * float64(time.Second)),
		},
		Chat: ChatConfig{
			MaxListings:     getEnvAsInt("CHAT_MAX_LISTINGS", 5),
			SellResidential: getEnvAsInt("CHAT_SELL_RESIDENTIAL", 3),
			SellCommercial:  getEnvAsInt("CHAT_SELL_COMMERCIAL", 2),
			Amenities:       getEnvAsInt("CHAT_AMENITIES", 10),
			NearbyPlaces:    getEnvAsInt("CHAT_NEARBY_PLACES", 10),
			LocationTypes:   getEnvAsInt("CHAT_LOCATION_TYPES", 5),
			PageSize:        getEnvAsInt("LISTING_PAGE_SIZE", 6),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
			Color:  getEnvAsBool("LOG_COLOR", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks option combinations that cannot work
func (c *Config) Validate() error {
	switch c.Catalog.Backend {
	case BackendPostgres:
	case BackendMemory:
		if c.Catalog.SeedFile == "" {
			return fmt.Errorf("CATALOG_SEED_FILE is required for the %s catalog backend", BackendMemory)
		}
	default:
		return fmt.Errorf("unknown catalog backend %q (want %s or %s)", c.Catalog.Backend, BackendPostgres, BackendMemory)
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format %q (want json or text)", c.Logging.Format)
	}

	if c.Chat.PageSize <= 0 {
		return fmt.Errorf("LISTING_PAGE_SIZE must be positive, got %d", c.Chat.PageSize)
	}
	return nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string. An empty password
// is left out, since lib/pq would read the next pair as its value.
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s", c.PostgreSQL.Host, c.PostgreSQL.Port, c.PostgreSQL.User)
	if c.PostgreSQL.Password != "" {
		dsn += " password=" + c.PostgreSQL.Password
	}
	return dsn + fmt.Sprintf(" dbname=%s sslmode=%s", c.PostgreSQL.Database, c.PostgreSQL.SSLMode)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}
