package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// Server
	Port        string   `envconfig:"PORT" default:"8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	Env         string   `envconfig:"ENV" default:"development"`

	// Upstream OW roster. Sync is disabled when no base URL is set.
	OWBaseURL    string        `envconfig:"OW_BASE_URL" default:""`
	OWTimeout    time.Duration `envconfig:"OW_TIMEOUT" default:"30s"`
	SyncSchedule string        `envconfig:"SYNC_SCHEDULE" default:"0 * * * *"`

	// Pagination and batch limits
	MaxSyncBatch    int `envconfig:"MAX_SYNC_BATCH" default:"1000"`
	DefaultPageSize int `envconfig:"DEFAULT_PAGE_SIZE" default:"30"`

	// Rate limiting
	RateLimitRequests int `envconfig:"RATE_LIMIT_REQUESTS" default:"100"`
	RateLimitBurst    int `envconfig:"RATE_LIMIT_BURST" default:"10"`

	// Group tunables
	MaxPunishmentTypes           int `envconfig:"MAX_PUNISHMENT_TYPES" default:"10"`
	MaxGroupsPerUser             int `envconfig:"MAX_GROUPS_PER_USER" default:"20"`
	MaxActivePunishmentsPerGroup int `envconfig:"MAX_ACTIVE_PUNISHMENTS_PER_GROUP" default:"1000"`
	MaxGroupMembers              int `envconfig:"MAX_GROUP_MEMBERS" default:"300"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.MaxSyncBatch <= 0 {
		return fmt.Errorf("MAX_SYNC_BATCH must be > 0")
	}
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be > 0")
	}
	if c.OWTimeout <= 0 {
		return fmt.Errorf("OW_TIMEOUT must be > 0")
	}
	return nil
}
