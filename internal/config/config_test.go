package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/vengeful")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 1000, cfg.MaxSyncBatch)
	assert.Equal(t, 30, cfg.DefaultPageSize)
	assert.Equal(t, 30*time.Second, cfg.OWTimeout)
	assert.Equal(t, "0 * * * *", cfg.SyncSchedule)
	assert.Equal(t, 300, cfg.MaxGroupMembers)
	assert.Empty(t, cfg.OWBaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/vengeful")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("MAX_SYNC_BATCH", "50")
	t.Setenv("OW_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 50, cfg.MaxSyncBatch)
	assert.Equal(t, 5*time.Second, cfg.OWTimeout)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadLimits(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/vengeful")
	t.Setenv("MAX_SYNC_BATCH", "0")

	_, err := Load()
	assert.Error(t, err)
}
