package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Matthew11K/wb-sales-bot/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := config.LoadConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, config.FileStorage, cfg.ShopsStorageType)
	assert.Equal(t, "config.json", cfg.ShopsFilePath)
	assert.Equal(t, config.MemorySessions, cfg.SessionStorage)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 0, cfg.RetryCount)
	assert.Equal(t, "https://common-api.wildberries.ru/ping", cfg.MarketplacePingURL)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SHOPS_STORAGE_TYPE", "SQL")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("BOT_WORKERS", "8")

	cfg := config.LoadConfig()

	assert.Equal(t, config.SQLStorage, cfg.ShopsStorageType)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 8, cfg.BotWorkers)
}

func TestConfig_Location(t *testing.T) {
	cfg := &config.Config{ReportTimezone: "Nowhere/Invalid"}
	assert.Equal(t, time.UTC, cfg.Location())

	cfg = &config.Config{}
	assert.Equal(t, time.UTC, cfg.Location())
}
