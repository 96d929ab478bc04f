package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/number-game/internal/models"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "LOG_FILE", "RULES_FILE", "SEED", "DAILY", "DAILY_SALT", "ADDR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":5175", cfg.Addr)
	assert.Equal(t, "local_dev_salt", cfg.DailySalt)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.Daily)
	assert.Equal(t, models.DefaultRules(), cfg.Rules)
}

func TestLoadConfigFromEnv(t *testing.T) {
	rulesPath := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(rulesPath, []byte("secret_min: 10\nsecret_max: 99\n"), 0644))

	t.Setenv("SEED", "12345")
	t.Setenv("DAILY", "true")
	t.Setenv("RULES_FILE", rulesPath)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), cfg.Seed)
	assert.True(t, cfg.Daily)
	assert.Equal(t, 10, cfg.Rules.SecretMin)
	assert.Equal(t, 99, cfg.Rules.SecretMax)
}

func TestLoadConfigBadValues(t *testing.T) {
	t.Setenv("SEED", "not-a-number")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigBadRulesFile(t *testing.T) {
	t.Setenv("RULES_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	cfg := &Config{LogLevel: "debug"}
	logger, closeFn, err := cfg.Logger(true)
	require.NoError(t, err)
	defer closeFn()
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())

	logPath := filepath.Join(t.TempDir(), "game.log")
	cfg = &Config{LogLevel: "info", LogFile: logPath}
	logger, closeFile, err := cfg.Logger(true)
	require.NoError(t, err)
	logger.Info().Msg("hello")
	closeFile()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)

	cfg = &Config{LogLevel: "loud"}
	_, _, err = cfg.Logger(false)
	assert.Error(t, err)
}
