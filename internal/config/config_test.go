package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"BOT_TOKEN", "DATABASE_PATH", "DATABASE_URL", "HTTP_ADDR", "START_BALANCE", "DEFAULT_BET", "DEBUG"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./blackjack.db", cfg.DatabasePath)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 1000, cfg.StartBalance)
	assert.Equal(t, 100, cfg.DefaultBet)
	assert.False(t, cfg.Debug)
	assert.Error(t, cfg.RequireBotToken())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "postgres://localhost/dealer")
	t.Setenv("START_BALANCE", "500")
	t.Setenv("DEFAULT_BET", "25")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/dealer", cfg.DatabaseURL)
	assert.Equal(t, 500, cfg.StartBalance)
	assert.Equal(t, 25, cfg.DefaultBet)
	assert.True(t, cfg.Debug)
	assert.NoError(t, cfg.RequireBotToken())
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	for _, tc := range []struct{ key, value string }{
		{"START_BALANCE", "lots"},
		{"START_BALANCE", "0"},
		{"DEFAULT_BET", "-5"},
		{"DEBUG", "maybe"},
	} {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Chdir(t.TempDir())
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
