package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/KirkDiggler/dnd-character-sheet/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DISCORD_TOKEN", "DISCORD_APP_ID", "DISCORD_GUILD_ID", "REDIS_URL",
		"SYNC_BASE_URL", "SYNC_TIMEOUT", "HTTP_ADDR", "LOG_LEVEL", "LOG_DEV",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestParse_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.False(t, cfg.Discord.Enabled())
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "https://recruiting.verylongdomaintotestwith.ca/api", cfg.Sync.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Sync.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
}

func TestParse_DiscordAndRedis(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")
	t.Setenv("DISCORD_GUILD_ID", "guild")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SYNC_TIMEOUT", "3s")
	t.Setenv("LOG_DEV", "true")
	t.Setenv("HTTP_ADDR", "")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.True(t, cfg.Discord.Enabled())
	assert.False(t, cfg.HTTP.Enabled())
	assert.Equal(t, "guild", cfg.Discord.GuildID)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 3*time.Second, cfg.Sync.Timeout)
	assert.True(t, cfg.Log.Development)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			HTTP: config.HTTPConfig{Addr: ":8080"},
			Sync: config.SyncConfig{BaseURL: "http://sync", Timeout: time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{
			name:    "no surface",
			mutate:  func(c *config.Config) { c.HTTP.Addr = "" },
			wantErr: "nothing to serve",
		},
		{
			name:    "token without app id",
			mutate:  func(c *config.Config) { c.Discord.Token = "token" },
			wantErr: "DISCORD_APP_ID",
		},
		{
			name:    "no store",
			mutate:  func(c *config.Config) { c.Sync.BaseURL = "" },
			wantErr: "SYNC_BASE_URL",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *config.Config) { c.Sync.Timeout = 0 },
			wantErr: "SYNC_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
