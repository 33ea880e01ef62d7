package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Sync    SyncConfig
	HTTP    HTTPConfig
	Log     LogConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// Enabled reports whether the bot should connect
func (c DiscordConfig) Enabled() bool {
	return c.Token != ""
}

// RedisConfig selects the Redis character store when URL is set
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// SyncConfig configures the remote character sync endpoint
type SyncConfig struct {
	BaseURL string        `env:"SYNC_BASE_URL" envDefault:"https://recruiting.verylongdomaintotestwith.ca/api"`
	Timeout time.Duration `env:"SYNC_TIMEOUT"  envDefault:"10s"`
}

// DefaultHTTPAddr is used when HTTP_ADDR is not set at all
const DefaultHTTPAddr = ":8080"

// HTTPConfig configures the JSON API. HTTP_ADDR set to an empty string
// disables it, so the default is applied by Parse rather than envDefault.
type HTTPConfig struct {
	Addr string `env:"HTTP_ADDR"`
}

// Enabled reports whether the API should listen
func (c HTTPConfig) Enabled() bool {
	return c.Addr != ""
}

type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"LOG_DEV"   envDefault:"false"`
}

// Load reads an optional .env file and then parses the environment
func Load() (*Config, error) {
	// A missing .env is fine, real environment variables still apply
	_ = godotenv.Load()

	return Parse()
}

// Parse builds the config from the current environment and validates it
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, ok := os.LookupEnv("HTTP_ADDR"); !ok {
		cfg.HTTP.Addr = DefaultHTTPAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field requirements
func (c *Config) Validate() error {
	if !c.Discord.Enabled() && !c.HTTP.Enabled() {
		return fmt.Errorf("nothing to serve: set DISCORD_TOKEN or HTTP_ADDR")
	}
	if c.Discord.Enabled() && c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required when DISCORD_TOKEN is set")
	}
	if c.Redis.URL == "" && c.Sync.BaseURL == "" {
		return fmt.Errorf("SYNC_BASE_URL is required when REDIS_URL is not set")
	}
	if c.Sync.Timeout <= 0 {
		return fmt.Errorf("SYNC_TIMEOUT must be positive, got %s", c.Sync.Timeout)
	}
	return nil
}
