package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Storage backends
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config holds all bot configuration loaded from environment variables
type Config struct {
	Discord DiscordConfig
	Stats   StatsConfig
	Storage StorageConfig
}

// DiscordConfig holds Discord identities and credentials
type DiscordConfig struct {
	// Token is the bot token
	Token string `envconfig:"DISCORD_TOKEN" required:"true"`

	// PrivilegedUserID may run admin commands
	PrivilegedUserID string `envconfig:"PRIVILEGED_USER_ID" required:"true"`

	// WebhookUserID is the author ID of webhook report messages
	WebhookUserID string `envconfig:"WEBHOOK_USER_ID" required:"true"`

	// StatsChannelID is the channel reports are posted to
	StatsChannelID string `envconfig:"STATS_CHANNEL_ID" required:"true"`
}

// StatsConfig holds stat tracking settings
type StatsConfig struct {
	// GameIDLength is the exact length of a linkable game ID
	GameIDLength int `envconfig:"GAME_ID_LENGTH" default:"32"`

	// HistoryWindow is how many recent messages are scanned for stale reports
	HistoryWindow int `envconfig:"HISTORY_WINDOW" default:"100"`
}

// StorageConfig holds persistence settings
type StorageConfig struct {
	Backend string        `envconfig:"STORAGE_BACKEND" default:"file"`
	Dir     string        `envconfig:"STORAGE_DIR" default:"./data"`
	Timeout time.Duration `envconfig:"STORAGE_TIMEOUT" default:"5s"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Load reads an optional .env file and then the environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values envconfig cannot
func (c *Config) Validate() error {
	for name, value := range map[string]string{
		"DISCORD_TOKEN":      c.Discord.Token,
		"PRIVILEGED_USER_ID": c.Discord.PrivilegedUserID,
		"WEBHOOK_USER_ID":    c.Discord.WebhookUserID,
		"STATS_CHANNEL_ID":   c.Discord.StatsChannelID,
	} {
		if value == "" {
			return fmt.Errorf("%s cannot be empty", name)
		}
	}
	if c.Stats.GameIDLength <= 0 {
		return errors.New("GAME_ID_LENGTH must be positive")
	}
	if c.Stats.HistoryWindow < 0 || c.Stats.HistoryWindow > 100 {
		return errors.New("HISTORY_WINDOW must be between 0 and 100")
	}
	if c.Storage.Timeout <= 0 {
		return errors.New("STORAGE_TIMEOUT must be positive")
	}

	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.Dir == "" {
			return errors.New("STORAGE_DIR cannot be empty")
		}
	case BackendRedis:
		if c.Storage.RedisAddr == "" {
			return errors.New("REDIS_ADDR cannot be empty")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	return nil
}
