package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Supported chat platforms.
const (
	PlatformDiscord = "discord"
	PlatformSlack   = "slack"
)

type Config struct {
	Platform           string        `envconfig:"PLATFORM" default:"discord"`
	DiscordToken       string        `envconfig:"DISCORD_TOKEN"`
	SlackBotToken      string        `envconfig:"SLACK_BOT_TOKEN"`
	SlackSigningSecret string        `envconfig:"SLACK_SIGNING_SECRET"`
	DatabasePath       string        `envconfig:"DATABASE_PATH" default:"./reminders.db"`
	Port               string        `envconfig:"PORT" default:"3000"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info"`
	SweepInterval      time.Duration `envconfig:"SWEEP_INTERVAL" default:"5s"`
	DMRatePerSecond    float64       `envconfig:"DM_RATE_PER_SECOND" default:"5"`
}

// Load reads environment variables into Config and validates them.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Platform {
	case PlatformDiscord:
		if c.DiscordToken == "" {
			return fmt.Errorf("DISCORD_TOKEN is required when PLATFORM=%s", PlatformDiscord)
		}
	case PlatformSlack:
		if c.SlackBotToken == "" || c.SlackSigningSecret == "" {
			return fmt.Errorf("SLACK_BOT_TOKEN and SLACK_SIGNING_SECRET are required when PLATFORM=%s", PlatformSlack)
		}
	default:
		return fmt.Errorf("unsupported PLATFORM %q", c.Platform)
	}

	if c.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be positive")
	}
	if c.DMRatePerSecond < 0 {
		return fmt.Errorf("DM_RATE_PER_SECOND must not be negative")
	}
	return nil
}
