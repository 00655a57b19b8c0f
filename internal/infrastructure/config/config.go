package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration.
type Config struct {
	Game     GameConfig
	Storage  StorageConfig
	Logging  LogConfig
	Debug    DebugConfig
	Platform PlatformConfig
}

// GameConfig holds frame loop and content settings.
type GameConfig struct {
	FrameRate        int           `envconfig:"FRAME_RATE" default:"60"`
	DataDir          string        `envconfig:"GAME_DATA_DIR" default:"data"`
	InitialScene     string        `envconfig:"INITIAL_SCENE" default:"Initial"`
	AutosaveInterval time.Duration `envconfig:"AUTOSAVE_INTERVAL" default:"0s"`
	SaveOnExit       bool          `envconfig:"SAVE_ON_EXIT" default:"true"`
}

// StorageConfig holds the durable save slot settings.
type StorageConfig struct {
	Backend     string `envconfig:"SAVE_BACKEND" default:"file"`
	Path        string `envconfig:"SAVE_PATH" default:".save"`
	Codec       string `envconfig:"SAVE_CODEC" default:"json"`
	RedisAddr   string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPrefix string `envconfig:"REDIS_PREFIX" default:"skullgate:"`
	Breaker     bool   `envconfig:"STORAGE_BREAKER" default:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// DebugConfig holds the optional debug HTTP surface settings.
type DebugConfig struct {
	Addr         string   `envconfig:"DEBUG_ADDR" default:""`
	AllowOrigins []string `envconfig:"DEBUG_ALLOW_ORIGINS" default:"http://localhost:3000"`
	SaveRate     int      `envconfig:"DEBUG_SAVE_RATE" default:"1"`
	SaveBurst    int      `envconfig:"DEBUG_SAVE_BURST" default:"2"`
}

// PlatformConfig holds store and ads platform settings.
type PlatformConfig struct {
	IAPEnvironment string        `envconfig:"IAP_ENVIRONMENT" default:"production"`
	AdsGameID      string        `envconfig:"ADS_GAME_ID" default:"offline"`
	Latency        time.Duration `envconfig:"PLATFORM_LATENCY" default:"250ms"`
}

// Load loads configuration from environment variables.
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

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			FrameRate:    60,
			DataDir:      "data",
			InitialScene: "Initial",
			SaveOnExit:   true,
		},
		Storage: StorageConfig{
			Backend:     "file",
			Path:        ".save",
			Codec:       "json",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "skullgate:",
			Breaker:     true,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Debug: DebugConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			SaveRate:     1,
			SaveBurst:    2,
		},
		Platform: PlatformConfig{
			IAPEnvironment: "production",
			AdsGameID:      "offline",
			Latency:        250 * time.Millisecond,
		},
	}
}

// Validate rejects settings the runtime cannot start with.
func (c *Config) Validate() error {
	if c.Game.FrameRate <= 0 {
		return fmt.Errorf("invalid frame rate %d", c.Game.FrameRate)
	}
	if c.Game.AutosaveInterval < 0 {
		return fmt.Errorf("invalid autosave interval %s", c.Game.AutosaveInterval)
	}
	switch c.Storage.Backend {
	case "file", "sqlite", "redis", "memory":
	default:
		return fmt.Errorf("unknown save backend %q", c.Storage.Backend)
	}
	switch c.Storage.Codec {
	case "json", "yaml":
	default:
		return fmt.Errorf("unknown save codec %q", c.Storage.Codec)
	}
	return nil
}

// FrameDuration returns the target duration of one frame.
func (g GameConfig) FrameDuration() time.Duration {
	return time.Second / time.Duration(g.FrameRate)
}
