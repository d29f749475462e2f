package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/newthinker/tacall/internal/core"
	"github.com/spf13/viper"
)

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Server  ServerConfig  `mapstructure:"server"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Archive ArchiveConfig `mapstructure:"archive"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

// EngineConfig selects the computation backend and its lifecycle.
type EngineConfig struct {
	Backend   string `mapstructure:"backend"`   // "gotalib" or "native"
	Lifecycle string `mapstructure:"lifecycle"` // "pinned" or "refcount"
	Workers   int    `mapstructure:"workers"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	APIKey       string        `mapstructure:"api_key"` // empty disables auth
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
	RateLimit    float64       `mapstructure:"rate_limit"` // requests per second, 0 disables
	RateBurst    int           `mapstructure:"rate_burst"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// ArchiveConfig selects where computed results are persisted.
type ArchiveConfig struct {
	Enabled bool        `mapstructure:"enabled"`
	Type    string      `mapstructure:"type"`  // "localfs", "sqlite", "s3" or "redis"
	Path    string      `mapstructure:"path"`  // Directory for localfs, database file for sqlite
	S3      S3Config    `mapstructure:"s3"`    // For S3
	Redis   RedisConfig `mapstructure:"redis"` // For Redis
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Load reads configuration from file. Keys missing from the file keep
// their Defaults value.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Support environment variable overrides
	v.SetEnvPrefix("TACALL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Engine: EngineConfig{
			Backend:   "gotalib",
			Lifecycle: "pinned",
			Workers:   4,
		},
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			MaxBodyBytes: 32 << 20,
			RateBurst:    20,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Archive: ArchiveConfig{
			Type: "localfs",
			Path: "./data/archive",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("port must be between 1 and 65535, got %d", c.Server.Port))
	}

	if c.Server.RateLimit < 0 || c.Server.RateBurst < 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("rate limit and burst cannot be negative"))
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("unknown log level %q", c.Log.Level))
	}

	// Engine validation
	switch c.Engine.Backend {
	case "", "gotalib", "native":
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("engine backend must be gotalib or native, got %q", c.Engine.Backend))
	}
	switch c.Engine.Lifecycle {
	case "", "pinned", "refcount":
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("engine lifecycle must be pinned or refcount, got %q", c.Engine.Lifecycle))
	}
	if c.Engine.Workers < 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("engine workers cannot be negative, got %d", c.Engine.Workers))
	}

	// Archive validation - only checked when enabled
	if c.Archive.Enabled {
		switch c.Archive.Type {
		case "localfs", "sqlite":
			if c.Archive.Path == "" {
				return core.WrapError(core.ErrConfigMissing,
					fmt.Errorf("archive path required when type is %s", c.Archive.Type))
			}
		case "s3":
			if c.Archive.S3.Bucket == "" {
				return core.WrapError(core.ErrConfigMissing,
					fmt.Errorf("archive s3 bucket required when type is s3"))
			}
		case "redis":
			if c.Archive.Redis.Addr == "" {
				return core.WrapError(core.ErrConfigMissing,
					fmt.Errorf("archive redis addr required when type is redis"))
			}
		default:
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("archive type must be localfs, sqlite, s3 or redis, got %q", c.Archive.Type))
		}
	}

	return nil
}
