package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/newthinker/tacall/internal/config"
	"github.com/newthinker/tacall/internal/logger"
	"github.com/newthinker/tacall/internal/metrics"
	"github.com/newthinker/tacall/internal/native"
	"github.com/newthinker/tacall/internal/storage/archive"
	"github.com/newthinker/tacall/internal/ta"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "tacall",
	Short: "tacall - technical analysis function caller",
	Long: `tacall computes TA-Lib technical analysis functions over numeric series.
It runs them from the command line or serves them over HTTP, on the pure-Go
backend or on the native library when built with -tags talib_cgo.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads --config, or the defaults when none is given. A .env
// file in the working directory is loaded first so the config can expand
// its variables.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg := config.Defaults()
	if cfgFile != "" {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}
	if debug {
		cfg.Log.Level = "debug"
		cfg.Log.Format = "console"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Log.Level == "" {
		return logger.New(debug)
	}
	return logger.NewWithLevel(cfg.Log.Level, cfg.Log.Format)
}

// newAdapter builds the configured backend and installs it as the
// process-wide default. reg may be nil.
func newAdapter(cfg *config.Config, log *zap.Logger, reg *metrics.Registry) (*ta.Adapter, error) {
	lib, err := ta.NewBackend(cfg.Engine.Backend, log)
	if err != nil {
		return nil, err
	}
	mode, err := native.ParseMode(cfg.Engine.Lifecycle)
	if err != nil {
		return nil, err
	}

	opts := []ta.Option{
		ta.WithLogger(log),
		ta.WithLifecycle(mode),
		ta.WithWorkers(cfg.Engine.Workers),
	}
	if reg != nil {
		opts = append(opts, ta.WithRecorder(reg))
	}
	a := ta.New(lib, opts...)
	if prev := ta.SetDefault(a); prev != nil {
		prev.Close()
	}

	log.Debug("engine ready",
		zap.String("backend", a.Backend()),
		zap.String("lifecycle", string(mode)),
		zap.Int("workers", cfg.Engine.Workers),
	)
	return a, nil
}

func closeResults(store *archive.ResultStore, log *zap.Logger) {
	if err := store.Close(); err != nil {
		log.Warn("closing result archive", zap.Error(err))
	}
}

// newResultStore opens the configured archive, or returns nil when
// archiving is disabled.
func newResultStore(cfg *config.Config, log *zap.Logger) (*archive.ResultStore, error) {
	if !cfg.Archive.Enabled {
		return nil, nil
	}

	var storage archive.Storage
	switch cfg.Archive.Type {
	case "s3":
		s3cfg := cfg.Archive.S3
		s, err := archive.NewS3(archive.S3Config{
			Bucket:    s3cfg.Bucket,
			Endpoint:  s3cfg.Endpoint,
			Region:    s3cfg.Region,
			AccessKey: s3cfg.AccessKey,
			SecretKey: s3cfg.SecretKey,
			Prefix:    s3cfg.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("creating s3 archive: %w", err)
		}
		storage = s
	case "sqlite":
		s, err := archive.NewSQLite(cfg.Archive.Path)
		if err != nil {
			return nil, fmt.Errorf("creating sqlite archive: %w", err)
		}
		storage = s
	case "redis":
		rcfg := cfg.Archive.Redis
		storage = archive.NewRedis(archive.RedisConfig{
			Addr:     rcfg.Addr,
			Password: rcfg.Password,
			DB:       rcfg.DB,
			Prefix:   rcfg.Prefix,
		})
	default:
		s, err := archive.NewLocalFS(cfg.Archive.Path)
		if err != nil {
			return nil, fmt.Errorf("creating local archive: %w", err)
		}
		storage = s
	}

	log.Info("result archive enabled", zap.String("type", cfg.Archive.Type))
	return archive.NewResultStore(storage, log), nil
}
