package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/store"
)

// buildConfig layers configuration sources: config file values over
// environment values over built-in defaults.
func buildConfig() (config.Config, error) {
	cfg := config.FromEnv()

	if configFile != "" {
		fileCfg, err := config.LoadConfig(configFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildLogger creates the application logger from the configuration.
func buildLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.JSONLogs, cfg.Verbose)
}

// buildStore opens the configured persistence backend: PostgreSQL when a
// database URL is set, the JSON directory store otherwise.
func buildStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, err
		}
		return database, nil
	}
	return store.NewDir(cfg.DataDir)
}

// buildParser assembles the parsing pipeline. With an API key configured the
// model-based extraction path is enabled, otherwise parsing is rule-based.
func buildParser(ctx context.Context, cfg config.Config, log *zap.Logger) (*pipeline.Parser, error) {
	opts := pipeline.Options{Logger: log}

	if cfg.APIKey != "" {
		modelCfg := llm.DefaultGeminiConfig()
		if cfg.Model != "" {
			modelCfg = modelCfg.WithModel(llm.TierStandard, cfg.Model)
		}
		client, err := llm.NewClient(ctx, modelCfg, cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create model client: %w", err)
		}
		opts.Client = client
	}

	return pipeline.New(opts), nil
}
