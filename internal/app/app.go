// Package app wires configuration into the running components shared by
// the API server and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/panjf2000/ants/v2"

	"clinic-faq/internal/cache"
	"clinic-faq/internal/config"
	"clinic-faq/internal/match"
	"clinic-faq/internal/service"
	"clinic-faq/internal/storage"
)

const memoryCacheSize = 1000

// App holds the components built from a Config.
type App struct {
	DB         *storage.DB
	Store      storage.FAQStore
	Cache      cache.Client // nil when caching is off
	FAQService service.FAQService
	AskService service.AskService

	pool *ants.Pool
}

// NewLogger builds the process logger for the configured level and format.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// New opens the store, runs migrations and builds the services.
// The caller must Close the returned App.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("Database initialized", "driver", cfg.DBDriver)

	a := &App{
		DB:    db,
		Store: storage.NewFAQRepo(db),
	}

	if a.Cache, err = newCache(ctx, cfg, logger); err != nil {
		_ = a.Close()
		return nil, err
	}

	opts := []match.Option{
		match.WithConfig(cfg.Match),
		match.WithLogger(logger),
	}
	if cfg.ScoringWorkers > 0 {
		if a.pool, err = ants.NewPool(cfg.ScoringWorkers); err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("failed to create scoring pool: %w", err)
		}
		opts = append(opts, match.WithWorkerPool(a.pool))
		logger.Info("Scoring worker pool started", "workers", cfg.ScoringWorkers)
	}

	a.FAQService = service.NewFAQService(a.Store, a.Cache)
	engine, err := match.NewEngine(a.FAQService, opts...)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to create match engine: %w", err)
	}
	a.AskService = service.NewAskService(engine, a.FAQService, a.Cache, cfg.CacheTTL)

	return a, nil
}

// InvalidateAnswers drops every cached ask response. It is a no-op without a cache.
// Entries of older generations are never read again, so this only reclaims space.
func (a *App) InvalidateAnswers(ctx context.Context) error {
	if a.Cache == nil {
		return nil
	}
	return a.Cache.DeleteByPrefix(ctx, cache.AskPrefix)
}

// Close releases the pool, cache and database.
func (a *App) Close() error {
	if a.pool != nil {
		a.pool.Release()
	}
	var errs []error
	if a.Cache != nil {
		errs = append(errs, a.Cache.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

// newCache picks Redis when an address is configured, otherwise the
// in-process cache, or none when caching is off.
func newCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (cache.Client, error) {
	if !cfg.CacheConfigured() {
		return nil, nil
	}
	if cfg.RedisAddr == "" {
		logger.Info("Ask cache enabled", "backend", "memory", "ttl", cfg.CacheTTL)
		return cache.NewMemoryClient(memoryCacheSize), nil
	}

	c, err := cache.NewRedisClient(ctx, cache.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
		Prefix:   cfg.RedisPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info("Ask cache enabled", "backend", "redis", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	return c, nil
}
