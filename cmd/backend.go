package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"skillswap/exchange-service/internal/cache"
	"skillswap/exchange-service/internal/config"
	"skillswap/exchange-service/internal/logging"
	"skillswap/exchange-service/internal/storage"
)

func loadConfig() (*config.Config, *logrus.Logger, error) {
	// .env is optional; values already in the environment win.
	_ = godotenv.Load()

	var paths []string
	if configDir != "" {
		paths = append(paths, configDir)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, logging.New(cfg.Logging), nil
}

// backend is the document store the repositories read from, with the read cache in
// front of it when one is configured.
type backend struct {
	store    storage.Store
	postgres *storage.PostgresStore
	cache    cache.Cache
}

func openBackend(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*backend, error) {
	b := &backend{}

	switch cfg.Storage.Driver {
	case "postgres":
		pg, err := storage.OpenPostgresStore(ctx, postgresConfig(cfg))
		if err != nil {
			return nil, err
		}
		if err := pg.InitializeTables(ctx); err != nil {
			pg.Close()
			return nil, fmt.Errorf("initialize tables: %w", err)
		}
		logger.Info("Connected to PostgreSQL database")
		b.store, b.postgres = pg, pg
	case "bolt":
		bs, err := storage.OpenBoltStore(cfg.Storage.BoltPath)
		if err != nil {
			return nil, err
		}
		logger.WithField("path", cfg.Storage.BoltPath).Info("Opened bolt store")
		b.store = bs
	default:
		logger.Warn("Using in-memory store: data is lost on restart")
		b.store = storage.NewMemoryStore()
	}

	switch cfg.Cache.Driver {
	case "redis":
		r, err := cache.NewRedis(cfg.Cache.RedisURL, "exchange:")
		if err != nil {
			b.store.Close()
			return nil, err
		}
		b.cache = r
	case "memory":
		l, err := cache.NewLRU(cfg.Cache.Size)
		if err != nil {
			b.store.Close()
			return nil, err
		}
		b.cache = l
	}
	if b.cache != nil {
		b.store = storage.NewCachedStore(b.store, b.cache, cfg.Cache.TTL, storage.ReadMostly, logger)
		logger.WithField("driver", cfg.Cache.Driver).Info("Catalog cache enabled")
	}

	return b, nil
}

func (b *backend) Ready(ctx context.Context) error {
	if b.postgres != nil {
		if err := b.postgres.Ping(ctx); err != nil {
			return err
		}
	}
	if b.cache != nil {
		return b.cache.Ping(ctx)
	}
	return nil
}

func (b *backend) Close() error {
	return b.store.Close()
}

func postgresConfig(cfg *config.Config) storage.PostgresConfig {
	return storage.PostgresConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	}
}
