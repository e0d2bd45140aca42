package db

import (
	"context"
	"fmt"
	"log/slog"

	"portfolio-backend/internal/blob"
	"portfolio-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

// OpenStore builds the blob store selected by cfg.StorageBackend. The returned
// close func releases the underlying connection and is never nil.
func OpenStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (blob.Store, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case config.BackendFile:
		store, err := blob.NewFile(cfg.DataDir)
		if err != nil {
			return nil, noop, err
		}
		log.Info("storage: file", slog.String("dir", cfg.DataDir))
		return store, noop, nil

	case config.BackendMemory:
		log.Warn("storage: memory, data is lost on exit")
		return blob.NewMemory(), noop, nil

	case config.BackendSQLite:
		conn, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("sqlite open: %w", err)
		}
		store := blob.NewSQL(conn, blob.DialectSQLite)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = conn.Close()
			return nil, noop, fmt.Errorf("sqlite schema: %w", err)
		}
		log.Info("storage: sqlite", slog.String("path", cfg.SQLitePath))
		return store, func() { _ = conn.Close() }, nil

	case config.BackendPostgres:
		conn, err := OpenPostgres(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, noop, fmt.Errorf("postgres open: %w", err)
		}
		store := blob.NewSQL(conn, blob.DialectPostgres)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = conn.Close()
			return nil, noop, fmt.Errorf("postgres schema: %w", err)
		}
		log.Info("storage: postgres")
		return store, func() { _ = conn.Close() }, nil

	case config.BackendMongo:
		client, cols, err := Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, noop, fmt.Errorf("mongo connect: %w", err)
		}
		log.Info("storage: mongo", slog.String("db", cfg.MongoDB))
		return blob.NewMongo(cols.Documents), func() { _ = client.Disconnect(context.Background()) }, nil

	case config.BackendRedis:
		client, err := NewRedisClient(cfg)
		if err != nil {
			return nil, noop, err
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("redis ping: %w", err)
		}
		log.Info("storage: redis")
		return blob.NewRedis(client, "portfolio:"), func() { _ = client.Close() }, nil
	}

	return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

// NewRedisClient prefers REDIS_URL and falls back to REDIS_ADDR.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("redis not configured")
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}), nil
}
