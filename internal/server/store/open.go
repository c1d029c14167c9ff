package store

import (
	"context"
	"fmt"

	"github.com/lucy1234dev/server/internal/server/config"
)

// Open builds the backend selected by cfg.StoreBackend. The returned close
// function releases its connections and is never nil.
func Open(ctx context.Context, cfg *config.Config) (Backend, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreBackend {
	case "", KindFile:
		b, err := NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, noop, err
		}
		return b, noop, nil

	case KindPostgres:
		db, err := OpenPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, noop, err
		}
		return NewSQLBackend(db), db.Close, nil

	case KindS3:
		client, err := NewS3Client(ctx, S3Settings{
			User:         cfg.S3RootUser,
			Password:     cfg.S3RootPassword,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("s3 client: %w", err)
		}
		return NewS3Backend(client, cfg.S3Bucket, cfg.S3Prefix), noop, nil

	case KindRedis:
		client, err := NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, noop, err
		}
		return NewRedisBackend(client, cfg.RedisKeyPrefix), client.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
