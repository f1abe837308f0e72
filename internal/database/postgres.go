// Package database owns the lifecycle of the single shared connection pool.
// The pool is created once at process start and handed to repositories by
// injection; there is no module-level handle.
package database

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/logger"
)

const connectTimeout = 10 * time.Second

// NewPool parses the connection string, builds the pgx pool and verifies it
// with a ping. Failures are classified so operators can tell bad credentials
// from an unreachable server, both being common misconfigurations.
func NewPool(ctx context.Context, uri string, log *logger.Logger) (*pgxpool.Pool, error) {
	if uri == "" {
		return nil, custom_errors.ErrMissingConfig
	}

	poolConfig, err := pgxpool.ParseConfig(uri)
	if err != nil {
		log.Error("Failed to parse database connection string", slog.String("error", err.Error()))
		return nil, custom_errors.ErrMissingConfig
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		return nil, classify(err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Error("Failed to ping postgres", slog.String("error", err.Error()))
		return nil, classify(err)
	}

	log.Info("Connected to postgres")
	return pool, nil
}

// classify maps SQLSTATE class 28 (invalid authorization) onto the credential
// failure sentinel; everything else is treated as a connectivity problem.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "28" {
			return custom_errors.ErrDatabaseAuthFailed
		}
	}
	return custom_errors.ErrDatabaseUnavailable
}
