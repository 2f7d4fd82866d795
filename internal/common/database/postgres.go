// internal/common/database/postgres.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"inventory-assistant/internal/common/config"

	_ "github.com/lib/pq"
)

// PostgresClient wraps the connection pool of the store of record.
type PostgresClient struct {
	DB           *sql.DB
	queryTimeout time.Duration
}

// NewPostgres opens a lib/pq pool. It does not dial; use Ping.
func NewPostgres(cfg config.PostgresConfig) (*PostgresClient, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &PostgresClient{DB: db, queryTimeout: config.GetDuration(cfg.QueryTimeout)}, nil
}

// QueryTimeout bounds every inventory query.
func (c *PostgresClient) QueryTimeout() time.Duration {
	return c.queryTimeout
}

// Ping is bounded by the query timeout.
func (c *PostgresClient) Ping(ctx context.Context) error {
	if c.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.queryTimeout)
		defer cancel()
	}
	if err := c.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}
	return nil
}

func (c *PostgresClient) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
