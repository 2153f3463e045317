// Package postgres provides shared pgx plumbing for the Postgres adapters.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	UniqueViolationCode     = "23505"
	ForeignKeyViolationCode = "23503"
)

// Schema is the DDL for the pairing history archive. The tool applies it
// out of band (see testutil for tests); there is no migration framework
// for a two-table schema.
const Schema = `
CREATE TABLE IF NOT EXISTS pairing_rounds (
    id         uuid PRIMARY KEY,
    label      text NOT NULL,
    seed       bigint,
    created_at timestamptz NOT NULL,
    CONSTRAINT pairing_rounds_label_unique UNIQUE (label)
);

CREATE TABLE IF NOT EXISTS pairing_pairs (
    round_id uuid NOT NULL REFERENCES pairing_rounds (id) ON DELETE CASCADE,
    position integer NOT NULL,
    name_a   text NOT NULL,
    name_b   text NOT NULL,
    PRIMARY KEY (round_id, position)
);
`

type PoolOptions struct {
	MaxConns int32
}

// NewPool opens and pings a pgx pool for the given DSN.
func NewPool(ctx context.Context, dsn string, opts PoolOptions) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("empty postgres DSN")
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// AsPgError unwraps err into a *pgconn.PgError when possible.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
