// Package repository handles all interactions with the database.
//
// It contains the raw SQL queries. Every method runs exactly one
// statement on a connection supplied by the caller and returns the
// storage outcome unchanged apart from wrapping; deciding what an
// error means for the client is left to the caller.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is a live database handle: *pgxpool.Conn, *pgxpool.Pool, *pgx.Conn
// and pgx.Tx all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
