package registry

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/strkit/pkg/pg"
)

// PostgresConn is the subset of pgx connections and pools used by Postgres.
type PostgresConn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Postgres keeps names in a column of a table. The column should carry a
// unique constraint; pg.Migrate creates a suitable table.
type Postgres struct {
	conn        PostgresConn
	existsQuery string
	insertQuery string
}

// NewPostgres returns a registry backed by column of table. A table name
// may be schema qualified ("public.strkit_names"); both names are quoted.
func NewPostgres(conn PostgresConn, table, column string) *Postgres {
	tbl := pgx.Identifier(strings.Split(table, ".")).Sanitize()
	col := pgx.Identifier{column}.Sanitize()
	return &Postgres{
		conn:        conn,
		existsQuery: "SELECT EXISTS (SELECT 1 FROM " + tbl + " WHERE " + col + " = $1)",
		insertQuery: "INSERT INTO " + tbl + " (" + col + ") VALUES ($1)",
	}
}

// Contains reports whether a row holds name.
func (p *Postgres) Contains(ctx context.Context, name string) (bool, error) {
	var exists bool
	if err := p.conn.QueryRow(ctx, p.existsQuery, name).Scan(&exists); err != nil {
		return false, wrapPostgres(ErrLookup, err)
	}
	return exists, nil
}

// Add inserts a row per name. Names already present are left alone.
func (p *Postgres) Add(ctx context.Context, names ...string) error {
	for _, n := range names {
		if _, err := p.conn.Exec(ctx, p.insertQuery, n); err != nil && !pg.IsDuplicateKeyError(err) {
			return wrapPostgres(ErrClaim, err)
		}
	}
	return nil
}

func wrapPostgres(sentinel, err error) error {
	if pg.IsUndefinedTableError(err) {
		return errors.Join(sentinel, ErrSchemaMissing, err)
	}
	return errors.Join(sentinel, err)
}
