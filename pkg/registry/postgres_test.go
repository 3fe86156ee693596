package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strkit/pkg/registry"
)

type fakeRow struct {
	exists bool
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*bool) = r.exists
	return nil
}

type fakePostgres struct {
	rows    map[string]struct{}
	queries []string
	err     error
}

func newFakePostgres(names ...string) *fakePostgres {
	f := &fakePostgres{rows: make(map[string]struct{})}
	for _, n := range names {
		f.rows[n] = struct{}{}
	}
	return f
}

func (f *fakePostgres) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.queries = append(f.queries, sql)
	if f.err != nil {
		return fakeRow{err: f.err}
	}
	_, ok := f.rows[args[0].(string)]
	return fakeRow{exists: ok}
}

func (f *fakePostgres) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, sql)
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	name := args[0].(string)
	if _, ok := f.rows[name]; ok {
		return pgconn.CommandTag{}, &pgconn.PgError{Code: "23505", Message: "duplicate key value"}
	}
	f.rows[name] = struct{}{}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestPostgres(t *testing.T) {
	ctx := context.Background()
	conn := newFakePostgres("fedat")
	p := registry.NewPostgres(conn, "public.strkit_names", "name")

	taken, err := p.Contains(ctx, "fedat")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = p.Contains(ctx, "fedat01")
	require.NoError(t, err)
	assert.False(t, taken)

	require.NoError(t, p.Add(ctx, "fedat01", "fedat"), "duplicates are ignored")
	assert.Len(t, conn.rows, 2)

	assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "public"."strkit_names" WHERE "name" = $1)`, conn.queries[0])
	assert.Equal(t, `INSERT INTO "public"."strkit_names" ("name") VALUES ($1)`, conn.queries[2])
}

func TestPostgres_QuotesIdentifiers(t *testing.T) {
	conn := newFakePostgres()
	p := registry.NewPostgres(conn, `names"; DROP TABLE x; --`, "name")

	_, err := p.Contains(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "names""; DROP TABLE x; --" WHERE "name" = $1)`, conn.queries[0])
}

func TestPostgres_Errors(t *testing.T) {
	ctx := context.Background()

	conn := newFakePostgres()
	conn.err = &pgconn.PgError{Code: "42P01", Message: `relation "strkit_names" does not exist`}
	p := registry.NewPostgres(conn, "strkit_names", "name")

	_, err := p.Contains(ctx, "a")
	assert.ErrorIs(t, err, registry.ErrLookup)
	assert.ErrorIs(t, err, registry.ErrSchemaMissing)

	err = p.Add(ctx, "a")
	assert.ErrorIs(t, err, registry.ErrClaim)
	assert.ErrorIs(t, err, registry.ErrSchemaMissing)

	errDown := errors.New("connection reset")
	conn.err = errDown
	_, err = p.Contains(ctx, "a")
	assert.ErrorIs(t, err, errDown)
	assert.NotErrorIs(t, err, registry.ErrSchemaMissing)
}
