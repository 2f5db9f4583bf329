package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/cvos/internal/application/service"
	"github.com/khoahotran/cvos/internal/config"
	"github.com/khoahotran/cvos/pkg/logger"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "k", "v1"))
	require.NoError(t, s.Set(ctx, "k", "v2"))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)
}

func TestNewStore_Drivers(t *testing.T) {
	var cfg config.Config
	cfg.Store.Driver = DriverMemory
	s, closeFn, err := NewStore(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	defer closeFn()
	assert.NotNil(t, s)

	cfg.Store.Driver = "sqlite"
	_, _, err = NewStore(context.Background(), cfg, logger.NewNop())
	assert.Error(t, err)
}

func TestKVQueries(t *testing.T) {
	q, args, err := buildGet("owner:cvos_wizard_profile")
	require.NoError(t, err)
	assert.Equal(t, "SELECT value FROM kv_store WHERE key = $1", q)
	assert.Equal(t, []any{"owner:cvos_wizard_profile"}, args)

	q, args, err = buildUpsert("k", "{}")
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO kv_store (key,value,updated_at) VALUES ($1,$2,NOW()) "+
			"ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at",
		q)
	assert.Equal(t, []any{"k", "{}"}, args)
}

type fakeRow struct {
	val string
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.val
	return nil
}

type fakeDB struct {
	rows    map[string]string
	execErr error
	execs   []string
}

func (d *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	d.execs = append(d.execs, sql)
	if d.execErr != nil {
		return pgconn.CommandTag{}, d.execErr
	}
	if len(args) == 2 {
		d.rows[args[0].(string)] = args[1].(string)
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (d *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	v, ok := d.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{val: v}
}

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{rows: map[string]string{}}
	s := NewPostgresStore(db)

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, service.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "k", "v"))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	db.execErr = errors.New("connection reset")
	assert.Error(t, s.Set(ctx, "k", "w"))
	assert.Error(t, EnsureKVSchema(ctx, db))
}
