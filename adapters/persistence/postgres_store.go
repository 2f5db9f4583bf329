package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/khoahotran/cvos/internal/application/service"
)

var psqlKV = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const kvTable = "kv_store"

const createKVTable = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// pgxQuerier is the subset of *pgxpool.Pool the store needs.
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresStore struct {
	db pgxQuerier
}

func NewPostgresStore(db pgxQuerier) service.KeyValueStore {
	return &postgresStore{db: db}
}

// EnsureKVSchema creates the backing table when it does not exist yet.
func EnsureKVSchema(ctx context.Context, db pgxQuerier) error {
	if _, err := db.Exec(ctx, createKVTable); err != nil {
		return fmt.Errorf("create %s: %w", kvTable, err)
	}
	return nil
}

func buildGet(key string) (string, []any, error) {
	return psqlKV.Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsert(key, value string) (string, []any, error) {
	return psqlKV.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
}

func (s *postgresStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGet(key)
	if err != nil {
		return "", fmt.Errorf("build kv get: %w", err)
	}
	var v string
	if err := s.db.QueryRow(ctx, query, args...).Scan(&v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", service.ErrKeyNotFound
		}
		return "", fmt.Errorf("query kv %q: %w", key, err)
	}
	return v, nil
}

func (s *postgresStore) Set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsert(key, value)
	if err != nil {
		return fmt.Errorf("build kv upsert: %w", err)
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert kv %q: %w", key, err)
	}
	return nil
}
