package database

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) error
	QueryStruct(ctx context.Context, dest any, sql string, args ...any) error
	Close(ctx context.Context) error
}

type PostgresDB struct {
	pool *pgxpool.Pool
}

// NewPostgres opens a connection pool and verifies it with a ping
func NewPostgres(ctx context.Context, dsn string) (*PostgresDB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresDB{pool: pool}, nil
}

func (db *PostgresDB) Close(_ context.Context) error {
	db.pool.Close()
	return nil
}

func (db *PostgresDB) Exec(ctx context.Context, sql string, args ...any) error {
	_, err := db.pool.Exec(ctx, sql, args...)
	return err
}

func (db *PostgresDB) QueryStruct(ctx context.Context, dest any, sql string, args ...any) error {
	return pgxscan.Select(ctx, db.pool, dest, sql, args...)
}
