// Package mysql provides MySQL-backed repositories.
package mysql

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"

	"github.com/msomdec/signup-api/internal/domain"
	"github.com/msomdec/signup-api/internal/migrations"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// DB wraps a MySQL connection pool and hands out repositories bound to it.
type DB struct {
	SqlDB *sql.DB
}

var _ domain.Database = (*DB)(nil)

// Config parses a DSN and forces the options the repositories rely on:
// DATETIME columns scan into time.Time and are stored in UTC.
func Config(dsn string) (*mysqldriver.Config, error) {
	cfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg, nil
}

// New opens a MySQL connection pool for the given DSN and verifies it.
func New(ctx context.Context, dsn string) (*DB, error) {
	cfg, err := Config(dsn)
	if err != nil {
		return nil, err
	}

	connector, err := mysqldriver.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies the embedded MySQL migrations.
func (d *DB) Migrate(ctx context.Context) error {
	fsys, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	return migrations.Run(ctx, d.SqlDB, fsys)
}

// Close closes the underlying connection pool.
func (d *DB) Close() error {
	return d.SqlDB.Close()
}

// Accounts returns the account repository.
func (d *DB) Accounts() domain.AccountRepository {
	return NewAccountRepository(d)
}

// Logs returns the error log repository.
func (d *DB) Logs() domain.LogErrorRepository {
	return NewLogRepository(d)
}
