package domain

import "context"

// Database defines lifecycle operations for the underlying database.
// Each implementation (SQLite, MySQL) owns its own migration files,
// so the storage backend can be swapped without touching the services.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
	Accounts() AccountRepository
	Logs() LogErrorRepository
}
