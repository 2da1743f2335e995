package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LogRepository implements domain.LogErrorRepository using MySQL.
type LogRepository struct {
	db *sql.DB
}

// NewLogRepository creates a new MySQL-backed LogRepository.
func NewLogRepository(db *DB) *LogRepository {
	return &LogRepository{db: db.SqlDB}
}

// LogError stores a server-error trace.
func (r *LogRepository) LogError(ctx context.Context, stack string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO errors (stack, created_at) VALUES (?, ?)`,
		stack, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert error log: %w", err)
	}
	return nil
}
