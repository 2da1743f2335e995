package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/signup-api/internal/domain"
	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// AccountRepository implements domain.AccountRepository using SQLite.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new SQLite-backed AccountRepository.
func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db.SqlDB}
}

// Add inserts account and sets its ID and timestamps.
func (r *AccountRepository) Add(ctx context.Context, account *domain.Account) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (name, email, password, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		account.Name, account.Email, account.Password, now, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrEmailInUse
		}
		return fmt.Errorf("insert account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	account.ID = id
	account.CreatedAt = now
	account.UpdatedAt = now
	return nil
}

// GetByEmail returns domain.ErrNotFound when no account matches.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	account := &domain.Account{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password, access_token, created_at, updated_at
		 FROM accounts WHERE email = ?`, email,
	).Scan(&account.ID, &account.Name, &account.Email, &account.Password,
		&account.AccessToken, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query account by email: %w", err)
	}
	return account, nil
}

// UpdateAccessToken stores token as the account's current access token.
func (r *AccountRepository) UpdateAccessToken(ctx context.Context, id int64, token string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET access_token = ?, updated_at = ? WHERE id = ?`,
		token, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("update access token: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// isUniqueConstraintError checks if the error is a SQLite unique constraint violation.
func isUniqueConstraintError(err error) bool {
	var sqliteErr *sqlitedriver.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	if sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	// Connections without extended result codes only report the primary code.
	return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
		strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed")
}
