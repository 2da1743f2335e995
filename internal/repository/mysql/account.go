package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"

	"github.com/msomdec/signup-api/internal/domain"
)

// erDupEntry is MySQL's ER_DUP_ENTRY error number.
const erDupEntry = 1062

// AccountRepository implements domain.AccountRepository using MySQL.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new MySQL-backed AccountRepository.
func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db.SqlDB}
}

// Add inserts account and sets its ID and timestamps.
func (r *AccountRepository) Add(ctx context.Context, account *domain.Account) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (name, email, password, access_token, created_at, updated_at)
		 VALUES (?, ?, ?, '', ?, ?)`,
		account.Name, account.Email, account.Password, now, now,
	)
	if err != nil {
		if isDuplicateEntry(err) {
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

// UpdateAccessToken stores the latest token. MySQL reports zero affected
// rows when the value is unchanged, so existence is checked separately.
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
	if n > 0 {
		return nil
	}

	var exists int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM accounts WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("check account exists: %w", err)
	}
	return nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == erDupEntry
}
