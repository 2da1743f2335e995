package domain

import (
	"context"
	"time"
)

// Account represents a registered account.
type Account struct {
	ID          int64
	Name        string
	Email       string
	Password    string // bcrypt hash, never the plaintext
	AccessToken string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AddAccountParams carries the fields needed to create an account.
type AddAccountParams struct {
	Name     string
	Email    string
	Password string
}

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Add(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	UpdateAccessToken(ctx context.Context, id int64, token string) error
}

// AddAccount creates accounts. Implementations return ErrEmailInUse when
// the email is already registered.
type AddAccount interface {
	AddAccount(ctx context.Context, params AddAccountParams) (*Account, error)
}

// Authentication exchanges credentials for an access token. Unknown emails
// and wrong passwords are both reported as ErrUnauthorized.
type Authentication interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
}
