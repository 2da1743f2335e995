package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/msomdec/signup-api/internal/domain"
)

var (
	_ domain.AddAccount     = (*AccountService)(nil)
	_ domain.Authentication = (*AccountService)(nil)
)

// AccountService handles account creation and credential checks.
type AccountService struct {
	accounts  domain.AccountRepository
	hasher    domain.Hasher
	comparer  domain.HashComparer
	encrypter domain.Encrypter
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts domain.AccountRepository, hasher domain.Hasher, comparer domain.HashComparer, encrypter domain.Encrypter) *AccountService {
	return &AccountService{
		accounts:  accounts,
		hasher:    hasher,
		comparer:  comparer,
		encrypter: encrypter,
	}
}

// AddAccount hashes the password and stores a new account.
func (s *AccountService) AddAccount(ctx context.Context, params domain.AddAccountParams) (*domain.Account, error) {
	existing, err := s.accounts.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailInUse
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		Name:     params.Name,
		Email:    params.Email,
		Password: hash,
	}

	// The unique index still guards against a concurrent signup slipping
	// past the lookup above.
	if err := s.accounts.Add(ctx, account); err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			return nil, err
		}
		return nil, fmt.Errorf("add account: %w", err)
	}

	return account, nil
}

// Authenticate verifies credentials and returns a fresh access token,
// which is also stored on the account.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (string, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("get account: %w", err)
	}

	ok, err := s.comparer.Compare(password, account.Password)
	if err != nil {
		return "", fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		return "", domain.ErrUnauthorized
	}

	token, err := s.encrypter.Encrypt(strconv.FormatInt(account.ID, 10))
	if err != nil {
		return "", fmt.Errorf("encrypt token: %w", err)
	}

	if err := s.accounts.UpdateAccessToken(ctx, account.ID, token); err != nil {
		return "", fmt.Errorf("update access token: %w", err)
	}

	return token, nil
}
