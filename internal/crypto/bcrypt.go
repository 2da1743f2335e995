// Package crypto adapts hashing and token libraries to the domain interfaces.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/msomdec/signup-api/internal/domain"
)

var (
	_ domain.Hasher       = (*BcryptAdapter)(nil)
	_ domain.HashComparer = (*BcryptAdapter)(nil)
)

// BcryptAdapter hashes and compares passwords with bcrypt.
type BcryptAdapter struct {
	cost int
}

// NewBcryptAdapter creates a BcryptAdapter using the given cost.
func NewBcryptAdapter(cost int) *BcryptAdapter {
	return &BcryptAdapter{cost: cost}
}

// Hash returns the bcrypt hash of value at the configured cost.
func (a *BcryptAdapter) Hash(value string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(value), a.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hash), nil
}

// Compare reports a mismatch as (false, nil); only malformed hashes are errors.
func (a *BcryptAdapter) Compare(value, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(value))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("bcrypt compare: %w", err)
}
