package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrEmailInUse   = errors.New("email already in use")
	ErrUnauthorized = errors.New("unauthorized")
)
