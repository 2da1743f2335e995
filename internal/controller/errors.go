package controller

import "fmt"

// MissingParamError reports a required request field that was absent or empty.
type MissingParamError struct {
	Param string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("Missing param: %s", e.Param)
}

// InvalidParamError reports a request field with an unacceptable value.
type InvalidParamError struct {
	Param string
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("Invalid param: %s", e.Param)
}

// EmailInUseError reports a signup for an already registered email.
type EmailInUseError struct{}

func (e *EmailInUseError) Error() string {
	return "The received email is already in use"
}

// UnauthorizedError reports rejected credentials.
type UnauthorizedError struct{}

func (e *UnauthorizedError) Error() string {
	return "Unauthorized"
}

// ServerError is the body of a 500 response. Stack holds the
// diagnostic trace; it is never sent to clients.
type ServerError struct {
	Stack string
	Cause error
}

func (e *ServerError) Error() string {
	return "Internal server error"
}

func (e *ServerError) Unwrap() error {
	return e.Cause
}
