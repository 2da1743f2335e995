package controller

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// OK wraps body in a 200 response.
func OK(body any) *Response {
	return &Response{StatusCode: http.StatusOK, Body: body}
}

// BadRequest reports a client input error as a 400 response.
func BadRequest(err error) *Response {
	return &Response{StatusCode: http.StatusBadRequest, Body: err}
}

// Unauthorized returns a 401 response with an UnauthorizedError body.
func Unauthorized() *Response {
	return &Response{StatusCode: http.StatusUnauthorized, Body: &UnauthorizedError{}}
}

// Forbidden reports a refused operation as a 403 response.
func Forbidden(err error) *Response {
	return &Response{StatusCode: http.StatusForbidden, Body: err}
}

// InternalServerError wraps err in a 500 response carrying its stack trace.
func InternalServerError(err error) *Response {
	return &Response{
		StatusCode: http.StatusInternalServerError,
		Body:       &ServerError{Stack: stackOf(err), Cause: err},
	}
}

type stackStringer interface {
	Stack() string
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// stackOf prefers a trace the error already carries; otherwise it records
// the current call stack.
func stackOf(err error) string {
	if err == nil {
		err = errors.New("unknown error")
	}

	var ss stackStringer
	if errors.As(err, &ss) {
		return ss.Stack()
	}

	var st stackTracer
	if errors.As(err, &st) {
		return fmt.Sprintf("%+v", err)
	}

	return fmt.Sprintf("%+v", pkgerrors.WithStack(err))
}
