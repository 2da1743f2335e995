// Package decorator wraps controllers with cross-cutting behavior.
package decorator

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/msomdec/signup-api/internal/controller"
	"github.com/msomdec/signup-api/internal/domain"
	"github.com/msomdec/signup-api/internal/requestid"
)

// logTimeout bounds a single trace write.
const logTimeout = 5 * time.Second

var _ controller.Controller = (*LogControllerDecorator)(nil)

// LogControllerDecorator persists the stack trace of every server error
// produced by the wrapped controller. Responses pass through untouched.
type LogControllerDecorator struct {
	controller controller.Controller
	logs       domain.LogErrorRepository
}

// NewLogControllerDecorator wraps c, sending server-error traces to logs.
func NewLogControllerDecorator(c controller.Controller, logs domain.LogErrorRepository) *LogControllerDecorator {
	return &LogControllerDecorator{controller: c, logs: logs}
}

// Handle forwards req to the wrapped controller and returns its response.
// Panics from the wrapped controller are not recovered here.
func (d *LogControllerDecorator) Handle(ctx context.Context, req *controller.Request) *controller.Response {
	resp := d.controller.Handle(ctx, req)
	if resp == nil || resp.StatusCode != http.StatusInternalServerError {
		return resp
	}

	serverErr, ok := resp.Body.(*controller.ServerError)
	if !ok {
		return resp
	}

	// A cancelled request is often the very failure being recorded, so the
	// write must outlive it.
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), logTimeout)
	defer cancel()

	if err := d.logs.LogError(logCtx, serverErr.Stack); err != nil {
		slog.Error("persist server error",
			"error", err,
			"cause", serverErr.Cause,
			"request_id", requestid.FromContext(ctx),
		)
	}
	return resp
}
