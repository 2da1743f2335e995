package domain

import "context"

// LogErrorRepository persists server-error traces.
type LogErrorRepository interface {
	LogError(ctx context.Context, stack string) error
}
