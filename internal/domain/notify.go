package domain

import "context"

// Notifier delivers a run-outcome message to an external channel.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
