package domain

import "context"

// Database is the connectivity probe against the backup source.
type Database interface {
	Ping(ctx context.Context) error
}
