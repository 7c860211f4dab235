package domain

import "context"

// Storage streams a local file to a remote blob addressed by name.
type Storage interface {
	Upload(ctx context.Context, localPath string, remoteName string) error
}
