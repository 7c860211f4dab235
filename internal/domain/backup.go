package domain

import (
	"fmt"
	"time"
)

// ArchiveTimeFormat is second-resolution on purpose: two runs for the same
// alias within one second collide on the same archive name.
const ArchiveTimeFormat = "2006-01-02T15-04-05"

// BackupRequest carries everything a single run needs. Built once from the
// command line at invocation start, never mutated afterwards.
type BackupRequest struct {
	MongoURI        string
	Bucket          string
	CredentialsFile string
	Alias           string
	StartedAt       time.Time
}

// Archive is the local dump artifact. Name doubles as the remote blob name.
type Archive struct {
	Name string
	Path string
}

// ArchiveName builds the deterministic archive filename for a run.
func ArchiveName(alias string, startedAt time.Time) string {
	return fmt.Sprintf("mongo_backup_%s_%s.gz", alias, startedAt.UTC().Format(ArchiveTimeFormat))
}
