package domain

import "context"

// DumpTool runs the external dump utility. Run blocks until the subprocess
// exits; on a non-zero exit status the returned error message is the captured
// stderr text.
type DumpTool interface {
	Run(ctx context.Context, uri, outputPath string) error
}
