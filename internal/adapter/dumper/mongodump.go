package dumper

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

type Mongodump struct {
	binary string
}

func NewMongodump(binary string) *Mongodump {
	if binary == "" {
		binary = "mongodump"
	}
	return &Mongodump{binary: binary}
}

// Run invokes mongodump synchronously, writing a gzipped archive to
// outputPath. Stdout and stderr are captured separately; on a non-zero exit
// the error message is the subprocess's stderr text, so callers can surface
// it as-is.
func (d *Mongodump) Run(ctx context.Context, uri, outputPath string) error {
	args := []string{
		fmt.Sprintf("--uri=%s", uri),
		fmt.Sprintf("--archive=%s", outputPath),
		"--gzip",
	}

	cmd := exec.CommandContext(ctx, d.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("%s", stderr.String())
		}
		return fmt.Errorf("mongodump failed: %w", err)
	}

	return nil
}
