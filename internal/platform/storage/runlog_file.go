package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/digest/usecase"
)

// RunLogFile implements usecase.RunLogSink on the local filesystem.
// It is the fallback sink used when Redis is unavailable, so a degraded
// environment still keeps its run summaries.
type RunLogFile struct {
	dir string
}

var _ usecase.RunLogSink = (*RunLogFile)(nil)

// NewRunLogFile creates a new RunLogFile writing under dir.
// If dir is empty, it uses "run_logs" relative to the working directory.
func NewRunLogFile(dir string) *RunLogFile {
	if dir == "" {
		dir = "run_logs"
	}
	return &RunLogFile{dir: dir}
}

// Write stores the summary bytes at dir/key and returns the file path.
// Intermediate directories (e.g. the daily_logs/ segment of the key) are
// created as needed.
func (f *RunLogFile) Write(ctx context.Context, key string, data []byte) (string, error) {
	path := filepath.Join(f.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
