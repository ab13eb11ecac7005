package adapter

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	m "tia.dev/pkg/tia/internal/model"
)

// ReportStore persists lists of test source paths for build tools.
type ReportStore interface {
	// EnsureDir creates dir when missing and reports whether it was created.
	EnsureDir(ctx context.Context, dir m.Path) (bool, error)

	// WriteLines writes one line per entry to file, truncating it first
	// unless appendMode is set.
	WriteLines(ctx context.Context, file m.Path, appendMode bool, lines []string) error
}

// LocalReportStore writes report files to the local file system.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// EnsureDir creates dir and its parents.
func (s *LocalReportStore) EnsureDir(ctx context.Context, dir m.Path) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if info, err := os.Stat(string(dir)); err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s is not a directory", dir)
		}

		return false, nil
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return false, err
	}

	return true, nil
}

// WriteLines writes lines to file.
func (s *LocalReportStore) WriteLines(ctx context.Context, file m.Path, appendMode bool, lines []string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendMode {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}

	if err := os.MkdirAll(filepath.Dir(string(file)), 0o750); err != nil {
		return err
	}

	// #nosec G304 - report file lives in the configured report directory
	f, err := os.OpenFile(string(file), flags, 0o600)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	writer := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	return writer.Flush()
}
