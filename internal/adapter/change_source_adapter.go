package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
	m "tia.dev/pkg/tia/internal/model"
)

const (
	// DefaultHeadRef is the commit analyzed when none is given.
	DefaultHeadRef = "HEAD"

	stdinPath = "-"
	devNull   = "/dev/null"
)

// ChangeSource reports which files a change touches.
type ChangeSource interface {
	// ReadDiff parses a unified diff stored at path ("-" reads stdin).
	ReadDiff(ctx context.Context, path m.Path) ([]m.ChangedFile, error)

	// GitDiff diffs base against head in the repository at repo. An empty
	// head means HEAD and an empty base means the parent of head.
	GitDiff(ctx context.Context, repo m.Path, base, head string) ([]m.ChangedFile, error)
}

// LocalChangeSource reads diffs from disk, stdin or the git CLI.
type LocalChangeSource struct {
	stdin io.Reader
	git   string
}

// NewLocalChangeSource constructs a LocalChangeSource using the git binary on PATH.
func NewLocalChangeSource() *LocalChangeSource {
	return &LocalChangeSource{stdin: os.Stdin, git: "git"}
}

// ReadDiff parses the unified diff at path.
func (a *LocalChangeSource) ReadDiff(ctx context.Context, path m.Path) ([]m.ChangedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if string(path) == stdinPath {
		return ParseDiff(a.stdin)
	}

	// #nosec G304 - path is provided by the user on purpose
	file, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	defer func() { _ = file.Close() }()

	return ParseDiff(file)
}

// GitDiff runs 'git diff base head' and parses its output.
func (a *LocalChangeSource) GitDiff(ctx context.Context, repo m.Path, base, head string) ([]m.ChangedFile, error) {
	if head == "" {
		head = DefaultHeadRef
	}

	if base == "" {
		base = head + "^"
	}

	// #nosec G204 - refs are passed as separate arguments, never through a shell
	cmd := exec.CommandContext(ctx, a.git, "diff", "--no-color", "--no-ext-diff", "-M", base, head, "--")
	cmd.Dir = string(repo)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return ParseDiff(&stdout)
}

// ParseDiff converts a multi-file unified diff into changed files.
func ParseDiff(r io.Reader) ([]m.ChangedFile, error) {
	fileDiffs, err := diff.NewMultiFileDiffReader(r).ReadAllFiles()
	if err != nil {
		return nil, fmt.Errorf("parse diff: %w", err)
	}

	files := make([]m.ChangedFile, 0, len(fileDiffs))

	for _, fd := range fileDiffs {
		if changed, ok := changedFile(fd.OrigName, fd.NewName); ok {
			files = append(files, changed)
		}
	}

	return files, nil
}

func changedFile(origName, newName string) (m.ChangedFile, bool) {
	orig := trimDiffPrefix(origName)
	updated := trimDiffPrefix(newName)

	switch {
	case orig == "" && updated == "":
		return m.ChangedFile{}, false
	case orig == "":
		return m.ChangedFile{Path: m.Path(updated), Status: m.FileAdded}, true
	case updated == "":
		return m.ChangedFile{Path: m.Path(orig), Status: m.FileDeleted}, true
	case orig != updated:
		return m.ChangedFile{Path: m.Path(updated), OldPath: m.Path(orig), Status: m.FileRenamed}, true
	}

	return m.ChangedFile{Path: m.Path(updated), Status: m.FileModified}, true
}

// trimDiffPrefix strips the a/ and b/ prefixes git adds; /dev/null becomes empty.
func trimDiffPrefix(name string) string {
	name = strings.TrimSpace(name)
	if idx := strings.IndexByte(name, '\t'); idx >= 0 {
		name = name[:idx]
	}

	if name == devNull || name == "" {
		return ""
	}

	for _, prefix := range []string{"a/", "b/"} {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix)
		}
	}

	return name
}
