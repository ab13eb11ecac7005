package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"tia.dev/pkg/tia/internal/adapter"
	m "tia.dev/pkg/tia/internal/model"
)

// DefaultReportFile receives the tests whose owning artifact is unknown.
const DefaultReportFile = "surefire-tests"

// EmitArgs configures where impacted tests are written.
type EmitArgs struct {
	// Directory holds the report files; it is created when missing.
	Directory m.Path
	// File, when set, collects every test in a single file instead of one
	// file per artifact.
	File string
	// DefaultFile receives tests without artifact. Defaults to DefaultReportFile.
	DefaultFile string
}

// Emitter writes impacted tests as surefire-style suite files, one test
// source path per line, grouped by owning build artifact.
type Emitter interface {
	Emit(ctx context.Context, tests []m.ImpactedTest, args EmitArgs) ([]m.Path, error)
}

type emitter struct {
	adapter.ReportStore
}

// NewEmitter constructs an Emitter backed by store.
func NewEmitter(store adapter.ReportStore) Emitter {
	return &emitter{ReportStore: store}
}

// Emit writes tests and returns the files it touched in write order.
// The first group written to a file truncates it, later groups targeting
// the same file append to it.
func (e *emitter) Emit(ctx context.Context, tests []m.ImpactedTest, args EmitArgs) ([]m.Path, error) {
	created, err := e.EnsureDir(ctx, args.Directory)
	if err != nil {
		slog.Error("Failed to create report directory", "directory", args.Directory, "error", err)
		return nil, fmt.Errorf("create report directory: %w", err)
	}

	if created {
		slog.Info("Created report directory", "directory", args.Directory)
	}

	groups := groupByArtifact(tests)
	artifacts := make([]string, 0, len(groups))

	for artifact := range groups {
		artifacts = append(artifacts, artifact)
	}

	sort.Strings(artifacts)

	written := make(map[m.Path]bool)
	files := make([]m.Path, 0, len(artifacts))

	for _, artifact := range artifacts {
		file := reportFile(args, artifact)
		appendMode := written[file]
		lines := sourcePaths(groups[artifact])

		if appendMode {
			slog.Info("Appending tests", "file", file, "artifact", artifact, "count", len(lines))
		} else {
			slog.Info("Writing tests", "file", file, "artifact", artifact, "count", len(lines))
		}

		if err := e.WriteLines(ctx, file, appendMode, lines); err != nil {
			slog.Error("Failed to write tests", "file", file, "error", err)
			return nil, fmt.Errorf("write tests to %s: %w", file, err)
		}

		for _, test := range groups[artifact] {
			slog.Debug("emitted test", "fqn", test.Node.FQN, "source", test.Node.SourcePath(), "relationship", test.Relationship)
		}

		if !appendMode {
			written[file] = true
			files = append(files, file)
		}
	}

	return files, nil
}

// reportFile determines the report file for an artifact.
func reportFile(args EmitArgs, artifact string) m.Path {
	name := args.File

	switch {
	case name != "":
	case artifact != "":
		name = artifact
	case args.DefaultFile != "":
		name = args.DefaultFile
	default:
		name = DefaultReportFile
	}

	return m.Path(filepath.Join(string(args.Directory), name))
}

func groupByArtifact(tests []m.ImpactedTest) map[string][]m.ImpactedTest {
	groups := make(map[string][]m.ImpactedTest)
	for _, test := range tests {
		groups[test.Node.Artifact] = append(groups[test.Node.Artifact], test)
	}

	return groups
}

func sourcePaths(tests []m.ImpactedTest) []string {
	lines := make([]string, 0, len(tests))
	for _, test := range tests {
		lines = append(lines, test.Node.SourcePath())
	}

	sort.Strings(lines)

	return lines
}
