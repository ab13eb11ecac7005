package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"tia.dev/pkg/tia/internal/adapter"
	m "tia.dev/pkg/tia/internal/model"
)

// NodeLister enumerates the types of a graph.
type NodeLister interface {
	Nodes() []m.TypeNode
}

// ResolveArgs selects where changed types come from. Sources are combined.
type ResolveArgs struct {
	// IDs are type identifiers named explicitly by the caller.
	IDs []m.TypeID
	// DiffFile is a unified diff to read ("-" for stdin).
	DiffFile m.Path
	// Repo, Base and Head select a git diff. Git is only consulted when
	// Base or Head is set and DiffFile is empty.
	Repo m.Path
	Base string
	Head string
}

func (a ResolveArgs) usesGit() bool {
	return a.DiffFile == "" && (a.Base != "" || a.Head != "")
}

// ChangeSetResolver turns changed files and explicit IDs into a ChangeSet.
type ChangeSetResolver interface {
	Resolve(ctx context.Context, nodes NodeLister, args ResolveArgs) (m.ChangeSet, error)
}

type changeSetResolver struct {
	adapter.ChangeSource
}

// NewChangeSetResolver constructs a ChangeSetResolver reading diffs through source.
func NewChangeSetResolver(source adapter.ChangeSource) ChangeSetResolver {
	return &changeSetResolver{ChangeSource: source}
}

// Resolve returns explicit IDs plus every type declared in a changed file.
// Explicit IDs are taken as given; the engine rejects unknown ones.
func (r *changeSetResolver) Resolve(ctx context.Context, nodes NodeLister, args ResolveArgs) (m.ChangeSet, error) {
	explicit := m.NewChangeSet(args.IDs...)

	files, err := r.changedFiles(ctx, args)
	if err != nil {
		return m.ChangeSet{}, err
	}

	if len(files) == 0 {
		return explicit, nil
	}

	index := indexBySourcePath(nodes.Nodes())
	matched := make([]m.TypeID, 0, len(files))

	for _, file := range files {
		ids := matchChangedFile(index, file)
		if len(ids) == 0 {
			slog.Debug("changed file declares no known type", "path", file.Path, "status", file.Status)
			continue
		}

		matched = append(matched, ids...)
	}

	slog.Info("resolved change set", "files", len(files), "types", len(matched), "explicit", explicit.Len())

	return explicit.Union(m.NewChangeSet(matched...)), nil
}

func (r *changeSetResolver) changedFiles(ctx context.Context, args ResolveArgs) ([]m.ChangedFile, error) {
	switch {
	case args.DiffFile != "":
		files, err := r.ReadDiff(ctx, args.DiffFile)
		if err != nil {
			slog.Error("Failed to read diff", "path", args.DiffFile, "error", err)
			return nil, fmt.Errorf("read diff %s: %w", args.DiffFile, err)
		}

		return files, nil
	case args.usesGit():
		files, err := r.GitDiff(ctx, args.Repo, args.Base, args.Head)
		if err != nil {
			slog.Error("Failed to diff commits", "base", args.Base, "head", args.Head, "error", err)
			return nil, fmt.Errorf("git diff %s..%s: %w", args.Base, args.Head, err)
		}

		return files, nil
	}

	return nil, nil
}

// indexBySourcePath groups type IDs by the source path that declares them.
func indexBySourcePath(nodes []m.TypeNode) map[string][]m.TypeID {
	index := make(map[string][]m.TypeID, len(nodes))
	for _, node := range nodes {
		key := node.SourcePath()
		index[key] = append(index[key], node.ID)
	}

	return index
}

// matchChangedFile finds types whose source path is a path-component suffix
// of the changed file, e.g. "com/acme/Type.java" matches
// "core/src/main/java/com/acme/Type.java". Renames match both names.
func matchChangedFile(index map[string][]m.TypeID, file m.ChangedFile) []m.TypeID {
	var ids []m.TypeID

	for _, p := range []m.Path{file.Path, file.OldPath} {
		if p == "" {
			continue
		}

		ids = append(ids, matchPath(index, string(p))...)
	}

	return ids
}

func matchPath(index map[string][]m.TypeID, filePath string) []m.TypeID {
	clean := strings.TrimPrefix(path.Clean(strings.ReplaceAll(filePath, "\\", "/")), "/")

	var ids []m.TypeID

	for suffix := clean; ; {
		ids = append(ids, index[suffix]...)

		slash := strings.Index(suffix, "/")
		if slash < 0 {
			break
		}

		suffix = suffix[slash+1:]
	}

	return ids
}
