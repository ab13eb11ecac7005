// Package adapter contains the infrastructure adapters of the tia CLI: graph
// snapshots, change sources and report files.
package adapter

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"tia.dev/pkg/tia/internal/graph"
	m "tia.dev/pkg/tia/internal/model"
)

// SnapshotVersion is the graph document format this build understands.
const SnapshotVersion = 1

// GraphStore loads dependency graph snapshots produced by an external scanner.
type GraphStore interface {
	Load(ctx context.Context, path m.Path) (*graph.Snapshot, error)
}

// snapshotDocument is the on-disk YAML (or JSON) shape of a graph snapshot.
type snapshotDocument struct {
	Version int            `yaml:"version"`
	Types   []typeDocument `yaml:"types"`
	Uses    []edgeDocument `yaml:"uses"`
	Extends []edgeDocument `yaml:"extends"`
}

type typeDocument struct {
	ID       string `yaml:"id"`
	FQN      string `yaml:"fqn"`
	Name     string `yaml:"name"`
	Source   string `yaml:"source"`
	Test     bool   `yaml:"test"`
	Artifact string `yaml:"artifact"`
}

type edgeDocument struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// LocalGraphStore reads snapshots from the local file system.
type LocalGraphStore struct{}

// NewLocalGraphStore constructs a LocalGraphStore.
func NewLocalGraphStore() *LocalGraphStore {
	return &LocalGraphStore{}
}

// Load decodes and validates the snapshot at path.
func (s *LocalGraphStore) Load(ctx context.Context, path m.Path) (*graph.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - snapshot path is chosen by the user
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	return DecodeSnapshot(content)
}

// DecodeSnapshot builds a snapshot from a YAML or JSON document.
func DecodeSnapshot(content []byte) (*graph.Snapshot, error) {
	var doc snapshotDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	if doc.Version != 0 && doc.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d (want %d)", doc.Version, SnapshotVersion)
	}

	builder := graph.NewBuilder()

	for _, t := range doc.Types {
		builder.AddNode(t.node())
	}

	for _, e := range doc.Uses {
		builder.AddUses(m.TypeID(e.From), m.TypeID(e.To))
	}

	for _, e := range doc.Extends {
		builder.AddExtends(m.TypeID(e.From), m.TypeID(e.To))
	}

	return builder.Build()
}

func (t typeDocument) node() m.TypeNode {
	fqn := t.FQN
	if fqn == "" {
		fqn = t.ID
	}

	name := t.Name
	if name == "" {
		name = fqn[strings.LastIndex(fqn, ".")+1:]
	}

	return m.TypeNode{
		ID:         m.TypeID(t.ID),
		Name:       name,
		FQN:        fqn,
		SourceFile: t.Source,
		Test:       t.Test,
		Artifact:   t.Artifact,
	}
}
