// Package graph holds the immutable type dependency graph an analysis runs on.
//
// A Builder collects nodes and edges; Build validates them and returns a
// Snapshot. A Snapshot is never modified afterwards and is safe for
// concurrent reads.
package graph

import (
	"errors"
	"fmt"
	"sort"

	m "tia.dev/pkg/tia/internal/model"
)

// ErrDuplicateNode is returned when two nodes share an identifier.
var ErrDuplicateNode = errors.New("duplicate type ID")

// Builder accumulates the content of a snapshot.
type Builder struct {
	nodes   []m.TypeNode
	uses    []m.Edge
	extends []m.Edge
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddNode registers a type.
func (b *Builder) AddNode(node m.TypeNode) *Builder {
	b.nodes = append(b.nodes, node)
	return b
}

// AddUses records that from structurally references to.
func (b *Builder) AddUses(from, to m.TypeID) *Builder {
	b.uses = append(b.uses, m.Edge{From: from, To: to})
	return b
}

// AddExtends records that from is a direct subtype of to.
func (b *Builder) AddExtends(from, to m.TypeID) *Builder {
	b.extends = append(b.extends, m.Edge{From: from, To: to})
	return b
}

// Build validates the collected data and freezes it into a Snapshot.
func (b *Builder) Build() (*Snapshot, error) {
	s := &Snapshot{
		nodes:      make(map[m.TypeID]m.TypeNode, len(b.nodes)),
		uses:       make(map[m.TypeID][]m.TypeID),
		usedBy:     make(map[m.TypeID][]m.TypeID),
		supertypes: make(map[m.TypeID][]m.TypeID),
		subtypes:   make(map[m.TypeID][]m.TypeID),
	}

	for _, node := range b.nodes {
		if node.ID == "" {
			return nil, fmt.Errorf("type without ID (fqn %q)", node.FQN)
		}

		if _, exists := s.nodes[node.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, node.ID)
		}

		s.nodes[node.ID] = node
		if node.Test {
			s.tests++
		}
	}

	usesCount, err := s.link(m.EdgeUses, b.uses, s.uses, s.usedBy)
	if err != nil {
		return nil, err
	}

	extendsCount, err := s.link(m.EdgeExtends, b.extends, s.supertypes, s.subtypes)
	if err != nil {
		return nil, err
	}

	s.usesCount = usesCount
	s.extendsCount = extendsCount

	for _, adjacency := range []map[m.TypeID][]m.TypeID{s.uses, s.usedBy, s.supertypes, s.subtypes} {
		for id := range adjacency {
			ids := adjacency[id]
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		}
	}

	return s, nil
}

// Snapshot is an immutable, validated type graph with O(1) lookups.
type Snapshot struct {
	nodes      map[m.TypeID]m.TypeNode
	uses       map[m.TypeID][]m.TypeID
	usedBy     map[m.TypeID][]m.TypeID
	supertypes map[m.TypeID][]m.TypeID
	subtypes   map[m.TypeID][]m.TypeID

	tests        int
	usesCount    int
	extendsCount int
}

// link fills forward and reverse adjacency, collapsing duplicate edges.
func (s *Snapshot) link(kind m.EdgeKind, edges []m.Edge, forward, reverse map[m.TypeID][]m.TypeID) (int, error) {
	seen := make(map[m.Edge]struct{}, len(edges))

	for _, edge := range edges {
		if _, ok := s.nodes[edge.From]; !ok {
			return 0, &m.GraphInconsistencyError{Edge: kind, From: edge.From, To: edge.To, Missing: edge.From}
		}

		if _, ok := s.nodes[edge.To]; !ok {
			return 0, &m.GraphInconsistencyError{Edge: kind, From: edge.From, To: edge.To, Missing: edge.To}
		}

		if _, dup := seen[edge]; dup {
			continue
		}

		seen[edge] = struct{}{}
		forward[edge.From] = append(forward[edge.From], edge.To)
		reverse[edge.To] = append(reverse[edge.To], edge.From)
	}

	return len(seen), nil
}

// Node returns the type registered under id.
func (s *Snapshot) Node(id m.TypeID) (m.TypeNode, bool) {
	node, ok := s.nodes[id]
	return node, ok
}

// IsTest reports whether id is a known test type.
func (s *Snapshot) IsTest(id m.TypeID) bool {
	return s.nodes[id].Test
}

// Uses returns the types id structurally references.
func (s *Snapshot) Uses(id m.TypeID) []m.TypeID {
	return s.uses[id]
}

// UsedBy returns the types structurally referencing id.
func (s *Snapshot) UsedBy(id m.TypeID) []m.TypeID {
	return s.usedBy[id]
}

// Supertypes returns the direct supertypes of id.
func (s *Snapshot) Supertypes(id m.TypeID) []m.TypeID {
	return s.supertypes[id]
}

// Subtypes returns the direct subtypes of id.
func (s *Snapshot) Subtypes(id m.TypeID) []m.TypeID {
	return s.subtypes[id]
}

// Nodes returns every type sorted by ID.
func (s *Snapshot) Nodes() []m.TypeNode {
	nodes := make([]m.TypeNode, 0, len(s.nodes))
	for _, node := range s.nodes {
		nodes = append(nodes, node)
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	return nodes
}

// Len returns the number of types.
func (s *Snapshot) Len() int {
	return len(s.nodes)
}

// Summary returns node and edge counts.
func (s *Snapshot) Summary() m.GraphSummary {
	return m.GraphSummary{
		Types:   len(s.nodes),
		Tests:   s.tests,
		Uses:    s.usesCount,
		Extends: s.extendsCount,
	}
}
