// Package model defines the data structures for test impact analysis.
package model

import "strings"

// Path represents a file system path.
type Path string

// TypeID is the stable identifier of a type in a dependency graph snapshot.
type TypeID string

// TypeNode represents one compilable type (class, interface, enum).
type TypeNode struct {
	ID         TypeID
	Name       string // simple name, e.g. "TypeTest"
	FQN        string // fully-qualified name, e.g. "com.acme.TypeTest"
	SourceFile string // source file name as recorded by the compiler, e.g. "TypeTest.java"
	Test       bool
	Artifact   string // owning build artifact, empty when unknown
}

// Package returns the package part of the fully-qualified name.
func (n TypeNode) Package() string {
	idx := strings.LastIndex(n.FQN, ".")
	if idx < 0 {
		return ""
	}

	return n.FQN[:idx]
}

// SourcePath returns the source-root relative path of the file declaring the
// type: the package turned into directories followed by the source file name.
// Types without a recorded source file fall back to the simple name.
func (n TypeNode) SourcePath() string {
	file := n.SourceFile
	if file == "" {
		file = n.Name
	}

	pkg := n.Package()
	if pkg == "" {
		return file
	}

	return strings.ReplaceAll(pkg, ".", "/") + "/" + file
}

// EdgeKind names the relation an edge belongs to.
type EdgeKind string

const (
	// EdgeUses is the structural dependency relation uses(A, B).
	EdgeUses EdgeKind = "uses"
	// EdgeExtends is the inheritance relation extendsOrImplements(A, B).
	EdgeExtends EdgeKind = "extends"
)

// Edge is a directed relation between two types.
type Edge struct {
	From TypeID
	To   TypeID
}

// GraphSummary holds counts describing a graph snapshot.
type GraphSummary struct {
	Types   int
	Tests   int
	Uses    int
	Extends int
}
