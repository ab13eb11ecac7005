package model

import (
	"fmt"
	"strings"
)

// Relationship classifies how a test was reached from the change set.
//
// The declaration order is the merge precedence: a lower value is stronger.
type Relationship int

const (
	// RelationshipNone is the zero value and never appears in a result.
	RelationshipNone Relationship = iota
	// Direct marks a changed test or a test using a changed type.
	Direct
	// Subtype marks a direct subtype of a changed type (or a test using one).
	Subtype
	// Supertype marks a direct supertype of a changed type (or a test using one).
	Supertype
	// TransitiveDirect marks a test depending on a changed type through other types.
	TransitiveDirect
	// TransitiveSubtype marks a test reached through deeper subtype chains.
	TransitiveSubtype
	// TransitiveSupertype marks a test reached through deeper supertype chains.
	TransitiveSupertype
)

var relationshipNames = map[Relationship]string{
	RelationshipNone:    "NONE",
	Direct:              "DIRECT",
	Subtype:             "SUBTYPE",
	Supertype:           "SUPERTYPE",
	TransitiveDirect:    "TRANSITIVE_DIRECT",
	TransitiveSubtype:   "TRANSITIVE_SUBTYPE",
	TransitiveSupertype: "TRANSITIVE_SUPERTYPE",
}

// Relationships lists every classification from strongest to weakest.
func Relationships() []Relationship {
	return []Relationship{Direct, Subtype, Supertype, TransitiveDirect, TransitiveSubtype, TransitiveSupertype}
}

func (r Relationship) String() string {
	if name, ok := relationshipNames[r]; ok {
		return name
	}

	return fmt.Sprintf("Relationship(%d)", int(r))
}

// Valid reports whether r is one of the six classifications.
func (r Relationship) Valid() bool {
	return r >= Direct && r <= TransitiveSupertype
}

// Transitive reports whether r was reached at depth two or more.
func (r Relationship) Transitive() bool {
	return r >= TransitiveDirect && r <= TransitiveSupertype
}

// Outranks reports whether r wins over other when both reach the same node.
func (r Relationship) Outranks(other Relationship) bool {
	if !r.Valid() {
		return false
	}

	if !other.Valid() {
		return true
	}

	return r < other
}

// Stronger returns the relationship that wins the merge.
func Stronger(a, b Relationship) Relationship {
	if b.Outranks(a) {
		return b
	}

	return a
}

// ParseRelationship parses names like "DIRECT" or "transitive-subtype".
func ParseRelationship(value string) (Relationship, error) {
	name := strings.ToUpper(strings.TrimSpace(value))
	name = strings.ReplaceAll(name, "-", "_")

	for rel, relName := range relationshipNames {
		if rel.Valid() && relName == name {
			return rel, nil
		}
	}

	return RelationshipNone, fmt.Errorf("unknown relationship %q", value)
}

// MarshalText implements encoding.TextMarshaler.
func (r Relationship) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid relationship %d", int(r))
	}

	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Relationship) UnmarshalText(text []byte) error {
	rel, err := ParseRelationship(string(text))
	if err != nil {
		return err
	}

	*r = rel

	return nil
}
