package domain

import (
	"fmt"

	m "tia.dev/pkg/tia/internal/model"
)

// SweepKind identifies one of the reachability sweeps seeded from a change set.
type SweepKind int

// Available sweeps.
const (
	SweepDirect SweepKind = iota
	SweepUsage
	SweepSubtype
	SweepSupertype
)

func (k SweepKind) String() string {
	switch k {
	case SweepDirect:
		return "direct"
	case SweepUsage:
		return "usage"
	case SweepSubtype:
		return "subtype"
	case SweepSupertype:
		return "supertype"
	}

	return fmt.Sprintf("SweepKind(%d)", int(k))
}

// Classify maps the depth at which a sweep reached a node to a relationship.
//
// Depth 1 is the closest hop from the change set; anything deeper is
// transitive. The direct sweep only emits changed nodes themselves, so it
// classifies every depth as Direct. Non-positive depths on the other sweeps
// denote the change set itself and yield RelationshipNone.
func Classify(depth int, kind SweepKind) m.Relationship {
	if kind == SweepDirect {
		return m.Direct
	}

	if depth < 1 {
		return m.RelationshipNone
	}

	near := depth == 1

	switch kind {
	case SweepUsage:
		if near {
			return m.Direct
		}

		return m.TransitiveDirect
	case SweepSubtype:
		if near {
			return m.Subtype
		}

		return m.TransitiveSubtype
	case SweepSupertype:
		if near {
			return m.Supertype
		}

		return m.TransitiveSupertype
	}

	return m.RelationshipNone
}
