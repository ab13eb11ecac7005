package domain

import (
	"context"

	m "tia.dev/pkg/tia/internal/model"
)

// Graph is the read-only view of a type graph the engine traverses.
//
// Implementations must be safe for concurrent reads and must answer lookups
// in effectively constant time.
type Graph interface {
	Node(id m.TypeID) (m.TypeNode, bool)
	IsTest(id m.TypeID) bool
	Uses(id m.TypeID) []m.TypeID
	UsedBy(id m.TypeID) []m.TypeID
	Supertypes(id m.TypeID) []m.TypeID
	Subtypes(id m.TypeID) []m.TypeID
}

// contextCheckInterval is how many queue pops happen between ctx checks.
const contextCheckInterval = 256

// step is one edge direction a sweep follows.
type step struct {
	edge m.EdgeKind
	next func(Graph, m.TypeID) []m.TypeID
	// outgoing is true when neighbors are the targets of the underlying edge.
	outgoing bool
}

var (
	usedByStep     = step{edge: m.EdgeUses, next: Graph.UsedBy}
	subtypeStep    = step{edge: m.EdgeExtends, next: Graph.Subtypes}
	supertypeStep  = step{edge: m.EdgeExtends, next: Graph.Supertypes, outgoing: true}
	hierarchySteps = map[SweepKind]step{
		SweepSubtype:   subtypeStep,
		SweepSupertype: supertypeStep,
	}
)

// neighbors returns the next hop from id, failing on endpoints the graph does not know.
func (s step) neighbors(g Graph, id m.TypeID) ([]m.TypeID, error) {
	next := s.next(g, id)

	for _, n := range next {
		if _, ok := g.Node(n); ok {
			continue
		}

		from, to := n, id
		if s.outgoing {
			from, to = id, n
		}

		return nil, &m.GraphInconsistencyError{Edge: s.edge, From: from, To: to, Missing: n}
	}

	return next, nil
}

// depths maps reached nodes to the smallest depth they were found at.
type depths map[m.TypeID]int

// changeSetDepths places every changed node at depth zero.
func changeSetDepths(changed m.ChangeSet) depths {
	seeds := make(depths, changed.Len())
	for _, id := range changed.IDs() {
		seeds[id] = 0
	}

	return seeds
}

// expand returns the one-hop neighbors of seeds along s. A neighbor found at
// seed depth d is placed at d+cost; the smallest value wins. Changed nodes are
// never returned.
func expand(g Graph, s step, seeds depths, cost int, changed m.ChangeSet) (depths, error) {
	out := make(depths)

	for id, depth := range seeds {
		next, err := s.neighbors(g, id)
		if err != nil {
			return nil, err
		}

		for _, n := range next {
			if changed.Contains(n) {
				continue
			}

			if current, ok := out[n]; ok && current <= depth+cost {
				continue
			}

			out[n] = depth + cost
		}
	}

	return out, nil
}

// levelSweep traverses s from start, visiting nodes level by level so that
// every node keeps the minimum depth it can be reached at even when start
// holds nodes at different depths. Changed nodes act as the pre-seeded
// visited set and are never entered. Cycles terminate because a node is
// entered at most once.
func levelSweep(ctx context.Context, g Graph, s step, start depths, changed m.ChangeSet) (depths, error) {
	reached := make(depths, len(start))
	if len(start) == 0 {
		return reached, nil
	}

	levels := make(map[int][]m.TypeID)
	minLevel, maxLevel := -1, -1

	for id, depth := range start {
		levels[depth] = append(levels[depth], id)

		if minLevel < 0 || depth < minLevel {
			minLevel = depth
		}

		if depth > maxLevel {
			maxLevel = depth
		}
	}

	pops := 0

	for level := minLevel; level <= maxLevel; level++ {
		queue := levels[level]

		for _, id := range queue {
			pops++
			if pops%contextCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
			}

			if _, seen := reached[id]; seen || changed.Contains(id) {
				continue
			}

			reached[id] = level

			next, err := s.neighbors(g, id)
			if err != nil {
				return nil, err
			}

			for _, n := range next {
				if _, seen := reached[n]; seen || changed.Contains(n) {
					continue
				}

				levels[level+1] = append(levels[level+1], n)
				if level+1 > maxLevel {
					maxLevel = level + 1
				}
			}
		}

		delete(levels, level)
	}

	return reached, nil
}

// classifyTests turns reached depths into an impact result, keeping tests only.
func classifyTests(g Graph, reached depths, kind SweepKind) m.ImpactResult {
	result := make(m.ImpactResult)

	for id, depth := range reached {
		if !g.IsTest(id) {
			continue
		}

		result.Record(id, Classify(depth, kind))
	}

	return result
}

// directSweep marks changed test types as Direct.
func directSweep(g Graph, changed m.ChangeSet) m.ImpactResult {
	result := make(m.ImpactResult)

	for _, id := range changed.IDs() {
		if g.IsTest(id) {
			result.Record(id, Classify(0, SweepDirect))
		}
	}

	return result
}

// usageSweep follows incoming uses edges from the change set.
func usageSweep(ctx context.Context, g Graph, changed m.ChangeSet) (m.ImpactResult, error) {
	start, err := expand(g, usedByStep, changeSetDepths(changed), 1, changed)
	if err != nil {
		return nil, err
	}

	reached, err := levelSweep(ctx, g, usedByStep, start, changed)
	if err != nil {
		return nil, err
	}

	return classifyTests(g, reached, SweepUsage), nil
}

// hierarchySweep follows subtype or supertype edges from the change set and
// lets every node it reaches re-seed a structural-usage traversal.
//
// A hierarchy node at depth k keeps depth k; a type using it directly also
// gets depth k and each further uses hop adds one. A test of a direct
// subtype is therefore as close to the change as the subtype itself.
func hierarchySweep(ctx context.Context, g Graph, changed m.ChangeSet, kind SweepKind) (m.ImpactResult, error) {
	along := hierarchySteps[kind]

	start, err := expand(g, along, changeSetDepths(changed), 1, changed)
	if err != nil {
		return nil, err
	}

	family, err := levelSweep(ctx, g, along, start, changed)
	if err != nil {
		return nil, err
	}

	users, err := expand(g, usedByStep, family, 0, changed)
	if err != nil {
		return nil, err
	}

	for id, depth := range family {
		if current, ok := users[id]; !ok || depth < current {
			users[id] = depth
		}
	}

	reached, err := levelSweep(ctx, g, usedByStep, users, changed)
	if err != nil {
		return nil, err
	}

	return classifyTests(g, reached, kind), nil
}
