package model

import "sort"

// ImpactResult maps every impacted test type to the relationship that reached it.
type ImpactResult map[TypeID]Relationship

// Record stores rel for id unless a stronger relationship is already present.
func (r ImpactResult) Record(id TypeID, rel Relationship) {
	if !rel.Valid() {
		return
	}

	if current, ok := r[id]; ok && !rel.Outranks(current) {
		return
	}

	r[id] = rel
}

// Tests returns the impacted test IDs sorted ascending.
func (r ImpactResult) Tests() []TypeID {
	ids := make([]TypeID, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// ByRelationship groups impacted test IDs per relationship, each group sorted.
func (r ImpactResult) ByRelationship() map[Relationship][]TypeID {
	groups := make(map[Relationship][]TypeID)
	for _, id := range r.Tests() {
		rel := r[id]
		groups[rel] = append(groups[rel], id)
	}

	return groups
}

// Filter returns the entries whose relationship is in include.
// An empty include keeps everything.
func (r ImpactResult) Filter(include ...Relationship) ImpactResult {
	filtered := make(ImpactResult, len(r))
	if len(include) == 0 {
		for id, rel := range r {
			filtered[id] = rel
		}

		return filtered
	}

	keep := make(map[Relationship]bool, len(include))
	for _, rel := range include {
		keep[rel] = true
	}

	for id, rel := range r {
		if keep[rel] {
			filtered[id] = rel
		}
	}

	return filtered
}

// ImpactedTest is an impacted test resolved against its graph node.
type ImpactedTest struct {
	Node         TypeNode
	Relationship Relationship
}
