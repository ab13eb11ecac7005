package model

import "sort"

// ChangeSet is the immutable set of types flagged as directly modified.
type ChangeSet struct {
	ids map[TypeID]struct{}
}

// NewChangeSet builds a ChangeSet, collapsing duplicates and empty IDs.
func NewChangeSet(ids ...TypeID) ChangeSet {
	set := make(map[TypeID]struct{}, len(ids))

	for _, id := range ids {
		if id == "" {
			continue
		}

		set[id] = struct{}{}
	}

	return ChangeSet{ids: set}
}

// Len returns the number of changed types.
func (c ChangeSet) Len() int {
	return len(c.ids)
}

// Empty reports whether the change set has no types.
func (c ChangeSet) Empty() bool {
	return len(c.ids) == 0
}

// Contains reports whether id was changed.
func (c ChangeSet) Contains(id TypeID) bool {
	_, ok := c.ids[id]
	return ok
}

// IDs returns the changed type identifiers sorted ascending.
func (c ChangeSet) IDs() []TypeID {
	ids := make([]TypeID, 0, len(c.ids))
	for id := range c.ids {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Union returns a new change set holding the types of both sets.
func (c ChangeSet) Union(other ChangeSet) ChangeSet {
	ids := make([]TypeID, 0, c.Len()+other.Len())
	ids = append(ids, c.IDs()...)
	ids = append(ids, other.IDs()...)

	return NewChangeSet(ids...)
}

// ChangeStatus describes what a diff did to a file.
type ChangeStatus string

const (
	// FileAdded marks a file created by the diff.
	FileAdded ChangeStatus = "added"
	// FileModified marks a file edited in place.
	FileModified ChangeStatus = "modified"
	// FileDeleted marks a file removed by the diff.
	FileDeleted ChangeStatus = "deleted"
	// FileRenamed marks a file moved to a new name.
	FileRenamed ChangeStatus = "renamed"
)

// ChangedFile is one file touched by a diff, relative to the repository root.
type ChangedFile struct {
	Path    Path
	OldPath Path // set for renames
	Status  ChangeStatus
}
