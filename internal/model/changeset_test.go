package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewChangeSet(t *testing.T) {
	set := NewChangeSet("b", "a", "b", "")

	assert.Equal(t, 2, set.Len())
	assert.False(t, set.Empty())
	assert.True(t, set.Contains("a"))
	assert.True(t, set.Contains("b"))
	assert.False(t, set.Contains(""))
	assert.Equal(t, []TypeID{"a", "b"}, set.IDs())
}

func TestChangeSet_ZeroValue(t *testing.T) {
	var set ChangeSet

	assert.True(t, set.Empty())
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Contains("a"))
	assert.Empty(t, set.IDs())
}

func TestChangeSet_Union(t *testing.T) {
	left := NewChangeSet("a", "b")
	right := NewChangeSet("b", "c")

	union := left.Union(right)

	assert.Equal(t, []TypeID{"a", "b", "c"}, union.IDs())
	assert.Equal(t, []TypeID{"a", "b"}, left.IDs(), "operands are not modified")
	assert.Equal(t, []TypeID{"b", "c"}, right.IDs(), "operands are not modified")
}
