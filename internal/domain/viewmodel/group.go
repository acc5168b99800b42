package viewmodel

import (
	"fmt"
	"sort"
)

// EmptyGroupHint renders the localized placeholder row of a group with
// no content.
func EmptyGroupHint(headline string) Value {
	return Value{
		Value:    fmt.Sprintf("Unter '%s' sind keine Einträge vorhanden", headline),
		RenderAs: RenderHint,
	}
}

// GroupModel wraps an unordered collection of entry rows under one
// headline. The comparator orders the rows; ties keep their input order.
// A group with no rows substitutes a single hint row — individual leaf
// models never do this, only group wrappers.
type GroupModel struct {
	Base
}

// NewGroup builds a group model. less may be nil for input order.
func NewGroup(headline string, rows []Value, less func(a, b Value) bool) *GroupModel {
	sorted := make([]Value, len(rows))
	copy(sorted, rows)
	if less != nil {
		sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	}
	if len(sorted) == 0 {
		sorted = []Value{EmptyGroupHint(headline)}
	}
	return &GroupModel{Base: NewBase(headline, sorted)}
}

// IsEmpty reports whether the group holds only the placeholder row.
func (g *GroupModel) IsEmpty() bool {
	vs := g.Values()
	return len(vs) == 1 && vs[0].RenderAs == RenderHint
}
