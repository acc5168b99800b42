// Package viewmodel defines the presentation-model contract: every MIO
// resource is projected into a headline plus an ordered list of labeled
// values, cheap to rebuild on every navigation and immutable once built.
package viewmodel

import "github.com/miokit/mioviewer/internal/platform/fhir"

// Render hints for a value row.
const (
	RenderDefault = ""
	RenderLink    = "link"
	RenderHint    = "hint"
)

// Factory lazily instantiates a sub-model for a referenced entry. The
// factory resolves the reference against the shared bundle itself; a
// false return means the reference did not resolve to a usable resource.
type Factory func(b *fhir.Bundle, ref fhir.Ref) (Model, bool)

// Value is one labeled, displayable fact. SubEntry is a weak reference
// into the shared bundle, re-resolved at render time through the
// SubModels factories; the referenced resource is never copied or owned.
type Value struct {
	Label     string
	Value     string
	Href      string
	RenderAs  string
	SubEntry  fhir.Ref
	SubModels []Factory
}

// HasSubModels reports whether the row carries a drill-down target.
func (v Value) HasSubModels() bool {
	return !v.SubEntry.IsZero() && len(v.SubModels) > 0
}

// Model is what the UI and the PDF projector consume.
type Model interface {
	Headline() string
	Values() []Value
	// MainValue is the single-line summary used in list rendering.
	MainValue() Value
	// String renders the plain-text summary used for text export. Leaf
	// models without a text form panic with "not implemented".
	String() string
}
