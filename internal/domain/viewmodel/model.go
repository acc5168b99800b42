package viewmodel

import "strings"

// Base carries the state every concrete model shares. Concrete models
// populate it fully in their constructor; afterwards it is read-only.
type Base struct {
	headline string
	values   []Value
}

// NewBase builds the shared model state.
func NewBase(headline string, values []Value) Base {
	return Base{headline: headline, values: values}
}

func (m *Base) Headline() string { return m.headline }

func (m *Base) Values() []Value { return m.values }

// MainValue defaults to the first value row; models with a more useful
// one-line summary shadow this.
func (m *Base) MainValue() Value {
	if len(m.values) == 0 {
		return Value{Label: m.headline, Value: ""}
	}
	return m.values[0]
}

// String renders the headline and every label/value pair as plain text.
func (m *Base) String() string {
	var b strings.Builder
	b.WriteString(m.headline)
	for _, v := range m.values {
		b.WriteString("\n")
		b.WriteString(v.Label)
		b.WriteString(": ")
		b.WriteString(v.Value)
	}
	return b.String()
}
