package terminology

// Concept is one (code, display) pair inside a value-set group.
type Concept struct {
	Code    string
	Display string
}

// Group is one include block of a value set: concepts from a single code
// system.
type Group struct {
	System   string
	Concepts []Concept
}

// ValueSet is a grouped enumeration of valid codes with display text,
// used as a translation fallback when no concept map matches.
type ValueSet struct {
	URL    string
	Name   string
	Groups []Group
}

// Lookup searches the set's groups for a concept with the given code and
// returns its display.
func (vs *ValueSet) Lookup(code string) (string, bool) {
	for _, g := range vs.Groups {
		for _, c := range g.Concepts {
			if c.Code == code {
				return c.Display, true
			}
		}
	}
	return "", false
}

// LookupInSets searches each value set in order; first hit wins.
func LookupInSets(code string, sets ...*ValueSet) (string, bool) {
	if code == "" {
		return "", false
	}
	for _, vs := range sets {
		if vs == nil {
			continue
		}
		if d, ok := vs.Lookup(code); ok {
			return d, true
		}
	}
	return "", false
}
