// Package terminology translates coded MIO values into the German display
// strings the viewer renders. Concept maps are consulted in a fixed
// priority order, value sets serve as the fallback source.
package terminology

// Target is one translated display for a source code.
type Target struct {
	Code    string
	Display string
}

// ConceptMap maps a source code system's codes to translated displays.
// Multiple maps are consulted in caller-given order; the first map that
// produces any mapped value wins per code.
type ConceptMap struct {
	ID       string
	URL      string
	Source   string
	Target   string
	Mappings map[string][]Target
}

// NewConceptMap builds a map from (code, display) pairs sharing one
// source/target system.
func NewConceptMap(id, source, target string, pairs map[string]string) *ConceptMap {
	cm := &ConceptMap{
		ID:       id,
		URL:      "https://fhir.kbv.de/ConceptMap/" + id,
		Source:   source,
		Target:   target,
		Mappings: make(map[string][]Target, len(pairs)),
	}
	for code, display := range pairs {
		cm.Mappings[code] = []Target{{Code: code, Display: display}}
	}
	return cm
}

// Translate returns every mapped display for the code, or nil when the
// map has no entry for it.
func (cm *ConceptMap) Translate(code string) []string {
	targets, ok := cm.Mappings[code]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(targets))
	for _, t := range targets {
		if t.Display != "" {
			out = append(out, t.Display)
		}
	}
	return out
}

// TranslateCode consults the maps in order and returns the first map's
// results; an empty result means no map knows the code.
func TranslateCode(code string, maps ...*ConceptMap) []string {
	if code == "" {
		return nil
	}
	for _, cm := range maps {
		if cm == nil {
			continue
		}
		if out := cm.Translate(code); len(out) > 0 {
			return out
		}
	}
	return nil
}

// MultiTranslateCode translates several codes against the same map chain,
// one result slice per input code, positions preserved.
func MultiTranslateCode(codes []string, maps ...*ConceptMap) [][]string {
	out := make([][]string, len(codes))
	for i, c := range codes {
		out[i] = TranslateCode(c, maps...)
	}
	return out
}
