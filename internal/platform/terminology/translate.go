package terminology

import (
	"strings"

	"github.com/miokit/mioviewer/internal/platform/fhir"
)

// NoValue is the display sentinel for an absent or untranslatable value.
// It exists only at the render boundary; everything below it works with
// empty slices and ok-booleans.
const NoValue = "-"

// GermanDisplayExtension is the KBV extension carrying an explicit German
// display override on a coding. Its nested content extensions are
// concatenated recursively.
const GermanDisplayExtension = "https://fhir.kbv.de/StructureDefinition/KBV_EX_Base_Terminology_German"

// Options configures CodeableConcept resolution.
type Options struct {
	Maps      []*ConceptMap
	Sets      []*ValueSet
	Separator string // joins multi-coding results; default ", "
}

func (o Options) separator() string {
	if o.Separator == "" {
		return ", "
	}
	return o.Separator
}

// DisplayOverride extracts the embedded German display text of a coding,
// walking the extension tree and joining child display strings with ", ".
func DisplayOverride(c fhir.Coding) (string, bool) {
	var roots []fhir.Extension
	if c.DisplayEl != nil {
		roots = append(roots, c.DisplayEl.Extension...)
	}
	roots = append(roots, c.Extension...)

	ext, ok := fhir.FindExtension(roots, GermanDisplayExtension)
	if !ok {
		return "", false
	}
	parts := collectDisplayStrings(ext)
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

func collectDisplayStrings(ext fhir.Extension) []string {
	var out []string
	if ext.ValueString != "" {
		out = append(out, ext.ValueString)
	}
	for _, child := range ext.Extension {
		out = append(out, collectDisplayStrings(child)...)
	}
	return out
}

// TranslateCoding resolves one coding through the full priority chain:
// display override, concept maps, value sets, raw display, raw code.
// An empty result means the coding carries no usable value at all.
func TranslateCoding(c fhir.Coding, opts Options) []string {
	if d, ok := DisplayOverride(c); ok {
		return []string{d}
	}
	if out := TranslateCode(c.Code, opts.Maps...); len(out) > 0 {
		return out
	}
	if d, ok := LookupInSets(c.Code, opts.Sets...); ok {
		return []string{d}
	}
	if c.Display != "" {
		return []string{c.Display}
	}
	if c.Code != "" {
		return []string{c.Code}
	}
	return nil
}

// TranslateViaValueSets resolves a coding against value sets only,
// skipping the concept-map stage.
func TranslateViaValueSets(c fhir.Coding, sets ...*ValueSet) []string {
	return TranslateCoding(c, Options{Sets: sets})
}

// ResolveCodings returns the structured multi-value form: one translated
// sequence flattened over all codings, order-preserving deduplicated.
func ResolveCodings(concept fhir.CodeableConcept, opts Options) []string {
	var out []string
	seen := make(map[string]bool)
	for _, c := range concept.Coding {
		for _, d := range TranslateCoding(c, opts) {
			if d == "" || seen[d] {
				continue
			}
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

// ResolveCodeableConcept produces the single display string for a
// concept: translated codings joined with the separator, the free-text
// fallback when no codings exist, and the sentinel when nothing is
// usable.
func ResolveCodeableConcept(concept fhir.CodeableConcept, opts Options) string {
	if len(concept.Coding) == 0 {
		if concept.Text != "" {
			return concept.Text
		}
		return NoValue
	}
	resolved := ResolveCodings(concept, opts)
	if len(resolved) == 0 {
		if concept.Text != "" {
			return concept.Text
		}
		return NoValue
	}
	return strings.Join(resolved, opts.separator())
}
