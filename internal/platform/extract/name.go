// Package extract pulls single semantic facts out of MIO resource slices
// and extensions. Extractors never fail on absent data: internally they
// return ok-booleans, and the exported helpers degrade to the display
// sentinel only at the render boundary.
package extract

import (
	"strings"

	"github.com/miokit/mioviewer/internal/platform/fhir"
)

// NoValue is the display sentinel for an absent field.
const NoValue = "-"

// Extension URLs of the German extended family-name parts.
const (
	extNamenszusatz = "http://fhir.de/StructureDefinition/humanname-namenszusatz"
	extVorsatzwort  = "http://hl7.org/fhir/StructureDefinition/humanname-own-prefix"
	extNachname     = "http://hl7.org/fhir/StructureDefinition/humanname-own-name"
)

// FullName assembles the display name from the official-name slice:
// prefix, given name(s), family name, space-joined. Missing official
// slice or a slice with no usable parts yields the sentinel.
func FullName(names []fhir.HumanName) string {
	n, ok := fhir.OfficialName(names)
	if !ok {
		return NoValue
	}
	var parts []string
	if p, ok := namePrefix(n); ok {
		parts = append(parts, p)
	}
	if len(n.Given) > 0 {
		parts = append(parts, strings.Join(n.Given, " "))
	}
	if f, ok := familyName(n); ok {
		parts = append(parts, f)
	}
	if len(parts) == 0 {
		return NoValue
	}
	return strings.Join(parts, " ")
}

// MaidenFamilyName returns the family part of the maiden-name slice,
// resolved with the same literal-then-extensions algorithm as the
// official family name. Given names and prefixes are never included.
func MaidenFamilyName(names []fhir.HumanName) string {
	n, ok := fhir.MaidenName(names)
	if !ok {
		return NoValue
	}
	f, ok := familyName(n)
	if !ok {
		return NoValue
	}
	return f
}

// familyName resolves the family part: a literal family string wins;
// otherwise the structured parts are concatenated in the fixed order
// Namenszusatz, Vorsatzwort, Nachname, skipping absent parts.
func familyName(n fhir.HumanName) (string, bool) {
	if n.Family != "" {
		return n.Family, true
	}
	if n.FamilyEl == nil {
		return "", false
	}
	var parts []string
	for _, url := range []string{extNamenszusatz, extVorsatzwort, extNachname} {
		if e, ok := fhir.FindExtension(n.FamilyEl.Extension, url); ok && e.ValueString != "" {
			parts = append(parts, e.ValueString)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

// namePrefix returns the literal prefix when present. The KBV profiles
// decorate the prefix with an EN-qualifier extension, but the value
// itself always sits in the literal slice, so only the literal is read.
func namePrefix(n fhir.HumanName) (string, bool) {
	if len(n.Prefix) > 0 && n.Prefix[0] != "" {
		return n.Prefix[0], true
	}
	return "", false
}
