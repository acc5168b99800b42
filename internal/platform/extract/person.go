package extract

import (
	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

// GenderDisplay localizes an administrative gender code.
func GenderDisplay(gender string) string {
	switch gender {
	case "male":
		return "Männlich"
	case "female":
		return "Weiblich"
	case "other", "divers":
		return "Divers"
	case "unknown":
		return "Unbekannt"
	case "":
		return NoValue
	default:
		return gender
	}
}

// Well-known identifier systems.
const (
	SystemKVNR = "http://fhir.de/NamingSystem/gkv/kvid-10"
	SystemLANR = "https://fhir.kbv.de/NamingSystem/KBV_NS_Base_ANR"
	SystemIKNR = "http://fhir.de/NamingSystem/arge-ik/iknr"
)

// IdentifierValue returns the value of the identifier with the given
// system.
func IdentifierValue(ids []fhir.Identifier, system string) string {
	id, ok := fhir.GetSlice(ids, func(i fhir.Identifier) bool { return i.System == system })
	if !ok || id.Value == "" {
		return NoValue
	}
	return id.Value
}

// QualificationDisplay resolves a practitioner's first qualification
// through the qualification value sets, with the usual coding fallbacks.
func QualificationDisplay(quals []fhir.Qualification, sets []*terminology.ValueSet) string {
	if len(quals) == 0 {
		return NoValue
	}
	return terminology.ResolveCodeableConcept(quals[0].Code, terminology.Options{Sets: sets})
}
