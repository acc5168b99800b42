package dental

import (
	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

// ModelFor maps one Bonusheft bundle entry to its presentation model.
func ModelFor(e fhir.Entry, b *fhir.Bundle, cat *terminology.Catalog) (viewmodel.Model, bool) {
	switch r := e.Resource.(type) {
	case fhir.Patient:
		return NewPatientModel(r, e.FullURL, b), true
	case fhir.Organization:
		return NewOrganizationModel(r, e.FullURL, b), true
	case fhir.Observation:
		if r.Variant == fhir.DentalGaplessDocumentation {
			return NewGaplessModel(r, e.FullURL, b), true
		}
		return NewBonusModel(r, e.FullURL, b, cat), true
	}
	return nil, false
}

// Overview lists the top-level models of a Bonusheft bundle: the insured
// person, the examination group and, when present, the gapless
// documentation statement.
func Overview(b *fhir.Bundle, cat *terminology.Catalog) []viewmodel.Model {
	var out []viewmodel.Model
	if e, ok := fhir.GetEntry(b, fhir.Variants(fhir.DentalPatient)); ok {
		if p, ok := e.Resource.(fhir.Patient); ok {
			out = append(out, NewPatientModel(p, e.FullURL, b))
		}
	}
	out = append(out, BonusGroup(b, cat))
	if e, ok := fhir.GetEntry(b, fhir.Variants(fhir.DentalGaplessDocumentation)); ok {
		if o, ok := e.Resource.(fhir.Observation); ok {
			out = append(out, NewGaplessModel(o, e.FullURL, b))
		}
	}
	return out
}
