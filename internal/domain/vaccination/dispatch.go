package vaccination

import (
	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

// ModelFor maps one Impfpass bundle entry to its presentation model.
// Entries without a display form (the composition) report false.
func ModelFor(e fhir.Entry, b *fhir.Bundle, cat *terminology.Catalog) (viewmodel.Model, bool) {
	switch r := e.Resource.(type) {
	case fhir.Patient:
		return NewPatientModel(r, e.FullURL, b), true
	case fhir.Practitioner:
		return NewPractitionerModel(r, e.FullURL, b, cat), true
	case fhir.Organization:
		return NewOrganizationModel(r, e.FullURL, b), true
	case fhir.Immunization:
		return NewRecordModel(r, e.FullURL, b, cat), true
	case fhir.Condition:
		return NewConditionModel(r, e.FullURL, b, cat), true
	}
	return nil, false
}

// Overview lists the top-level models of an Impfpass bundle: the
// patient followed by the vaccination and illness groups.
func Overview(b *fhir.Bundle, cat *terminology.Catalog) []viewmodel.Model {
	var out []viewmodel.Model
	if e, ok := fhir.GetEntry(b, fhir.Variants(
		fhir.VaccinationPatientV1_0,
		fhir.VaccinationPatientV1_1,
	)); ok {
		if p, ok := e.Resource.(fhir.Patient); ok {
			out = append(out, NewPatientModel(p, e.FullURL, b))
		}
	}
	out = append(out, RecordGroup(b, cat), ConditionGroup(b, cat))
	return out
}
