package dental

import (
	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/extract"
	"github.com/miokit/mioviewer/internal/platform/fhir"
)

// PatientModel presents the insured person of the booklet.
type PatientModel struct {
	viewmodel.Base
}

func NewPatientModel(p fhir.Patient, fullURL string, b *fhir.Bundle) *PatientModel {
	values := []viewmodel.Value{
		{Label: "Name", Value: extract.FullName(p.Name)},
		{Label: "Geburtsdatum", Value: extract.FormatDate(p.BirthDate)},
		{Label: "Versichertennummer", Value: extract.IdentifierValue(p.Identifier, extract.SystemKVNR)},
	}
	return &PatientModel{Base: viewmodel.NewBase("Versicherte Person", values)}
}

// OrganizationModel presents the attesting dental practice.
type OrganizationModel struct {
	viewmodel.Base
}

func NewOrganizationModel(org fhir.Organization, fullURL string, b *fhir.Bundle) *OrganizationModel {
	addr := extract.AddressInfo(org.Address)
	values := []viewmodel.Value{
		{Label: "Name", Value: orDash(org.Name)},
		{Label: "Institutionskennzeichen", Value: extract.IdentifierValue(org.Identifier, extract.SystemIKNR)},
		{Label: "Straße", Value: addr.Street},
		{Label: "Hausnummer", Value: addr.Number},
		{Label: "Postleitzahl", Value: addr.PostalCode},
		{Label: "Ort", Value: addr.City},
	}
	for _, t := range extract.Telecoms(org.Telecom) {
		values = append(values, viewmodel.Value{
			Label:    t.Label,
			Value:    t.Value,
			Href:     t.Href,
			RenderAs: viewmodel.RenderLink,
		})
	}
	return &OrganizationModel{Base: viewmodel.NewBase("Zahnärztliche Einrichtung", values)}
}

// OrganizationFactory lazily instantiates the dental practice sub-model
// behind a drill-down reference.
func OrganizationFactory() viewmodel.Factory {
	return func(b *fhir.Bundle, ref fhir.Ref) (viewmodel.Model, bool) {
		e, ok := fhir.Resolve(b, fhir.Variants(fhir.DentalOrganization), ref)
		if !ok {
			return nil, false
		}
		org, ok := e.Resource.(fhir.Organization)
		if !ok {
			return nil, false
		}
		return NewOrganizationModel(org, e.FullURL, b), true
	}
}

func orDash(s string) string {
	if s == "" {
		return extract.NoValue
	}
	return s
}
