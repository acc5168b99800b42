package maternity

import (
	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/extract"
	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

// PractitionerModel presents the attending gynecologist or midwife.
type PractitionerModel struct {
	viewmodel.Base
}

func NewPractitionerModel(pr fhir.Practitioner, fullURL string, b *fhir.Bundle, cat *terminology.Catalog) *PractitionerModel {
	values := []viewmodel.Value{
		{Label: "Name", Value: extract.FullName(pr.Name)},
		{Label: "Funktionsbezeichnung", Value: extract.QualificationDisplay(pr.Qualification, cat.Qualification)},
		{Label: "Lebenslange Arztnummer", Value: extract.IdentifierValue(pr.Identifier, extract.SystemLANR)},
	}
	for _, t := range extract.Telecoms(pr.Telecom) {
		values = append(values, viewmodel.Value{
			Label:    t.Label,
			Value:    t.Value,
			Href:     t.Href,
			RenderAs: viewmodel.RenderLink,
		})
	}
	return &PractitionerModel{Base: viewmodel.NewBase("Behandelnde Person", values)}
}

// OrganizationModel presents the practice or clinic.
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
	return &OrganizationModel{Base: viewmodel.NewBase("Einrichtung", values)}
}

// PractitionerFactory lazily instantiates the practitioner sub-model
// behind a drill-down reference.
func PractitionerFactory(cat *terminology.Catalog) viewmodel.Factory {
	return func(b *fhir.Bundle, ref fhir.Ref) (viewmodel.Model, bool) {
		e, ok := fhir.Resolve(b, fhir.Variants(fhir.MaternityPractitioner), ref)
		if !ok {
			return nil, false
		}
		pr, ok := e.Resource.(fhir.Practitioner)
		if !ok {
			return nil, false
		}
		return NewPractitionerModel(pr, e.FullURL, b, cat), true
	}
}

// OrganizationFactory lazily instantiates the organization sub-model.
func OrganizationFactory() viewmodel.Factory {
	return func(b *fhir.Bundle, ref fhir.Ref) (viewmodel.Model, bool) {
		e, ok := fhir.Resolve(b, fhir.Variants(fhir.MaternityOrganization), ref)
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
