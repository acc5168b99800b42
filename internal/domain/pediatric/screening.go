// Package pediatric projects Kinderuntersuchungsheft resources into
// presentation models: the child, the U1-U9 screening encounters and
// the performing parties.
package pediatric

import (
	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/extract"
	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

// ScreeningModel presents one early-detection examination (U1-U9).
type ScreeningModel struct {
	viewmodel.Base
}

func NewScreeningModel(o fhir.Observation, fullURL string, b *fhir.Bundle, cat *terminology.Catalog) *ScreeningModel {
	values := []viewmodel.Value{
		{Label: "Untersuchung", Value: terminology.ResolveCodeableConcept(o.Code, terminology.Options{
			Sets: cat.PediatricSets,
		})},
		{Label: "Datum", Value: extract.FormatDate(o.EffectiveDate)},
		{Label: "Ergebnis", Value: extract.ObservationValue(o, terminology.Options{})},
		performerValue(o, fullURL, b, cat),
	}
	return &ScreeningModel{Base: viewmodel.NewBase("Früherkennungsuntersuchung", values)}
}

// MainValue summarizes as examination number against date.
func (m *ScreeningModel) MainValue() viewmodel.Value {
	vs := m.Values()
	return viewmodel.Value{Label: vs[0].Value, Value: vs[1].Value}
}

func performerValue(o fhir.Observation, fullURL string, b *fhir.Bundle, cat *terminology.Catalog) viewmodel.Value {
	const label = "Durchgeführt von"
	if len(o.Performer) == 0 || o.Performer[0].Reference == "" {
		return viewmodel.Value{Label: label, Value: extract.NoValue}
	}
	ref := fhir.NewRefWithBase(o.Performer[0].Reference, fullURL)
	value := extract.NoValue
	if e, ok := fhir.Resolve(b, partyVariants(), ref); ok {
		switch r := e.Resource.(type) {
		case fhir.Practitioner:
			value = extract.FullName(r.Name)
		case fhir.Organization:
			if r.Name != "" {
				value = r.Name
			}
		}
	}
	return viewmodel.Value{
		Label:    label,
		Value:    value,
		Href:     viewmodel.SubEntryPath(b.ID, fhir.NewRef(fullURL), ref),
		RenderAs: viewmodel.RenderLink,
		SubEntry: ref,
		SubModels: []viewmodel.Factory{
			PractitionerFactory(cat),
			OrganizationFactory(),
		},
	}
}

func partyVariants() fhir.VariantSet {
	return fhir.Variants(fhir.PediatricPractitioner, fhir.PediatricOrganization)
}
