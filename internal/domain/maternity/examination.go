package maternity

import (
	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/extract"
	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

// ExaminationModel presents one maternity examination. The effective
// date may hold a gestational week ("20 SSW") instead of a calendar
// date; the formatter passes those through unchanged.
type ExaminationModel struct {
	viewmodel.Base
}

func NewExaminationModel(o fhir.Observation, fullURL string, b *fhir.Bundle, cat *terminology.Catalog) *ExaminationModel {
	values := []viewmodel.Value{
		{Label: "Untersuchung", Value: terminology.ResolveCodeableConcept(o.Code, terminology.Options{
			Maps: cat.MaternityMaps,
		})},
		{Label: "Datum", Value: extract.FormatDate(o.EffectiveDate)},
		{Label: "Ergebnis", Value: extract.ObservationValue(o, terminology.Options{})},
		performerValue(o, fullURL, b, cat),
	}
	return &ExaminationModel{Base: viewmodel.NewBase("Untersuchung", values)}
}

// MainValue summarizes as examination name against date or gestational
// week.
func (m *ExaminationModel) MainValue() viewmodel.Value {
	vs := m.Values()
	return viewmodel.Value{Label: vs[0].Value, Value: vs[1].Value}
}

func performerValue(o fhir.Observation, fullURL string, b *fhir.Bundle, cat *terminology.Catalog) viewmodel.Value {
	const label = "Untersucht durch"
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
	return fhir.Variants(fhir.MaternityPractitioner, fhir.MaternityOrganization)
}
