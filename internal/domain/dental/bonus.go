// Package dental projects Bonusheft resources into presentation
// models: the insured person, the bonus examinations and the gapless
// documentation statement.
package dental

import (
	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/extract"
	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

// BonusModel presents one bonus examination entry.
type BonusModel struct {
	viewmodel.Base
}

func NewBonusModel(o fhir.Observation, fullURL string, b *fhir.Bundle, cat *terminology.Catalog) *BonusModel {
	values := []viewmodel.Value{
		{Label: "Datum", Value: extract.FormatDate(o.EffectiveDate)},
		{Label: "Untersuchung", Value: terminology.ResolveCodeableConcept(o.Code, terminology.Options{
			Maps: cat.DentalMaps,
		})},
		attesterValue(o, fullURL, b),
	}
	return &BonusModel{Base: viewmodel.NewBase("Bonusheft-Eintrag", values)}
}

// MainValue summarizes as examination type against date.
func (m *BonusModel) MainValue() viewmodel.Value {
	vs := m.Values()
	return viewmodel.Value{Label: vs[1].Value, Value: vs[0].Value}
}

// attesterValue builds the drill-down row for the attesting dental
// practice.
func attesterValue(o fhir.Observation, fullURL string, b *fhir.Bundle) viewmodel.Value {
	const label = "Durchgeführt von"
	if len(o.Performer) == 0 || o.Performer[0].Reference == "" {
		return viewmodel.Value{Label: label, Value: extract.NoValue}
	}
	ref := fhir.NewRefWithBase(o.Performer[0].Reference, fullURL)
	value := extract.NoValue
	if e, ok := fhir.Resolve(b, fhir.Variants(fhir.DentalOrganization), ref); ok {
		if org, ok := e.Resource.(fhir.Organization); ok && org.Name != "" {
			value = org.Name
		}
	}
	return viewmodel.Value{
		Label:     label,
		Value:     value,
		Href:      viewmodel.SubEntryPath(b.ID, fhir.NewRef(fullURL), ref),
		RenderAs:  viewmodel.RenderLink,
		SubEntry:  ref,
		SubModels: []viewmodel.Factory{OrganizationFactory()},
	}
}

// GaplessModel presents the gapless-documentation statement the dental
// practice issues when the booklet does not reach back to the first
// examination.
type GaplessModel struct {
	viewmodel.Base
}

func NewGaplessModel(o fhir.Observation, fullURL string, b *fhir.Bundle) *GaplessModel {
	values := []viewmodel.Value{
		{Label: "Lückenlose Dokumentation seit", Value: extract.ObservationValue(o, terminology.Options{})},
		{Label: "Datum der Erklärung", Value: extract.FormatDate(o.EffectiveDate)},
		attesterValue(o, fullURL, b),
	}
	return &GaplessModel{Base: viewmodel.NewBase("Lückenlose Dokumentation", values)}
}
