// Package vaccination projects Impfpass resources into presentation
// models: vaccination records (prime and addendum), the patient, the
// attesting and entering parties, and immunization-relevant illnesses.
package vaccination

import (
	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/extract"
	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

// Follow-up appointment extension on a vaccination record.
const extFollowUp = "https://fhir.kbv.de/StructureDefinition/KBV_EX_MIO_Vaccination_Follow_Up"

// Performer function codes: attester vs enterer.
const (
	performerAttester = "AP"
	performerEnterer  = "EP"
)

// RecordModel presents one vaccination entry (Impfung).
type RecordModel struct {
	viewmodel.Base
}

// NewRecordModel builds the record model from the resource, its bundle
// identity and the shared parent bundle. The addendum variant appends
// its informational-source and entry-type rows on top of the base set.
func NewRecordModel(imm fhir.Immunization, fullURL string, b *fhir.Bundle, cat *terminology.Catalog) *RecordModel {
	values := []viewmodel.Value{
		{Label: "Datum", Value: extract.FormatDate(imm.OccurrenceDate)},
		{Label: "Impfstoff", Value: terminology.ResolveCodeableConcept(imm.VaccineCode, terminology.Options{
			Maps: cat.VaccineMaps,
			Sets: cat.VaccineSets,
		})},
		{Label: "Impfung gegen", Value: targetDiseases(imm, cat)},
		{Label: "Chargennummer", Value: orDash(imm.LotNumber)},
		{Label: "Hersteller", Value: manufacturerName(imm, b)},
		{Label: "Terminvorschlag Folge- oder Auffrischimpfung", Value: followUpDate(imm)},
	}

	values = append(values, performerValues(imm, fullURL, b, cat)...)

	if imm.Variant == fhir.VaccinationRecordAddendum {
		source := extract.NoValue
		if imm.ReportOrigin != nil {
			source = terminology.ResolveCodeableConcept(*imm.ReportOrigin, terminology.Options{})
		}
		values = append(values,
			viewmodel.Value{Label: "Informationsquelle", Value: source},
			viewmodel.Value{Label: "Art des Eintrags", Value: "Nachtrag"},
		)
	}

	return &RecordModel{Base: viewmodel.NewBase("Impfung", values)}
}

// MainValue summarizes the record for list rendering: disease against
// date.
func (m *RecordModel) MainValue() viewmodel.Value {
	vs := m.Values()
	return viewmodel.Value{Label: vs[2].Value, Value: vs[0].Value}
}

func targetDiseases(imm fhir.Immunization, cat *terminology.Catalog) string {
	for _, p := range imm.ProtocolApplied {
		if len(p.TargetDisease) == 0 {
			continue
		}
		var all []string
		seen := make(map[string]bool)
		for _, td := range p.TargetDisease {
			for _, d := range terminology.ResolveCodings(td, terminology.Options{Maps: cat.DiseaseMaps}) {
				if !seen[d] {
					seen[d] = true
					all = append(all, d)
				}
			}
		}
		if len(all) > 0 {
			return join(all)
		}
	}
	return extract.NoValue
}

func manufacturerName(imm fhir.Immunization, b *fhir.Bundle) string {
	if imm.Manufacturer == nil {
		return extract.NoValue
	}
	if imm.Manufacturer.Display != "" {
		return imm.Manufacturer.Display
	}
	e, ok := fhir.Resolve(b, fhir.Variants(fhir.VaccinationOrganization),
		fhir.NewRef(imm.Manufacturer.Reference))
	if !ok {
		return extract.NoValue
	}
	org, ok := e.Resource.(fhir.Organization)
	if !ok || org.Name == "" {
		return extract.NoValue
	}
	return org.Name
}

func followUpDate(imm fhir.Immunization) string {
	e, ok := fhir.FindExtension(imm.Extension, extFollowUp)
	if !ok || e.ValueDate == "" {
		return extract.NoValue
	}
	return extract.FormatDate(e.ValueDate)
}

// performerValues builds the attester and enterer rows. Each resolved
// party becomes a drill-down row: a weak sub-entry reference plus lazy
// practitioner/organization factories, with the navigation path built
// from the canonical reference serialization.
func performerValues(imm fhir.Immunization, fullURL string, b *fhir.Bundle, cat *terminology.Catalog) []viewmodel.Value {
	out := []viewmodel.Value{
		performerValue("Impfung erfolgt durch", performerAttester, imm, fullURL, b, cat),
		performerValue("Eintrag erfolgt durch", performerEnterer, imm, fullURL, b, cat),
	}
	return out
}

func performerValue(label, function string, imm fhir.Immunization, fullURL string, b *fhir.Bundle, cat *terminology.Catalog) viewmodel.Value {
	perf, ok := fhir.GetSlice(imm.Performer, func(p fhir.ImmunizationPerformer) bool {
		if p.Function == nil {
			return false
		}
		_, match := fhir.GetSlice(p.Function.Coding, func(c fhir.Coding) bool { return c.Code == function })
		return match
	})
	if !ok || perf.Actor.Reference == "" {
		return viewmodel.Value{Label: label, Value: extract.NoValue}
	}

	ref := fhir.NewRefWithBase(perf.Actor.Reference, fullURL)
	value := extract.NoValue
	if e, found := fhir.Resolve(b, partyVariants(), ref); found {
		value = partyDisplay(e.Resource)
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
	return fhir.Variants(
		fhir.VaccinationPractitioner,
		fhir.VaccinationPractitionerAddendum,
		fhir.VaccinationOrganization,
	)
}

func partyDisplay(res fhir.Resource) string {
	switch r := res.(type) {
	case fhir.Practitioner:
		return extract.FullName(r.Name)
	case fhir.Organization:
		if r.Name != "" {
			return r.Name
		}
	}
	return extract.NoValue
}

func orDash(s string) string {
	if s == "" {
		return extract.NoValue
	}
	return s
}

func join(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}
