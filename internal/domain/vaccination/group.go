package vaccination

import (
	"time"

	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

// RecordGroup collects every vaccination entry of the bundle, newest
// first. Each row links to the entry detail path and carries a factory
// for the full record model.
func RecordGroup(b *fhir.Bundle, cat *terminology.Catalog) *viewmodel.GroupModel {
	entries := fhir.GetEntries(b, fhir.Variants(
		fhir.VaccinationRecordPrime,
		fhir.VaccinationRecordAddendum,
	))
	rows := make([]viewmodel.Value, 0, len(entries))
	for _, e := range entries {
		imm, ok := e.Resource.(fhir.Immunization)
		if !ok {
			continue
		}
		m := NewRecordModel(imm, e.FullURL, b, cat)
		row := m.MainValue()
		row.Href = viewmodel.EntryPath(b.ID, fhir.NewRef(e.FullURL))
		row.RenderAs = viewmodel.RenderLink
		row.SubEntry = fhir.NewRef(e.FullURL)
		row.SubModels = []viewmodel.Factory{RecordFactory(cat)}
		rows = append(rows, row)
	}
	return viewmodel.NewGroup("Impfungen", rows, dateDesc)
}

// ConditionGroup collects the immunization-relevant illnesses, newest
// first.
func ConditionGroup(b *fhir.Bundle, cat *terminology.Catalog) *viewmodel.GroupModel {
	entries := fhir.GetEntries(b, fhir.Variants(fhir.VaccinationCondition))
	rows := make([]viewmodel.Value, 0, len(entries))
	for _, e := range entries {
		c, ok := e.Resource.(fhir.Condition)
		if !ok {
			continue
		}
		m := NewConditionModel(c, e.FullURL, b, cat)
		row := m.MainValue()
		row.Href = viewmodel.EntryPath(b.ID, fhir.NewRef(e.FullURL))
		row.RenderAs = viewmodel.RenderLink
		row.SubEntry = fhir.NewRef(e.FullURL)
		row.SubModels = []viewmodel.Factory{ConditionFactory(cat)}
		rows = append(rows, row)
	}
	return viewmodel.NewGroup("Erkrankungen, die eine Immunität zur Folge haben", rows, dateDesc)
}

// RecordFactory lazily instantiates the full record model behind a
// group row.
func RecordFactory(cat *terminology.Catalog) viewmodel.Factory {
	return func(b *fhir.Bundle, ref fhir.Ref) (viewmodel.Model, bool) {
		e, ok := fhir.Resolve(b, fhir.Variants(
			fhir.VaccinationRecordPrime,
			fhir.VaccinationRecordAddendum,
		), ref)
		if !ok {
			return nil, false
		}
		imm, ok := e.Resource.(fhir.Immunization)
		if !ok {
			return nil, false
		}
		return NewRecordModel(imm, e.FullURL, b, cat), true
	}
}

// ConditionFactory lazily instantiates the illness model behind a group
// row.
func ConditionFactory(cat *terminology.Catalog) viewmodel.Factory {
	return func(b *fhir.Bundle, ref fhir.Ref) (viewmodel.Model, bool) {
		e, ok := fhir.Resolve(b, fhir.Variants(fhir.VaccinationCondition), ref)
		if !ok {
			return nil, false
		}
		c, ok := e.Resource.(fhir.Condition)
		if !ok {
			return nil, false
		}
		return NewConditionModel(c, e.FullURL, b, cat), true
	}
}

// dateDesc orders rows by their rendered date, newest first. Rows whose
// value is not a plain date (SSW values, placeholders) sort last in
// input order.
func dateDesc(a, b viewmodel.Value) bool {
	ta, oka := parseDisplayDate(a.Value)
	tb, okb := parseDisplayDate(b.Value)
	if oka != okb {
		return oka
	}
	if !oka {
		return false
	}
	return ta.After(tb)
}

func parseDisplayDate(s string) (time.Time, bool) {
	t, err := time.Parse("02.01.2006", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
