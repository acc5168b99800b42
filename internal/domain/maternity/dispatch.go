package maternity

import (
	"time"

	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

// ModelFor maps one Mutterpass bundle entry to its presentation model.
// The mother/child split dispatches on the profile variant, not on the
// resource kind.
func ModelFor(e fhir.Entry, b *fhir.Bundle, cat *terminology.Catalog) (viewmodel.Model, bool) {
	switch r := e.Resource.(type) {
	case fhir.Patient:
		if r.Variant == fhir.MaternityChild {
			return NewChildModel(r, e.FullURL, b), true
		}
		return NewMotherModel(r, e.FullURL, b), true
	case fhir.Practitioner:
		return NewPractitionerModel(r, e.FullURL, b, cat), true
	case fhir.Organization:
		return NewOrganizationModel(r, e.FullURL, b), true
	case fhir.Observation:
		return NewExaminationModel(r, e.FullURL, b, cat), true
	}
	return nil, false
}

// Overview lists the top-level models of a Mutterpass bundle: the
// mother, every child and the examination group.
func Overview(b *fhir.Bundle, cat *terminology.Catalog) []viewmodel.Model {
	var out []viewmodel.Model
	if e, ok := fhir.GetEntry(b, fhir.Variants(fhir.MaternityMother)); ok {
		if p, ok := e.Resource.(fhir.Patient); ok {
			out = append(out, NewMotherModel(p, e.FullURL, b))
		}
	}
	for _, e := range fhir.GetEntries(b, fhir.Variants(fhir.MaternityChild)) {
		if p, ok := e.Resource.(fhir.Patient); ok {
			out = append(out, NewChildModel(p, e.FullURL, b))
		}
	}
	out = append(out, ExaminationGroup(b, cat))
	return out
}

// ExaminationGroup collects the examinations, newest first. Rows whose
// date field holds a gestational week keep their input position at the
// end.
func ExaminationGroup(b *fhir.Bundle, cat *terminology.Catalog) *viewmodel.GroupModel {
	entries := fhir.GetEntries(b, fhir.Variants(fhir.MaternityExamination))
	rows := make([]viewmodel.Value, 0, len(entries))
	for _, e := range entries {
		o, ok := e.Resource.(fhir.Observation)
		if !ok {
			continue
		}
		m := NewExaminationModel(o, e.FullURL, b, cat)
		row := m.MainValue()
		row.Href = viewmodel.EntryPath(b.ID, fhir.NewRef(e.FullURL))
		row.RenderAs = viewmodel.RenderLink
		row.SubEntry = fhir.NewRef(e.FullURL)
		row.SubModels = []viewmodel.Factory{ExaminationFactory(cat)}
		rows = append(rows, row)
	}
	return viewmodel.NewGroup("Untersuchungen", rows, dateDesc)
}

// ExaminationFactory lazily instantiates the full examination model
// behind a group row.
func ExaminationFactory(cat *terminology.Catalog) viewmodel.Factory {
	return func(b *fhir.Bundle, ref fhir.Ref) (viewmodel.Model, bool) {
		e, ok := fhir.Resolve(b, fhir.Variants(fhir.MaternityExamination), ref)
		if !ok {
			return nil, false
		}
		o, ok := e.Resource.(fhir.Observation)
		if !ok {
			return nil, false
		}
		return NewExaminationModel(o, e.FullURL, b, cat), true
	}
}

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
