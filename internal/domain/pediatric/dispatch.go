package pediatric

import (
	"time"

	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

// ModelFor maps one Kinderuntersuchungsheft bundle entry to its
// presentation model.
func ModelFor(e fhir.Entry, b *fhir.Bundle, cat *terminology.Catalog) (viewmodel.Model, bool) {
	switch r := e.Resource.(type) {
	case fhir.Patient:
		return NewPatientModel(r, e.FullURL, b), true
	case fhir.Practitioner:
		return NewPractitionerModel(r, e.FullURL, b, cat), true
	case fhir.Organization:
		return NewOrganizationModel(r, e.FullURL, b), true
	case fhir.Observation:
		return NewScreeningModel(r, e.FullURL, b, cat), true
	}
	return nil, false
}

// Overview lists the top-level models of a Kinderuntersuchungsheft
// bundle: the child and the screening group.
func Overview(b *fhir.Bundle, cat *terminology.Catalog) []viewmodel.Model {
	var out []viewmodel.Model
	if e, ok := fhir.GetEntry(b, fhir.Variants(fhir.PediatricPatient)); ok {
		if p, ok := e.Resource.(fhir.Patient); ok {
			out = append(out, NewPatientModel(p, e.FullURL, b))
		}
	}
	out = append(out, ScreeningGroup(b, cat))
	return out
}

// ScreeningGroup collects the U1-U9 encounters, newest first.
func ScreeningGroup(b *fhir.Bundle, cat *terminology.Catalog) *viewmodel.GroupModel {
	entries := fhir.GetEntries(b, fhir.Variants(fhir.PediatricScreening))
	rows := make([]viewmodel.Value, 0, len(entries))
	for _, e := range entries {
		o, ok := e.Resource.(fhir.Observation)
		if !ok {
			continue
		}
		m := NewScreeningModel(o, e.FullURL, b, cat)
		row := m.MainValue()
		row.Href = viewmodel.EntryPath(b.ID, fhir.NewRef(e.FullURL))
		row.RenderAs = viewmodel.RenderLink
		row.SubEntry = fhir.NewRef(e.FullURL)
		row.SubModels = []viewmodel.Factory{ScreeningFactory(cat)}
		rows = append(rows, row)
	}
	return viewmodel.NewGroup("Früherkennungsuntersuchungen", rows, dateDesc)
}

// ScreeningFactory lazily instantiates the full screening model behind
// a group row.
func ScreeningFactory(cat *terminology.Catalog) viewmodel.Factory {
	return func(b *fhir.Bundle, ref fhir.Ref) (viewmodel.Model, bool) {
		e, ok := fhir.Resolve(b, fhir.Variants(fhir.PediatricScreening), ref)
		if !ok {
			return nil, false
		}
		o, ok := e.Resource.(fhir.Observation)
		if !ok {
			return nil, false
		}
		return NewScreeningModel(o, e.FullURL, b, cat), true
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
