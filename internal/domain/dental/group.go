package dental

import (
	"time"

	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

// BonusGroup collects the bonus examinations of the booklet, newest
// first.
func BonusGroup(b *fhir.Bundle, cat *terminology.Catalog) *viewmodel.GroupModel {
	entries := fhir.GetEntries(b, fhir.Variants(fhir.DentalCheckUp))
	rows := make([]viewmodel.Value, 0, len(entries))
	for _, e := range entries {
		o, ok := e.Resource.(fhir.Observation)
		if !ok {
			continue
		}
		m := NewBonusModel(o, e.FullURL, b, cat)
		row := m.MainValue()
		row.Href = viewmodel.EntryPath(b.ID, fhir.NewRef(e.FullURL))
		row.RenderAs = viewmodel.RenderLink
		row.SubEntry = fhir.NewRef(e.FullURL)
		row.SubModels = []viewmodel.Factory{BonusFactory(cat)}
		rows = append(rows, row)
	}
	return viewmodel.NewGroup("Bonusheft-Einträge", rows, dateDesc)
}

// BonusFactory lazily instantiates the full examination model behind a
// group row.
func BonusFactory(cat *terminology.Catalog) viewmodel.Factory {
	return func(b *fhir.Bundle, ref fhir.Ref) (viewmodel.Model, bool) {
		e, ok := fhir.Resolve(b, fhir.Variants(fhir.DentalCheckUp), ref)
		if !ok {
			return nil, false
		}
		o, ok := e.Resource.(fhir.Observation)
		if !ok {
			return nil, false
		}
		return NewBonusModel(o, e.FullURL, b, cat), true
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
