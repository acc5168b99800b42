package vaccination

import (
	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/extract"
	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

// ConditionModel presents an immunization-relevant illness
// (Erkrankung, die eine Immunität zur Folge hat).
type ConditionModel struct {
	viewmodel.Base
}

func NewConditionModel(c fhir.Condition, fullURL string, b *fhir.Bundle, cat *terminology.Catalog) *ConditionModel {
	note := extract.NoValue
	if len(c.Note) > 0 && c.Note[0].Text != "" {
		note = c.Note[0].Text
	}
	values := []viewmodel.Value{
		{Label: "Erkrankung", Value: terminology.ResolveCodeableConcept(c.Code, terminology.Options{
			Maps: cat.DiseaseMaps,
		})},
		{Label: "Erkrankt im Alter von / am", Value: extract.FormatDate(c.OnsetDate)},
		{Label: "Dokumentiert am", Value: extract.FormatDate(c.RecordedDate)},
		{Label: "Anmerkungen", Value: note},
	}
	return &ConditionModel{Base: viewmodel.NewBase("Erkrankung", values)}
}

// MainValue summarizes as disease against onset.
func (m *ConditionModel) MainValue() viewmodel.Value {
	vs := m.Values()
	return viewmodel.Value{Label: vs[0].Value, Value: vs[1].Value}
}

// String is a deliberate placeholder: the illness model has no
// plain-text export form.
func (m *ConditionModel) String() string {
	panic("not implemented")
}
