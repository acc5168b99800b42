// Package maternity projects Mutterpass resources into presentation
// models: the mother, her children, the examinations and the attending
// parties. Gestational-week values appear in date-typed fields and pass
// through verbatim.
package maternity

import (
	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/extract"
	"github.com/miokit/mioviewer/internal/platform/fhir"
)

// MotherModel presents the pregnant person the record belongs to.
type MotherModel struct {
	viewmodel.Base
}

func NewMotherModel(p fhir.Patient, fullURL string, b *fhir.Bundle) *MotherModel {
	addr := extract.AddressInfo(p.Address)
	values := []viewmodel.Value{
		{Label: "Name", Value: extract.FullName(p.Name)},
		{Label: "Geburtsname", Value: extract.MaidenFamilyName(p.Name)},
		{Label: "Geburtsdatum", Value: extract.FormatDate(p.BirthDate)},
		{Label: "Versichertennummer", Value: extract.IdentifierValue(p.Identifier, extract.SystemKVNR)},
		{Label: "Wohnort", Value: addr.City},
	}
	return &MotherModel{Base: viewmodel.NewBase("Mutter", values)}
}

// ChildModel presents a child of the pregnancy. A maternity record may
// hold several (multiple births); the child patient carries no insurance
// identity of its own.
type ChildModel struct {
	viewmodel.Base
}

func NewChildModel(p fhir.Patient, fullURL string, b *fhir.Bundle) *ChildModel {
	values := []viewmodel.Value{
		{Label: "Name", Value: extract.FullName(p.Name)},
		{Label: "Geburtsdatum", Value: extract.FormatDate(p.BirthDate)},
		{Label: "Geschlecht", Value: extract.GenderDisplay(p.Gender)},
	}
	return &ChildModel{Base: viewmodel.NewBase("Kind", values)}
}
