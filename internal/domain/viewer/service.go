// Package viewer is the application service behind the HTTP surface:
// it looks bundles up in the registry, dispatches entries to their
// document-type models and projects reports.
package viewer

import (
	"errors"

	"github.com/miokit/mioviewer/internal/domain/dental"
	"github.com/miokit/mioviewer/internal/domain/maternity"
	"github.com/miokit/mioviewer/internal/domain/pediatric"
	"github.com/miokit/mioviewer/internal/domain/vaccination"
	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/examples"
	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/pdf"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

var (
	ErrBundleNotFound  = errors.New("bundle not found")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrUnsupportedType = errors.New("unsupported document type")
)

type Service struct {
	reg       *examples.Registry
	cat       *terminology.Catalog
	projector pdf.Projector
}

func NewService(reg *examples.Registry, cat *terminology.Catalog, projector pdf.Projector) *Service {
	return &Service{reg: reg, cat: cat, projector: projector}
}

// BundleSummary is the list-rendering shape of a registered document.
type BundleSummary struct {
	ID      string       `json:"id"`
	Type    fhir.MIOType `json:"type"`
	Entries int          `json:"entries"`
}

// ListBundles summarizes every registered document in registry order.
func (s *Service) ListBundles() []BundleSummary {
	bundles := s.reg.List()
	out := make([]BundleSummary, 0, len(bundles))
	for _, b := range bundles {
		out = append(out, BundleSummary{ID: b.ID, Type: b.Type(), Entries: len(b.Entries)})
	}
	return out
}

// Bundle looks a document up by ID.
func (s *Service) Bundle(id string) (*fhir.Bundle, error) {
	b, ok := s.reg.Get(id)
	if !ok {
		return nil, ErrBundleNotFound
	}
	return b, nil
}

// Overview builds the top-level models of a document.
func (s *Service) Overview(bundleID string) ([]viewmodel.Model, error) {
	b, err := s.Bundle(bundleID)
	if err != nil {
		return nil, err
	}
	switch b.Type() {
	case fhir.MIOVaccination:
		return vaccination.Overview(b, s.cat), nil
	case fhir.MIODental:
		return dental.Overview(b, s.cat), nil
	case fhir.MIOMaternity:
		return maternity.Overview(b, s.cat), nil
	case fhir.MIOPediatric:
		return pediatric.Overview(b, s.cat), nil
	}
	return nil, ErrUnsupportedType
}

// EntryModel builds the detail model of one entry, addressed by its
// canonical reference serialization.
func (s *Service) EntryModel(bundleID, rawRef string) (viewmodel.Model, error) {
	b, err := s.Bundle(bundleID)
	if err != nil {
		return nil, err
	}
	e, ok := fhir.FindEntry(b, fhir.NewRef(rawRef))
	if !ok {
		return nil, ErrEntryNotFound
	}
	return s.modelFor(e, b)
}

// SubEntryModel builds the model of an entry reached through a parent
// row's drill-down reference. The parent's factories decide the shape;
// the first factory accepting the reference wins.
func (s *Service) SubEntryModel(bundleID, parentRef, rawRef string) (viewmodel.Model, error) {
	b, err := s.Bundle(bundleID)
	if err != nil {
		return nil, err
	}
	parent, ok := fhir.FindEntry(b, fhir.NewRef(parentRef))
	if !ok {
		return nil, ErrEntryNotFound
	}
	pm, err := s.modelFor(parent, b)
	if err != nil {
		return nil, err
	}
	target := fhir.NewRef(rawRef)
	for _, v := range pm.Values() {
		if !v.HasSubModels() || !v.SubEntry.Equal(target) {
			continue
		}
		for _, build := range v.SubModels {
			if m, ok := build(b, v.SubEntry); ok {
				return m, nil
			}
		}
	}
	return nil, ErrEntryNotFound
}

// ExportContent projects the whole document into the PDF content tree.
func (s *Service) ExportContent(bundleID string) (*pdf.Node, error) {
	b, err := s.Bundle(bundleID)
	if err != nil {
		return nil, err
	}
	models, err := s.Overview(bundleID)
	if err != nil {
		return nil, err
	}
	return s.projector.ProjectAll(b, models, []string{"report"}), nil
}

func (s *Service) modelFor(e fhir.Entry, b *fhir.Bundle) (viewmodel.Model, error) {
	var (
		m  viewmodel.Model
		ok bool
	)
	switch b.Type() {
	case fhir.MIOVaccination:
		m, ok = vaccination.ModelFor(e, b, s.cat)
	case fhir.MIODental:
		m, ok = dental.ModelFor(e, b, s.cat)
	case fhir.MIOMaternity:
		m, ok = maternity.ModelFor(e, b, s.cat)
	case fhir.MIOPediatric:
		m, ok = pediatric.ModelFor(e, b, s.cat)
	default:
		return nil, ErrUnsupportedType
	}
	if !ok {
		return nil, ErrEntryNotFound
	}
	return m, nil
}
