package fhir

import (
	"encoding/json"
	"fmt"
)

// MIOType identifies which of the supported document kinds a bundle holds.
type MIOType string

const (
	MIOVaccination MIOType = "vaccination"
	MIODental      MIOType = "dental"
	MIOMaternity   MIOType = "maternity"
	MIOPediatric   MIOType = "pediatric"
	MIOUnknown     MIOType = "unknown"
)

// Entry is one (identity, resource) pair inside a bundle.
type Entry struct {
	FullURL  string
	Resource Resource
}

// Bundle is the full document graph for one patient record: an ordered
// collection of entries with stable fullUrl identities. Bundles are
// materialized completely before any model construction starts and are
// never mutated afterwards.
type Bundle struct {
	ID      string
	Entries []Entry
}

// ParseBundle decodes a FHIR document bundle. Entries whose resource type
// or profile is not part of the supported MIO set are skipped; structural
// validation is the upstream parser's job, not ours.
func ParseBundle(data []byte) (*Bundle, error) {
	var raw struct {
		ResourceType string `json:"resourceType"`
		ID           string `json:"id,omitempty"`
		Identifier   *Identifier `json:"identifier,omitempty"`
		Entry        []struct {
			FullURL  string          `json:"fullUrl,omitempty"`
			Resource json.RawMessage `json:"resource,omitempty"`
		} `json:"entry,omitempty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	if raw.ResourceType != "Bundle" {
		return nil, fmt.Errorf("expected resourceType Bundle, got %q", raw.ResourceType)
	}

	b := &Bundle{ID: raw.ID}
	if b.ID == "" && raw.Identifier != nil {
		b.ID = raw.Identifier.Value
	}
	for _, e := range raw.Entry {
		if len(e.Resource) == 0 {
			continue
		}
		res, err := decodeResource(e.Resource)
		if err != nil {
			return nil, fmt.Errorf("decode entry %q: %w", e.FullURL, err)
		}
		if res == nil {
			continue
		}
		b.Entries = append(b.Entries, Entry{FullURL: e.FullURL, Resource: res})
	}
	return b, nil
}

// GetEntry returns the first entry whose variant is in the allowed set,
// in bundle order.
func GetEntry(b *Bundle, allowed VariantSet) (Entry, bool) {
	for _, e := range b.Entries {
		if allowed.Contains(e.Resource.ProfileVariant()) {
			return e, true
		}
	}
	return Entry{}, false
}

// GetEntries returns all entries whose variant is in the allowed set, in
// bundle order.
func GetEntries(b *Bundle, allowed VariantSet) []Entry {
	var out []Entry
	for _, e := range b.Entries {
		if allowed.Contains(e.Resource.ProfileVariant()) {
			out = append(out, e)
		}
	}
	return out
}

// Type inspects the bundle's composition to classify the document.
func (b *Bundle) Type() MIOType {
	for _, e := range b.Entries {
		switch e.Resource.ProfileVariant() {
		case VaccinationComposition:
			return MIOVaccination
		case DentalComposition:
			return MIODental
		case MaternityComposition:
			return MIOMaternity
		case PediatricComposition:
			return MIOPediatric
		}
	}
	return MIOUnknown
}

// Composition returns the bundle's composition entry, if present.
func (b *Bundle) Composition() (Composition, bool) {
	e, ok := GetEntry(b, Variants(
		VaccinationComposition, DentalComposition,
		MaternityComposition, PediatricComposition,
	))
	if !ok {
		return Composition{}, false
	}
	c, ok := e.Resource.(Composition)
	return c, ok
}
