package extract

import (
	"testing"

	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{"2021-06-15", "15.06.2021"},
		{"2021-06-15T10:30:00Z", "15.06.2021"},
		{"1980-02", "01.02.1980"},
		{"20 SSW", "20 SSW"},
		{"20+3 SSW", "20+3 SSW"},
		{"not-a-date", "not-a-date"},
		{"", NoValue},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.raw); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{"2021-06-15T10:30:00Z", "15.06.2021 - 10:30"},
		{"2021-06-15", "15.06.2021"}, // no time component, no suffix
		{"20 SSW", "20 SSW"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		if got := FormatDateTime(tt.raw); got != tt.want {
			t.Errorf("FormatDateTime(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestAddressInfoStreetSlice(t *testing.T) {
	addrs := []fhir.Address{{
		Type: fhir.AddressTypeStreet,
		Line: []string{"Musterweg 42a"},
		LineEl: []*fhir.Element{{Extension: []fhir.Extension{
			{URL: extStreetName, ValueString: "Musterweg"},
			{URL: extHouseNumber, ValueString: "42a"},
			{URL: extAdditionalLocator, ValueString: "Hinterhaus"},
		}}},
		City:       "Berlin",
		PostalCode: "10115",
		Country:    "D",
	}}

	info := AddressInfo(addrs)
	if info.Street != "Musterweg" || info.Number != "42a" || info.Addition != "Hinterhaus" {
		t.Errorf("street parts = %q %q %q", info.Street, info.Number, info.Addition)
	}
	if info.City != "Berlin" || info.PostalCode != "10115" || info.Country != "D" {
		t.Errorf("locality parts = %q %q %q", info.City, info.PostalCode, info.Country)
	}
	if info.Postbox != NoValue {
		t.Errorf("postbox = %q, want sentinel", info.Postbox)
	}
}

func TestAddressInfoPostboxFallback(t *testing.T) {
	addrs := []fhir.Address{{
		Type: fhir.AddressTypePostbox,
		Line: []string{"Postfach 1234"},
		LineEl: []*fhir.Element{{Extension: []fhir.Extension{
			{URL: extPostBox, ValueString: "Postfach 1234"},
		}}},
		City: "Hamburg",
	}}

	info := AddressInfo(addrs)
	if info.Postbox != "Postfach 1234" {
		t.Errorf("postbox = %q", info.Postbox)
	}
	if info.Street != NoValue || info.Number != NoValue {
		t.Errorf("street parts should stay sentinel, got %q %q", info.Street, info.Number)
	}
	if info.City != "Hamburg" {
		t.Errorf("city = %q", info.City)
	}
}

func TestAddressInfoEveryFieldDefaultsIndependently(t *testing.T) {
	info := AddressInfo(nil)
	for name, got := range map[string]string{
		"Street": info.Street, "Number": info.Number, "Addition": info.Addition,
		"Postbox": info.Postbox, "City": info.City, "PostalCode": info.PostalCode,
		"Country": info.Country,
	} {
		if got != NoValue {
			t.Errorf("%s = %q, want %q", name, got, NoValue)
		}
	}
}

func TestTelecoms(t *testing.T) {
	points := []fhir.ContactPoint{
		{System: "phone", Value: "030 1234567"},
		{System: "email", Value: "praxis@example.de"},
		{System: "url", Value: "praxis-beyer.de"},
		{System: "url", Value: "https://praxis-beyer.de"},
		{System: "fax", Value: "030 1234568"},
		{System: "pager", Value: "4711"},
		{System: "phone", Value: "030 1234567"}, // duplicate is kept
	}

	got := Telecoms(points)
	if len(got) != len(points) {
		t.Fatalf("got %d entries, want %d (no deduplication)", len(got), len(points))
	}

	want := []TelecomEntry{
		{System: "phone", Label: "Telefon", Value: "030 1234567", Href: "tel:030 1234567"},
		{System: "email", Label: "E-Mail", Value: "praxis@example.de", Href: "mailto:praxis@example.de"},
		{System: "url", Label: "Internet", Value: "praxis-beyer.de", Href: "https://praxis-beyer.de"},
		{System: "url", Label: "Internet", Value: "https://praxis-beyer.de", Href: "https://praxis-beyer.de"},
		{System: "fax", Label: "Fax", Value: "030 1234568", Href: "fax:030 1234568"},
		{System: "pager", Label: "Pager", Value: "4711", Href: "4711"},
		{System: "phone", Label: "Telefon", Value: "030 1234567", Href: "tel:030 1234567"},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGenderDisplay(t *testing.T) {
	tests := map[string]string{
		"male":    "Männlich",
		"female":  "Weiblich",
		"other":   "Divers",
		"unknown": "Unbekannt",
		"":        NoValue,
		"exotic":  "exotic",
	}
	for raw, want := range tests {
		if got := GenderDisplay(raw); got != want {
			t.Errorf("GenderDisplay(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestIdentifierValue(t *testing.T) {
	ids := []fhir.Identifier{
		{System: SystemLANR, Value: "123456789"},
		{System: SystemKVNR, Value: "A123456789"},
	}
	if got := IdentifierValue(ids, SystemKVNR); got != "A123456789" {
		t.Errorf("got %q", got)
	}
	if got := IdentifierValue(ids, SystemIKNR); got != NoValue {
		t.Errorf("got %q, want sentinel", got)
	}
	if got := IdentifierValue(nil, SystemKVNR); got != NoValue {
		t.Errorf("got %q, want sentinel", got)
	}
}

func TestQualificationDisplay(t *testing.T) {
	cat := terminology.NewCatalog()
	quals := []fhir.Qualification{{Code: fhir.CodeableConcept{Coding: []fhir.Coding{
		{System: terminology.SystemQualification, Code: "341"},
	}}}}

	if got := QualificationDisplay(quals, cat.Qualification); got != "FA Kinder- und Jugendmedizin" {
		t.Errorf("got %q", got)
	}
	if got := QualificationDisplay(nil, cat.Qualification); got != NoValue {
		t.Errorf("got %q, want sentinel", got)
	}
}
