package fhir

import "testing"

func testBundle() *Bundle {
	return &Bundle{
		ID: "impfpass-1",
		Entries: []Entry{
			{
				FullURL: "urn:uuid:9a652ae3-4d2c-4c91-a923-9b4c6cbf0d94",
				Resource: Patient{Base: Base{ID: "pat-1", Variant: VaccinationPatientV1_1}},
			},
			{
				FullURL: "https://pvs.praxis.local/fhir/Practitioner/pr-1",
				Resource: Practitioner{Base: Base{ID: "pr-1", Variant: VaccinationPractitioner}},
			},
			{
				FullURL: "https://pvs.praxis.local/fhir/Organization/org-1",
				Resource: Organization{Base: Base{ID: "org-1", Variant: VaccinationOrganization}, Name: "Praxis Dr. Beyer"},
			},
			{
				FullURL: "https://pvs.praxis.local/fhir/Immunization/imm-1",
				Resource: Immunization{Base: Base{ID: "imm-1", Variant: VaccinationRecordPrime}},
			},
		},
	}
}

func TestResolveRoundTrip(t *testing.T) {
	// For any entry with fullUrl F, Resolve(bundle, {variant}, Ref(F))
	// must return that entry.
	b := testBundle()
	for _, e := range b.Entries {
		got, ok := Resolve(b, Variants(e.Resource.ProfileVariant()), NewRef(e.FullURL))
		if !ok {
			t.Fatalf("Resolve(%q) not found", e.FullURL)
		}
		if got.FullURL != e.FullURL {
			t.Errorf("Resolve(%q) = %q, want same entry", e.FullURL, got.FullURL)
		}
	}
}

func TestResolveRelativeAgainstBase(t *testing.T) {
	b := testBundle()
	base := "https://pvs.praxis.local/fhir/Immunization/imm-1"

	got, ok := Resolve(b, Variants(VaccinationPractitioner), NewRefWithBase("Practitioner/pr-1", base))
	if !ok {
		t.Fatal("relative reference did not resolve")
	}
	if got.Resource.ResourceID() != "pr-1" {
		t.Errorf("resolved %q, want pr-1", got.Resource.ResourceID())
	}
}

func TestResolveBareUUID(t *testing.T) {
	b := testBundle()
	got, ok := Resolve(b, Variants(VaccinationPatientV1_0, VaccinationPatientV1_1),
		NewRef("9a652ae3-4d2c-4c91-a923-9b4c6cbf0d94"))
	if !ok {
		t.Fatal("bare uuid reference did not resolve")
	}
	if got.Resource.ResourceID() != "pat-1" {
		t.Errorf("resolved %q, want pat-1", got.Resource.ResourceID())
	}
}

func TestResolveVariantFilter(t *testing.T) {
	b := testBundle()
	// The identity exists but the variant set excludes it.
	_, ok := Resolve(b, Variants(VaccinationOrganization), NewRef("https://pvs.praxis.local/fhir/Practitioner/pr-1"))
	if ok {
		t.Error("resolve should miss when variant not in allowed set")
	}
}

func TestResolveNotFoundIsNotAnError(t *testing.T) {
	b := testBundle()
	_, ok := Resolve(b, Variants(VaccinationPractitioner), NewRef("Practitioner/no-such"))
	if ok {
		t.Error("expected not-found")
	}
	_, ok = Resolve(b, Variants(VaccinationPractitioner), Ref{})
	if ok {
		t.Error("zero ref must not resolve")
	}
	_, ok = Resolve(nil, Variants(VaccinationPractitioner), NewRef("Practitioner/pr-1"))
	if ok {
		t.Error("nil bundle must not resolve")
	}
}

func TestResolveDuplicateTakesFirstByBundleOrder(t *testing.T) {
	b := testBundle()
	b.Entries = append(b.Entries, Entry{
		FullURL:  "https://other.system/fhir/Practitioner/pr-1",
		Resource: Practitioner{Base: Base{ID: "pr-1-dup", Variant: VaccinationPractitioner}},
	})

	got, ok := Resolve(b, Variants(VaccinationPractitioner), NewRef("Practitioner/pr-1"))
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Resource.ResourceID() != "pr-1" {
		t.Errorf("got %q, want first match pr-1", got.Resource.ResourceID())
	}
}

func TestResolveAllPreservesBundleOrder(t *testing.T) {
	b := testBundle()
	b.Entries = append(b.Entries, Entry{
		FullURL:  "https://pvs.praxis.local/fhir/Immunization/imm-2",
		Resource: Immunization{Base: Base{ID: "imm-2", Variant: VaccinationRecordPrime}},
	})

	got := ResolveAll(b, Variants(VaccinationRecordPrime), nil)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Resource.ResourceID() != "imm-1" || got[1].Resource.ResourceID() != "imm-2" {
		t.Errorf("order = %q, %q; want imm-1, imm-2",
			got[0].Resource.ResourceID(), got[1].Resource.ResourceID())
	}
}

func TestRefEqualByIdentity(t *testing.T) {
	a := NewRef("https://pvs.praxis.local/fhir/Practitioner/pr-1")
	rel := NewRefWithBase("Practitioner/pr-1", "https://pvs.praxis.local/fhir/Immunization/imm-1")
	if !a.Equal(rel) {
		t.Error("absolute and composed relative ref should be equal")
	}
	other := NewRef("https://pvs.praxis.local/fhir/Practitioner/pr-2")
	if a.Equal(other) {
		t.Error("different identities must not be equal")
	}
}

func TestRefCanonicalSerialization(t *testing.T) {
	tests := []struct {
		raw, base, want string
	}{
		{"urn:uuid:abc-def", "", "urn:uuid:abc-def"},
		{"https://x/fhir/Patient/1", "", "https://x/fhir/Patient/1"},
		{"Patient/1", "https://x/fhir/Immunization/2", "https://x/fhir/Patient/1"},
		{"9a652ae3-4d2c-4c91-a923-9b4c6cbf0d94", "", "urn:uuid:9a652ae3-4d2c-4c91-a923-9b4c6cbf0d94"},
		{"Patient/1", "", "Patient/1"},
	}
	for _, tt := range tests {
		if got := NewRefWithBase(tt.raw, tt.base).String(); got != tt.want {
			t.Errorf("NewRefWithBase(%q, %q) = %q, want %q", tt.raw, tt.base, got, tt.want)
		}
	}
}

func TestGetEntryWithRef(t *testing.T) {
	b := testBundle()
	tests := []struct {
		name      string
		raw, base string
		allowed   VariantSet
		wantFull  string
		wantOK    bool
	}{
		{
			"relative against referencing entry",
			"Practitioner/pr-1", "https://pvs.praxis.local/fhir/Immunization/imm-1",
			Variants(VaccinationPractitioner),
			"https://pvs.praxis.local/fhir/Practitioner/pr-1", true,
		},
		{
			"urn:uuid ignores base",
			"urn:uuid:9a652ae3-4d2c-4c91-a923-9b4c6cbf0d94", "https://pvs.praxis.local/fhir/Immunization/imm-1",
			Variants(VaccinationPatientV1_1),
			"urn:uuid:9a652ae3-4d2c-4c91-a923-9b4c6cbf0d94", true,
		},
		{
			"variant mismatch",
			"Practitioner/pr-1", "https://pvs.praxis.local/fhir/Immunization/imm-1",
			Variants(VaccinationOrganization),
			"", false,
		},
	}
	for _, tt := range tests {
		got, ok := GetEntryWithRef(b, tt.allowed, tt.raw, tt.base)
		if ok != tt.wantOK {
			t.Errorf("%s: ok = %v, want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if ok && got.FullURL != tt.wantFull {
			t.Errorf("%s: got %q, want %q", tt.name, got.FullURL, tt.wantFull)
		}
	}
}
