package fhir

import "testing"

const vaccinationBundleJSON = `{
  "resourceType": "Bundle",
  "id": "impfpass-demo",
  "type": "document",
  "entry": [
    {
      "fullUrl": "urn:uuid:5c2b1bd4-5b9b-4b1a-9e41-3d4e9d9a0000",
      "resource": {"resourceType": "Binary"}
    },
    {
      "fullUrl": "urn:uuid:5c2b1bd4-5b9b-4b1a-9e41-3d4e9d9a0001",
      "resource": {
        "resourceType": "Composition",
        "id": "comp-1",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Composition_Prime|1.1.0"]},
        "title": "Impfpass"
      }
    },
    {
      "fullUrl": "urn:uuid:5c2b1bd4-5b9b-4b1a-9e41-3d4e9d9a0002",
      "resource": {
        "resourceType": "Patient",
        "id": "pat-1",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Patient|1.1.0"]},
        "name": [{"use": "official", "family": "Müller", "given": ["Anna"]}],
        "gender": "female",
        "birthDate": "1980-02-20"
      }
    },
    {
      "fullUrl": "urn:uuid:5c2b1bd4-5b9b-4b1a-9e41-3d4e9d9a0003",
      "resource": {
        "resourceType": "Immunization",
        "id": "imm-1",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Record_Prime|1.1.0"]},
        "status": "completed",
        "vaccineCode": {"coding": [{"system": "http://fhir.de/CodeSystem/ifa/pzn", "code": "11577012"}]},
        "occurrenceDateTime": "2021-06-15",
        "lotNumber": "AB1234",
        "patient": {"reference": "urn:uuid:5c2b1bd4-5b9b-4b1a-9e41-3d4e9d9a0002"}
      }
    }
  ]
}`

func TestParseBundle(t *testing.T) {
	b, err := ParseBundle([]byte(vaccinationBundleJSON))
	if err != nil {
		t.Fatalf("ParseBundle: %v", err)
	}
	if b.ID != "impfpass-demo" {
		t.Errorf("ID = %q, want impfpass-demo", b.ID)
	}
	// The unprofiled Binary entry is skipped.
	if len(b.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(b.Entries))
	}
	if b.Type() != MIOVaccination {
		t.Errorf("Type = %q, want %q", b.Type(), MIOVaccination)
	}
}

func TestParseBundleRejectsNonBundle(t *testing.T) {
	if _, err := ParseBundle([]byte(`{"resourceType": "Patient"}`)); err == nil {
		t.Error("expected error for non-bundle input")
	}
	if _, err := ParseBundle([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestGetEntryFirstMatch(t *testing.T) {
	b, err := ParseBundle([]byte(vaccinationBundleJSON))
	if err != nil {
		t.Fatal(err)
	}

	e, ok := GetEntry(b, Variants(VaccinationPatientV1_0, VaccinationPatientV1_1))
	if !ok {
		t.Fatal("patient entry not found")
	}
	p, ok := e.Resource.(Patient)
	if !ok {
		t.Fatalf("entry is %T, want Patient", e.Resource)
	}
	if p.Variant != VaccinationPatientV1_1 {
		t.Errorf("variant = %v, want VaccinationPatientV1_1", p.Variant)
	}
	if p.Gender != "female" {
		t.Errorf("gender = %q, want female", p.Gender)
	}
}

func TestGetEntriesAndComposition(t *testing.T) {
	b, err := ParseBundle([]byte(vaccinationBundleJSON))
	if err != nil {
		t.Fatal(err)
	}
	if got := GetEntries(b, Variants(VaccinationRecordPrime)); len(got) != 1 {
		t.Errorf("got %d record entries, want 1", len(got))
	}
	c, ok := b.Composition()
	if !ok {
		t.Fatal("composition not found")
	}
	if c.Title != "Impfpass" {
		t.Errorf("title = %q, want Impfpass", c.Title)
	}
}

func TestVariantOf(t *testing.T) {
	tests := []struct {
		profiles []string
		want     Variant
	}{
		{[]string{"https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Patient|1.00.000"}, VaccinationPatientV1_0},
		{[]string{"https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Patient|1.1.0"}, VaccinationPatientV1_1},
		{[]string{"https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_ZAEB_Patient|1.1.0"}, DentalPatient},
		{[]string{"https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Patient_Mother|1.0.0"}, MaternityMother},
		{[]string{"http://example.org/unknown"}, VariantUnknown},
		{nil, VariantUnknown},
	}
	for _, tt := range tests {
		if got := VariantOf(tt.profiles); got != tt.want {
			t.Errorf("VariantOf(%v) = %v, want %v", tt.profiles, got, tt.want)
		}
	}
}
