package maternity

import (
	"testing"

	"github.com/miokit/mioviewer/internal/domain/viewmodel"
	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

const maternityBundleJSON = `{
  "resourceType": "Bundle",
  "id": "mutterpass-1",
  "type": "document",
  "entry": [
    {
      "fullUrl": "urn:uuid:dddd4444-0000-4000-8000-000000000001",
      "resource": {
        "resourceType": "Composition",
        "id": "comp-1",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Composition|1.1.0"]},
        "title": "Mutterpass"
      }
    },
    {
      "fullUrl": "urn:uuid:dddd4444-0000-4000-8000-000000000002",
      "resource": {
        "resourceType": "Patient",
        "id": "mother-1",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Patient_Mother|1.1.0"]},
        "name": [
          {"use": "official", "family": "Beispiel", "given": ["Julia"]},
          {"use": "maiden", "family": "Muster"}
        ],
        "birthDate": "1992-05-20",
        "identifier": [{"system": "http://fhir.de/NamingSystem/gkv/kvid-10", "value": "B112233445"}],
        "address": [{"type": "both", "city": "Köln", "postalCode": "50667"}]
      }
    },
    {
      "fullUrl": "urn:uuid:dddd4444-0000-4000-8000-000000000003",
      "resource": {
        "resourceType": "Patient",
        "id": "child-1",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Patient_Child|1.1.0"]},
        "name": [{"use": "official", "family": "Beispiel"}],
        "gender": "unknown"
      }
    },
    {
      "fullUrl": "urn:uuid:dddd4444-0000-4000-8000-000000000004",
      "resource": {
        "resourceType": "Practitioner",
        "id": "pract-1",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Practitioner|1.1.0"]},
        "name": [{"use": "official", "family": "Keller", "given": ["Ute"], "prefix": ["Dr."]}],
        "qualification": [{"code": {"coding": [{"system": "urn:oid:1.2.276.0.76.5.514", "code": "511"}]}}]
      }
    },
    {
      "fullUrl": "urn:uuid:dddd4444-0000-4000-8000-000000000005",
      "resource": {
        "resourceType": "Observation",
        "id": "obs-weight",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Observation_Examination|1.1.0"]},
        "status": "final",
        "code": {"coding": [{"system": "http://loinc.org", "code": "8280-0"}]},
        "subject": {"reference": "urn:uuid:dddd4444-0000-4000-8000-000000000002"},
        "effectiveDateTime": "2023-02-10",
        "valueQuantity": {"value": 68.5, "unit": "kg"},
        "performer": [{"reference": "urn:uuid:dddd4444-0000-4000-8000-000000000004"}]
      }
    },
    {
      "fullUrl": "urn:uuid:dddd4444-0000-4000-8000-000000000006",
      "resource": {
        "resourceType": "Observation",
        "id": "obs-fundus",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Observation_Examination|1.1.0"]},
        "status": "final",
        "code": {"coding": [{"system": "http://loinc.org", "code": "11881-0"}]},
        "subject": {"reference": "urn:uuid:dddd4444-0000-4000-8000-000000000002"},
        "effectiveDateTime": "20 SSW",
        "valueString": "2 QF über Symphyse"
      }
    }
  ]
}`

func maternityBundle(t *testing.T) *fhir.Bundle {
	t.Helper()
	b, err := fhir.ParseBundle([]byte(maternityBundleJSON))
	if err != nil {
		t.Fatalf("ParseBundle: %v", err)
	}
	return b
}

func findRow(t *testing.T, vs []viewmodel.Value, label string) viewmodel.Value {
	t.Helper()
	for _, v := range vs {
		if v.Label == label {
			return v
		}
	}
	t.Fatalf("no row labeled %q", label)
	return viewmodel.Value{}
}

func TestMotherAndChildVariants(t *testing.T) {
	b := maternityBundle(t)
	cat := terminology.NewCatalog()

	mother, ok := fhir.GetEntry(b, fhir.Variants(fhir.MaternityMother))
	if !ok {
		t.Fatal("mother not found")
	}
	m, ok := ModelFor(mother, b, cat)
	if !ok || m.Headline() != "Mutter" {
		t.Errorf("mother model headline = %q, want Mutter", m.Headline())
	}
	if got := findRow(t, m.Values(), "Geburtsname").Value; got != "Muster" {
		t.Errorf("Geburtsname = %q, want Muster", got)
	}

	child, ok := fhir.GetEntry(b, fhir.Variants(fhir.MaternityChild))
	if !ok {
		t.Fatal("child not found")
	}
	c, ok := ModelFor(child, b, cat)
	if !ok || c.Headline() != "Kind" {
		t.Errorf("child model headline = %q, want Kind", c.Headline())
	}
	if got := findRow(t, c.Values(), "Geschlecht").Value; got != "Unbekannt" {
		t.Errorf("Geschlecht = %q, want Unbekannt", got)
	}
}

func TestExaminationModel(t *testing.T) {
	b := maternityBundle(t)
	cat := terminology.NewCatalog()
	entries := fhir.GetEntries(b, fhir.Variants(fhir.MaternityExamination))
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	weight := NewExaminationModel(entries[0].Resource.(fhir.Observation), entries[0].FullURL, b, cat)
	tests := []struct {
		label string
		want  string
	}{
		{"Untersuchung", "Gewicht der Mutter"},
		{"Datum", "10.02.2023"},
		{"Ergebnis", "68,5 kg"},
		{"Untersucht durch", "Dr. Ute Keller"},
	}
	for _, tt := range tests {
		if got := findRow(t, weight.Values(), tt.label).Value; got != tt.want {
			t.Errorf("%s = %q, want %q", tt.label, got, tt.want)
		}
	}

	row := findRow(t, weight.Values(), "Untersucht durch")
	sub, ok := row.SubModels[0](b, row.SubEntry)
	if !ok {
		t.Fatal("practitioner factory did not resolve")
	}
	if got := findRow(t, sub.Values(), "Funktionsbezeichnung").Value; got != "FA Frauenheilkunde und Geburtshilfe" {
		t.Errorf("Funktionsbezeichnung = %q", got)
	}
}

func TestGestationalWeekPassthrough(t *testing.T) {
	b := maternityBundle(t)
	cat := terminology.NewCatalog()
	entries := fhir.GetEntries(b, fhir.Variants(fhir.MaternityExamination))

	fundus := NewExaminationModel(entries[1].Resource.(fhir.Observation), entries[1].FullURL, b, cat)
	if got := findRow(t, fundus.Values(), "Datum").Value; got != "20 SSW" {
		t.Errorf("Datum = %q, want verbatim %q", got, "20 SSW")
	}
	if got := findRow(t, fundus.Values(), "Ergebnis").Value; got != "2 QF über Symphyse" {
		t.Errorf("Ergebnis = %q, want passthrough", got)
	}
	// No performer documented.
	if got := findRow(t, fundus.Values(), "Untersucht durch").Value; got != "-" {
		t.Errorf("Untersucht durch = %q, want -", got)
	}
}

func TestExaminationGroupOrder(t *testing.T) {
	b := maternityBundle(t)
	g := ExaminationGroup(b, terminology.NewCatalog())

	rows := g.Values()
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	// Calendar dates sort before gestational-week rows.
	if rows[0].Value != "10.02.2023" || rows[1].Value != "20 SSW" {
		t.Errorf("order = [%q %q]", rows[0].Value, rows[1].Value)
	}
}

func TestOverview(t *testing.T) {
	b := maternityBundle(t)
	models := Overview(b, terminology.NewCatalog())
	if len(models) != 3 {
		t.Fatalf("len(models) = %d, want 3", len(models))
	}
	if models[0].Headline() != "Mutter" || models[1].Headline() != "Kind" {
		t.Errorf("headlines = %q, %q", models[0].Headline(), models[1].Headline())
	}
}
