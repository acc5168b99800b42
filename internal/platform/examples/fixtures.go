package examples

// builtinBundles holds one demo document per supported MIO type. The
// content mirrors the KBV example documents in reduced form.
var builtinBundles = []string{
	builtinVaccination,
	builtinDental,
	builtinMaternity,
	builtinPediatric,
}

const builtinVaccination = `{
  "resourceType": "Bundle",
  "id": "beispiel-impfpass",
  "type": "document",
  "entry": [
    {
      "fullUrl": "urn:uuid:10000000-0000-4000-8000-000000000001",
      "resource": {
        "resourceType": "Composition",
        "id": "comp-impfpass",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Composition_Prime|1.1.0"]},
        "title": "Impfpass"
      }
    },
    {
      "fullUrl": "urn:uuid:10000000-0000-4000-8000-000000000002",
      "resource": {
        "resourceType": "Patient",
        "id": "pat-impfpass",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Patient|1.1.0"]},
        "name": [{"use": "official", "family": "Musterfrau", "given": ["Erika"]}],
        "gender": "female",
        "birthDate": "1985-03-12",
        "identifier": [{"system": "http://fhir.de/NamingSystem/gkv/kvid-10", "value": "X123456789"}]
      }
    },
    {
      "fullUrl": "urn:uuid:10000000-0000-4000-8000-000000000003",
      "resource": {
        "resourceType": "Practitioner",
        "id": "pract-impfpass",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Practitioner|1.1.0"]},
        "name": [{"use": "official", "family": "Sonne", "given": ["Hanna"], "prefix": ["Dr. med."]}],
        "qualification": [{"code": {"coding": [{"system": "urn:oid:1.2.276.0.76.5.514", "code": "010"}]}}]
      }
    },
    {
      "fullUrl": "urn:uuid:10000000-0000-4000-8000-000000000004",
      "resource": {
        "resourceType": "Organization",
        "id": "org-impfpass",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Organization|1.1.0"]},
        "name": "Praxis Sonnenschein",
        "identifier": [{"system": "http://fhir.de/NamingSystem/arge-ik/iknr", "value": "260326822"}]
      }
    },
    {
      "fullUrl": "urn:uuid:10000000-0000-4000-8000-000000000005",
      "resource": {
        "resourceType": "Immunization",
        "id": "imm-1",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Record_Prime|1.1.0"]},
        "status": "completed",
        "vaccineCode": {"coding": [{"system": "http://fhir.de/CodeSystem/ifa/pzn", "code": "11577012"}]},
        "occurrenceDateTime": "2021-06-15",
        "lotNumber": "EW4815",
        "patient": {"reference": "urn:uuid:10000000-0000-4000-8000-000000000002"},
        "performer": [
          {"function": {"coding": [{"code": "AP"}]}, "actor": {"reference": "urn:uuid:10000000-0000-4000-8000-000000000003"}},
          {"function": {"coding": [{"code": "EP"}]}, "actor": {"reference": "urn:uuid:10000000-0000-4000-8000-000000000004"}}
        ],
        "protocolApplied": [{"targetDisease": [{"coding": [{"system": "http://snomed.info/sct", "code": "840539006"}]}]}]
      }
    },
    {
      "fullUrl": "urn:uuid:10000000-0000-4000-8000-000000000006",
      "resource": {
        "resourceType": "Condition",
        "id": "cond-1",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Condition|1.1.0"]},
        "code": {"coding": [{"system": "http://snomed.info/sct", "code": "14189004"}]},
        "subject": {"reference": "urn:uuid:10000000-0000-4000-8000-000000000002"},
        "onsetDateTime": "1996-07-02",
        "recordedDate": "2021-01-10"
      }
    }
  ]
}`

const builtinDental = `{
  "resourceType": "Bundle",
  "id": "beispiel-bonusheft",
  "type": "document",
  "entry": [
    {
      "fullUrl": "urn:uuid:20000000-0000-4000-8000-000000000001",
      "resource": {
        "resourceType": "Composition",
        "id": "comp-bonusheft",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_ZAEB_Composition|1.1.0"]},
        "title": "Zahnärztliches Bonusheft"
      }
    },
    {
      "fullUrl": "urn:uuid:20000000-0000-4000-8000-000000000002",
      "resource": {
        "resourceType": "Patient",
        "id": "pat-bonusheft",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_ZAEB_Patient|1.1.0"]},
        "name": [{"use": "official", "family": "Mustermann", "given": ["Max"]}],
        "birthDate": "1990-11-03",
        "identifier": [{"system": "http://fhir.de/NamingSystem/gkv/kvid-10", "value": "A987654321"}]
      }
    },
    {
      "fullUrl": "urn:uuid:20000000-0000-4000-8000-000000000003",
      "resource": {
        "resourceType": "Organization",
        "id": "org-bonusheft",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_ZAEB_Organization|1.1.0"]},
        "name": "Zahnarztpraxis Dr. Wurzel",
        "identifier": [{"system": "http://fhir.de/NamingSystem/arge-ik/iknr", "value": "261234567"}]
      }
    },
    {
      "fullUrl": "urn:uuid:20000000-0000-4000-8000-000000000004",
      "resource": {
        "resourceType": "Observation",
        "id": "obs-bonus-1",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_ZAEB_Observation_Dental_Check_Up|1.1.0"]},
        "status": "final",
        "code": {"coding": [{"system": "https://fhir.kbv.de/CodeSystem/KBV_CS_MIO_ZAEB_Examination_Type", "code": "01"}]},
        "subject": {"reference": "urn:uuid:20000000-0000-4000-8000-000000000002"},
        "effectiveDateTime": "2021-09-14",
        "performer": [{"reference": "urn:uuid:20000000-0000-4000-8000-000000000003"}]
      }
    }
  ]
}`

const builtinMaternity = `{
  "resourceType": "Bundle",
  "id": "beispiel-mutterpass",
  "type": "document",
  "entry": [
    {
      "fullUrl": "urn:uuid:30000000-0000-4000-8000-000000000001",
      "resource": {
        "resourceType": "Composition",
        "id": "comp-mutterpass",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Composition|1.1.0"]},
        "title": "Mutterpass"
      }
    },
    {
      "fullUrl": "urn:uuid:30000000-0000-4000-8000-000000000002",
      "resource": {
        "resourceType": "Patient",
        "id": "pat-mutter",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Patient_Mother|1.1.0"]},
        "name": [{"use": "official", "family": "Beispiel", "given": ["Julia"]}],
        "birthDate": "1992-05-20",
        "identifier": [{"system": "http://fhir.de/NamingSystem/gkv/kvid-10", "value": "B112233445"}]
      }
    },
    {
      "fullUrl": "urn:uuid:30000000-0000-4000-8000-000000000003",
      "resource": {
        "resourceType": "Observation",
        "id": "obs-gewicht",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Observation_Examination|1.1.0"]},
        "status": "final",
        "code": {"coding": [{"system": "http://loinc.org", "code": "8280-0"}]},
        "subject": {"reference": "urn:uuid:30000000-0000-4000-8000-000000000002"},
        "effectiveDateTime": "2023-02-10",
        "valueQuantity": {"value": 68.5, "unit": "kg"}
      }
    },
    {
      "fullUrl": "urn:uuid:30000000-0000-4000-8000-000000000004",
      "resource": {
        "resourceType": "Observation",
        "id": "obs-fundus",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Observation_Examination|1.1.0"]},
        "status": "final",
        "code": {"coding": [{"system": "http://loinc.org", "code": "11881-0"}]},
        "subject": {"reference": "urn:uuid:30000000-0000-4000-8000-000000000002"},
        "effectiveDateTime": "20 SSW",
        "valueString": "2 QF über Symphyse"
      }
    }
  ]
}`

const builtinPediatric = `{
  "resourceType": "Bundle",
  "id": "beispiel-uheft",
  "type": "document",
  "entry": [
    {
      "fullUrl": "urn:uuid:40000000-0000-4000-8000-000000000001",
      "resource": {
        "resourceType": "Composition",
        "id": "comp-uheft",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_CMR_Composition|1.0.1"]},
        "title": "Kinderuntersuchungsheft"
      }
    },
    {
      "fullUrl": "urn:uuid:40000000-0000-4000-8000-000000000002",
      "resource": {
        "resourceType": "Patient",
        "id": "pat-uheft",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_CMR_Patient|1.0.1"]},
        "name": [{"use": "official", "family": "Klein", "given": ["Lena"]}],
        "gender": "female",
        "birthDate": "2022-08-01"
      }
    },
    {
      "fullUrl": "urn:uuid:40000000-0000-4000-8000-000000000003",
      "resource": {
        "resourceType": "Observation",
        "id": "obs-u3",
        "meta": {"profile": ["https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_CMR_Observation_Screening|1.0.1"]},
        "status": "final",
        "code": {"coding": [{"system": "https://fhir.kbv.de/CodeSystem/KBV_CS_MIO_CMR_Examination_Number", "code": "U3"}]},
        "subject": {"reference": "urn:uuid:40000000-0000-4000-8000-000000000002"},
        "effectiveDateTime": "2022-08-30",
        "valueString": "unauffällig"
      }
    }
  ]
}`
