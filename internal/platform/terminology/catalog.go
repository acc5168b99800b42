package terminology

// Code system URIs used by the MIO profiles.
const (
	SystemPZN    = "http://fhir.de/CodeSystem/ifa/pzn"
	SystemATC    = "http://fhir.de/CodeSystem/dimdi/atc"
	SystemSNOMED = "http://snomed.info/sct"
	SystemLOINC  = "http://loinc.org"

	SystemDisplay = "https://fhir.kbv.de/CodeSystem/KBV_CS_MIO_Display_German"

	SystemZAEB          = "https://fhir.kbv.de/CodeSystem/KBV_CS_MIO_ZAEB_Examination_Type"
	SystemCMRScreening  = "https://fhir.kbv.de/CodeSystem/KBV_CS_MIO_CMR_Examination_Number"
	SystemQualification = "urn:oid:1.2.276.0.76.5.514"
)

// Catalog bundles the concept maps and value sets the presentation
// models consult. It is constructed explicitly and injected into model
// construction; there is no process-wide registry.
type Catalog struct {
	VaccineMaps   []*ConceptMap
	DiseaseMaps   []*ConceptMap
	VaccineSets   []*ValueSet
	DentalMaps    []*ConceptMap
	MaternityMaps []*ConceptMap
	PediatricSets []*ValueSet
	Qualification []*ValueSet
}

// NewCatalog builds the default German MIO catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		VaccineMaps: []*ConceptMap{
			NewConceptMap("mio-vaccine-pzn-german", SystemPZN, SystemDisplay, map[string]string{
				"11577012": "Comirnaty",
				"17377588": "Spikevax",
				"16749688": "Vaxzevria",
				"04898269": "Influsplit Tetra",
				"00494610": "Priorix",
				"00721631": "Twinrix Erwachsene",
				"01081902": "Boostrix",
				"02238504": "Havrix 1440",
			}),
			NewConceptMap("mio-vaccine-atc-german", SystemATC, SystemDisplay, map[string]string{
				"J07BX03": "COVID-19-Impfstoff",
				"J07BB02": "Influenza, inaktiviert, gespaltenes Virion",
				"J07BD52": "Masern, Kombinationen mit Mumps und Röteln",
				"J07AM51": "Tetanus-Toxoid, Kombinationen mit Diphtherie-Toxoid",
			}),
		},
		DiseaseMaps: []*ConceptMap{
			NewConceptMap("mio-targetdisease-german", SystemSNOMED, SystemDisplay, map[string]string{
				"840539006": "COVID-19",
				"6142004":   "Influenza (Grippe)",
				"14189004":  "Masern",
				"36989005":  "Mumps",
				"36653000":  "Röteln",
				"27836007":  "Keuchhusten (Pertussis)",
				"76902006":  "Wundstarrkrampf (Tetanus)",
				"397430003": "Diphtherie",
				"398102009": "Kinderlähmung (Poliomyelitis)",
				"66071002":  "Hepatitis B",
			}),
		},
		VaccineSets: []*ValueSet{
			{
				URL:  "https://fhir.kbv.de/ValueSet/KBV_VS_MIO_Vaccination_Vaccine",
				Name: "Impfstoffe",
				Groups: []Group{
					{System: SystemSNOMED, Concepts: []Concept{
						{Code: "1119349007", Display: "COVID-19-mRNA-Impfstoff"},
						{Code: "871895005", Display: "Sechsfach-Impfstoff (DTaP-IPV-Hib-HepB)"},
						{Code: "871878002", Display: "MMR-Impfstoff"},
					}},
				},
			},
		},
		DentalMaps: []*ConceptMap{
			NewConceptMap("mio-zaeb-examination-german", SystemZAEB, SystemDisplay, map[string]string{
				"01": "Zahnärztliche Vorsorgeuntersuchung",
				"02": "Individualprophylaxe",
				"03": "Professionelle Zahnreinigung",
			}),
		},
		MaternityMaps: []*ConceptMap{
			NewConceptMap("mio-mr-examination-german", SystemLOINC, SystemDisplay, map[string]string{
				"718-7":   "Hämoglobin",
				"883-9":   "Blutgruppe AB0",
				"10331-7": "Rhesusfaktor",
				"11881-0": "Fundusstand",
				"8280-0":  "Gewicht der Mutter",
				"55283-6": "Herztöne des Kindes",
			}),
		},
		PediatricSets: []*ValueSet{
			{
				URL:  "https://fhir.kbv.de/ValueSet/KBV_VS_MIO_CMR_Examination_Number",
				Name: "Früherkennungsuntersuchungen",
				Groups: []Group{
					{System: SystemCMRScreening, Concepts: []Concept{
						{Code: "U1", Display: "U1 Neugeborenen-Erstuntersuchung"},
						{Code: "U2", Display: "U2 (3.-10. Lebenstag)"},
						{Code: "U3", Display: "U3 (4.-5. Lebenswoche)"},
						{Code: "U4", Display: "U4 (3.-4. Lebensmonat)"},
						{Code: "U5", Display: "U5 (6.-7. Lebensmonat)"},
						{Code: "U6", Display: "U6 (10.-12. Lebensmonat)"},
						{Code: "U7", Display: "U7 (21.-24. Lebensmonat)"},
						{Code: "U8", Display: "U8 (46.-48. Lebensmonat)"},
						{Code: "U9", Display: "U9 (60.-64. Lebensmonat)"},
					}},
				},
			},
		},
		Qualification: []*ValueSet{
			{
				URL:  "https://fhir.kbv.de/ValueSet/KBV_VS_Base_Practitioner_Speciality",
				Name: "Qualifikationen",
				Groups: []Group{
					{System: SystemQualification, Concepts: []Concept{
						{Code: "010", Display: "FA Allgemeinmedizin"},
						{Code: "050", Display: "FA Innere Medizin"},
						{Code: "341", Display: "FA Kinder- und Jugendmedizin"},
						{Code: "511", Display: "FA Frauenheilkunde und Geburtshilfe"},
						{Code: "1",   Display: "Zahnärztin/Zahnarzt"},
					}},
				},
			},
		},
	}
}
