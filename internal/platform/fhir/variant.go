package fhir

import "strings"

// Variant is one of the closed set of profile shapes a MIO resource can
// take. Resources of the same semantic kind (a patient, say) carry
// different variants across MIO types and MIO-type versions; dispatch on
// the variant tag replaces any per-version type hierarchy.
type Variant int

const (
	VariantUnknown Variant = iota

	// Impfpass (vaccination record)
	VaccinationPatientV1_0
	VaccinationPatientV1_1
	VaccinationRecordPrime
	VaccinationRecordAddendum
	VaccinationPractitioner
	VaccinationPractitionerAddendum
	VaccinationOrganization
	VaccinationCondition
	VaccinationComposition

	// Zahnärztliches Bonusheft (dental bonus booklet)
	DentalPatient
	DentalCheckUp
	DentalGaplessDocumentation
	DentalOrganization
	DentalComposition

	// Mutterpass (maternity record)
	MaternityMother
	MaternityChild
	MaternityExamination
	MaternityPractitioner
	MaternityOrganization
	MaternityComposition

	// Kinderuntersuchungsheft (pediatric screening booklet)
	PediatricPatient
	PediatricScreening
	PediatricPractitioner
	PediatricOrganization
	PediatricComposition
)

var variantNames = map[Variant]string{
	VariantUnknown:                  "Unknown",
	VaccinationPatientV1_0:          "VaccinationPatientV1_0",
	VaccinationPatientV1_1:          "VaccinationPatientV1_1",
	VaccinationRecordPrime:          "VaccinationRecordPrime",
	VaccinationRecordAddendum:       "VaccinationRecordAddendum",
	VaccinationPractitioner:         "VaccinationPractitioner",
	VaccinationPractitionerAddendum: "VaccinationPractitionerAddendum",
	VaccinationOrganization:         "VaccinationOrganization",
	VaccinationCondition:            "VaccinationCondition",
	VaccinationComposition:          "VaccinationComposition",
	DentalPatient:                   "DentalPatient",
	DentalCheckUp:                   "DentalCheckUp",
	DentalGaplessDocumentation:      "DentalGaplessDocumentation",
	DentalOrganization:              "DentalOrganization",
	DentalComposition:               "DentalComposition",
	MaternityMother:                 "MaternityMother",
	MaternityChild:                  "MaternityChild",
	MaternityExamination:            "MaternityExamination",
	MaternityPractitioner:           "MaternityPractitioner",
	MaternityOrganization:           "MaternityOrganization",
	MaternityComposition:            "MaternityComposition",
	PediatricPatient:                "PediatricPatient",
	PediatricScreening:              "PediatricScreening",
	PediatricPractitioner:           "PediatricPractitioner",
	PediatricOrganization:           "PediatricOrganization",
	PediatricComposition:            "PediatricComposition",
}

func (v Variant) String() string {
	if n, ok := variantNames[v]; ok {
		return n
	}
	return "Unknown"
}

// Canonical KBV profile URLs. A meta.profile value is
// "<canonical>|<version>"; the version part decides between the
// vaccination patient variants, everywhere else the canonical alone is
// discriminating.
const (
	profileVaccinationPatient         = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Patient"
	profileVaccinationRecordPrime     = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Record_Prime"
	profileVaccinationRecordAddendum  = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Record_Addendum"
	profileVaccinationPractitioner    = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Practitioner"
	profileVaccinationPractitionerAdd = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Practitioner_Addendum"
	profileVaccinationOrganization    = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Organization"
	profileVaccinationCondition       = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Condition"
	profileVaccinationComposition     = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_Vaccination_Composition_Prime"

	profileDentalPatient  = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_ZAEB_Patient"
	profileDentalCheckUp  = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_ZAEB_Observation_Dental_Check_Up"
	profileDentalGapless  = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_ZAEB_Observation_Gapless_Documentation"
	profileDentalOrg      = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_ZAEB_Organization"
	profileDentalComp     = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_ZAEB_Composition"

	profileMaternityMother       = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Patient_Mother"
	profileMaternityChild        = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Patient_Child"
	profileMaternityExamination  = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Observation_Examination"
	profileMaternityPractitioner = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Practitioner"
	profileMaternityOrganization = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Organization"
	profileMaternityComposition  = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_MR_Composition"

	profilePediatricPatient      = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_CMR_Patient"
	profilePediatricScreening    = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_CMR_Observation_Screening"
	profilePediatricPractitioner = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_CMR_Practitioner"
	profilePediatricOrganization = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_CMR_Organization"
	profilePediatricComposition  = "https://fhir.kbv.de/StructureDefinition/KBV_PR_MIO_CMR_Composition"
)

var canonicalVariants = map[string]Variant{
	profileVaccinationRecordPrime:     VaccinationRecordPrime,
	profileVaccinationRecordAddendum:  VaccinationRecordAddendum,
	profileVaccinationPractitioner:    VaccinationPractitioner,
	profileVaccinationPractitionerAdd: VaccinationPractitionerAddendum,
	profileVaccinationOrganization:    VaccinationOrganization,
	profileVaccinationCondition:       VaccinationCondition,
	profileVaccinationComposition:     VaccinationComposition,
	profileDentalPatient:              DentalPatient,
	profileDentalCheckUp:              DentalCheckUp,
	profileDentalGapless:              DentalGaplessDocumentation,
	profileDentalOrg:                  DentalOrganization,
	profileDentalComp:                 DentalComposition,
	profileMaternityMother:            MaternityMother,
	profileMaternityChild:             MaternityChild,
	profileMaternityExamination:       MaternityExamination,
	profileMaternityPractitioner:      MaternityPractitioner,
	profileMaternityOrganization:      MaternityOrganization,
	profileMaternityComposition:       MaternityComposition,
	profilePediatricPatient:           PediatricPatient,
	profilePediatricScreening:         PediatricScreening,
	profilePediatricPractitioner:      PediatricPractitioner,
	profilePediatricOrganization:      PediatricOrganization,
	profilePediatricComposition:       PediatricComposition,
}

// VariantOf determines the profile variant from a resource's meta.profile
// list. The first recognized profile wins; unrecognized profiles yield
// VariantUnknown.
func VariantOf(profiles []string) Variant {
	for _, p := range profiles {
		canonical, version := splitProfile(p)
		if canonical == profileVaccinationPatient {
			if strings.HasPrefix(version, "1.1") {
				return VaccinationPatientV1_1
			}
			return VaccinationPatientV1_0
		}
		if v, ok := canonicalVariants[canonical]; ok {
			return v
		}
	}
	return VariantUnknown
}

func splitProfile(p string) (canonical, version string) {
	if i := strings.IndexByte(p, '|'); i >= 0 {
		return p[:i], p[i+1:]
	}
	return p, ""
}

// VariantSet is the allowed-variant filter handed to the resolver.
type VariantSet map[Variant]bool

// Variants builds a VariantSet from its members.
func Variants(vs ...Variant) VariantSet {
	s := make(VariantSet, len(vs))
	for _, v := range vs {
		s[v] = true
	}
	return s
}

func (s VariantSet) Contains(v Variant) bool { return s[v] }
