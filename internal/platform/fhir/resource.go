package fhir

import "encoding/json"

// Resource is implemented by every parsed MIO resource. The variant tag
// identifies which profile shape applies; exactly one variant applies per
// resource instance.
type Resource interface {
	ResourceType() string
	ResourceID() string
	ProfileVariant() Variant
}

type Meta struct {
	VersionID string   `json:"versionId,omitempty"`
	Profile   []string `json:"profile,omitempty"`
}

// Base carries the fields shared by all resources. It implements the
// identity half of the Resource interface; the variant tag is assigned
// during bundle decoding.
type Base struct {
	ID      string  `json:"id,omitempty"`
	Meta    *Meta   `json:"meta,omitempty"`
	Variant Variant `json:"-"`
}

func (b Base) ResourceID() string      { return b.ID }
func (b Base) ProfileVariant() Variant { return b.Variant }

type Coding struct {
	System    string      `json:"system,omitempty"`
	Version   string      `json:"version,omitempty"`
	Code      string      `json:"code,omitempty"`
	Display   string      `json:"display,omitempty"`
	DisplayEl *Element    `json:"_display,omitempty"`
	Extension []Extension `json:"extension,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// Element holds extensions attached to a primitive field (the JSON
// underscore-property convention).
type Element struct {
	Extension []Extension `json:"extension,omitempty"`
}

// Extension is the recursive FHIR extension tree. Only the value kinds the
// MIO profiles actually use are modeled.
type Extension struct {
	URL          string      `json:"url"`
	ValueString  string      `json:"valueString,omitempty"`
	ValueCode    string      `json:"valueCode,omitempty"`
	ValueCoding  *Coding     `json:"valueCoding,omitempty"`
	ValueDate    string      `json:"valueDate,omitempty"`
	ValueBoolean *bool       `json:"valueBoolean,omitempty"`
	Extension    []Extension `json:"extension,omitempty"`
}

// FindExtension returns the first extension with the given URL.
func FindExtension(exts []Extension, url string) (Extension, bool) {
	for _, e := range exts {
		if e.URL == url {
			return e, true
		}
	}
	return Extension{}, false
}

type HumanName struct {
	Use       string      `json:"use,omitempty"`
	Text      string      `json:"text,omitempty"`
	Family    string      `json:"family,omitempty"`
	FamilyEl  *Element    `json:"_family,omitempty"`
	Given     []string    `json:"given,omitempty"`
	Prefix    []string    `json:"prefix,omitempty"`
	Extension []Extension `json:"extension,omitempty"`
}

type Address struct {
	Type       string      `json:"type,omitempty"`
	Line       []string    `json:"line,omitempty"`
	LineEl     []*Element  `json:"_line,omitempty"`
	City       string      `json:"city,omitempty"`
	PostalCode string      `json:"postalCode,omitempty"`
	Country    string      `json:"country,omitempty"`
	Extension  []Extension `json:"extension,omitempty"`
}

type ContactPoint struct {
	System string `json:"system,omitempty"`
	Value  string `json:"value,omitempty"`
	Use    string `json:"use,omitempty"`
}

type Identifier struct {
	Use    string           `json:"use,omitempty"`
	Type   *CodeableConcept `json:"type,omitempty"`
	System string           `json:"system,omitempty"`
	Value  string           `json:"value,omitempty"`
}

type RawReference struct {
	Reference string `json:"reference,omitempty"`
	Display   string `json:"display,omitempty"`
}

type Quantity struct {
	Value *float64 `json:"value,omitempty"`
	Unit  string   `json:"unit,omitempty"`
	Code  string   `json:"code,omitempty"`
}

type Annotation struct {
	Text string `json:"text,omitempty"`
}

// Patient covers the patient profiles of all four MIO types, including the
// maternity mother/child split.
type Patient struct {
	Base
	Identifier []Identifier `json:"identifier,omitempty"`
	Name       []HumanName  `json:"name,omitempty"`
	Gender     string       `json:"gender,omitempty"`
	BirthDate  string       `json:"birthDate,omitempty"`
	Address    []Address    `json:"address,omitempty"`
	Telecom    []ContactPoint `json:"telecom,omitempty"`
}

func (Patient) ResourceType() string { return "Patient" }

type Qualification struct {
	Code CodeableConcept `json:"code"`
}

type Practitioner struct {
	Base
	Identifier    []Identifier    `json:"identifier,omitempty"`
	Name          []HumanName     `json:"name,omitempty"`
	Qualification []Qualification `json:"qualification,omitempty"`
	Address       []Address       `json:"address,omitempty"`
	Telecom       []ContactPoint  `json:"telecom,omitempty"`
}

func (Practitioner) ResourceType() string { return "Practitioner" }

type Organization struct {
	Base
	Identifier []Identifier   `json:"identifier,omitempty"`
	Name       string         `json:"name,omitempty"`
	Address    []Address      `json:"address,omitempty"`
	Telecom    []ContactPoint `json:"telecom,omitempty"`
}

func (Organization) ResourceType() string { return "Organization" }

type ImmunizationProtocol struct {
	TargetDisease []CodeableConcept `json:"targetDisease,omitempty"`
	DoseNumber    string            `json:"doseNumberString,omitempty"`
}

type ImmunizationPerformer struct {
	Function *CodeableConcept `json:"function,omitempty"`
	Actor    RawReference     `json:"actor"`
}

// Immunization is the vaccination record resource (Impfeintrag), both the
// prime and addendum profiles.
type Immunization struct {
	Base
	Status           string                 `json:"status,omitempty"`
	VaccineCode      CodeableConcept        `json:"vaccineCode"`
	OccurrenceDate   string                 `json:"occurrenceDateTime,omitempty"`
	LotNumber        string                 `json:"lotNumber,omitempty"`
	Manufacturer     *RawReference          `json:"manufacturer,omitempty"`
	Patient          RawReference           `json:"patient"`
	Performer        []ImmunizationPerformer `json:"performer,omitempty"`
	ProtocolApplied  []ImmunizationProtocol `json:"protocolApplied,omitempty"`
	ReportOrigin     *CodeableConcept       `json:"reportOrigin,omitempty"`
	Note             []Annotation           `json:"note,omitempty"`
	Extension        []Extension            `json:"extension,omitempty"`
}

func (Immunization) ResourceType() string { return "Immunization" }

// Condition is the immunization-relevant illness record (Erkrankung).
type Condition struct {
	Base
	Code         CodeableConcept `json:"code"`
	Subject      RawReference    `json:"subject"`
	OnsetDate    string          `json:"onsetDateTime,omitempty"`
	RecordedDate string          `json:"recordedDate,omitempty"`
	Recorder     *RawReference   `json:"recorder,omitempty"`
	Note         []Annotation    `json:"note,omitempty"`
}

func (Condition) ResourceType() string { return "Condition" }

// Observation covers the dental bonus examinations, maternity examinations
// and pediatric screening results.
type Observation struct {
	Base
	Status        string           `json:"status,omitempty"`
	Code          CodeableConcept  `json:"code"`
	Subject       RawReference     `json:"subject"`
	EffectiveDate string           `json:"effectiveDateTime,omitempty"`
	ValueConcept  *CodeableConcept `json:"valueCodeableConcept,omitempty"`
	ValueString   string           `json:"valueString,omitempty"`
	ValueQuantity *Quantity        `json:"valueQuantity,omitempty"`
	Performer     []RawReference   `json:"performer,omitempty"`
	Note          []Annotation     `json:"note,omitempty"`
}

func (Observation) ResourceType() string { return "Observation" }

type CompositionSection struct {
	Title string         `json:"title,omitempty"`
	Code  *CodeableConcept `json:"code,omitempty"`
	Entry []RawReference `json:"entry,omitempty"`
}

// Composition carries the document headline and section ordering of a MIO.
type Composition struct {
	Base
	Title   string               `json:"title,omitempty"`
	Date    string               `json:"date,omitempty"`
	Subject *RawReference        `json:"subject,omitempty"`
	Author  []RawReference       `json:"author,omitempty"`
	Section []CompositionSection `json:"section,omitempty"`
}

func (Composition) ResourceType() string { return "Composition" }

// decodeResource unmarshals a raw bundle entry resource into its typed
// form and assigns the profile variant. Unknown resource types and
// unknown profiles decode to nil (the entry is skipped, not an error:
// structural validation happens upstream).
func decodeResource(raw json.RawMessage) (Resource, error) {
	var head struct {
		ResourceType string `json:"resourceType"`
		Meta         *Meta  `json:"meta,omitempty"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, err
	}

	var profiles []string
	if head.Meta != nil {
		profiles = head.Meta.Profile
	}
	variant := VariantOf(profiles)
	if variant == VariantUnknown {
		return nil, nil
	}

	assign := func(b *Base) { b.Variant = variant }

	switch head.ResourceType {
	case "Patient":
		var r Patient
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		assign(&r.Base)
		return r, nil
	case "Practitioner":
		var r Practitioner
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		assign(&r.Base)
		return r, nil
	case "Organization":
		var r Organization
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		assign(&r.Base)
		return r, nil
	case "Immunization":
		var r Immunization
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		assign(&r.Base)
		return r, nil
	case "Condition":
		var r Condition
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		assign(&r.Base)
		return r, nil
	case "Observation":
		var r Observation
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		assign(&r.Base)
		return r, nil
	case "Composition":
		var r Composition
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		assign(&r.Base)
		return r, nil
	}
	return nil, nil
}
