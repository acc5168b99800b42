package extract

import "github.com/miokit/mioviewer/internal/platform/fhir"

// Address line extension URLs (ISO 21090 ADXP parts).
const (
	extStreetName        = "http://hl7.org/fhir/StructureDefinition/iso21090-ADXP-streetName"
	extHouseNumber       = "http://hl7.org/fhir/StructureDefinition/iso21090-ADXP-houseNumber"
	extAdditionalLocator = "http://hl7.org/fhir/StructureDefinition/iso21090-ADXP-additionalLocator"
	extPostBox           = "http://hl7.org/fhir/StructureDefinition/iso21090-ADXP-postBox"
)

// PostalInfo is the flattened display form of a MIO address. Every field
// independently defaults to the sentinel.
type PostalInfo struct {
	Street     string
	Number     string
	Addition   string
	Postbox    string
	City       string
	PostalCode string
	Country    string
}

// AddressInfo resolves the profile's address slices: the street-address
// slice is checked first, the postbox slice is the fallback (the two are
// mutually exclusive). Absent fields degrade to the sentinel one by one.
func AddressInfo(addrs []fhir.Address) PostalInfo {
	info := PostalInfo{
		Street:     NoValue,
		Number:     NoValue,
		Addition:   NoValue,
		Postbox:    NoValue,
		City:       NoValue,
		PostalCode: NoValue,
		Country:    NoValue,
	}

	addr, ok := fhir.StreetAddress(addrs)
	if ok {
		if s, ok := lineExtension(addr, extStreetName); ok {
			info.Street = s
		}
		if s, ok := lineExtension(addr, extHouseNumber); ok {
			info.Number = s
		}
		if s, ok := lineExtension(addr, extAdditionalLocator); ok {
			info.Addition = s
		}
	} else {
		addr, ok = fhir.PostboxAddress(addrs)
		if !ok {
			return info
		}
		if s, ok := lineExtension(addr, extPostBox); ok {
			info.Postbox = s
		}
	}

	if addr.City != "" {
		info.City = addr.City
	}
	if addr.PostalCode != "" {
		info.PostalCode = addr.PostalCode
	}
	if addr.Country != "" {
		info.Country = addr.Country
	}
	return info
}

// lineExtension searches the underscore-elements of every address line
// for the given ADXP extension.
func lineExtension(addr fhir.Address, url string) (string, bool) {
	for _, el := range addr.LineEl {
		if el == nil {
			continue
		}
		if e, ok := fhir.FindExtension(el.Extension, url); ok && e.ValueString != "" {
			return e.ValueString, true
		}
	}
	return "", false
}
