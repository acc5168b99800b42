package fhir

// GetSlice selects at most one element from a repeatable field by its
// discriminator. Absence is a valid, expected outcome; more than one
// match never happens for well-sliced input, and the first is taken if it
// does.
func GetSlice[T any](items []T, match func(T) bool) (T, bool) {
	for _, it := range items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// GetSlices selects every element matching any of the discriminators,
// preserving input order.
func GetSlices[T any](items []T, match func(T) bool) []T {
	var out []T
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}

// Name slice discriminators. MIO names are sliced on use.
const (
	NameUseOfficial = "official"
	NameUseMaiden   = "maiden"
)

// OfficialName selects the official-name slice of a name collection.
func OfficialName(names []HumanName) (HumanName, bool) {
	return GetSlice(names, func(n HumanName) bool { return n.Use == NameUseOfficial })
}

// MaidenName selects the maiden-name slice of a name collection.
func MaidenName(names []HumanName) (HumanName, bool) {
	return GetSlice(names, func(n HumanName) bool { return n.Use == NameUseMaiden })
}

// Address slice discriminators: a MIO address is either a street address
// (type "both") or a postbox (type "postal"); the two are mutually
// exclusive per resource.
const (
	AddressTypeStreet  = "both"
	AddressTypePostbox = "postal"
)

// StreetAddress selects the street-address slice.
func StreetAddress(addrs []Address) (Address, bool) {
	return GetSlice(addrs, func(a Address) bool { return a.Type == AddressTypeStreet })
}

// PostboxAddress selects the postbox slice.
func PostboxAddress(addrs []Address) (Address, bool) {
	return GetSlice(addrs, func(a Address) bool { return a.Type == AddressTypePostbox })
}
