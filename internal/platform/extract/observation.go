package extract

import (
	"strconv"
	"strings"

	"github.com/miokit/mioviewer/internal/platform/fhir"
	"github.com/miokit/mioviewer/internal/platform/terminology"
)

// QuantityDisplay renders a measured value with its unit, decimal comma
// per German convention.
func QuantityDisplay(q *fhir.Quantity) string {
	if q == nil || q.Value == nil {
		return NoValue
	}
	s := strconv.FormatFloat(*q.Value, 'f', -1, 64)
	s = strings.Replace(s, ".", ",", 1)
	if q.Unit != "" {
		s += " " + q.Unit
	}
	return s
}

// ObservationValue renders an observation result, whichever value kind
// the profile populates. String values go through the date formatter so
// gestational-week shorthand and plain text pass through while ISO dates
// localize.
func ObservationValue(o fhir.Observation, opts terminology.Options) string {
	switch {
	case o.ValueConcept != nil:
		return terminology.ResolveCodeableConcept(*o.ValueConcept, opts)
	case o.ValueString != "":
		return FormatDate(o.ValueString)
	case o.ValueQuantity != nil:
		return QuantityDisplay(o.ValueQuantity)
	}
	return NoValue
}
