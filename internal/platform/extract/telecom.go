package extract

import (
	"strings"

	"github.com/miokit/mioviewer/internal/platform/fhir"
)

// TelecomEntry is one contact point prepared for display: a localized
// label for the system and a derived href.
type TelecomEntry struct {
	System string
	Label  string
	Value  string
	Href   string
}

// telecomLabel maps a ContactPoint system to its German display label.
func telecomLabel(system string) string {
	switch system {
	case "phone":
		return "Telefon"
	case "fax":
		return "Fax"
	case "email":
		return "E-Mail"
	case "pager":
		return "Pager"
	case "url":
		return "Internet"
	case "sms":
		return "SMS"
	default:
		return "Sonstige"
	}
}

// telecomHref derives the link target per system: tel:/mailto:/sms:
// prefixes, scheme-normalized passthrough for URLs, and the raw value
// for systems with no link scheme.
func telecomHref(system, value string) string {
	switch system {
	case "phone":
		return "tel:" + value
	case "fax":
		return "fax:" + value
	case "email":
		return "mailto:" + value
	case "sms":
		return "sms:" + value
	case "url":
		if strings.Contains(value, "://") {
			return value
		}
		return "https://" + value
	default:
		return value
	}
}

// Telecoms maps each telecom entry to its display form, one result per
// input entry, input order preserved, no deduplication.
func Telecoms(points []fhir.ContactPoint) []TelecomEntry {
	out := make([]TelecomEntry, 0, len(points))
	for _, p := range points {
		value := p.Value
		if value == "" {
			value = NoValue
		}
		out = append(out, TelecomEntry{
			System: p.System,
			Label:  telecomLabel(p.System),
			Value:  value,
			Href:   telecomHref(p.System, p.Value),
		})
	}
	return out
}
