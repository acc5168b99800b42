package extract

import (
	"strings"
	"time"
)

const (
	displayDate     = "02.01.2006"
	displayDateTime = "02.01.2006 - 15:04"
)

// acceptedLayouts are the date shapes MIO documents actually contain.
var acceptedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// FormatDate renders a FHIR date string as DD.MM.YYYY. Values carrying
// the gestational-week shorthand "SSW" are not calendar dates and pass
// through verbatim; so does anything unparseable — a malformed date is a
// display problem, never a crash.
func FormatDate(raw string) string {
	return formatDate(raw, false)
}

// FormatDateTime renders as DD.MM.YYYY - HH:mm when the value carries a
// time component.
func FormatDateTime(raw string) string {
	return formatDate(raw, true)
}

func formatDate(raw string, withTime bool) string {
	if raw == "" {
		return NoValue
	}
	if strings.Contains(raw, "SSW") {
		return raw
	}
	for _, layout := range acceptedLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if withTime && layoutHasTime(layout) {
			return t.Format(displayDateTime)
		}
		return t.Format(displayDate)
	}
	return raw
}

func layoutHasTime(layout string) bool {
	return strings.Contains(layout, "15:04")
}
