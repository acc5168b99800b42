package viewmodel

import (
	"net/url"

	"github.com/miokit/mioviewer/internal/platform/fhir"
)

// Detail-route construction. The canonical reference serialization is the
// route segment; building these paths is the model layer's job, the UI
// only follows them.

// EntryPath is the canonical detail path for a bundle entry.
func EntryPath(bundleID string, ref fhir.Ref) string {
	return "/entry/" + url.PathEscape(bundleID) + "/" + url.PathEscape(ref.String())
}

// SubEntryPath is the detail path for an entry reached through a parent
// entry (drill-down navigation).
func SubEntryPath(bundleID string, parent, ref fhir.Ref) string {
	return "/subEntry/" + url.PathEscape(bundleID) + "/" +
		url.PathEscape(parent.String()) + "/" + url.PathEscape(ref.String())
}

// WithFilter suffixes a detail path with a filter segment pair, used for
// contact/section filtering.
func WithFilter(path, key, value string) string {
	return path + "/" + url.PathEscape(key) + "/" + url.PathEscape(value)
}
