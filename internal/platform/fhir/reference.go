package fhir

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Ref identifies another resource in a bundle. Two refs are equal when
// they resolve to the same entry identity, not when their raw strings
// match, so construction normalizes to a canonical form up front.
type Ref struct {
	canonical string
	relative  string // "Type/id" tail, when derivable
}

// NewRef builds a reference from a raw string without base context.
func NewRef(raw string) Ref {
	return NewRefWithBase(raw, "")
}

// NewRefWithBase builds a reference from a raw string, composing
// fragment-relative references ("Patient/123") against the base fullUrl
// of the entry that carried them. Absolute URLs and urn:uuid identities
// pass through untouched.
func NewRefWithBase(raw, base string) Ref {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Ref{}
	}
	if isAbsolute(raw) {
		return Ref{canonical: raw, relative: relativeTail(raw)}
	}
	// urn:uuid without the prefix: bare UUIDs appear in some documents.
	if _, err := uuid.Parse(raw); err == nil {
		return Ref{canonical: "urn:uuid:" + raw}
	}
	if base != "" && isAbsolute(base) && !strings.HasPrefix(base, "urn:") {
		// A document entry fullUrl identifies "<root>/<Type>/<id>"; a
		// relative reference replaces that Type/id tail.
		if root, ok := resourceRoot(base); ok {
			return Ref{canonical: root + "/" + raw, relative: raw}
		}
	}
	return Ref{canonical: raw, relative: raw}
}

// IsZero reports whether the reference is empty.
func (r Ref) IsZero() bool { return r.canonical == "" }

// String returns the canonical serialization used for route building.
func (r Ref) String() string { return r.canonical }

// Matches reports whether the reference identifies the entry with the
// given fullUrl.
func (r Ref) Matches(fullURL string) bool {
	if r.canonical == "" || fullURL == "" {
		return false
	}
	if r.canonical == fullURL {
		return true
	}
	// A fragment reference matches an absolute identity that ends in the
	// same Type/id tail.
	if r.relative != "" && strings.HasSuffix(fullURL, "/"+r.relative) {
		return true
	}
	if tail := relativeTail(fullURL); tail != "" && tail == r.relative {
		return true
	}
	return false
}

// Equal reports identity equivalence between two references.
func (r Ref) Equal(other Ref) bool {
	if r.canonical == other.canonical {
		return true
	}
	return r.relative != "" && r.relative == other.relative
}

func isAbsolute(s string) bool {
	return strings.Contains(s, "://") || strings.HasPrefix(s, "urn:")
}

// resourceRoot strips the "<Type>/<id>" tail off an absolute fullUrl.
func resourceRoot(fullURL string) (string, bool) {
	i := strings.LastIndexByte(fullURL, '/')
	if i <= 0 {
		return "", false
	}
	j := strings.LastIndexByte(fullURL[:i], '/')
	if j <= 0 {
		return "", false
	}
	return fullURL[:j], true
}

// relativeTail extracts the "Type/id" tail of an absolute URL, or "" when
// none is derivable (urn:uuid identities have no tail).
func relativeTail(s string) string {
	if strings.HasPrefix(s, "urn:") {
		return ""
	}
	i := strings.LastIndexByte(s, '/')
	if i <= 0 {
		return ""
	}
	j := strings.LastIndexByte(s[:i], '/')
	if j < 0 {
		return ""
	}
	tail := s[j+1:]
	if strings.ContainsAny(tail, ":?#") {
		return ""
	}
	return tail
}

// Resolve returns the first entry, in bundle order, whose variant is in
// the allowed set and whose identity the reference matches. Zero matches
// is the expected representation for an absent optional reference; it is
// never an error. More than one match is a data-quality condition: the
// first still wins deterministically, but the duplicate is logged so
// upstream producers can be checked.
func Resolve(b *Bundle, allowed VariantSet, ref Ref) (Entry, bool) {
	if b == nil || ref.IsZero() {
		return Entry{}, false
	}
	var (
		found Entry
		count int
	)
	for _, e := range b.Entries {
		if !allowed.Contains(e.Resource.ProfileVariant()) {
			continue
		}
		if !ref.Matches(e.FullURL) {
			continue
		}
		if count == 0 {
			found = e
		}
		count++
	}
	switch count {
	case 0:
		log.Debug().Str("ref", ref.String()).Msg("reference did not resolve")
		return Entry{}, false
	case 1:
		return found, true
	default:
		log.Debug().Str("ref", ref.String()).Int("matches", count).
			Msg("ambiguous reference, taking first by bundle order")
		return found, true
	}
}

// FindEntry resolves a reference against the bundle without a variant
// filter. Navigation uses it: the route carries an identity, not a kind.
func FindEntry(b *Bundle, ref Ref) (Entry, bool) {
	if b == nil || ref.IsZero() {
		return Entry{}, false
	}
	for _, e := range b.Entries {
		if ref.Matches(e.FullURL) {
			return e, true
		}
	}
	return Entry{}, false
}

// ResolveAll returns every entry in the allowed variant set that satisfies
// keep, in bundle order. A nil keep accepts everything.
func ResolveAll(b *Bundle, allowed VariantSet, keep func(Entry) bool) []Entry {
	if b == nil {
		return nil
	}
	var out []Entry
	for _, e := range b.Entries {
		if !allowed.Contains(e.Resource.ProfileVariant()) {
			continue
		}
		if keep != nil && !keep(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// GetEntryWithRef is the resolved-by-reference variant of GetEntry:
// it builds the reference from a raw string plus the referencing entry's
// fullUrl and resolves it.
func GetEntryWithRef(b *Bundle, allowed VariantSet, raw, base string) (Entry, bool) {
	return Resolve(b, allowed, NewRefWithBase(raw, base))
}
