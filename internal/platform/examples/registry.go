// Package examples holds the demo bundle registry. The registry is
// constructed explicitly and handed to whoever needs it; there is no
// package-level instance.
package examples

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/miokit/mioviewer/internal/platform/fhir"
)

// Registry indexes parsed bundles by bundle ID, preserving insertion
// order for listing.
type Registry struct {
	bundles map[string]*fhir.Bundle
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{bundles: make(map[string]*fhir.Bundle)}
}

// Add registers a bundle. A bundle with an already-registered ID
// replaces the earlier one in place.
func (r *Registry) Add(b *fhir.Bundle) {
	if b == nil || b.ID == "" {
		return
	}
	if _, exists := r.bundles[b.ID]; !exists {
		r.order = append(r.order, b.ID)
	}
	r.bundles[b.ID] = b
}

// Get looks up a bundle by ID.
func (r *Registry) Get(id string) (*fhir.Bundle, bool) {
	b, ok := r.bundles[id]
	return b, ok
}

// List returns the registered bundles in insertion order.
func (r *Registry) List() []*fhir.Bundle {
	out := make([]*fhir.Bundle, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.bundles[id])
	}
	return out
}

// Len reports the number of registered bundles.
func (r *Registry) Len() int { return len(r.order) }

// LoadDir reads every .json file of dir, sorted by filename, and
// registers the bundles that parse. Files that do not parse are logged
// and skipped; a missing directory is an error.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read examples directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read example file %s: %w", name, err)
		}
		b, err := fhir.ParseBundle(data)
		if err != nil {
			log.Warn().Str("file", name).Err(err).Msg("examples: skipping unparseable bundle")
			continue
		}
		r.Add(b)
	}
	return nil
}

// BuiltIn returns a registry preloaded with the bundled demo documents,
// one per supported MIO type.
func BuiltIn() (*Registry, error) {
	r := NewRegistry()
	for _, raw := range builtinBundles {
		b, err := fhir.ParseBundle([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("parse built-in bundle: %w", err)
		}
		r.Add(b)
	}
	return r, nil
}
