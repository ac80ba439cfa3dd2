package sfxforge

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrDuplicateEntry marks an attempt to register the same (theme, path) key
// twice. Silent last-write-wins would hide authoring mistakes in the asset
// table, so duplicates are rejected outright.
var ErrDuplicateEntry = errors.New("duplicate catalog entry")

// CatalogKey identifies one sound asset within the library.
type CatalogKey struct {
	Theme string
	Path  string // relative, slash-separated, e.g. "ui/click.wav"
}

func (k CatalogKey) String() string {
	return k.Theme + "/" + k.Path
}

// CatalogEntry pairs a key with its generator spec.
type CatalogEntry struct {
	Key  CatalogKey
	Spec GeneratorSpec
}

// Catalog is the static table of sound assets for one run. Entries keep
// insertion order; keys are unique.
type Catalog struct {
	entries []CatalogEntry
	index   map[CatalogKey]struct{}
}

func NewCatalog() *Catalog {
	return &Catalog{index: make(map[CatalogKey]struct{})}
}

// Add registers a spec under theme/relPath. The path must be a clean
// relative slash path.
func (c *Catalog) Add(theme, relPath string, spec GeneratorSpec) error {
	if theme == "" || relPath == "" {
		return fmt.Errorf("catalog: theme and path must be non-empty (theme=%q path=%q)", theme, relPath)
	}
	cleaned := path.Clean(relPath)
	if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("catalog: path must stay inside the output root (got %q)", relPath)
	}
	key := CatalogKey{Theme: theme, Path: cleaned}
	if _, ok := c.index[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEntry, key)
	}
	c.index[key] = struct{}{}
	c.entries = append(c.entries, CatalogEntry{Key: key, Spec: spec})
	return nil
}

func (c *Catalog) mustAdd(theme, relPath string, spec GeneratorSpec) {
	if err := c.Add(theme, relPath, spec); err != nil {
		panic(err)
	}
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns the entries in insertion order. Callers must not mutate
// the returned slice.
func (c *Catalog) Entries() []CatalogEntry { return c.entries }

// Themes returns the distinct theme names in first-seen order.
func (c *Catalog) Themes() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range c.entries {
		if _, ok := seen[e.Key.Theme]; !ok {
			seen[e.Key.Theme] = struct{}{}
			out = append(out, e.Key.Theme)
		}
	}
	return out
}

// Filter returns a catalog containing only the named themes. An empty
// filter returns the catalog unchanged.
func (c *Catalog) Filter(themes ...string) *Catalog {
	if len(themes) == 0 {
		return c
	}
	want := make(map[string]struct{}, len(themes))
	for _, t := range themes {
		want[t] = struct{}{}
	}
	out := NewCatalog()
	for _, e := range c.entries {
		if _, ok := want[e.Key.Theme]; ok {
			out.mustAdd(e.Key.Theme, e.Key.Path, e.Spec)
		}
	}
	return out
}
