// Package catalog provides the read-only table of named armor types and their
// maximum protection.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"

	"github.com/osse101/skirmish/internal/domain"
)

// ArmorType is one catalog entry.
type ArmorType struct {
	Name          string `json:"name" yaml:"name"`
	MaxProtection int    `json:"max_protection" yaml:"max_protection"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
}

// document is the on-disk layout of a catalog file.
type document struct {
	Version    string      `json:"version,omitempty" yaml:"version,omitempty"`
	ArmorTypes []ArmorType `json:"armor_types" yaml:"armor_types"`
}

// Catalog maps armor type names to their maximum protection. Lookups ignore
// case and repeated whitespace.
type Catalog struct {
	types map[string]ArmorType
	fold  cases.Caser
	keys  *expirable.LRU[string, string]
}

// New builds a catalog from types. Names must be unique after normalization.
func New(types []ArmorType) (*Catalog, error) {
	c := &Catalog{
		types: make(map[string]ArmorType, len(types)),
		fold:  cases.Fold(),
		keys:  expirable.NewLRU[string, string](DefaultCacheSize, nil, 0),
	}

	for i, t := range types {
		if err := validate(t); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		key := c.key(t.Name)
		if _, ok := c.types[key]; ok {
			return nil, fmt.Errorf("%w: duplicate armor type %q", domain.ErrInvalidCatalog, t.Name)
		}
		c.types[key] = t
	}

	return c, nil
}

func validate(t ArmorType) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: empty armor type name", domain.ErrInvalidCatalog)
	}
	if t.MaxProtection < MinMaxProtection || t.MaxProtection > MaxMaxProtection {
		return fmt.Errorf("%w: %s max protection %d out of range", domain.ErrInvalidCatalog, t.Name, t.MaxProtection)
	}
	return nil
}

// key normalizes a name, caching the result.
func (c *Catalog) key(name string) string {
	if k, ok := c.keys.Get(name); ok {
		return k
	}
	k := c.fold.String(strings.Join(strings.Fields(name), " "))
	c.keys.Add(name, k)
	return k
}

// MaxProtection implements possession.ArmorTypes.
func (c *Catalog) MaxProtection(name string) (int, bool) {
	t, ok := c.Get(name)
	return t.MaxProtection, ok
}

// Get returns the entry for name.
func (c *Catalog) Get(name string) (ArmorType, bool) {
	t, ok := c.types[c.key(name)]
	return t, ok
}

// Types returns every entry ordered by name.
func (c *Catalog) Types() []ArmorType {
	out := make([]ArmorType, 0, len(c.types))
	for _, t := range c.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of armor types.
func (c *Catalog) Len() int { return len(c.types) }
