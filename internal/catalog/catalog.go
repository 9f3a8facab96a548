// Package catalog turns the engine's flat symbol dump into the model table
// used for listing and name resolution. Built once per invocation, after
// session init, and read-only afterwards.
package catalog

import (
	"strings"

	"sr/internal/engine"
	"sr/pkg/types"
)

// symbolPrefix marks the engine symbols that denote selectable models.
const symbolPrefix = "MODEL_"

// Families lists the known model families in classification priority order.
// A model's family is the first entry its name starts with.
var Families = [4]string{"REALCUGAN", "REALESRGAN", "REALSR", "WAIFU2X"}

// Catalog is an immutable snapshot of the engine's model symbols. The
// classified slice keeps the engine's own enumeration order; that order is
// the documented tie-break for fuzzy resolution, so it is never re-sorted.
type Catalog struct {
	models   []types.Model
	bySymbol map[string]types.Model
}

// Build constructs a catalog from one symbol enumeration. Symbols without
// the model marker are ignored. Model symbols that match no known family
// stay reachable through exact lookup but are excluded from the classified
// listing.
func Build(symbols []engine.Symbol) *Catalog {
	c := &Catalog{bySymbol: make(map[string]types.Model, len(symbols))}
	for _, s := range symbols {
		if !strings.HasPrefix(s.Name, symbolPrefix) || len(s.Name) == len(symbolPrefix) {
			continue
		}
		m := types.Model{
			ID:     s.Value,
			Symbol: s.Name,
			Name:   strings.ToLower(s.Name[len(symbolPrefix):]),
		}
		m.Family, m.Label = classify(m.Name)
		c.bySymbol[s.Name] = m
		if m.Family != "" {
			c.models = append(c.models, m)
		}
	}
	return c
}

func classify(name string) (family, label string) {
	for _, fam := range Families {
		pfx := strings.ToLower(fam)
		if !strings.HasPrefix(name, pfx) {
			continue
		}
		return fam, strings.TrimLeft(name[len(pfx):], "_")
	}
	return "", ""
}

// Models returns the classified models in enumeration order.
func (c *Catalog) Models() []types.Model {
	out := make([]types.Model, len(c.models))
	copy(out, c.models)
	return out
}

// Len reports the number of classified models.
func (c *Catalog) Len() int { return len(c.models) }

// Lookup finds a model by its raw symbol name, classified or not.
func (c *Catalog) Lookup(symbol string) (types.Model, bool) {
	m, ok := c.bySymbol[symbol]
	return m, ok
}

// FormatListing renders the grouped model listing: each non-empty family in
// Families order, its relative labels bulleted beneath it, a blank line
// separating blocks. Output is byte-identical across calls on the same
// catalog.
func (c *Catalog) FormatListing() string {
	byFamily := make(map[string][]string, len(Families))
	for _, m := range c.models {
		byFamily[m.Family] = append(byFamily[m.Family], m.Label)
	}
	var lines []string
	for _, fam := range Families {
		labels := byFamily[fam]
		if len(labels) == 0 {
			continue
		}
		lines = append(lines, fam+":")
		for _, l := range labels {
			lines = append(lines, "  - "+l)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
