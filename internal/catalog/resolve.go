package catalog

import (
	"strings"

	"sr/pkg/types"
)

var normalizer = strings.NewReplacer(" ", "_", "-", "_")

// Normalize maps free-form user model input to catalog form: lowercased,
// spaces and hyphens replaced with underscores. Idempotent.
func Normalize(s string) string {
	return normalizer.Replace(strings.ToLower(s))
}

// Resolve maps user input to a model. An exact symbol match (the normalized
// input upper-cased behind the model marker) always wins and bypasses family
// classification. Otherwise the classified models are scanned in enumeration
// order and the first one whose relative label equals, is contained in, or
// contains the normalized input is selected. Enumeration order is the
// tie-break when labels are mutual substrings.
func (c *Catalog) Resolve(input string) (types.Model, bool) {
	n := Normalize(input)
	if m, ok := c.bySymbol[symbolPrefix+strings.ToUpper(n)]; ok {
		return m, true
	}
	for _, m := range c.models {
		if n == m.Label || strings.Contains(n, m.Label) || strings.Contains(m.Label, n) {
			return m, true
		}
	}
	return types.Model{}, false
}
