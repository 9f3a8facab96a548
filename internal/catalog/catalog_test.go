package catalog

import (
	"testing"

	"sr/internal/engine"
)

func testSymbols() []engine.Symbol {
	return []engine.Symbol{
		{Name: "VERSION", Value: 21},
		{Name: "MODEL_WAIFU2X_CUNET_UP2X", Value: 30},
		{Name: "MODEL_REALCUGAN_PRO_UP2X", Value: 1},
		{Name: "MODEL_REALCUGAN_SE_UP2X", Value: 5},
		{Name: "MODEL_REALESRGAN_X4PLUS", Value: 10},
		{Name: "MODEL_REALSR_DF2K", Value: 20},
		{Name: "MODEL_EXPERIMENTAL_FOO", Value: 90},
		{Name: "BACKEND_VULKAN", Value: 1},
	}
}

func TestBuildClassifiesFamilies(t *testing.T) {
	c := Build(testSymbols())

	models := c.Models()
	if len(models) != 5 {
		t.Fatalf("expected 5 classified models, got %d", len(models))
	}

	// Enumeration order must survive, not lexicographic order.
	if models[0].Symbol != "MODEL_WAIFU2X_CUNET_UP2X" {
		t.Errorf("expected engine order preserved, got %s first", models[0].Symbol)
	}

	want := map[string]struct {
		family string
		label  string
		id     int
	}{
		"MODEL_WAIFU2X_CUNET_UP2X": {"WAIFU2X", "cunet_up2x", 30},
		"MODEL_REALCUGAN_PRO_UP2X": {"REALCUGAN", "pro_up2x", 1},
		"MODEL_REALCUGAN_SE_UP2X":  {"REALCUGAN", "se_up2x", 5},
		"MODEL_REALESRGAN_X4PLUS":  {"REALESRGAN", "x4plus", 10},
		"MODEL_REALSR_DF2K":        {"REALSR", "df2k", 20},
	}
	for _, m := range models {
		w, ok := want[m.Symbol]
		if !ok {
			t.Errorf("unexpected classified model %s", m.Symbol)
			continue
		}
		if m.Family != w.family || m.Label != w.label || m.ID != w.id {
			t.Errorf("%s: got family=%s label=%s id=%d, want %+v", m.Symbol, m.Family, m.Label, m.ID, w)
		}
	}
}

func TestBuildSkipsNonModelSymbols(t *testing.T) {
	c := Build(testSymbols())
	if _, ok := c.Lookup("VERSION"); ok {
		t.Error("VERSION should not be in the catalog")
	}
	if _, ok := c.Lookup("BACKEND_VULKAN"); ok {
		t.Error("BACKEND_VULKAN should not be in the catalog")
	}
}

func TestBuildKeepsUnclassifiedForLookup(t *testing.T) {
	c := Build(testSymbols())

	m, ok := c.Lookup("MODEL_EXPERIMENTAL_FOO")
	if !ok {
		t.Fatal("unclassified model symbol should stay reachable by lookup")
	}
	if m.Family != "" || m.Label != "" {
		t.Errorf("unclassified model should carry no family, got family=%q label=%q", m.Family, m.Label)
	}

	for _, lm := range c.Models() {
		if lm.Symbol == "MODEL_EXPERIMENTAL_FOO" {
			t.Error("unclassified model must not appear in the classified listing")
		}
	}
}

func TestFormatListing(t *testing.T) {
	c := Build(testSymbols())

	want := "REALCUGAN:\n" +
		"  - pro_up2x\n" +
		"  - se_up2x\n" +
		"\n" +
		"REALESRGAN:\n" +
		"  - x4plus\n" +
		"\n" +
		"REALSR:\n" +
		"  - df2k\n" +
		"\n" +
		"WAIFU2X:\n" +
		"  - cunet_up2x\n"
	if got := c.FormatListing(); got != want {
		t.Errorf("listing mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatListingStable(t *testing.T) {
	syms := testSymbols()
	first := Build(syms).FormatListing()
	for i := 0; i < 10; i++ {
		if got := Build(syms).FormatListing(); got != first {
			t.Fatalf("listing differs on rebuild %d:\n%q\nvs\n%q", i, got, first)
		}
	}
}

func TestFormatListingOmitsEmptyFamilies(t *testing.T) {
	c := Build([]engine.Symbol{{Name: "MODEL_REALSR_DF2K", Value: 20}})
	want := "REALSR:\n  - df2k\n"
	if got := c.FormatListing(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatListingEmptyCatalog(t *testing.T) {
	c := Build(nil)
	if got := c.FormatListing(); got != "" {
		t.Errorf("empty catalog should render empty listing, got %q", got)
	}
	if c.Len() != 0 {
		t.Errorf("expected empty catalog, got %d models", c.Len())
	}
}
