package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizedValue(t *testing.T) {
	values := map[string]string{
		"en":    "Dashboard",
		"es":    "Tablero",
		"es-mx": "Panel",
	}
	if got := localizedValue(values, "fallback", "es-MX"); got != "Panel" {
		t.Fatalf("expected region-specific match, got %q", got)
	}
	if got := localizedValue(values, "fallback", "es_AR"); got != "Tablero" {
		t.Fatalf("expected base locale fallback, got %q", got)
	}
	if got := localizedValue(values, "Dashboard", "fr"); got != "Dashboard" {
		t.Fatalf("expected fallback for missing locale, got %q", got)
	}
	if got := localizedValue(map[string]string{"default": "Default"}, "fallback", ""); got != "Default" {
		t.Fatalf("expected default entry for empty locale, got %q", got)
	}
	if got := localizedValue(nil, "fallback", "en"); got != "fallback" {
		t.Fatalf("expected fallback for empty map, got %q", got)
	}
}

func TestMatchLocaleFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "en", MatchLocale("").String())
	assert.Equal(t, "en", MatchLocale("not a locale!").String())
	assert.Equal(t, "es", MatchLocale("es_MX").String())
	assert.Equal(t, "de", MatchLocale("de-AT").String())
}

func TestDefaultPageTitlesLocalize(t *testing.T) {
	for _, def := range DefaultPageDefinitions() {
		assert.Equal(t, def.Title, def.LocalizedTitle("en"), "page %s", def.ID)
		assert.NotEqual(t, def.Title, def.LocalizedTitle("fr-CA"), "page %s should have a French title", def.ID)
	}
}

func TestMatchAcceptLanguageHonoursWeights(t *testing.T) {
	cases := map[string]string{
		"":                   "",
		"en;q=0.1, de;q=0.9": "de",
		"*, fr;q=0.8":        "fr",
		"fr-CA,fr;q=0.9":     "fr",
		"es-MX":              "es",
		"ja, zh;q=0.5":       "",
		"de;q=0, es;q=0.2":   "es",
		"en-US;q=nope":       "",
	}
	for header, want := range cases {
		assert.Equal(t, want, MatchAcceptLanguage(header), header)
	}
}
