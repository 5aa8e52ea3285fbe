package dashboard

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when a viewer does not send one.
const DefaultLocale = "en"

var (
	supportedLocales = []language.Tag{
		language.English,
		language.Spanish,
		language.German,
		language.French,
	}
	localeMatcher = language.NewMatcher(supportedLocales)
)

// MatchLocale maps an arbitrary locale string (en-US, es_MX, de) onto one of
// the supported locales. Unknown or empty values resolve to English.
func MatchLocale(locale string) language.Tag {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, idx, _ := localeMatcher.Match(tag)
	return supportedLocales[idx]
}

// MatchAcceptLanguage picks the supported locale that best fits an
// Accept-Language header, honouring q-weights. It returns "" when the header
// is empty, malformed, or names no supported language.
func MatchAcceptLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return ""
	}
	return supportedLocales[idx].String()
}

// localizedValue selects the best translation for locale. Keys match
// case-insensitively and regional locales fall back to their base language.
func localizedValue(values map[string]string, fallback, locale string) string {
	if len(values) == 0 {
		return fallback
	}
	for _, candidate := range localeCandidates(locale) {
		for key, value := range values {
			if value != "" && strings.EqualFold(key, candidate) {
				return value
			}
		}
	}
	return fallback
}

func localeCandidates(locale string) []string {
	locale = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if locale == "" {
		return []string{"default"}
	}
	candidates := []string{locale}
	if tag, err := language.Parse(locale); err == nil {
		if base, conf := tag.Base(); conf != language.No && base.String() != locale {
			candidates = append(candidates, base.String())
		}
	}
	return append(candidates, "default")
}
