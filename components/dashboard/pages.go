package dashboard

import "sort"

// PageDefinition describes a dashboard page and its defaults.
type PageDefinition struct {
	ID             PageID            `json:"id" yaml:"id"`
	Title          string            `json:"title" yaml:"title"`
	TitleLocalized map[string]string `json:"title_localized,omitempty" yaml:"title_localized,omitempty"`
	Description    string            `json:"description,omitempty" yaml:"description,omitempty"`
	Path           string            `json:"path" yaml:"path"`
	Position       int               `json:"position" yaml:"position"`
	DefaultOrder   []string          `json:"default_order" yaml:"default_order"`
	DefaultFilters map[string]string `json:"default_filters" yaml:"default_filters"`
	FilterGroups   []FilterGroup     `json:"filter_groups,omitempty" yaml:"filter_groups,omitempty"`
	Exports        []DatasetID       `json:"exports,omitempty" yaml:"exports,omitempty"`
	// Widgets lists every widget id the page provider can build.
	Widgets []string `json:"widgets" yaml:"widgets"`
	// Notify enables transient notifications for filter and layout changes.
	Notify bool `json:"notify,omitempty" yaml:"notify,omitempty"`
}

// LocalizedTitle resolves the page title for a locale, falling back to Title.
func (p PageDefinition) LocalizedTitle(locale string) string {
	return localizedValue(p.TitleLocalized, p.Title, locale)
}

// HasWidget reports whether id is a widget the page can build.
func (p PageDefinition) HasWidget(id string) bool {
	for _, w := range p.Widgets {
		if w == id {
			return true
		}
	}
	return false
}

func (p PageDefinition) clone() PageDefinition {
	out := p
	out.TitleLocalized = copyStringMap(p.TitleLocalized)
	out.DefaultOrder = append([]string(nil), p.DefaultOrder...)
	out.DefaultFilters = copyStringMap(p.DefaultFilters)
	out.Exports = append([]DatasetID(nil), p.Exports...)
	out.Widgets = append([]string(nil), p.Widgets...)
	if p.FilterGroups != nil {
		out.FilterGroups = make([]FilterGroup, len(p.FilterGroups))
		for i, g := range p.FilterGroups {
			g.Options = append([]FilterOption(nil), g.Options...)
			out.FilterGroups[i] = g
		}
	}
	return out
}

func sortPages(pages []PageDefinition) {
	sort.SliceStable(pages, func(i, j int) bool {
		if pages[i].Position == pages[j].Position {
			return pages[i].ID < pages[j].ID
		}
		return pages[i].Position < pages[j].Position
	})
}

func copyStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
