package dashboard

import "sort"

// FilterSelection maps a filter name to the selected option. Values are never
// validated against the published options and never filter page data.
type FilterSelection map[string]string

// NewFilterSelection copies defaults into a fresh selection.
func NewFilterSelection(defaults map[string]string) FilterSelection {
	out := make(FilterSelection, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	return out
}

// With returns a copy where name is set to value. The receiver is untouched.
func (f FilterSelection) With(name, value string) FilterSelection {
	out := make(FilterSelection, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	out[name] = value
	return out
}

// Get returns the selected value for name, or "" when unset.
func (f FilterSelection) Get(name string) string {
	return f[name]
}

// Lookup reports whether name has a selection.
func (f FilterSelection) Lookup(name string) (string, bool) {
	v, ok := f[name]
	return v, ok
}

// Names returns filter names sorted for stable output.
func (f FilterSelection) Names() []string {
	names := make([]string, 0, len(f))
	for k := range f {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// FilterGroup is a filter control published to the UI.
type FilterGroup struct {
	Name    string         `json:"name" yaml:"name"`
	Label   string         `json:"label" yaml:"label"`
	Options []FilterOption `json:"options" yaml:"options"`
}

// FilterOption is one selectable value of a filter group.
type FilterOption struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Filter names shared across pages.
const (
	FilterTimePeriod = "timePeriod"
	FilterProduct    = "product"
	FilterRegion     = "region"
	FilterChannel    = "channel"
	FilterSegment    = "segment"
	FilterCategory   = "category"
	FilterPriceRange = "priceRange"
	FilterSortBy     = "sortBy"
	FilterCampaign   = "campaign"
)

// TimePeriodOptions are offered by every page's time period selector.
var TimePeriodOptions = []string{
	"Today",
	"Yesterday",
	"Last 7 Days",
	"Last 30 Days",
	"This Month",
	"Last Month",
	"This Year",
	"Custom Range",
}

func optionsOf(values ...string) []FilterOption {
	out := make([]FilterOption, len(values))
	for i, v := range values {
		out[i] = FilterOption{Value: v, Label: v}
	}
	return out
}
