// Package themes describes the gallery of presentation templates that
// consume normalized CVs. Templates never re-derive filtering or flattening;
// the only presentation choice they own is date granularity, which this
// registry records so the engine can format dates on their behalf.
package themes

import (
	"sort"

	"github.com/ahzs645/portfolio-themes/internal/normalize"
)

// DateGranularity names a date display policy.
type DateGranularity string

// Supported granularities.
const (
	GranularityYear      DateGranularity = "year"
	GranularityMonthYear DateGranularity = "month-year"
	GranularityRange     DateGranularity = "range"
)

// Theme describes one presentation template.
type Theme struct {
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	Granularity DateGranularity `json:"dateGranularity"`
	Dark        bool            `json:"dark"`
}

var registry = map[string]Theme{
	"classic":  {Name: "classic", DisplayName: "Classic", Granularity: GranularityMonthYear},
	"minimal":  {Name: "minimal", DisplayName: "Minimal", Granularity: GranularityYear},
	"terminal": {Name: "terminal", DisplayName: "Terminal", Granularity: GranularityRange, Dark: true},
	"paper":    {Name: "paper", DisplayName: "Paper", Granularity: GranularityMonthYear},
	"slate":    {Name: "slate", DisplayName: "Slate", Granularity: GranularityMonthYear, Dark: true},
	"mono":     {Name: "mono", DisplayName: "Mono", Granularity: GranularityYear},
	"neon":     {Name: "neon", DisplayName: "Neon", Granularity: GranularityRange, Dark: true},
	"timeline": {Name: "timeline", DisplayName: "Timeline", Granularity: GranularityMonthYear},
	"gradient": {Name: "gradient", DisplayName: "Gradient", Granularity: GranularityYear},
	"retro":    {Name: "retro", DisplayName: "Retro", Granularity: GranularityRange},
	"card":     {Name: "card", DisplayName: "Card", Granularity: GranularityMonthYear},
	"glass":    {Name: "glass", DisplayName: "Glass", Granularity: GranularityYear, Dark: true},
}

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "classic"

// Get looks a theme up by name.
func Get(name string) (Theme, bool) {
	theme, ok := registry[name]
	return theme, ok
}

// List returns every registered theme sorted by name.
func List() []Theme {
	all := make([]Theme, 0, len(registry))
	for _, theme := range registry {
		all = append(all, theme)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// FormatDates renders a start/end date pair under the theme's granularity
// policy. Range granularity produces one combined string and leaves the end
// empty; the other policies format each side independently.
func (t Theme) FormatDates(start, end string) (string, string) {
	switch t.Granularity {
	case GranularityYear:
		return normalize.FormatYear(start), normalize.FormatYear(end)
	case GranularityRange:
		return normalize.FormatDateRange(start, end), ""
	default:
		return normalize.FormatMonthYear(start), normalize.FormatMonthYear(end)
	}
}
