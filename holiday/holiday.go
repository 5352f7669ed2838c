// Package holiday defines holiday data consumed by calendar builders and
// helpers to select, filter and group it.
package holiday

import (
	"slices"
	"strings"
	"time"
)

// DateLayout is ISO date format used for holiday dates. Dates in this
// format sort chronologically as strings.
const DateLayout = "2006-01-02"

type Holiday struct {
	Date      string `yaml:"date"`
	Name      string `yaml:"name"`
	LocalName string `yaml:"local_name,omitempty"`
	IsPublic  *bool  `yaml:"public,omitempty"`
}

// Public reports whether holiday should produce markers and list entries.
// Missing flag means public.
func (h Holiday) Public() bool {
	return h.IsPublic == nil || *h.IsPublic
}

// DisplayName prefers local name for non-English languages.
func (h Holiday) DisplayName(language string) string {
	lang := strings.ToLower(language)
	if len(h.LocalName) > 0 && len(lang) > 0 && !strings.HasPrefix(lang, "en") {
		return h.LocalName
	}
	if len(h.Name) > 0 {
		return h.Name
	}
	return h.LocalName
}

// Lookup returns holidays of a year for country in requested language.
type Lookup func(year int, country, language string) []Holiday

// InRange collects public holidays dated within [from, to] (whole days)
// querying every year the range touches.
func InRange(lookup Lookup, from, to time.Time, country, language string) []Holiday {
	if lookup == nil {
		return nil
	}
	if to.Before(from) {
		from, to = to, from
	}
	lo, hi := from.Format(DateLayout), to.Format(DateLayout)

	var out []Holiday
	for year := from.Year(); year <= to.Year(); year++ {
		for _, h := range lookup(year, country, language) {
			if !h.Public() || h.Date < lo || h.Date > hi {
				continue
			}
			out = append(out, h)
		}
	}
	return out
}

// Group is a set of holidays sharing a date.
type Group struct {
	Date     string
	Holidays []Holiday
}

// Names returns display names of group holidays without duplicates.
func (g Group) Names(language string) []string {
	names := make([]string, 0, len(g.Holidays))
	for _, h := range g.Holidays {
		n := h.DisplayName(language)
		if len(n) == 0 || slices.Contains(names, n) {
			continue
		}
		names = append(names, n)
	}
	return names
}

// Day parses group date. Malformed dates result in zero time.
func (g Group) Day() time.Time {
	t, _ := time.Parse(DateLayout, g.Date)
	return t
}

// GroupByDate groups holidays by date, groups are ordered by date.
func GroupByDate(holidays []Holiday) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, h := range holidays {
		i, ok := index[h.Date]
		if !ok {
			i = len(groups)
			index[h.Date] = i
			groups = append(groups, Group{Date: h.Date})
		}
		groups[i].Holidays = append(groups[i].Holidays, h)
	}
	slices.SortStableFunc(groups, func(a, b Group) int { return strings.Compare(a.Date, b.Date) })
	return groups
}

// ByDate indexes holidays by date.
func ByDate(holidays []Holiday) map[string][]Holiday {
	out := make(map[string][]Holiday, len(holidays))
	for _, h := range holidays {
		out[h.Date] = append(out[h.Date], h)
	}
	return out
}
