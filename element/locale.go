package element

import (
	"plancanvas/calendar"
)

// Locale carries calendar preferences applied to new date dependent
// elements before document values.
type Locale struct {
	StartDay int
	Country  string
	Language string
}

// Localize returns copy of m with locale applied. Kinds without calendar
// fields are returned unchanged.
func Localize(m Metadata, loc *Locale) Metadata {
	if loc == nil {
		return m
	}
	set := func(country, language *string) {
		if len(loc.Country) > 0 {
			*country = loc.Country
		}
		if len(loc.Language) > 0 {
			*language = loc.Language
		}
	}
	switch v := m.(type) {
	case *CalendarGrid:
		return Apply(v, func(c *CalendarGrid) {
			c.StartDay = calendar.NormalizeStartDay(loc.StartDay)
			set(&c.Country, &c.Language)
		})
	case *WeekStrip:
		return Apply(v, func(c *WeekStrip) {
			c.StartDay = calendar.NormalizeStartDay(loc.StartDay)
			set(&c.Country, &c.Language)
		})
	case *DateCell:
		return Apply(v, func(c *DateCell) {
			set(&c.Country, &c.Language)
		})
	}
	return m
}
