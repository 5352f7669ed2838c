// Package common holds closed sets of values shared between element
// metadata, builders and the command line.
package common

// Kind of design element described by a metadata record.
// ENUM(calendarGrid, weekStrip, dateCell, collage, table, schedule, checklist, plannerNote)
type ElementKind string

// Visual treatment used to flag a holiday date.
// ENUM(bar, dot, square, border, triangle, background, text)
type MarkerStyle string

// Header band treatment for titled elements.
// ENUM(none, minimal, tint, filled)
type HeaderStyle string

// How an image is scaled into a collage slot.
// ENUM(cover, contain, fill)
type FitMode string

// Placement of holiday information inside a date cell.
// ENUM(top, bottom, overlay)
type InfoPosition string

// Background pattern of a planner note.
// ENUM(ruled, grid, dot, none)
type NotePattern string

// Week strip content mode.
// ENUM(month, blank)
type WeekMode string

// Arrow head rendering.
// ENUM(filled, open)
type ArrowHeadStyle string

// Horizontal text alignment.
// ENUM(left, center, right)
type TextAlign string

// Weekday name length.
// ENUM(short, narrow, long)
type WeekdayFormat string

// Month name length.
// ENUM(long, short)
type MonthStyle string

// Clock format for schedule labels.
// ENUM(24h, 12h)
type TimeFormat string

// DisplayName returns human readable element kind name used for object
// naming.
func (k ElementKind) DisplayName() string {
	switch k {
	case ElementKindCalendarGrid:
		return "Calendar Grid"
	case ElementKindWeekStrip:
		return "Week Strip"
	case ElementKindDateCell:
		return "Date Cell"
	case ElementKindCollage:
		return "Collage"
	case ElementKindTable:
		return "Table"
	case ElementKindSchedule:
		return "Schedule"
	case ElementKindChecklist:
		return "Checklist"
	case ElementKindPlannerNote:
		return "Planner Note"
	default:
		return "Element"
	}
}
