package build

import (
	"fmt"
	"math"
	"strings"
	"time"

	"plancanvas/calendar"
	"plancanvas/common"
	"plancanvas/element"
	"plancanvas/holiday"
	"plancanvas/scene"
)

const (
	// listShare is part of height left after header and weekday zones a
	// holiday list may take.
	listShare   = 0.45
	listPadding = 8
)

// collectHolidays fetches public holidays of every year range touches and
// groups them by date in chronological order.
func collectHolidays(lookup holiday.Lookup, from, to time.Time, country, language string) []holiday.Group {
	return holiday.GroupByDate(holiday.InRange(lookup, from, to, country, language))
}

// listGroups returns groups shown in the holiday list capped to max items.
func listGroups(opts element.HolidayOptions, groups []holiday.Group) []holiday.Group {
	if !opts.ShowList {
		return nil
	}
	return groups[:min(len(groups), opts.ListMaxItems)]
}

func listTitleHeight(opts element.HolidayOptions) float64 {
	if len(opts.ListTitle) == 0 {
		return 0
	}
	return math.Ceil((opts.ListFontSize + 1) * 1.6)
}

// HolidayListHeight is the single rule sizing holiday lists: height wanted
// by all entries, limited by share of available height and by configured
// maximum when set. Zero when not even one entry would fit.
func HolidayListHeight(opts element.HolidayOptions, entries int, available float64) float64 {
	if !opts.ShowList || entries <= 0 || available <= 0 {
		return 0
	}
	title := listTitleHeight(opts)
	desired := title + float64(entries)*opts.EntryRowHeight + 2*listPadding
	h := math.Min(desired, available*listShare)
	if opts.ListHeight > 0 {
		h = math.Min(h, opts.ListHeight)
	}
	if VisibleEntries(opts, h, entries) == 0 {
		return 0
	}
	return h
}

// VisibleEntries returns how many list entries fit into height.
func VisibleEntries(opts element.HolidayOptions, height float64, entries int) int {
	if opts.EntryRowHeight <= 0 {
		return 0
	}
	n := int(math.Floor((height - listTitleHeight(opts) - 2*listPadding) / opts.EntryRowHeight))
	return max(0, min(n, entries))
}

// holidayList draws list into rectangle.
func holidayList(opts element.HolidayOptions, groups []holiday.Group, r scene.Rect, language, family string, names calendar.Names) []*scene.Object {
	n := VisibleEntries(opts, r.Height, len(groups))
	if n == 0 || r.Empty() {
		return nil
	}
	var out []*scene.Object
	x, w := r.Left+listPadding, r.Width-2*listPadding
	y := r.Top + listPadding

	if title := listTitleHeight(opts); title > 0 {
		out = appendNonNil(out, label(opts.ListTitle, x, y, w, title, textStyle{
			size:   opts.ListFontSize + 1,
			color:  opts.ListColor,
			family: family,
			bold:   true,
		}))
		y += title
	}

	row := opts.EntryRowHeight
	dot := math.Min(6, row/2)
	dateW := math.Min(w*0.3, opts.ListFontSize*4)
	for _, g := range groups[:n] {
		d := fill(scene.NewRect(x, y+(row-dot)/2, dot, dot), opts.MarkerColor)
		d.Rx, d.Ry = dot/2, dot/2
		out = append(out, d)

		day := g.Day()
		date := fmt.Sprintf("%s %d", names.MonthName(day.Month(), language, common.MonthStyleShort), day.Day())
		st := textStyle{size: opts.ListFontSize, color: opts.ListColor, family: family}
		out = appendNonNil(out,
			label(date, x+dot+4, y, dateW, row, st),
			label(strings.Join(g.Names(language), ", "), x+dot+8+dateW, y, w-dot-8-dateW, row, st),
		)
		y += row
	}
	return out
}
