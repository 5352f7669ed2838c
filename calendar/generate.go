package calendar

import (
	"time"

	"plancanvas/holiday"
)

// Day is a single cell of a month or week grid.
type Day struct {
	Date           time.Time
	DayOfMonth     int
	IsWeekend      bool
	IsCurrentMonth bool
	IsToday        bool
	Holidays       []holiday.Holiday
}

// ISO returns day date formatted as YYYY-MM-DD.
func (d Day) ISO() string {
	return d.Date.Format(holiday.DateLayout)
}

// HasHolidays reports whether day has any public holiday.
func (d Day) HasHolidays() bool {
	return len(d.Holidays) > 0
}

// DateOf returns midnight UTC of the given calendar date.
func DateOf(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops time of day keeping calendar date.
func Truncate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return DateOf(t.Year(), t.Month(), t.Day())
}

// WeekStart returns first day of the week containing date for weeks
// starting on startDay (0 is Sunday).
func WeekStart(date time.Time, startDay int) time.Time {
	date = Truncate(date)
	offset := (int(date.Weekday()) - NormalizeStartDay(startDay) + 7) % 7
	return date.AddDate(0, 0, -offset)
}

// MonthRows returns number of week rows needed to show a month.
func MonthRows(year int, month time.Month, startDay int) int {
	first := DateOf(year, month, 1)
	lead := (int(first.Weekday()) - NormalizeStartDay(startDay) + 7) % 7
	days := first.AddDate(0, 1, -1).Day()
	return (lead + days + 6) / 7
}

// GenerateMonth returns whole weeks covering the month, leading and
// trailing days belong to neighbouring months. Holidays are keyed by ISO
// date.
func GenerateMonth(year int, month time.Month, startDay int, today time.Time, holidays map[string][]holiday.Holiday) []Day {
	start := WeekStart(DateOf(year, month, 1), startDay)
	rows := MonthRows(year, month, startDay)
	days := make([]Day, 0, rows*7)
	for i := range rows * 7 {
		d := makeDay(start.AddDate(0, 0, i), today, holidays)
		d.IsCurrentMonth = d.Date.Month() == month && d.Date.Year() == year
		days = append(days, d)
	}
	return days
}

// GenerateWeek returns seven days of the week containing date.
func GenerateWeek(date time.Time, startDay int, today time.Time, holidays map[string][]holiday.Holiday) []Day {
	start := WeekStart(date, startDay)
	days := make([]Day, 0, 7)
	for i := range 7 {
		d := makeDay(start.AddDate(0, 0, i), today, holidays)
		d.IsCurrentMonth = d.Date.Month() == date.Month()
		days = append(days, d)
	}
	return days
}

func makeDay(t, today time.Time, holidays map[string][]holiday.Holiday) Day {
	d := Day{
		Date:       t,
		DayOfMonth: t.Day(),
		IsWeekend:  t.Weekday() == time.Saturday || t.Weekday() == time.Sunday,
		IsToday:    !today.IsZero() && Truncate(today).Equal(t),
	}
	if holidays != nil {
		d.Holidays = holidays[d.ISO()]
	}
	return d
}
