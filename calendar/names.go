// Package calendar generates month and week day grids and localized month
// and weekday names.
package calendar

import (
	"strings"
	"time"

	"golang.org/x/text/language"

	"plancanvas/common"
)

// Names provides localized month and weekday names.
type Names interface {
	// MonthName returns name of a month (January is 1).
	MonthName(month time.Month, lang string, style common.MonthStyle) string
	// WeekdayNames returns 7 names starting with startDay (0 is Sunday).
	WeekdayNames(startDay int, lang string, format common.WeekdayFormat) []string
}

type locale struct {
	months   [12]string
	weekdays [7]string // Sunday first
	short    [7]string
}

var locales = []struct {
	tag language.Tag
	locale
}{
	{language.English, locale{
		months:   [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		short:    [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	}},
	{language.German, locale{
		months:   [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		weekdays: [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		short:    [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	}},
	{language.French, locale{
		months:   [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		weekdays: [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		short:    [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	}},
	{language.Spanish, locale{
		months:   [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		weekdays: [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		short:    [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	}},
	{language.Italian, locale{
		months:   [12]string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
		weekdays: [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
		short:    [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
	}},
	{language.Polish, locale{
		months:   [12]string{"styczeń", "luty", "marzec", "kwiecień", "maj", "czerwiec", "lipiec", "sierpień", "wrzesień", "październik", "listopad", "grudzień"},
		weekdays: [7]string{"niedziela", "poniedziałek", "wtorek", "środa", "czwartek", "piątek", "sobota"},
		short:    [7]string{"niedz.", "pon.", "wt.", "śr.", "czw.", "pt.", "sob."},
	}},
	{language.Russian, locale{
		months:   [12]string{"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь", "Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь"},
		weekdays: [7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
		short:    [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
	}},
	{language.Ukrainian, locale{
		months:   [12]string{"Січень", "Лютий", "Березень", "Квітень", "Травень", "Червень", "Липень", "Серпень", "Вересень", "Жовтень", "Листопад", "Грудень"},
		weekdays: [7]string{"неділя", "понеділок", "вівторок", "середа", "четвер", "пʼятниця", "субота"},
		short:    [7]string{"нд", "пн", "вт", "ср", "чт", "пт", "сб"},
	}},
	{language.Dutch, locale{
		months:   [12]string{"januari", "februari", "maart", "april", "mei", "juni", "juli", "augustus", "september", "oktober", "november", "december"},
		weekdays: [7]string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"},
		short:    [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
	}},
	{language.Portuguese, locale{
		months:   [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		weekdays: [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
		short:    [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"},
	}},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(locales))
	for i := range locales {
		tags[i] = locales[i].tag
	}
	return language.NewMatcher(tags)
}()

func lookupLocale(lang string) *locale {
	if len(lang) == 0 {
		return &locales[0].locale
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return &locales[0].locale
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return &locales[0].locale
	}
	return &locales[idx].locale
}

type builtin struct{}

// Default is built-in names service covering a handful of European
// languages, unknown languages fall back to English.
var Default Names = builtin{}

func (builtin) MonthName(month time.Month, lang string, style common.MonthStyle) string {
	if month < time.January || month > time.December {
		return ""
	}
	name := lookupLocale(lang).months[month-1]
	if style == common.MonthStyleShort {
		return truncateRunes(name, 3)
	}
	return name
}

func (builtin) WeekdayNames(startDay int, lang string, format common.WeekdayFormat) []string {
	l := lookupLocale(lang)
	startDay = NormalizeStartDay(startDay)
	out := make([]string, 7)
	for i := range out {
		d := (startDay + i) % 7
		switch format {
		case common.WeekdayFormatLong:
			out[i] = l.weekdays[d]
		case common.WeekdayFormatNarrow:
			out[i] = strings.ToUpper(truncateRunes(l.weekdays[d], 1))
		default:
			out[i] = l.short[d]
		}
	}
	return out
}

// NormalizeStartDay maps any integer onto 0..6.
func NormalizeStartDay(d int) int {
	return ((d % 7) + 7) % 7
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
