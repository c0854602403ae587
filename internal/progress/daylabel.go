package progress

import (
	"maps"
	"slices"
	"time"
)

// DayLabeler turns a moment into the History label for its calendar day.
type DayLabeler interface {
	Label(t time.Time) string
}

// weekdayNames holds abbreviated weekday names, Sunday first.
var weekdayNames = map[string][7]string{
	"pt-BR": {"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."},
	"en-US": {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	"es-ES": {"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	"fr-FR": {"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	"it-IT": {"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
	"zh-CN": {"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
}

// DefaultLocale is the locale history labels are written in.
const DefaultLocale = "pt-BR"

// Locales lists the locales with weekday names, sorted.
func Locales() []string {
	return slices.Sorted(maps.Keys(weekdayNames))
}

// KnownLocale reports whether locale has weekday names.
func KnownLocale(locale string) bool {
	_, ok := weekdayNames[locale]
	return ok
}

// WeekdayLabeler labels days by their short weekday name in the local
// time zone. Labels repeat every seven days, so History never holds two
// entries for the same weekday.
type WeekdayLabeler struct {
	names [7]string
	loc   *time.Location
}

// NewWeekdayLabeler returns a labeler for locale, falling back to
// DefaultLocale. A nil loc means time.Local.
func NewWeekdayLabeler(locale string, loc *time.Location) WeekdayLabeler {
	names, ok := weekdayNames[locale]
	if !ok {
		names = weekdayNames[DefaultLocale]
	}
	if loc == nil {
		loc = time.Local
	}
	return WeekdayLabeler{names: names, loc: loc}
}

func (w WeekdayLabeler) Label(t time.Time) string {
	return w.names[t.In(w.loc).Weekday()]
}
