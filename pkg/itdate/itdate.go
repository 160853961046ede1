// Package itdate formats dates the way the Italian-facing frontends expect
// ("10 maggio 2026"), since the standard library has no locale support.
package itdate

import (
	"fmt"
	"time"
)

var months = [...]string{
	"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
	"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
}

var weekdays = [...]string{
	"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato",
}

// Format returns "d MMMM yyyy" in Italian, e.g. "10 maggio 2026"
func Format(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}

// FormatShort returns "d MMMM" in Italian, e.g. "10 maggio"
func FormatShort(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), months[t.Month()-1])
}

// FormatWeekday returns "EEEE d MMMM" in Italian, e.g. "domenica 10 maggio"
func FormatWeekday(t time.Time) string {
	return fmt.Sprintf("%s %d %s", weekdays[t.Weekday()], t.Day(), months[t.Month()-1])
}
