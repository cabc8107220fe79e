// Package dates resolves the free-text date and time fragments found on
// membership platform pages into absolute UTC timestamps.
//
// Fragments come in four shapes: a bare weekday name ("Monday"), a bare
// clock time ("18:00", "6pm"), an absolute date ("2 Oct 2025"), or a date
// with a time. Everything is interpreted in the platform's timezone
// (Europe/Dublin) and converted to UTC on the way out.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Location is the fixed timezone the source platform renders all dates in.
var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Europe/Dublin")
	if err != nil {
		panic(err)
	}
}

// ParseError reports text that contains no recognizable date or time
// component.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized date/time %q", e.Text)
}

// Resolve converts text into an absolute UTC timestamp, using ref as the
// anchor for relative fragments (bare weekdays and bare times). A weekday
// name always resolves to the next occurrence strictly after ref, so a ref
// that already falls on the named weekday yields ref plus seven days;
// callers that want "this week" must correct for that themselves.
func Resolve(text string, ref time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, &ParseError{Text: text}
	}

	local := ref.In(Location)

	if wd, ok := parseWeekday(trimmed); ok {
		return nextWeekday(local, wd).UTC(), nil
	}
	if hour, min, ok := parseClock(trimmed); ok {
		t := time.Date(local.Year(), local.Month(), local.Day(), hour, min, 0, 0, Location)
		return t.UTC(), nil
	}
	if t, ok := parseAbsolute(trimmed, local); ok {
		return t.UTC(), nil
	}
	return time.Time{}, &ParseError{Text: text}
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(text string) (time.Weekday, bool) {
	name := strings.ToLower(text)
	if wd, ok := weekdays[name]; ok {
		return wd, true
	}
	// Three-letter abbreviations ("mon", "tue"). Exact match only, so month
	// names like "march" never collide.
	for full, wd := range weekdays {
		if name == full[:3] {
			return wd, true
		}
	}
	return 0, false
}

// nextWeekday returns midnight (platform time) of the next occurrence of wd
// strictly after from.
func nextWeekday(from time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(from.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	d := from.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, Location)
}

var clockPattern = regexp.MustCompile(`(?i)^(\d{1,2})(?:[:.](\d{2}))?\s*(am|pm)?$`)

// parseClock recognizes bare times such as "18:00", "6.30pm" or "9am".
// A lone number is not a time; minutes or an am/pm marker must be present.
func parseClock(text string) (hour, min int, ok bool) {
	m := clockPattern.FindStringSubmatch(text)
	if m == nil || (m[2] == "" && m[3] == "") {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		min, _ = strconv.Atoi(m[2])
	}
	switch strings.ToLower(m[3]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || min > 59 {
		return 0, 0, false
	}
	return hour, min, true
}

var ordinalPattern = regexp.MustCompile(`(?i)\b(\d{1,2})(st|nd|rd|th)\b`)

// Layouts the platform has been observed to render, most specific first.
// Year-less layouts parse to year 0 and are backfilled from ref.
var absoluteLayouts = []string{
	"2 Jan 2006 15:04",
	"Jan 2 2006 15:04",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2 Jan 15:04",
	"Jan 2 15:04",
	"2 Jan",
	"2 January",
	"Jan 2",
	"January 2",
	"02/01/2006",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseAbsolute(text string, ref time.Time) (time.Time, bool) {
	cleaned := ordinalPattern.ReplaceAllString(text, "$1")
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	for _, layout := range absoluteLayouts {
		t, err := time.ParseInLocation(layout, cleaned, Location)
		if err != nil {
			continue
		}
		if t.Year() == 0 {
			t = time.Date(ref.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, Location)
		}
		return t, true
	}

	// Anything else the platform invents falls through to dateparse.
	t, err := dateparse.ParseIn(cleaned, Location)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
