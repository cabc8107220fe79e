package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ciaranor/clubsocs-api/internal/record"
)

// Label substrings per occurrence type, keyed by canonical field name.
// Labels are matched case-insensitively by containment against each cell's
// full text; they are assumed unique within one row's cells.
var occurrenceLabels = map[record.Section]map[string]string{
	record.SectionActivities: {
		"day":      "day",
		"start":    "start",
		"end":      "end",
		"type":     "activity",
		"capacity": "max",
	},
	record.SectionEvents: {
		"start":    "start",
		"end":      "end",
		"cost":     "cost",
		"type":     "event",
		"capacity": "max",
	},
	record.SectionFixtures: {
		"start": "start",
		"type":  "fixture",
	},
}

// labeledValue returns the emphasized value of the first cell whose text
// contains label, case-insensitively. ok is false when no cell matches;
// callers decide whether absence is fatal for a given field.
func labeledValue(cells *goquery.Selection, label string) (value string, ok bool) {
	cells.EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(cell.Text()), label) {
			return true
		}
		value = strings.TrimSpace(cell.Find("b").First().Text())
		ok = true
		return false
	})
	return value, ok
}

// normalizeSpace collapses every whitespace run in s to a single space and
// trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
