package scraper

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ciaranor/clubsocs-api/internal/dates"
	"github.com/ciaranor/clubsocs-api/internal/record"
)

// occurrence is one summary/detail row pair, collected before any
// type-specific field extraction happens.
type occurrence struct {
	section     record.Section
	index       int
	name        string
	image       *string
	cells       *goquery.Selection
	location    *string
	description string
}

// collectOccurrences locates the section container, checks the badge count
// and pairs up the summary and detail row sequences. A section that is
// absent, or present with a zero badge, yields no occurrences and no error.
// Any count or parity mismatch is a structural fault raised before a single
// pair is read.
func collectOccurrences(data []byte, section record.Section) ([]occurrence, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	container := doc.Find("div#" + string(section)).First()
	if container.Length() == 0 {
		return nil, nil
	}

	badge := container.Find("span.float-right.badge.badge-light").First()
	if badge.Length() == 0 {
		return nil, structural(string(section), "missing badge count")
	}
	count, err := strconv.Atoi(strings.TrimSpace(badge.Text()))
	if err != nil {
		return nil, structural(string(section), "badge count %q is not a number", strings.TrimSpace(badge.Text()))
	}
	if count < 1 {
		return nil, nil
	}

	table := container.Find("div.table-responsive").First()
	if table.Length() == 0 {
		return nil, structural(string(section), "missing occurrence table")
	}

	// Two interleaved sequences: each occurrence owns two visible summary
	// rows (name/image, then labelled cells) and the hidden detail row at
	// the same index as its second summary row.
	summary := table.Find("tr.show_info.pointer")
	detail := table.Find("tr.d-none")

	if summary.Length()%2 != 0 {
		return nil, structural(string(section), "odd summary row count %d", summary.Length())
	}
	if detail.Length() != summary.Length() {
		return nil, structural(string(section), "summary/detail row mismatch: %d vs %d", summary.Length(), detail.Length())
	}
	if summary.Length()/2 != count {
		return nil, structural(string(section), "badge reports %d occurrences, table holds %d", count, summary.Length()/2)
	}

	occs := make([]occurrence, 0, count)
	for k := 0; k < count; k++ {
		nameRow := summary.Eq(2 * k)
		fieldRow := summary.Eq(2*k + 1)
		detailRow := detail.Eq(2*k + 1)

		name := strings.TrimSpace(nameRow.Find("th.h5.align-middle").First().Text())
		if name == "" {
			return nil, structural(string(section), "occurrence %d has no name", k)
		}

		var image *string
		if src, ok := nameRow.Find("img").First().Attr("src"); ok {
			image = &src
		}

		var location *string
		if v, ok := labeledValue(detailRow.Find("td"), "location"); ok && v != "" {
			location = &v
		}

		var paragraphs []string
		detailRow.Find("p").Each(func(_ int, p *goquery.Selection) {
			paragraphs = append(paragraphs, normalizeSpace(p.Text()))
		})

		occs = append(occs, occurrence{
			section:     section,
			index:       k,
			name:        name,
			image:       image,
			cells:       fieldRow.Find("td.text-center.align-middle"),
			location:    location,
			description: strings.Join(paragraphs, "\n\n"),
		})
	}
	return occs, nil
}

// field returns the value for the canonical field name, or a structural
// fault when the label is missing or its value is empty.
func (o *occurrence) field(name string) (string, error) {
	v, ok := labeledValue(o.cells, occurrenceLabels[o.section][name])
	if !ok || v == "" {
		return "", structural(string(o.section), "occurrence %d (%s) has no %s", o.index, o.name, name)
	}
	return v, nil
}

// optionalField is like field but absence and emptiness are not errors.
func (o *occurrence) optionalField(name string) (string, bool) {
	v, ok := labeledValue(o.cells, occurrenceLabels[o.section][name])
	return v, ok && v != ""
}

// capacity parses the optional "max attendees" cell. Absence is preserved
// as nil, never zero.
func (o *occurrence) capacity() (*int, error) {
	text, ok := o.optionalField("capacity")
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return nil, structural(string(o.section), "occurrence %d (%s) has bad capacity %q", o.index, o.name, text)
	}
	return &n, nil
}

var costPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// parseCost applies the FREE/numeric rule: the literal "FREE" is 0, anything
// else must contain a numeric substring.
func parseCost(text string) (float64, error) {
	if text == "FREE" {
		return 0, nil
	}
	m := costPattern.FindString(text)
	if m == "" {
		return 0, fmt.Errorf("no numeric cost in %q", text)
	}
	return strconv.ParseFloat(m, 64)
}

// Activities extracts the weekly activities from a club or society page.
// Start and end are anchored to the upcoming occurrence of the labelled
// weekday, relative to now.
func Activities(data []byte, now time.Time) ([]record.Activity, error) {
	occs, err := collectOccurrences(data, record.SectionActivities)
	if err != nil {
		return nil, err
	}
	out := make([]record.Activity, 0, len(occs))
	for _, occ := range occs {
		a, err := occ.activity(now)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (o *occurrence) activity(now time.Time) (record.Activity, error) {
	dayText, err := o.field("day")
	if err != nil {
		return record.Activity{}, err
	}
	day := strings.ToLower(strings.TrimSuffix(dayText, ":"))

	upcoming, err := dates.Resolve(day, now)
	if err != nil {
		return record.Activity{}, fmt.Errorf("activity %q: %w", o.name, err)
	}
	// The resolver always advances to the next instance of a named weekday,
	// even when now already falls on it. That collision means the activity
	// is happening this week, so pull the anchor back by exactly one week.
	if upcoming.In(dates.Location).Weekday() == now.In(dates.Location).Weekday() {
		upcoming = upcoming.AddDate(0, 0, -7)
	}

	startText, err := o.field("start")
	if err != nil {
		return record.Activity{}, err
	}
	start, err := dates.Resolve(startText, upcoming)
	if err != nil {
		return record.Activity{}, fmt.Errorf("activity %q start: %w", o.name, err)
	}

	end := start
	if endText, ok := o.optionalField("end"); ok {
		if t, err := dates.Resolve(endText, upcoming); err == nil {
			end = t
		}
	}

	kind, err := o.field("type")
	if err != nil {
		return record.Activity{}, err
	}
	capacity, err := o.capacity()
	if err != nil {
		return record.Activity{}, err
	}

	return record.Activity{
		Name:        o.name,
		Image:       o.image,
		Day:         day,
		Start:       start,
		End:         end,
		Capacity:    capacity,
		Type:        kind,
		Location:    o.location,
		Description: o.description,
	}, nil
}

// Events extracts the one-off events from a club or society page. Starts are
// absolute; a missing or unparsable end falls back to the start.
func Events(data []byte, now time.Time) ([]record.Event, error) {
	occs, err := collectOccurrences(data, record.SectionEvents)
	if err != nil {
		return nil, err
	}
	out := make([]record.Event, 0, len(occs))
	for _, occ := range occs {
		e, err := occ.event(now)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (o *occurrence) event(now time.Time) (record.Event, error) {
	startText, err := o.field("start")
	if err != nil {
		return record.Event{}, err
	}
	start, err := dates.Resolve(startText, now)
	if err != nil {
		return record.Event{}, fmt.Errorf("event %q start: %w", o.name, err)
	}

	end := start
	if endText, ok := o.optionalField("end"); ok {
		if t, err := dates.Resolve(endText, start); err == nil {
			end = t
		}
	}

	costText, err := o.field("cost")
	if err != nil {
		return record.Event{}, err
	}
	cost, err := parseCost(costText)
	if err != nil {
		return record.Event{}, structural(string(o.section), "occurrence %d (%s): %v", o.index, o.name, err)
	}

	kind, err := o.field("type")
	if err != nil {
		return record.Event{}, err
	}
	capacity, err := o.capacity()
	if err != nil {
		return record.Event{}, err
	}

	return record.Event{
		Name:        o.name,
		Image:       o.image,
		Start:       start,
		End:         end,
		Day:         strings.ToLower(start.In(dates.Location).Weekday().String()),
		Cost:        cost,
		Capacity:    capacity,
		Type:        kind,
		Location:    o.location,
		Description: o.description,
	}, nil
}

// Fixtures extracts the sports fixtures from a club or society page. No end
// time is retained, and competition is never populated by the template.
func Fixtures(data []byte, now time.Time) ([]record.Fixture, error) {
	occs, err := collectOccurrences(data, record.SectionFixtures)
	if err != nil {
		return nil, err
	}
	out := make([]record.Fixture, 0, len(occs))
	for _, occ := range occs {
		f, err := occ.fixture(now)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (o *occurrence) fixture(now time.Time) (record.Fixture, error) {
	startText, err := o.field("start")
	if err != nil {
		return record.Fixture{}, err
	}
	start, err := dates.Resolve(startText, now)
	if err != nil {
		return record.Fixture{}, fmt.Errorf("fixture %q start: %w", o.name, err)
	}

	kind, err := o.field("type")
	if err != nil {
		return record.Fixture{}, err
	}

	return record.Fixture{
		Name:        o.name,
		Image:       o.image,
		Start:       start,
		Competition: nil,
		Type:        kind,
		Location:    o.location,
		Description: o.description,
	}, nil
}
