package scraper

import (
	"errors"
	"os"
	"testing"
	"time"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return data
}

// Thursday 5 March 2026, winter (Dublin == UTC).
var testNow = time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)

func TestActivities(t *testing.T) {
	data := loadFixture(t, "club_page.html")

	activities, err := Activities(data, testNow)
	if err != nil {
		t.Fatalf("Activities failed: %v", err)
	}
	if len(activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(activities))
	}

	a := activities[0]
	if a.Name != "Weekly Training" {
		t.Errorf("name = %q", a.Name)
	}
	if a.Day != "tuesday" {
		t.Errorf("day = %q, want tuesday", a.Day)
	}
	// Next Tuesday after Thursday 5 March is 10 March; 18:00 Dublin is
	// 18:00 UTC in winter.
	wantStart := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, time.March, 10, 20, 0, 0, 0, time.UTC)
	if !a.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", a.Start, wantStart)
	}
	if !a.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", a.End, wantEnd)
	}
	if a.Capacity == nil || *a.Capacity != 30 {
		t.Errorf("capacity = %v, want 30", a.Capacity)
	}
	if a.Type != "IN-PERSON" {
		t.Errorf("type = %q", a.Type)
	}
	if a.Location == nil || *a.Location != "Main Hall" {
		t.Errorf("location = %v, want Main Hall", a.Location)
	}
	if a.Description != "Bring gear." {
		t.Errorf("description = %q", a.Description)
	}
	if a.Image == nil || *a.Image != "https://cdn.test.site/foo/training.jpg" {
		t.Errorf("image = %v", a.Image)
	}
}

func TestActivitiesWeekdayCollision(t *testing.T) {
	data := loadFixture(t, "club_page.html")

	// Tuesday 10 March 2026: the activity's own weekday. The resolver
	// advances to 17 March; the parser must pull it back to today.
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	activities, err := Activities(data, now)
	if err != nil {
		t.Fatalf("Activities failed: %v", err)
	}
	if len(activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(activities))
	}

	wantStart := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	if !activities[0].Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v (this week, not next)", activities[0].Start, wantStart)
	}
}

func TestEvents(t *testing.T) {
	data := loadFixture(t, "club_page.html")

	events, err := Events(data, testNow)
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	quiz := events[0]
	if quiz.Name != "Table Quiz" {
		t.Errorf("name = %q, want Table Quiz (document order)", quiz.Name)
	}
	wantStart := time.Date(2026, time.March, 9, 19, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, time.March, 9, 21, 0, 0, 0, time.UTC)
	if !quiz.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", quiz.Start, wantStart)
	}
	if !quiz.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", quiz.End, wantEnd)
	}
	if quiz.Day != "monday" {
		t.Errorf("day = %q, want monday (derived from start)", quiz.Day)
	}
	if quiz.Cost != 3.5 {
		t.Errorf("cost = %v, want 3.5", quiz.Cost)
	}
	if quiz.Capacity == nil || *quiz.Capacity != 50 {
		t.Errorf("capacity = %v, want 50", quiz.Capacity)
	}
	if quiz.Description != "Annual table quiz.\n\nAll welcome." {
		t.Errorf("description = %q", quiz.Description)
	}
	if quiz.Location == nil || *quiz.Location != "Seomra na Gaeilge" {
		t.Errorf("location = %v", quiz.Location)
	}

	mic := events[1]
	if mic.Name != "Open Mic" {
		t.Errorf("name = %q", mic.Name)
	}
	if mic.Cost != 0 {
		t.Errorf("cost = %v, want 0 for FREE", mic.Cost)
	}
	if !mic.End.Equal(mic.Start) {
		t.Errorf("end = %v, want start %v when no end is given", mic.End, mic.Start)
	}
	if mic.Capacity != nil {
		t.Errorf("capacity = %v, want nil", *mic.Capacity)
	}
	if mic.Image != nil {
		t.Errorf("image = %v, want nil", *mic.Image)
	}
	if mic.Location != nil {
		t.Errorf("location = %v, want nil", *mic.Location)
	}
}

func TestFixturesZeroBadge(t *testing.T) {
	// The fixtures section carries a zero badge and deliberately malformed
	// rows; the parser must return empty without reading them.
	data := loadFixture(t, "club_page.html")

	fixtures, err := Fixtures(data, testNow)
	if err != nil {
		t.Fatalf("Fixtures failed: %v", err)
	}
	if len(fixtures) != 0 {
		t.Errorf("expected no fixtures, got %d", len(fixtures))
	}
}

func TestOccurrencesAbsentSection(t *testing.T) {
	// A page with no events container at all is a success with no records.
	data := loadFixture(t, "listing_page.html")

	events, err := Events(data, testNow)
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestFixturesParsed(t *testing.T) {
	page := `<div id="fixtures">
		<span class="float-right badge badge-light">1</span>
		<div class="table-responsive"><table><tbody>
			<tr class="show_info pointer"><th class="h5 align-middle">Firsts v Rivals</th></tr>
			<tr class="show_info pointer">
				<td class="text-center align-middle">Start Time<br><b>9 Mar 2026 14:00</b></td>
				<td class="text-center align-middle">Fixture Type<br><b>HOME</b></td>
			</tr>
			<tr class="d-none"><td></td></tr>
			<tr class="d-none"><td>Location<br><b>Pitch 2</b></td><td><p>League game.</p></td></tr>
		</tbody></table></div>
	</div>`

	fixtures, err := Fixtures([]byte(page), testNow)
	if err != nil {
		t.Fatalf("Fixtures failed: %v", err)
	}
	if len(fixtures) != 1 {
		t.Fatalf("expected 1 fixture, got %d", len(fixtures))
	}

	f := fixtures[0]
	if f.Name != "Firsts v Rivals" {
		t.Errorf("name = %q", f.Name)
	}
	wantStart := time.Date(2026, time.March, 9, 14, 0, 0, 0, time.UTC)
	if !f.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", f.Start, wantStart)
	}
	if f.Competition != nil {
		t.Errorf("competition = %v, want nil (never populated)", *f.Competition)
	}
	if f.Type != "HOME" {
		t.Errorf("type = %q", f.Type)
	}
}

func TestOccurrencesStructuralFaults(t *testing.T) {
	tests := []struct {
		name string
		page string
	}{
		{
			"badge count mismatch",
			`<div id="events">
				<span class="float-right badge badge-light">3</span>
				<div class="table-responsive"><table><tbody>
					<tr class="show_info pointer"><th class="h5 align-middle">Quiz</th></tr>
					<tr class="show_info pointer"><td class="text-center align-middle">Start<br><b>9 Mar 2026 19:00</b></td></tr>
					<tr class="d-none"><td></td></tr>
					<tr class="d-none"><td><p>x</p></td></tr>
				</tbody></table></div>
			</div>`,
		},
		{
			"missing badge",
			`<div id="events"><div class="table-responsive"></div></div>`,
		},
		{
			"badge not a number",
			`<div id="events"><span class="float-right badge badge-light">lots</span></div>`,
		},
		{
			"missing occurrence name",
			`<div id="events">
				<span class="float-right badge badge-light">1</span>
				<div class="table-responsive"><table><tbody>
					<tr class="show_info pointer"><td>no name header</td></tr>
					<tr class="show_info pointer"><td class="text-center align-middle">Start<br><b>9 Mar 2026 19:00</b></td></tr>
					<tr class="d-none"><td></td></tr>
					<tr class="d-none"><td><p>x</p></td></tr>
				</tbody></table></div>
			</div>`,
		},
		{
			"summary/detail mismatch",
			`<div id="events">
				<span class="float-right badge badge-light">1</span>
				<div class="table-responsive"><table><tbody>
					<tr class="show_info pointer"><th class="h5 align-middle">Quiz</th></tr>
					<tr class="show_info pointer"><td class="text-center align-middle">Start<br><b>9 Mar 2026 19:00</b></td></tr>
					<tr class="d-none"><td></td></tr>
				</tbody></table></div>
			</div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Events([]byte(tt.page), testNow)
			if err == nil {
				t.Fatal("expected error, got none")
			}
			var sErr *StructuralError
			if !errors.As(err, &sErr) {
				t.Errorf("error = %T (%v), want *StructuralError", err, err)
			}
		})
	}
}

func TestParseCost(t *testing.T) {
	tests := []struct {
		text    string
		want    float64
		wantErr bool
	}{
		{"FREE", 0, false},
		{"€3.50", 3.5, false},
		{"5", 5, false},
		{"donation", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := parseCost(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseCost(%q) succeeded, want error", tt.text)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCost(%q) failed: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("parseCost(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
