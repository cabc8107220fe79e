// Package calendar renders a club or society's schedule as an iCalendar
// feed, so members can subscribe to events, weekly activities and fixtures
// from a regular calendar client.
package calendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/ciaranor/clubsocs-api/internal/record"
)

// Render builds a single VCALENDAR from a club or society's schedule.
// Activities repeat weekly; events and fixtures are one-off entries.
// Fixtures have no end time on the platform, so they default to one hour.
func Render(sched record.Schedule, site string, id string) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//clubsocs-api//EN")

	now := time.Now().UTC()

	for i, ev := range sched.Events {
		e := cal.AddEvent(fmt.Sprintf("%s-event-%d@%s", id, i, site))
		e.SetDtStampTime(now)
		e.SetStartAt(ev.Start)
		e.SetEndAt(ev.End)
		e.SetSummary(ev.Name)
		setDetails(e, ev.Location, ev.Description)
	}

	for i, act := range sched.Activities {
		e := cal.AddEvent(fmt.Sprintf("%s-activity-%d@%s", id, i, site))
		e.SetDtStampTime(now)
		e.SetStartAt(act.Start)
		e.SetEndAt(act.End)
		e.SetSummary(act.Name)
		e.AddRrule("FREQ=WEEKLY")
		setDetails(e, act.Location, act.Description)
	}

	for i, fx := range sched.Fixtures {
		e := cal.AddEvent(fmt.Sprintf("%s-fixture-%d@%s", id, i, site))
		e.SetDtStampTime(now)
		e.SetStartAt(fx.Start)
		e.SetEndAt(fx.Start.Add(time.Hour))
		e.SetSummary(fx.Name)
		setDetails(e, fx.Location, fx.Description)
	}

	return cal.Serialize()
}

func setDetails(e *ics.VEvent, location *string, description string) {
	if location != nil {
		e.SetLocation(*location)
	}
	if description != "" {
		e.SetDescription(description)
	}
}
