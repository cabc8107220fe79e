package record

import "time"

// GroupType is whether an organisation is classified as a club or a society.
// It is a URL path segment on the membership platform and has no other
// behavioural effect.
type GroupType string

const (
	GroupClub    GroupType = "club"
	GroupSociety GroupType = "society"
)

// Valid reports whether g is one of the two group types the platform serves.
func (g GroupType) Valid() bool {
	return g == GroupClub || g == GroupSociety
}

// Section identifies one of the three occurrence sections on a club or
// society page. The section id doubles as the discriminator for the record
// type extracted from it.
type Section string

const (
	SectionEvents     Section = "events"
	SectionActivities Section = "activities"
	SectionFixtures   Section = "fixtures"
)

// ClubSoc is a single entry on a clubs or societies directory page.
type ClubSoc struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsLocked bool   `json:"is_locked"`
}

// Event is a one-off scheduled event.
type Event struct {
	Name        string    `json:"name"`
	Image       *string   `json:"image"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Day         string    `json:"day"`
	Cost        float64   `json:"cost"`
	Capacity    *int      `json:"capacity"`
	Type        string    `json:"type"`
	Location    *string   `json:"location"`
	Description string    `json:"description"`
}

// Activity is a weekly recurring activity. Start and End are anchored to the
// next occurrence of Day.
type Activity struct {
	Name        string    `json:"name"`
	Image       *string   `json:"image"`
	Day         string    `json:"day"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Capacity    *int      `json:"capacity"`
	Type        string    `json:"type"`
	Location    *string   `json:"location"`
	Description string    `json:"description"`
}

// Fixture is a sports fixture. Competition is never populated by the source
// template; the field is kept for wire compatibility.
type Fixture struct {
	Name        string    `json:"name"`
	Image       *string   `json:"image"`
	Start       time.Time `json:"start"`
	Competition *string   `json:"competition"`
	Type        string    `json:"type"`
	Location    *string   `json:"location"`
	Description string    `json:"description"`
}

// Schedule groups every dated record a club or society page publishes.
type Schedule struct {
	Events     []Event    `json:"events"`
	Activities []Activity `json:"activities"`
	Fixtures   []Fixture  `json:"fixtures"`
}

// CommitteeMember is one row of a committee roster. Name is nil when the
// member chose to hide it.
type CommitteeMember struct {
	Name     *string `json:"name"`
	Position string  `json:"position"`
}

// Info is the descriptive "about" content of a club or society page.
type Info struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Icon  *string    `json:"icon"`
	Title string     `json:"title"`
	About *string    `json:"about"`
	Links []InfoLink `json:"links"`
}

// InfoAward is an award listed on a club or society page.
type InfoAward struct {
	Year   string `json:"year"`
	Name   string `json:"name"`
	Winner string `json:"winner"`
	Type   string `json:"type"`
}

// InfoLink is an external link published by a club or society.
type InfoLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
