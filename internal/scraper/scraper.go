package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/ciaranor/clubsocs-api/internal/fetch"
	"github.com/ciaranor/clubsocs-api/internal/record"
)

// Scraper ties the pure parse functions to a page fetcher. It is stateless
// apart from the fetcher's connection pool; concurrent calls need no
// coordination.
type Scraper struct {
	fetcher fetch.Fetcher
}

// New creates a Scraper using the given fetcher.
func New(f fetch.Fetcher) *Scraper {
	return &Scraper{fetcher: f}
}

func (s *Scraper) page(ctx context.Context, site string, group record.GroupType, id string) ([]byte, error) {
	return s.fetcher.Get(ctx, fmt.Sprintf("%s/%s/%s", site, group, id))
}

// Listing fetches a site's directory page and extracts the clubs or
// societies of the given group type.
func (s *Scraper) Listing(ctx context.Context, site string, group record.GroupType) ([]record.ClubSoc, error) {
	data, err := s.fetcher.Get(ctx, site)
	if err != nil {
		return nil, err
	}
	return Listing(data, site, group)
}

// Activities fetches a club or society page and extracts its weekly
// activities, anchored to the current time.
func (s *Scraper) Activities(ctx context.Context, site string, group record.GroupType, id string) ([]record.Activity, error) {
	data, err := s.page(ctx, site, group, id)
	if err != nil {
		return nil, err
	}
	return Activities(data, time.Now().UTC())
}

// Events fetches a club or society page and extracts its events.
func (s *Scraper) Events(ctx context.Context, site string, group record.GroupType, id string) ([]record.Event, error) {
	data, err := s.page(ctx, site, group, id)
	if err != nil {
		return nil, err
	}
	return Events(data, time.Now().UTC())
}

// Fixtures fetches a club or society page and extracts its fixtures.
func (s *Scraper) Fixtures(ctx context.Context, site string, group record.GroupType, id string) ([]record.Fixture, error) {
	data, err := s.page(ctx, site, group, id)
	if err != nil {
		return nil, err
	}
	return Fixtures(data, time.Now().UTC())
}

// Schedule fetches a club or society page once and extracts all three
// occurrence sections from the same bytes.
func (s *Scraper) Schedule(ctx context.Context, site string, group record.GroupType, id string) (record.Schedule, error) {
	data, err := s.page(ctx, site, group, id)
	if err != nil {
		return record.Schedule{}, err
	}
	now := time.Now().UTC()
	events, err := Events(data, now)
	if err != nil {
		return record.Schedule{}, err
	}
	activities, err := Activities(data, now)
	if err != nil {
		return record.Schedule{}, err
	}
	fixtures, err := Fixtures(data, now)
	if err != nil {
		return record.Schedule{}, err
	}
	return record.Schedule{Events: events, Activities: activities, Fixtures: fixtures}, nil
}

// Committee fetches a club or society page and extracts its committee
// roster.
func (s *Scraper) Committee(ctx context.Context, site string, group record.GroupType, id string) ([]record.CommitteeMember, error) {
	data, err := s.page(ctx, site, group, id)
	if err != nil {
		return nil, err
	}
	return Committee(data)
}

// Gallery fetches a club or society page and extracts its gallery image
// URLs.
func (s *Scraper) Gallery(ctx context.Context, site string, group record.GroupType, id string) ([]string, error) {
	data, err := s.page(ctx, site, group, id)
	if err != nil {
		return nil, err
	}
	return Gallery(data)
}

// Awards fetches a club or society page and extracts its awards.
func (s *Scraper) Awards(ctx context.Context, site string, group record.GroupType, id string) ([]record.InfoAward, error) {
	data, err := s.page(ctx, site, group, id)
	if err != nil {
		return nil, err
	}
	return Awards(data)
}

// Links fetches a club or society page and extracts its external links.
func (s *Scraper) Links(ctx context.Context, site string, group record.GroupType, id string) ([]record.InfoLink, error) {
	data, err := s.page(ctx, site, group, id)
	if err != nil {
		return nil, err
	}
	return Links(data)
}

// Info fetches a club or society page and extracts its about content.
func (s *Scraper) Info(ctx context.Context, site string, group record.GroupType, id string) (record.Info, error) {
	data, err := s.page(ctx, site, group, id)
	if err != nil {
		return record.Info{}, err
	}
	return Info(data, id)
}
