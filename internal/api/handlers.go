package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ciaranor/clubsocs-api/internal/calendar"
	"github.com/ciaranor/clubsocs-api/internal/fetch"
	"github.com/ciaranor/clubsocs-api/internal/record"
)

type pageParams struct {
	site  string
	group record.GroupType
	id    string
}

func params(c echo.Context) (pageParams, error) {
	group := record.GroupType(c.Param("type"))
	if !group.Valid() {
		return pageParams{}, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("unknown group type %q, want club or society", c.Param("type")))
	}
	return pageParams{site: c.Param("site"), group: group, id: c.Param("id")}, nil
}

// scrapeError maps extraction failures onto HTTP statuses: a 404 from the
// source passes through, any other transport failure and every structural
// or parse fault is a bad gateway.
func scrapeError(resource string, p pageParams, err error) error {
	var te *fetch.TransportError
	if errors.As(err, &te) && te.StatusCode == http.StatusNotFound {
		return echo.NewHTTPError(http.StatusNotFound,
			fmt.Sprintf("%s/%s/%s not found upstream", p.site, p.group, p.id))
	}
	return echo.NewHTTPError(http.StatusBadGateway,
		fmt.Sprintf("extracting %s for %s/%s/%s: %v", resource, p.site, p.group, p.id, err))
}

func (s *Server) listing(c echo.Context) error {
	p, err := params(c)
	if err != nil {
		return err
	}
	list, err := s.scraper.Listing(c.Request().Context(), p.site, p.group)
	if err != nil {
		return scrapeError("listing", p, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) info(c echo.Context) error {
	p, err := params(c)
	if err != nil {
		return err
	}
	info, err := s.scraper.Info(c.Request().Context(), p.site, p.group, p.id)
	if err != nil {
		return scrapeError("info", p, err)
	}
	return c.JSON(http.StatusOK, info)
}

func (s *Server) activities(c echo.Context) error {
	p, err := params(c)
	if err != nil {
		return err
	}
	list, err := s.scraper.Activities(c.Request().Context(), p.site, p.group, p.id)
	if err != nil {
		return scrapeError("activities", p, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) events(c echo.Context) error {
	p, err := params(c)
	if err != nil {
		return err
	}
	list, err := s.scraper.Events(c.Request().Context(), p.site, p.group, p.id)
	if err != nil {
		return scrapeError("events", p, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) fixtures(c echo.Context) error {
	p, err := params(c)
	if err != nil {
		return err
	}
	list, err := s.scraper.Fixtures(c.Request().Context(), p.site, p.group, p.id)
	if err != nil {
		return scrapeError("fixtures", p, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) committee(c echo.Context) error {
	p, err := params(c)
	if err != nil {
		return err
	}
	list, err := s.scraper.Committee(c.Request().Context(), p.site, p.group, p.id)
	if err != nil {
		return scrapeError("committee", p, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) gallery(c echo.Context) error {
	p, err := params(c)
	if err != nil {
		return err
	}
	urls, err := s.scraper.Gallery(c.Request().Context(), p.site, p.group, p.id)
	if err != nil {
		return scrapeError("gallery", p, err)
	}
	return c.JSON(http.StatusOK, urls)
}

func (s *Server) awards(c echo.Context) error {
	p, err := params(c)
	if err != nil {
		return err
	}
	list, err := s.scraper.Awards(c.Request().Context(), p.site, p.group, p.id)
	if err != nil {
		return scrapeError("awards", p, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) links(c echo.Context) error {
	p, err := params(c)
	if err != nil {
		return err
	}
	list, err := s.scraper.Links(c.Request().Context(), p.site, p.group, p.id)
	if err != nil {
		return scrapeError("links", p, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) calendar(c echo.Context) error {
	p, err := params(c)
	if err != nil {
		return err
	}
	sched, err := s.scraper.Schedule(c.Request().Context(), p.site, p.group, p.id)
	if err != nil {
		return scrapeError("calendar", p, err)
	}
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8",
		[]byte(calendar.Render(sched, p.site, p.id)))
}
