// Package api exposes the extraction core as a read-only HTTP API. Routes
// mirror the source site's own URL shape: /{site}/{group_type} for listings
// and /{site}/{group_type}/{id}/{resource} for a single club or society.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ciaranor/clubsocs-api/internal/logger"
	"github.com/ciaranor/clubsocs-api/internal/scraper"
)

// Server is the HTTP front of the scraper.
type Server struct {
	echo    *echo.Echo
	scraper *scraper.Scraper
	started time.Time
}

// New builds the server and registers all routes.
func New(s *scraper.Scraper) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet},
	}))
	e.Use(requestLogger)

	srv := &Server{echo: e, scraper: s, started: time.Now()}

	e.GET("/healthz", srv.health)
	e.GET("/:site/:type", srv.listing)

	g := e.Group("/:site/:type/:id")
	g.GET("", srv.info)
	g.GET("/activities", srv.activities)
	g.GET("/events", srv.events)
	g.GET("/fixtures", srv.fixtures)
	g.GET("/committee", srv.committee)
	g.GET("/gallery", srv.gallery)
	g.GET("/awards", srv.awards)
	g.GET("/links", srv.links)
	g.GET("/calendar", srv.calendar)

	return srv
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start runs the server until it fails or is shut down.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"uptime":  time.Since(s.started).String(),
		"metrics": logger.MetricsSnapshot(),
	})
}

// requestLogger logs every request as structured JSON and feeds the metrics
// tracker.
func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		elapsed := time.Since(start)

		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			} else {
				status = http.StatusInternalServerError
			}
		}

		logger.IncrCounter("api.requests")
		logger.RecordTiming("api.request", elapsed)

		fields := logger.Fields{
			"method":   c.Request().Method,
			"path":     c.Request().URL.Path,
			"status":   status,
			"duration": elapsed.String(),
		}
		if err != nil {
			logger.Error("request failed", fields, err)
		} else {
			logger.Info("request", fields)
		}
		return err
	}
}
