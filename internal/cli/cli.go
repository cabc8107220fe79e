// Package cli wires the scraper and API server into a cobra command tree:
// "serve" runs the HTTP API, "fetch" performs a one-shot extraction and
// prints the records to stdout.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ciaranor/clubsocs-api/internal/api"
	"github.com/ciaranor/clubsocs-api/internal/config"
	"github.com/ciaranor/clubsocs-api/internal/fetch"
	"github.com/ciaranor/clubsocs-api/internal/logger"
	"github.com/ciaranor/clubsocs-api/internal/record"
	"github.com/ciaranor/clubsocs-api/internal/scraper"
)

var (
	flagAddr     string
	flagSite     string
	flagType     string
	flagID       string
	flagResource string
	flagFormat   string
	flagTimeout  time.Duration
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clubsocs-api",
		Short: "Read-only API over university clubs & societies membership pages",
		Long: `Extracts structured records (events, activities, fixtures, committees,
galleries, awards, links and info pages) from university clubs & societies
membership platform pages, and serves them as JSON.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(newServeCmd(), newFetchCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (overrides CLUBSOCS_ADDR)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if flagAddr != "" {
		cfg.Addr = flagAddr
	}
	logger.SetDefault(logger.New(logger.ParseLevel(cfg.LogLevel), os.Stdout))

	client := fetch.NewClient(cfg.RequestTimeout, cfg.UserAgent)
	srv := api.New(scraper.New(client))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Start(cfg.Addr)
	}()
	logger.Info("server started", logger.Fields{"addr": cfg.Addr})

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	logger.Info("server stopped", nil)
	return nil
}

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Extract one resource and print it",
		Long: `Fetches a single page from the source site and prints the extracted
records. With --resource listing (or no --id) the site's directory page is
scraped instead of a club or society page.`,
		RunE: runFetch,
	}
	cmd.Flags().StringVar(&flagSite, "site", "", "Source site domain, e.g. dcuclubsandsocs.ie (required)")
	cmd.Flags().StringVar(&flagType, "type", "society", "Group type: club or society")
	cmd.Flags().StringVar(&flagID, "id", "", "Club or society id (the URL path segment)")
	cmd.Flags().StringVar(&flagResource, "resource", "listing",
		"Resource: listing, info, activities, events, fixtures, committee, gallery, awards or links")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "Fetch timeout")
	cmd.MarkFlagRequired("site")
	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	group := record.GroupType(strings.ToLower(flagType))
	if !group.Valid() {
		return fmt.Errorf("invalid type %q (must be club or society)", flagType)
	}
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format %q (must be text or json)", flagFormat)
	}
	resource := strings.ToLower(flagResource)
	if resource != "listing" && flagID == "" {
		return fmt.Errorf("--id is required for resource %q", resource)
	}

	ctx, cancel := context.WithTimeout(context.Background(), flagTimeout+5*time.Second)
	defer cancel()

	sc := scraper.New(fetch.NewClient(flagTimeout, ""))

	var (
		records any
		count   int
		err     error
	)
	switch resource {
	case "listing":
		var list []record.ClubSoc
		list, err = sc.Listing(ctx, flagSite, group)
		records, count = list, len(list)
	case "info":
		var info record.Info
		info, err = sc.Info(ctx, flagSite, group, flagID)
		records, count = info, 1
	case "activities":
		var list []record.Activity
		list, err = sc.Activities(ctx, flagSite, group, flagID)
		records, count = list, len(list)
	case "events":
		var list []record.Event
		list, err = sc.Events(ctx, flagSite, group, flagID)
		records, count = list, len(list)
	case "fixtures":
		var list []record.Fixture
		list, err = sc.Fixtures(ctx, flagSite, group, flagID)
		records, count = list, len(list)
	case "committee":
		var list []record.CommitteeMember
		list, err = sc.Committee(ctx, flagSite, group, flagID)
		records, count = list, len(list)
	case "gallery":
		var list []string
		list, err = sc.Gallery(ctx, flagSite, group, flagID)
		records, count = list, len(list)
	case "awards":
		var list []record.InfoAward
		list, err = sc.Awards(ctx, flagSite, group, flagID)
		records, count = list, len(list)
	case "links":
		var list []record.InfoLink
		list, err = sc.Links(ctx, flagSite, group, flagID)
		records, count = list, len(list)
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
	if err != nil {
		return fmt.Errorf("extracting %s: %w", resource, err)
	}

	result := &OutputResult{
		FetchedAt: time.Now().UTC(),
		Site:      flagSite,
		GroupType: string(group),
		ID:        flagID,
		Resource:  resource,
		Count:     count,
		Records:   records,
	}
	return WriteOutput(cmd.OutOrStdout(), result, format)
}
