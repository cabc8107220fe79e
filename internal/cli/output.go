package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ciaranor/clubsocs-api/internal/record"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains one extraction's records plus context for output.
type OutputResult struct {
	FetchedAt time.Time `json:"fetched_at"`
	Site      string    `json:"site"`
	GroupType string    `json:"group_type"`
	ID        string    `json:"id,omitempty"`
	Resource  string    `json:"resource"`
	Count     int       `json:"count"`
	Records   any       `json:"records"`
}

// WriteOutput writes the result in the specified format.
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *OutputResult) error {
	target := result.Site + "/" + result.GroupType
	if result.ID != "" {
		target += "/" + result.ID
	}
	fmt.Fprintf(w, "%d %s from %s\n", result.Count, result.Resource, target)

	switch records := result.Records.(type) {
	case []record.ClubSoc:
		for _, cs := range records {
			locked := ""
			if cs.IsLocked {
				locked = " (locked)"
			}
			fmt.Fprintf(w, "  %s  %s%s\n", cs.ID, cs.Name, locked)
		}
	case []record.Activity:
		for _, a := range records {
			fmt.Fprintf(w, "  %s  %s %s - %s\n", a.Name, a.Day,
				a.Start.Format("15:04"), a.End.Format("15:04"))
		}
	case []record.Event:
		for _, e := range records {
			fmt.Fprintf(w, "  %s  %s (cost %.2f)\n", e.Name,
				e.Start.Format(time.RFC3339), e.Cost)
		}
	case []record.Fixture:
		for _, f := range records {
			fmt.Fprintf(w, "  %s  %s [%s]\n", f.Name, f.Start.Format(time.RFC3339), f.Type)
		}
	case []record.CommitteeMember:
		for _, m := range records {
			name := "(hidden)"
			if m.Name != nil {
				name = *m.Name
			}
			fmt.Fprintf(w, "  %-20s %s\n", m.Position, name)
		}
	case []record.InfoAward:
		for _, a := range records {
			fmt.Fprintf(w, "  %s  %s - %s (%s)\n", a.Year, a.Name, a.Winner, a.Type)
		}
	case []record.InfoLink:
		for _, l := range records {
			fmt.Fprintf(w, "  %s  %s\n", l.Name, l.URL)
		}
	case []string:
		for _, s := range records {
			fmt.Fprintf(w, "  %s\n", s)
		}
	case record.Info:
		fmt.Fprintf(w, "  name:  %s\n", records.Name)
		fmt.Fprintf(w, "  title: %s\n", records.Title)
		if records.About != nil {
			fmt.Fprintf(w, "  about: %s\n", *records.About)
		}
		for _, l := range records.Links {
			fmt.Fprintf(w, "  link:  %s  %s\n", l.Name, l.URL)
		}
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	}
	return nil
}
