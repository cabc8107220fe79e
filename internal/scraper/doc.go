// Package scraper extracts structured records from pages rendered by the
// university clubs & societies membership platform template.
//
// The template is not machine-oriented: values sit in emphasized tags next
// to human-readable labels, and each event, activity or fixture is split
// across a visible summary row and a hidden detail row whose pairing is
// positional rather than keyed. The parsers here locate labelled fragments,
// validate the row pairing up front, and fail fast with a StructuralError
// whenever a template assumption is violated, since a silent skip would
// desynchronize every subsequent row pair.
//
// Parsing performs no I/O; page bytes are fetched by the caller and handed
// in. The Scraper type ties the pure parse functions to a fetch.Fetcher.
package scraper
