// Package cli implements the command-line interface for court-scraper.
//
// The cli package provides the Cobra-based CLI with subcommands for parsing the
// daily cause list, polling the display board, running end-of-day statistics,
// regenerating the dashboard, and posting the summary. It coordinates the
// fetch, causelist, store, stats, dashboard, and notifier packages and formats
// parsed records as text or JSON.
package cli
