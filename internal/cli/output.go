package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/shivaraj-arch/court-scraper/internal/causelist"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt   time.Time               `json:"checked_at"`
	Date        string                  `json:"date"`
	Decision    string                  `json:"decision"`
	RecordCount int                     `json:"record_count"`
	Records     []*causelist.CaseRecord `json:"records"`
	DryRun      bool                    `json:"dry_run,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results grouped by court hall
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.RecordCount == 0 {
		fmt.Fprintln(w, "No cases found.")
		return nil
	}

	byHall := make(map[string][]*causelist.CaseRecord)
	var halls []string
	for _, rec := range result.Records {
		if _, ok := byHall[rec.CourtHall]; !ok {
			halls = append(halls, rec.CourtHall)
		}
		byHall[rec.CourtHall] = append(byHall[rec.CourtHall], rec)
	}
	sort.SliceStable(halls, func(i, j int) bool {
		return hallLess(halls[i], halls[j])
	})

	for _, hall := range halls {
		records := byHall[hall]
		fmt.Fprintf(w, "\nCourt Hall %s (%d cases):\n", hall, len(records))
		for _, rec := range records {
			fmt.Fprintf(w, "  %g. %s [%s]\n", rec.SerialNo, rec.CaseNumber, rec.CaseType)
			if verbose {
				if rec.Judges != "" {
					fmt.Fprintf(w, "       Bench: %s\n", rec.Judges)
				}
				if rec.Petitioner != "" {
					fmt.Fprintf(w, "       Petitioner: %s\n", rec.Petitioner)
				}
				if rec.Respondent != "" {
					fmt.Fprintf(w, "       Respondent: %s\n", rec.Respondent)
				}
			}
		}
	}
	fmt.Fprintf(w, "\nTotal: %d cases across %d court halls\n", result.RecordCount, len(halls))

	return nil
}
