package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shivaraj-arch/court-scraper/internal/archive"
	"github.com/shivaraj-arch/court-scraper/internal/causelist"
	"github.com/shivaraj-arch/court-scraper/internal/fetch"
	"github.com/shivaraj-arch/court-scraper/internal/logger"
	"github.com/shivaraj-arch/court-scraper/internal/store"
)

var (
	flagCauselistFile   string
	flagCauselistFormat string
	flagCauselistSort   string
	flagCauselistDryRun bool
)

func newCauselistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "causelist",
		Short: "Fetch and parse the daily cause list",
		Long: `Downloads the consolidated cause list PDF, extracts the day's case
records, and upserts them into Supabase alongside a local JSON archive.
A list whose effective date does not match the target date is left
unprocessed and the command exits with code 2.`,
		RunE: runCauselist,
	}

	cmd.Flags().StringVar(&flagCauselistFile, "file", "", "Parse a local PDF instead of downloading")
	cmd.Flags().StringVar(&flagCauselistFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagCauselistSort, "sort", "serial", "Record order: serial, case, or type")
	cmd.Flags().BoolVar(&flagCauselistDryRun, "dry-run", false, "Parse without persisting")

	return cmd
}

// historyAdapter lets the parser consult the store without depending on it
type historyAdapter struct {
	ctx   context.Context
	store *store.Store
}

func (h historyAdapter) Processed(day time.Time) (bool, error) {
	return h.store.Processed(h.ctx, day)
}

// runCauselist is the causelist command logic
func runCauselist(cmd *cobra.Command, args []string) error {
	// Validate format
	format := OutputFormat(strings.ToLower(flagCauselistFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagCauselistFormat)
	}
	order := SortOrder(strings.ToLower(flagCauselistSort))
	if order != SortBySerial && order != SortByCase && order != SortByType {
		return fmt.Errorf("invalid sort: %s (must be 'serial', 'case', or 'type')", flagCauselistSort)
	}

	cfg, err := setup()
	if err != nil {
		return err
	}
	day, err := targetDate()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	var pages []string
	if flagCauselistFile != "" {
		data, err := os.ReadFile(flagCauselistFile)
		if err != nil {
			return fmt.Errorf("reading cause list file: %w", err)
		}
		pages, err = fetch.ExtractPages(data)
		if err != nil {
			return fmt.Errorf("extracting pages: %w", err)
		}
	} else {
		started := time.Now()
		client := fetch.New(cfg.Sources.CauseListURL, timeout(cfg))
		pages, err = client.Document(ctx)
		if err != nil {
			return fmt.Errorf("downloading cause list: %w", err)
		}
		logger.RecordTiming("causelist_download", time.Since(started))
	}

	var st *store.Store
	var history causelist.HistoryStore
	if !flagCauselistDryRun {
		st, err = store.NewFromEnv()
		if err != nil {
			return err
		}
		history = historyAdapter{ctx: ctx, store: st}
	}

	parser := causelist.NewParser(causelist.NewTaxonomy(cfg.Parser.CaseTypes), cfg.Rules(), history)
	decision, records, err := parser.Parse(pages, day)
	if err != nil {
		return fmt.Errorf("parsing cause list: %w", err)
	}
	logger.AddCounter("cases_parsed", int64(len(records)))

	switch decision {
	case causelist.GateDateMismatch:
		logger.Warn("Cause list is not for the target date", logger.Fields{
			"target": day.Format(causelist.DateLayout),
		})
		fmt.Fprintln(os.Stderr, "Cause list effective date does not match the target date; nothing persisted.")
		os.Exit(ExitStale)
	case causelist.GateAlreadyProcessed:
		logger.Info("Cause list already processed", logger.Fields{
			"date": day.Format(causelist.DateLayout),
		})
		fmt.Println("Cause list for this date is already processed.")
		return nil
	case causelist.GateDateUnknown:
		logger.Warn("No effective date found in document, assuming target date", logger.Fields{
			"target": day.Format(causelist.DateLayout),
		})
	}

	sortRecords(records, order)

	if !flagCauselistDryRun {
		if err := st.UpsertCauseList(ctx, records); err != nil {
			return fmt.Errorf("saving cause list: %w", err)
		}
		logger.IncrCounter("causelist_upserts")

		archiveStore, err := archive.New(cfg.Output.ArchiveDir)
		if err != nil {
			return err
		}
		if err := archiveStore.Save(day, records); err != nil {
			return err
		}
		logger.Info("Cause list processed", logger.Fields{
			"date":    day.Format(causelist.DateLayout),
			"cases":   len(records),
			"archive": archiveStore.Path(day),
		})
	}

	if flagVerbose {
		logger.Debug("Run metrics", logger.Fields{
			"metrics": logger.GetMetricsSnapshot(),
		})
	}

	result := &OutputResult{
		CheckedAt:   time.Now().UTC(),
		Date:        day.Format(causelist.DateLayout),
		Decision:    string(decision),
		RecordCount: len(records),
		Records:     records,
		DryRun:      flagCauselistDryRun,
	}
	return WriteOutput(os.Stdout, result, format, flagVerbose)
}
