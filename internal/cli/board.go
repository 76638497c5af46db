package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shivaraj-arch/court-scraper/internal/causelist"
	"github.com/shivaraj-arch/court-scraper/internal/displayboard"
	"github.com/shivaraj-arch/court-scraper/internal/logger"
	"github.com/shivaraj-arch/court-scraper/internal/store"
)

var flagBoardDryRun bool

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Poll the display board for cases being heard",
		Long: `Scrapes the high court display board and records every case currently
showing for the target date. Repeat sightings of the same case are folded
into appearance counts by the database.`,
		RunE: runBoard,
	}

	cmd.Flags().BoolVar(&flagBoardDryRun, "dry-run", false, "Scrape without persisting")

	return cmd
}

// runBoard is the board command logic
func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	day, err := targetDate()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	scraper := displayboard.New(cfg.Sources.DisplayBoardURL, timeout(cfg))
	started := time.Now()
	records, err := scraper.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("scraping display board: %w", err)
	}
	logger.RecordTiming("board_scrape", time.Since(started))
	logger.AddCounter("board_records", int64(len(records)))
	logger.Info("Scraped display board", logger.Fields{
		"records": len(records),
	})

	if len(records) == 0 {
		fmt.Println("No cases on the display board.")
		return nil
	}

	date := day.Format(causelist.DateLayout)
	now := time.Now().In(istZone).Format(time.RFC3339)
	rows := make([]store.HeardRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, store.HeardRow{
			Date:       date,
			CourtHall:  rec.CourtHall,
			ListNumber: rec.ListNumber,
			CaseNumber: rec.CaseNumber,
			Timestamp:  now,
		})
	}

	if flagBoardDryRun {
		for _, row := range rows {
			fmt.Printf("Court Hall %s, list %s: %s\n", row.CourtHall, row.ListNumber, row.CaseNumber)
		}
		return nil
	}

	st, err := store.NewFromEnv()
	if err != nil {
		return err
	}
	if err := st.RecordHeard(ctx, rows); err != nil {
		return fmt.Errorf("recording heard cases: %w", err)
	}

	if flagVerbose {
		logger.Debug("Run metrics", logger.Fields{
			"metrics": logger.GetMetricsSnapshot(),
		})
	}

	fmt.Printf("Recorded %d board sightings for %s\n", len(rows), date)
	return nil
}
