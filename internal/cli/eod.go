package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shivaraj-arch/court-scraper/internal/causelist"
	"github.com/shivaraj-arch/court-scraper/internal/stats"
	"github.com/shivaraj-arch/court-scraper/internal/store"
)

func newEODCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eod",
		Short: "Run end-of-day statistics",
		Long: `Compares the day's scheduled cause list against display board sightings,
persists judge statistics, the daily summary, and per-case histories, and
prints a summary report.`,
		RunE: runEOD,
	}

	return cmd
}

// runEOD is the eod command logic
func runEOD(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	day, err := targetDate()
	if err != nil {
		return err
	}

	st, err := store.NewFromEnv()
	if err != nil {
		return err
	}

	processor := stats.NewProcessor(st)
	result, err := processor.Run(cmd.Context(), day)
	if err != nil {
		return fmt.Errorf("running end-of-day processing: %w", err)
	}
	if result == nil {
		fmt.Printf("No scheduled cases for %s; nothing to report.\n", day.Format(causelist.DateLayout))
		return nil
	}

	result.Report(os.Stdout)
	return nil
}
