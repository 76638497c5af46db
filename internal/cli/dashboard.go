package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shivaraj-arch/court-scraper/internal/dashboard"
	"github.com/shivaraj-arch/court-scraper/internal/store"
)

func newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Regenerate the statistics dashboard",
		Long: `Renders the static HTML dashboard from stored statistics into the
configured output directory.`,
		RunE: runDashboard,
	}

	return cmd
}

// runDashboard is the dashboard command logic
func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	st, err := store.NewFromEnv()
	if err != nil {
		return err
	}

	generator := dashboard.NewGenerator(st, cfg.Output.DashboardDir, cfg.Tracking.StartDate)
	path, err := generator.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("generating dashboard: %w", err)
	}
	if path == "" {
		fmt.Println("No statistics stored yet; dashboard not generated.")
		return nil
	}

	fmt.Printf("Dashboard written to %s\n", path)
	return nil
}
