package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shivaraj-arch/court-scraper/internal/causelist"
	"github.com/shivaraj-arch/court-scraper/internal/config"
	"github.com/shivaraj-arch/court-scraper/internal/logger"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitStale   = 2
)

// Court time is Indian Standard Time regardless of where the scraper runs.
var istZone = time.FixedZone("IST", 5*3600+30*60)

var (
	flagConfig  string
	flagDate    string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "court-scraper",
		Short: "Track Karnataka High Court cause lists and hearings",
		Long: `A CLI tool that parses the daily Karnataka High Court cause list,
polls the display board for cases being heard, reconciles the two at end of
day, and publishes summary statistics.`,
	}

	// Define persistent flags shared by all subcommands
	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file (built-in defaults when empty)")
	cmd.PersistentFlags().StringVar(&flagDate, "date", "", "Target date as YYYY-MM-DD (default: today in IST)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newCauselistCmd())
	cmd.AddCommand(newBoardCmd())
	cmd.AddCommand(newEODCmd())
	cmd.AddCommand(newDashboardCmd())
	cmd.AddCommand(newNotifyCmd())

	return cmd
}

// setup applies the logging level and loads configuration. Every subcommand
// calls it first.
func setup() (*config.Config, error) {
	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// targetDate resolves --date, defaulting to today in court time.
func targetDate() (time.Time, error) {
	if flagDate == "" {
		now := time.Now().In(istZone)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, istZone), nil
	}
	day, err := time.ParseInLocation(causelist.DateLayout, flagDate, istZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --date: %w", err)
	}
	return day, nil
}

func timeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Sources.TimeoutSeconds) * time.Second
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
