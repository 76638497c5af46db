package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shivaraj-arch/court-scraper/internal/causelist"
	"github.com/shivaraj-arch/court-scraper/internal/notifier"
	"github.com/shivaraj-arch/court-scraper/internal/store"
)

var flagNotifyDryRun bool

func newNotifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Post the day's summary to Twitter",
		Long: `Posts the stored daily summary for the target date. Without --date the
most recent summary is used. With --dry-run the tweet is printed instead
of posted.`,
		RunE: runNotify,
	}

	cmd.Flags().BoolVar(&flagNotifyDryRun, "dry-run", false, "Print the tweet without posting")

	return cmd
}

// runNotify is the notify command logic
func runNotify(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	ctx := cmd.Context()

	st, err := store.NewFromEnv()
	if err != nil {
		return err
	}

	date := flagDate
	if date == "" {
		latest, ok, err := st.LatestSummaryDate(ctx)
		if err != nil {
			return fmt.Errorf("finding latest summary: %w", err)
		}
		if !ok {
			fmt.Println("No summaries stored yet; nothing to post.")
			return nil
		}
		date = latest
	} else if _, err := time.Parse(causelist.DateLayout, date); err != nil {
		return fmt.Errorf("parsing --date: %w", err)
	}

	summary, err := st.SummaryOn(ctx, date)
	if err != nil {
		return fmt.Errorf("loading daily summary: %w", err)
	}
	if summary == nil {
		return fmt.Errorf("no summary stored for %s", date)
	}

	var target notifier.Notifier
	if flagNotifyDryRun {
		target = notifier.NewDryRunNotifier()
	} else {
		client, err := notifier.NewTwitterNotifier()
		if err != nil {
			return fmt.Errorf("initializing Twitter client: %w", err)
		}
		target = client
	}

	if err := target.Notify(*summary); err != nil {
		return fmt.Errorf("posting summary: %w", err)
	}
	if !flagNotifyDryRun {
		fmt.Printf("Posted summary for %s\n", date)
	}
	return nil
}
