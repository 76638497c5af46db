package notifier

import (
	"strings"
	"testing"

	"github.com/shivaraj-arch/court-scraper/internal/store"
)

func TestFormatTweet(t *testing.T) {
	tests := []struct {
		name     string
		summary  store.DailySummary
		contains []string
	}{
		{
			name: "full day",
			summary: store.DailySummary{
				Date:              "2026-01-23",
				TotalScheduled:    842,
				TotalHeard:        517,
				TotalNotReached:   325,
				OverallEfficiency: 61.4,
				TotalCourtHalls:   28,
			},
			contains: []string{
				"2026-01-23",
				"Cases Scheduled: 842",
				"Cases Heard: 517",
				"Not Reached: 325",
				"61.4%",
				"28 court halls",
				"#KarnatakaHighCourt",
				"#CauseList",
				"⚖️",
			},
		},
		{
			name: "quiet day",
			summary: store.DailySummary{
				Date:            "2026-01-26",
				TotalCourtHalls: 0,
			},
			contains: []string{
				"2026-01-26",
				"Cases Scheduled: 0",
				"Efficiency: 0.0%",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatTweet(tt.summary)

			// Check length
			if len(got) > 280 {
				t.Errorf("formatTweet() length = %d, want <= 280", len(got))
			}

			// Check contains
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("formatTweet() missing %q in tweet:\n%s", want, got)
				}
			}
		})
	}
}

func TestDryRunNotifier(t *testing.T) {
	notifier := NewDryRunNotifier()

	summary := store.DailySummary{
		Date:              "2026-01-23",
		TotalScheduled:    842,
		TotalHeard:        517,
		TotalNotReached:   325,
		OverallEfficiency: 61.4,
		TotalCourtHalls:   28,
	}

	// Should not error
	if err := notifier.Notify(summary); err != nil {
		t.Errorf("DryRunNotifier.Notify() error = %v, want nil", err)
	}
}

func TestNewTwitterNotifier_MissingCredentials(t *testing.T) {
	t.Setenv("TWITTER_API_KEY", "")
	t.Setenv("TWITTER_API_SECRET", "")
	t.Setenv("TWITTER_ACCESS_TOKEN", "")
	t.Setenv("TWITTER_ACCESS_SECRET", "")

	if _, err := NewTwitterNotifier(); err == nil {
		t.Fatal("expected an error without credentials")
	}
}
