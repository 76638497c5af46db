package notifier

import (
	"fmt"

	"github.com/shivaraj-arch/court-scraper/internal/store"
)

// DryRunNotifier prints what would be tweeted without actually posting
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the tweet that would be posted
func (n *DryRunNotifier) Notify(summary store.DailySummary) error {
	tweet := formatTweet(summary)
	fmt.Println("--- Tweet ---")
	fmt.Println(tweet)
	fmt.Printf("\n(Length: %d characters)\n", len(tweet))
	return nil
}
