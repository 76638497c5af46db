package notifier

import (
	"fmt"
	"os"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"

	"github.com/shivaraj-arch/court-scraper/internal/store"
)

// TwitterNotifier posts the daily summary to Twitter
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a new Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{client: client}, nil
}

// Notify posts the day's summary as a single tweet
func (n *TwitterNotifier) Notify(summary store.DailySummary) error {
	tweet := formatTweet(summary)

	_, _, err := n.client.Statuses.Update(tweet, nil)
	if err != nil {
		return fmt.Errorf("failed to post summary tweet for %s: %w", summary.Date, err)
	}

	return nil
}

// formatTweet formats a daily summary as a tweet
func formatTweet(summary store.DailySummary) string {
	tweet := "⚖️ Karnataka High Court - Daily Report\n\n"
	tweet += fmt.Sprintf("📅 %s\n", summary.Date)
	tweet += fmt.Sprintf("📋 Cases Scheduled: %d\n", summary.TotalScheduled)
	tweet += fmt.Sprintf("✅ Cases Heard: %d\n", summary.TotalHeard)
	tweet += fmt.Sprintf("⏳ Not Reached: %d\n", summary.TotalNotReached)
	tweet += fmt.Sprintf("📊 Efficiency: %.1f%% across %d court halls\n", summary.OverallEfficiency, summary.TotalCourtHalls)
	tweet += "\n#KarnatakaHighCourt #CauseList"

	// Twitter limit is 280 characters
	if len(tweet) > 280 {
		// Truncate and add ellipsis
		tweet = tweet[:277] + "..."
	}

	return tweet
}
