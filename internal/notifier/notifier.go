package notifier

import (
	"github.com/shivaraj-arch/court-scraper/internal/store"
)

// Notifier defines the interface for posting the daily summary
type Notifier interface {
	// Notify posts the given day's summary statistics
	Notify(summary store.DailySummary) error
}
