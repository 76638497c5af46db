package dashboard

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/shivaraj-arch/court-scraper/internal/causelist"
	"github.com/shivaraj-arch/court-scraper/internal/logger"
	"github.com/shivaraj-arch/court-scraper/internal/stats"
	"github.com/shivaraj-arch/court-scraper/internal/store"
)

// OutputFile is the page name written under the output directory.
const OutputFile = "index.html"

// topJudgeLimit caps the month's ranking table.
const topJudgeLimit = 10

// Datastore is the persistence surface the generator reads from.
type Datastore interface {
	LatestSummaryDate(ctx context.Context) (string, bool, error)
	SummaryOn(ctx context.Context, date string) (*store.DailySummary, error)
	JudgeStatsOn(ctx context.Context, date string) ([]store.JudgeStat, error)
	SummariesBetween(ctx context.Context, from, to string) ([]store.DailySummary, error)
	SummariesSince(ctx context.Context, from string) ([]store.DailySummary, error)
	JudgeStatsSince(ctx context.Context, from string) ([]store.JudgeStat, error)
}

// Generator builds the dashboard page from stored statistics.
type Generator struct {
	store         Datastore
	outputDir     string
	trackingStart string
	now           func() time.Time
}

// NewGenerator creates a generator writing under outputDir. trackingStart is
// the date shown in the data tracking notice.
func NewGenerator(datastore Datastore, outputDir, trackingStart string) *Generator {
	return &Generator{
		store:         datastore,
		outputDir:     outputDir,
		trackingStart: trackingStart,
		now:           time.Now,
	}
}

// MonthlyStats aggregates the current month's daily summaries.
type MonthlyStats struct {
	Month          string
	Days           int
	TotalScheduled int
	TotalHeard     int
	Efficiency     float64
}

// TopJudge ranks a bench by month-to-date hearing efficiency.
type TopJudge struct {
	Rank           int
	JudgeName      string
	TotalScheduled int
	TotalHeard     int
	Efficiency     float64
}

// Generate renders the dashboard and returns the written file's path. It
// returns an empty path without error when no summaries exist yet.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	date, ok, err := g.store.LatestSummaryDate(ctx)
	if err != nil {
		return "", fmt.Errorf("finding latest summary: %w", err)
	}
	if !ok {
		logger.Warn("No data available for dashboard", nil)
		return "", nil
	}

	summary, err := g.store.SummaryOn(ctx, date)
	if err != nil {
		return "", fmt.Errorf("loading daily summary: %w", err)
	}
	judges, err := g.store.JudgeStatsOn(ctx, date)
	if err != nil {
		return "", fmt.Errorf("loading judge statistics: %w", err)
	}

	today := g.now()
	weekAgo := today.AddDate(0, 0, -6)
	weekly, err := g.store.SummariesBetween(ctx,
		weekAgo.Format(causelist.DateLayout), today.Format(causelist.DateLayout))
	if err != nil {
		return "", fmt.Errorf("loading weekly trend: %w", err)
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).
		Format(causelist.DateLayout)
	monthRows, err := g.store.SummariesSince(ctx, monthStart)
	if err != nil {
		return "", fmt.Errorf("loading monthly summaries: %w", err)
	}
	monthJudges, err := g.store.JudgeStatsSince(ctx, monthStart)
	if err != nil {
		return "", fmt.Errorf("loading monthly judge statistics: %w", err)
	}

	data := pageData{
		LatestDate:       date,
		TrackingStart:    g.trackingStart,
		Judges:           judges,
		Monthly:          monthlyStats(today, monthRows),
		TopJudges:        TopJudges(monthJudges),
		WeeklyDates:      make([]string, 0, len(weekly)),
		WeeklyEfficiency: make([]float64, 0, len(weekly)),
	}
	if summary != nil {
		data.Scheduled = summary.TotalScheduled
		data.Heard = summary.TotalHeard
		data.Efficiency = summary.OverallEfficiency
	}
	data.NotReached = data.Scheduled - data.Heard
	for _, w := range weekly {
		data.WeeklyDates = append(data.WeeklyDates, w.Date)
		data.WeeklyEfficiency = append(data.WeeklyEfficiency, w.OverallEfficiency)
	}

	page, err := renderPage(data)
	if err != nil {
		return "", fmt.Errorf("rendering dashboard: %w", err)
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(g.outputDir, OutputFile)
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return "", fmt.Errorf("writing dashboard: %w", err)
	}

	logger.Info("Dashboard generated", logger.Fields{
		"path": path,
		"date": date,
	})
	return path, nil
}

func monthlyStats(today time.Time, rows []store.DailySummary) *MonthlyStats {
	if len(rows) == 0 {
		return nil
	}
	m := &MonthlyStats{
		Month: today.Format("January 2006"),
		Days:  len(rows),
	}
	for _, r := range rows {
		m.TotalScheduled += r.TotalScheduled
		m.TotalHeard += r.TotalHeard
	}
	if m.TotalScheduled > 0 {
		m.Efficiency = stats.Round2(float64(m.TotalHeard) / float64(m.TotalScheduled) * 100)
	}
	return m
}

// TopJudges folds per-day judge rows into month totals and returns the
// benches with the highest hearing rate, best first.
func TopJudges(rows []store.JudgeStat) []TopJudge {
	type agg struct {
		scheduled int
		heard     int
	}
	byJudge := make(map[string]*agg)
	var order []string

	for i := range rows {
		r := &rows[i]
		a, ok := byJudge[r.JudgeName]
		if !ok {
			a = &agg{}
			byJudge[r.JudgeName] = a
			order = append(order, r.JudgeName)
		}
		a.scheduled += r.CasesScheduled
		a.heard += r.CasesHeard
	}

	top := make([]TopJudge, 0, len(order))
	for _, judge := range order {
		a := byJudge[judge]
		efficiency := 0.0
		if a.scheduled > 0 {
			efficiency = float64(a.heard) / float64(a.scheduled) * 100
		}
		top = append(top, TopJudge{
			JudgeName:      judge,
			TotalScheduled: a.scheduled,
			TotalHeard:     a.heard,
			Efficiency:     stats.Round2(efficiency),
		})
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Efficiency > top[j].Efficiency
	})
	if len(top) > topJudgeLimit {
		top = top[:topJudgeLimit]
	}
	for i := range top {
		top[i].Rank = i + 1
	}
	return top
}
