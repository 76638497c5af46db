package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/shivaraj-arch/court-scraper/internal/causelist"
	"github.com/shivaraj-arch/court-scraper/internal/logger"
	"github.com/shivaraj-arch/court-scraper/internal/store"
)

// Case history statuses.
const (
	StatusHeard   = "heard"
	StatusPending = "pending"
)

// Datastore is the persistence surface the processor needs.
type Datastore interface {
	ScheduledOn(ctx context.Context, day time.Time) ([]causelist.CaseRecord, error)
	HeardOn(ctx context.Context, day time.Time) ([]store.HeardCase, error)
	UpsertJudgeStats(ctx context.Context, stats []store.JudgeStat) error
	UpsertDailySummary(ctx context.Context, summary store.DailySummary) error
	CaseHistory(ctx context.Context, caseNumber string) (*store.CaseHistory, error)
	InsertCaseHistory(ctx context.Context, history store.CaseHistory) error
	UpdateCaseHistory(ctx context.Context, caseNumber string, update store.CaseHistoryUpdate) error
}

// Processor runs the end-of-day reconciliation for a single date.
type Processor struct {
	store Datastore
	now   func() time.Time
}

// NewProcessor creates a processor backed by the given datastore.
func NewProcessor(datastore Datastore) *Processor {
	return &Processor{
		store: datastore,
		now:   time.Now,
	}
}

// Result holds the computed statistics for one day.
type Result struct {
	Summary    store.DailySummary
	HallStats  []HallStat
	JudgeStats []store.JudgeStat
}

// Run computes and persists statistics for the given day. It returns a nil
// Result without error when no cases were scheduled, since there is nothing
// to reconcile on court holidays.
func (p *Processor) Run(ctx context.Context, day time.Time) (*Result, error) {
	date := day.Format(causelist.DateLayout)

	scheduled, err := p.store.ScheduledOn(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("loading scheduled cases: %w", err)
	}
	if len(scheduled) == 0 {
		logger.Warn("No scheduled cases found, skipping end-of-day processing", logger.Fields{
			"date": date,
		})
		return nil, nil
	}

	heardRows, err := p.store.HeardOn(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("loading heard cases: %w", err)
	}
	heard := HeardSet(heardRows)

	result := &Result{
		Summary:    Summarize(date, scheduled, heard),
		HallStats:  HallStats(scheduled, heard),
		JudgeStats: JudgeStats(date, scheduled, heard),
	}
	logger.Info("Computed daily statistics", logger.Fields{
		"date":        date,
		"scheduled":   result.Summary.TotalScheduled,
		"heard":       result.Summary.TotalHeard,
		"not_reached": result.Summary.TotalNotReached,
		"efficiency":  result.Summary.OverallEfficiency,
		"court_halls": result.Summary.TotalCourtHalls,
	})

	if err := p.store.UpsertJudgeStats(ctx, result.JudgeStats); err != nil {
		return nil, fmt.Errorf("saving judge statistics: %w", err)
	}
	if err := p.store.UpsertDailySummary(ctx, result.Summary); err != nil {
		return nil, fmt.Errorf("saving daily summary: %w", err)
	}
	p.updateHistories(ctx, date, scheduled, heard)

	return result, nil
}

// updateHistories advances the listing history of each scheduled case.
// History failures are logged and skipped rather than failing the run, so a
// missing table does not block the summary.
func (p *Processor) updateHistories(ctx context.Context, date string, scheduled []causelist.CaseRecord, heard map[string]bool) {
	for i := range scheduled {
		c := &scheduled[i]
		hearings := 0
		status := StatusPending
		if heard[c.CaseNumber] {
			hearings = 1
			status = StatusHeard
		}

		existing, err := p.store.CaseHistory(ctx, c.CaseNumber)
		if err != nil {
			logger.Debug("Could not read case history", logger.Fields{
				"case_number": c.CaseNumber,
				"error":       err.Error(),
			})
			continue
		}

		if existing == nil {
			history := store.CaseHistory{
				CaseNumber:      c.CaseNumber,
				CaseType:        c.CaseType,
				FirstListedDate: date,
				LastListedDate:  date,
				TotalListings:   1,
				TotalHearings:   hearings,
				CurrentStatus:   status,
			}
			if err := p.store.InsertCaseHistory(ctx, history); err != nil {
				logger.Debug("Could not insert case history", logger.Fields{
					"case_number": c.CaseNumber,
					"error":       err.Error(),
				})
			}
			continue
		}

		update := store.CaseHistoryUpdate{
			LastListedDate: date,
			TotalListings:  existing.TotalListings + 1,
			TotalHearings:  existing.TotalHearings + hearings,
			CurrentStatus:  status,
			UpdatedAt:      p.now().UTC().Format(time.RFC3339),
		}
		if err := p.store.UpdateCaseHistory(ctx, c.CaseNumber, update); err != nil {
			logger.Debug("Could not update case history", logger.Fields{
				"case_number": c.CaseNumber,
				"error":       err.Error(),
			})
		}
	}
}
