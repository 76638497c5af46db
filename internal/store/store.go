package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shivaraj-arch/court-scraper/internal/causelist"
)

const (
	restPath    = "/rest/v1/"
	timeout     = 15 * time.Second
	preferMerge = "resolution=merge-duplicates"
)

// Store persists pipeline data through the Supabase REST interface.
type Store struct {
	baseURL    string
	key        string
	httpClient *http.Client
}

// New creates a Store for the given Supabase project.
func New(baseURL, key string) (*Store, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if key == "" {
		return nil, fmt.Errorf("supabase key is required")
	}
	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// NewFromEnv creates a Store from the SUPABASE_URL and SUPABASE_KEY
// environment variables.
func NewFromEnv() (*Store, error) {
	return New(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_KEY"))
}

// do issues one REST request. out, when non-nil, receives the decoded JSON
// response body.
func (s *Store) do(ctx context.Context, method, path string, query url.Values, prefer string, payload, out any) error {
	u := s.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshaling payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Don't include response body in error to prevent information leakage
		return fmt.Errorf("supabase error (status %d)", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// UpsertCauseList writes parsed case records to cause_list and marks each as
// scheduled in case_status_tracker. Re-running on the same document is safe:
// rows merge on their natural key.
func (s *Store) UpsertCauseList(ctx context.Context, records []*causelist.CaseRecord) error {
	if len(records) == 0 {
		return nil
	}
	conflict := url.Values{"on_conflict": {"date,court_hall,case_number"}}

	if err := s.do(ctx, http.MethodPost, restPath+"cause_list", conflict, preferMerge, records, nil); err != nil {
		return fmt.Errorf("upserting cause list: %w", err)
	}

	tracker := make([]TrackerRow, 0, len(records))
	for _, r := range records {
		tracker = append(tracker, TrackerRow{
			Date:         r.Date,
			CourtHall:    r.CourtHall,
			CaseNumber:   r.CaseNumber,
			WasScheduled: true,
		})
	}
	if err := s.do(ctx, http.MethodPost, restPath+"case_status_tracker", conflict, preferMerge, tracker, nil); err != nil {
		return fmt.Errorf("updating status tracker: %w", err)
	}
	return nil
}

// Processed reports whether any cause-list rows exist for the given day.
func (s *Store) Processed(ctx context.Context, day time.Time) (bool, error) {
	query := url.Values{
		"date":   {"eq." + day.Format(causelist.DateLayout)},
		"select": {"id"},
		"limit":  {"1"},
	}
	var rows []struct {
		ID int64 `json:"id"`
	}
	if err := s.do(ctx, http.MethodGet, restPath+"cause_list", query, "", nil, &rows); err != nil {
		return false, fmt.Errorf("querying cause list: %w", err)
	}
	return len(rows) > 0, nil
}

// RecordHeard sends display-board sightings to the batch_upsert_cases
// function in a single call. The database folds repeats into appearance
// counts.
func (s *Store) RecordHeard(ctx context.Context, rows []HeardRow) error {
	if len(rows) == 0 {
		return nil
	}
	payload := map[string][]HeardRow{"payload": rows}
	if err := s.do(ctx, http.MethodPost, restPath+"rpc/batch_upsert_cases", nil, "", payload, nil); err != nil {
		return fmt.Errorf("recording heard cases: %w", err)
	}
	return nil
}

// ScheduledOn returns every cause-list record for the given day.
func (s *Store) ScheduledOn(ctx context.Context, day time.Time) ([]causelist.CaseRecord, error) {
	query := url.Values{"date": {"eq." + day.Format(causelist.DateLayout)}, "select": {"*"}}
	var rows []causelist.CaseRecord
	if err := s.do(ctx, http.MethodGet, restPath+"cause_list", query, "", nil, &rows); err != nil {
		return nil, fmt.Errorf("querying scheduled cases: %w", err)
	}
	return rows, nil
}

// HeardOn returns every heard-case row for the given day.
func (s *Store) HeardOn(ctx context.Context, day time.Time) ([]HeardCase, error) {
	query := url.Values{"date": {"eq." + day.Format(causelist.DateLayout)}, "select": {"*"}}
	var rows []HeardCase
	if err := s.do(ctx, http.MethodGet, restPath+"heard_cases", query, "", nil, &rows); err != nil {
		return nil, fmt.Errorf("querying heard cases: %w", err)
	}
	return rows, nil
}

// UpsertJudgeStats writes one day's per-judge statistics.
func (s *Store) UpsertJudgeStats(ctx context.Context, stats []JudgeStat) error {
	if len(stats) == 0 {
		return nil
	}
	conflict := url.Values{"on_conflict": {"date,court_hall,judge_name"}}
	if err := s.do(ctx, http.MethodPost, restPath+"judge_statistics", conflict, preferMerge, stats, nil); err != nil {
		return fmt.Errorf("upserting judge statistics: %w", err)
	}
	return nil
}

// UpsertDailySummary writes one day's summary row.
func (s *Store) UpsertDailySummary(ctx context.Context, summary DailySummary) error {
	if err := s.do(ctx, http.MethodPost, restPath+"daily_summary", nil, preferMerge, []DailySummary{summary}, nil); err != nil {
		return fmt.Errorf("upserting daily summary: %w", err)
	}
	return nil
}

// CaseHistory returns the history row for a case, or nil when none exists.
func (s *Store) CaseHistory(ctx context.Context, caseNumber string) (*CaseHistory, error) {
	query := url.Values{"case_number": {"eq." + caseNumber}, "select": {"*"}}
	var rows []CaseHistory
	if err := s.do(ctx, http.MethodGet, restPath+"case_history", query, "", nil, &rows); err != nil {
		return nil, fmt.Errorf("querying case history: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// InsertCaseHistory creates a history row for a newly observed case.
func (s *Store) InsertCaseHistory(ctx context.Context, h CaseHistory) error {
	if err := s.do(ctx, http.MethodPost, restPath+"case_history", nil, "", h, nil); err != nil {
		return fmt.Errorf("inserting case history: %w", err)
	}
	return nil
}

// UpdateCaseHistory applies a listing update to an existing history row.
func (s *Store) UpdateCaseHistory(ctx context.Context, caseNumber string, upd CaseHistoryUpdate) error {
	query := url.Values{"case_number": {"eq." + caseNumber}}
	if err := s.do(ctx, http.MethodPatch, restPath+"case_history", query, "", upd, nil); err != nil {
		return fmt.Errorf("updating case history: %w", err)
	}
	return nil
}

// LatestSummaryDate returns the most recent date carrying a daily summary.
// ok is false when no summaries exist yet.
func (s *Store) LatestSummaryDate(ctx context.Context) (string, bool, error) {
	query := url.Values{"select": {"date"}, "order": {"date.desc"}, "limit": {"1"}}
	var rows []struct {
		Date string `json:"date"`
	}
	if err := s.do(ctx, http.MethodGet, restPath+"daily_summary", query, "", nil, &rows); err != nil {
		return "", false, fmt.Errorf("querying latest summary: %w", err)
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].Date, true, nil
}

// SummaryOn returns the daily summary for a date, or nil when none exists.
func (s *Store) SummaryOn(ctx context.Context, date string) (*DailySummary, error) {
	query := url.Values{"date": {"eq." + date}, "select": {"*"}}
	var rows []DailySummary
	if err := s.do(ctx, http.MethodGet, restPath+"daily_summary", query, "", nil, &rows); err != nil {
		return nil, fmt.Errorf("querying daily summary: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// JudgeStatsOn returns a date's judge statistics, most efficient first.
func (s *Store) JudgeStatsOn(ctx context.Context, date string) ([]JudgeStat, error) {
	query := url.Values{
		"date":   {"eq." + date},
		"select": {"*"},
		"order":  {"hearing_efficiency.desc"},
	}
	var rows []JudgeStat
	if err := s.do(ctx, http.MethodGet, restPath+"judge_statistics", query, "", nil, &rows); err != nil {
		return nil, fmt.Errorf("querying judge statistics: %w", err)
	}
	return rows, nil
}

// SummariesBetween returns daily summaries for an inclusive date range in
// ascending order.
func (s *Store) SummariesBetween(ctx context.Context, from, to string) ([]DailySummary, error) {
	query := url.Values{
		"date":   {"gte." + from, "lte." + to},
		"select": {"*"},
		"order":  {"date"},
	}
	var rows []DailySummary
	if err := s.do(ctx, http.MethodGet, restPath+"daily_summary", query, "", nil, &rows); err != nil {
		return nil, fmt.Errorf("querying summary range: %w", err)
	}
	return rows, nil
}

// SummariesSince returns daily summaries from a date onward.
func (s *Store) SummariesSince(ctx context.Context, from string) ([]DailySummary, error) {
	query := url.Values{"date": {"gte." + from}, "select": {"*"}}
	var rows []DailySummary
	if err := s.do(ctx, http.MethodGet, restPath+"daily_summary", query, "", nil, &rows); err != nil {
		return nil, fmt.Errorf("querying summaries: %w", err)
	}
	return rows, nil
}

// JudgeStatsSince returns judge statistics from a date onward.
func (s *Store) JudgeStatsSince(ctx context.Context, from string) ([]JudgeStat, error) {
	query := url.Values{"date": {"gte." + from}, "select": {"*"}}
	var rows []JudgeStat
	if err := s.do(ctx, http.MethodGet, restPath+"judge_statistics", query, "", nil, &rows); err != nil {
		return nil, fmt.Errorf("querying judge statistics: %w", err)
	}
	return rows, nil
}
