package store

// Row types mirror the Supabase tables the pipeline writes. JSON tags are the
// column names.

// HeardRow is one display-board sighting sent to the batch_upsert_cases
// database function. The function casts the fields and folds repeat sightings
// into appearance counts.
type HeardRow struct {
	Date       string `json:"date"`
	CourtHall  string `json:"court_hall"`
	ListNumber string `json:"list_number"`
	CaseNumber string `json:"case_number"`
	Timestamp  string `json:"timestamp"`
}

// HeardCase is a heard_cases row: a case the display board showed at least
// once today.
type HeardCase struct {
	Date             string `json:"date"`
	CourtHall        string `json:"court_hall"`
	ListNumber       string `json:"list_number"`
	CaseNumber       string `json:"case_number"`
	FirstHeardAt     string `json:"first_heard_at"`
	LastHeardAt      string `json:"last_heard_at"`
	TotalAppearances int    `json:"total_appearances"`
	Status           string `json:"status"`
}

// TrackerRow is a case_status_tracker row pairing the scheduled and heard
// flags per case per day.
type TrackerRow struct {
	Date         string `json:"date"`
	CourtHall    string `json:"court_hall"`
	CaseNumber   string `json:"case_number"`
	WasScheduled bool   `json:"was_scheduled"`
	WasHeard     bool   `json:"was_heard"`
}

// JudgeStat is a judge_statistics row: one bench's throughput for one day.
type JudgeStat struct {
	Date              string  `json:"date"`
	CourtHall         string  `json:"court_hall"`
	JudgeName         string  `json:"judge_name"`
	CasesScheduled    int     `json:"cases_scheduled"`
	CasesHeard        int     `json:"cases_heard"`
	CasesNotReached   int     `json:"cases_not_reached"`
	HearingEfficiency float64 `json:"hearing_efficiency"`
}

// DailySummary is a daily_summary row keyed by date.
type DailySummary struct {
	Date              string  `json:"date"`
	TotalScheduled    int     `json:"total_scheduled"`
	TotalHeard        int     `json:"total_heard"`
	TotalNotReached   int     `json:"total_not_reached"`
	OverallEfficiency float64 `json:"overall_efficiency"`
	TotalCourtHalls   int     `json:"total_court_halls"`
}

// CaseHistory is a case_history row: a case's listing record since tracking
// began.
type CaseHistory struct {
	CaseNumber      string `json:"case_number"`
	CaseType        string `json:"case_type"`
	FirstListedDate string `json:"first_listed_date"`
	LastListedDate  string `json:"last_listed_date"`
	TotalListings   int    `json:"total_listings"`
	TotalHearings   int    `json:"total_hearings"`
	CurrentStatus   string `json:"current_status"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

// CaseHistoryUpdate carries the columns touched when a known case is listed
// again.
type CaseHistoryUpdate struct {
	LastListedDate string `json:"last_listed_date"`
	TotalListings  int    `json:"total_listings"`
	TotalHearings  int    `json:"total_hearings"`
	CurrentStatus  string `json:"current_status"`
	UpdatedAt      string `json:"updated_at"`
}
