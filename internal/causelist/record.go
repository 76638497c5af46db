package causelist

import "time"

// UnknownHall is the sentinel hall identifier carried by records parsed before
// any court-hall heading has been seen.
const UnknownHall = "unknown"

// NoDetails is the sentinel stored when a case identifier carries no free-text
// detail beyond its number.
const NoDetails = "none"

// DateLayout is the calendar-date form used throughout the pipeline.
const DateLayout = "2006-01-02"

// CaseRecord is one scheduled case extracted from a cause list. JSON tags
// match the column names of the cause_list table.
type CaseRecord struct {
	Date        string  `json:"date"`
	CourtHall   string  `json:"court_hall"` // assigned once by orphan backfill when initially unknown
	ListNumber  int     `json:"list_number"`
	SerialNo    float64 `json:"sl_no"` // decimal sub-items such as 44.1 order numerically
	CaseNumber  string  `json:"case_number"`
	CaseType    string  `json:"case_type"`
	CaseDetails string  `json:"case_details"`
	Judges      string  `json:"judges"`
	Petitioner  string  `json:"petitioner"`
	Respondent  string  `json:"respondent"`
}

// GatingDecision classifies a document's stated effective date against the
// date the caller intends to process. It is advisory: records are extracted
// regardless, and the caller decides whether to persist them.
type GatingDecision string

const (
	GateNew              GatingDecision = "new"
	GateAlreadyProcessed GatingDecision = "already_processed"
	GateDateMismatch     GatingDecision = "date_mismatch"
	GateDateUnknown      GatingDecision = "date_unknown"
)

// HistoryStore answers whether a calendar date has already been fully
// processed. A nil store reports every date as unprocessed.
type HistoryStore interface {
	Processed(day time.Time) (bool, error)
}
