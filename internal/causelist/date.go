package causelist

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// effectiveDateRe matches the natural-language phrase a cause list states its
// effective day with, e.g. "CAUSE LIST FOR FRIDAY THE 23RD DAY OF JANUARY, 2026".
// The weekday is optional and the ordinal suffix varies.
var effectiveDateRe = regexp.MustCompile(`(?i)CAUSE\s+LIST\s+FOR\s+(?:[A-Za-z]+\s+)?THE\s+(\d{1,2})\s*(?:ST|ND|RD|TH)?\s+DAY\s+OF\s+([A-Za-z]+)\s*,?\s*(\d{4})`)

// ExtractEffectiveDate scans normalized text for the document's stated
// effective date. The boolean reports whether a well-formed phrase was found.
func ExtractEffectiveDate(text string) (time.Time, bool) {
	m := effectiveDateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	month := parseMonth(m[2])
	if month == 0 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, false
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		// time.Date silently normalizes impossible dates such as February 30
		return time.Time{}, false
	}
	return t, true
}

// parseMonth maps a month name to its time.Month. Returns 0 for unknown names.
func parseMonth(name string) time.Month {
	name = strings.ToLower(strings.TrimSpace(name))

	months := map[string]time.Month{
		"jan": time.January, "january": time.January,
		"feb": time.February, "february": time.February,
		"mar": time.March, "march": time.March,
		"apr": time.April, "april": time.April,
		"may": time.May,
		"jun": time.June, "june": time.June,
		"jul": time.July, "july": time.July,
		"aug": time.August, "august": time.August,
		"sep": time.September, "september": time.September,
		"oct": time.October, "october": time.October,
		"nov": time.November, "november": time.November,
		"dec": time.December, "december": time.December,
	}

	return months[name]
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Gate classifies a document's stated effective date against the date the
// caller expects to process. The alreadyProcessed flag comes from an external
// history lookup and only matters when the dates agree.
func Gate(effective time.Time, found bool, expected time.Time, alreadyProcessed bool) GatingDecision {
	if !found {
		return GateDateUnknown
	}
	if !SameDay(effective, expected) {
		return GateDateMismatch
	}
	if alreadyProcessed {
		return GateAlreadyProcessed
	}
	return GateNew
}
