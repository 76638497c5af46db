package stats

import (
	"math"
	"sort"

	"github.com/shivaraj-arch/court-scraper/internal/causelist"
	"github.com/shivaraj-arch/court-scraper/internal/store"
)

// UnknownJudge labels scheduled cases that carry no bench heading.
const UnknownJudge = "Unknown"

// HallStat summarizes one court hall's day.
type HallStat struct {
	CourtHall  string
	Scheduled  int
	Heard      int
	NotReached int
	Efficiency float64
}

// Round2 rounds to two decimal places, the precision stored for
// efficiency percentages.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// HeardSet returns the distinct case numbers among the day's heard rows. The
// board shows a case once per sighting; the set collapses repeats.
func HeardSet(rows []store.HeardCase) map[string]bool {
	set := make(map[string]bool, len(rows))
	for _, r := range rows {
		set[r.CaseNumber] = true
	}
	return set
}

// HallStats groups scheduled cases by court hall and counts how many of each
// hall's cases the board showed. Halls are ordered by identifier.
func HallStats(scheduled []causelist.CaseRecord, heard map[string]bool) []HallStat {
	byHall := make(map[string]*HallStat)
	for i := range scheduled {
		c := &scheduled[i]
		h, ok := byHall[c.CourtHall]
		if !ok {
			h = &HallStat{CourtHall: c.CourtHall}
			byHall[c.CourtHall] = h
		}
		h.Scheduled++
		if heard[c.CaseNumber] {
			h.Heard++
		}
	}

	halls := make([]string, 0, len(byHall))
	for hall := range byHall {
		halls = append(halls, hall)
	}
	sort.Strings(halls)

	out := make([]HallStat, 0, len(halls))
	for _, hall := range halls {
		h := byHall[hall]
		h.NotReached = h.Scheduled - h.Heard
		if h.Scheduled > 0 {
			h.Efficiency = Round2(float64(h.Heard) / float64(h.Scheduled) * 100)
		}
		out = append(out, *h)
	}
	return out
}

// JudgeStats groups scheduled cases by bench. Cases without a bench heading
// fall under UnknownJudge. A judge's hall is the hall of their latest case;
// output keeps first-appearance order.
func JudgeStats(date string, scheduled []causelist.CaseRecord, heard map[string]bool) []store.JudgeStat {
	type agg struct {
		hall      string
		scheduled int
		heard     int
	}
	byJudge := make(map[string]*agg)
	var order []string

	for i := range scheduled {
		c := &scheduled[i]
		judge := c.Judges
		if judge == "" {
			judge = UnknownJudge
		}
		a, ok := byJudge[judge]
		if !ok {
			a = &agg{}
			byJudge[judge] = a
			order = append(order, judge)
		}
		a.hall = c.CourtHall
		a.scheduled++
		if heard[c.CaseNumber] {
			a.heard++
		}
	}

	out := make([]store.JudgeStat, 0, len(order))
	for _, judge := range order {
		a := byJudge[judge]
		efficiency := 0.0
		if a.scheduled > 0 {
			efficiency = float64(a.heard) / float64(a.scheduled) * 100
		}
		out = append(out, store.JudgeStat{
			Date:              date,
			CourtHall:         a.hall,
			JudgeName:         judge,
			CasesScheduled:    a.scheduled,
			CasesHeard:        a.heard,
			CasesNotReached:   a.scheduled - a.heard,
			HearingEfficiency: Round2(efficiency),
		})
	}
	return out
}

// Summarize computes the day's totals. TotalHeard counts distinct heard case
// numbers, not scheduled matches, so board sightings of unlisted cases still
// count.
func Summarize(date string, scheduled []causelist.CaseRecord, heard map[string]bool) store.DailySummary {
	halls := make(map[string]bool)
	for i := range scheduled {
		halls[scheduled[i].CourtHall] = true
	}

	scheduledCount := len(scheduled)
	heardCount := len(heard)
	efficiency := 0.0
	if scheduledCount > 0 {
		efficiency = float64(heardCount) / float64(scheduledCount) * 100
	}

	return store.DailySummary{
		Date:              date,
		TotalScheduled:    scheduledCount,
		TotalHeard:        heardCount,
		TotalNotReached:   scheduledCount - heardCount,
		OverallEfficiency: Round2(efficiency),
		TotalCourtHalls:   len(halls),
	}
}
