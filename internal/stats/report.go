package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Benches at or above this hearing rate are highlighted as on pace.
const goodEfficiency = 70.0

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	goodColor   = color.New(color.FgGreen)
	slowColor   = color.New(color.FgYellow)
)

// Report writes a terminal summary of the day's statistics.
func (r *Result) Report(w io.Writer) {
	rule := strings.Repeat("=", 60)

	headerColor.Fprintln(w, rule)
	headerColor.Fprintf(w, "DAILY SUMMARY REPORT - %s\n", r.Summary.Date)
	headerColor.Fprintln(w, rule)
	fmt.Fprintf(w, "Total Cases Scheduled: %d\n", r.Summary.TotalScheduled)
	fmt.Fprintf(w, "Total Cases Heard: %d\n", r.Summary.TotalHeard)
	fmt.Fprintf(w, "Total Cases Not Reached: %d\n", r.Summary.TotalNotReached)
	fmt.Fprint(w, "Overall Efficiency: ")
	efficiencyColor(r.Summary.OverallEfficiency).Fprintf(w, "%.1f%%\n", r.Summary.OverallEfficiency)

	if len(r.HallStats) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Statistics by Court Hall:")
		for _, h := range r.HallStats {
			fmt.Fprintf(w, "  Court Hall %s: %d scheduled, %d heard, %d not reached, ",
				h.CourtHall, h.Scheduled, h.Heard, h.NotReached)
			efficiencyColor(h.Efficiency).Fprintf(w, "%.1f%%\n", h.Efficiency)
		}
	}

	if len(r.JudgeStats) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Statistics by Judge:")
		for _, j := range r.JudgeStats {
			fmt.Fprintf(w, "  %s (Court Hall %s): %d scheduled, %d heard, ",
				j.JudgeName, j.CourtHall, j.CasesScheduled, j.CasesHeard)
			efficiencyColor(j.HearingEfficiency).Fprintf(w, "%.1f%%\n", j.HearingEfficiency)
		}
	}

	headerColor.Fprintln(w, rule)
}

func efficiencyColor(efficiency float64) *color.Color {
	if efficiency >= goodEfficiency {
		return goodColor
	}
	return slowColor
}
