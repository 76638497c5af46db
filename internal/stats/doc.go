// Package stats computes end-of-day hearing statistics.
//
// The stats package compares the day's scheduled cause list against the cases
// the display board actually showed, producing per-hall and per-judge
// breakdowns plus an overall daily summary. It persists judge statistics,
// the daily summary, and per-case listing histories, and renders a terminal
// report of the results.
package stats
