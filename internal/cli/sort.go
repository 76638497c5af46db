package cli

import (
	"sort"
	"strconv"

	"github.com/shivaraj-arch/court-scraper/internal/causelist"
)

// SortOrder represents the available record orderings
type SortOrder string

const (
	SortBySerial SortOrder = "serial"
	SortByCase   SortOrder = "case"
	SortByType   SortOrder = "type"
)

// sortRecords orders parsed records based on the specified sort order
func sortRecords(records []*causelist.CaseRecord, order SortOrder) {
	switch order {
	case SortBySerial:
		sort.SliceStable(records, func(i, j int) bool {
			return compareBySerial(records[i], records[j])
		})
	case SortByCase:
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].CaseNumber != records[j].CaseNumber {
				return records[i].CaseNumber < records[j].CaseNumber
			}
			// If case numbers are equal, fall back to list position
			return compareBySerial(records[i], records[j])
		})
	case SortByType:
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].CaseType != records[j].CaseType {
				return records[i].CaseType < records[j].CaseType
			}
			// If types are equal, fall back to list position
			return compareBySerial(records[i], records[j])
		})
	}
}

// compareBySerial orders records by court hall, then list number, then serial
// Returns true if record i should come before record j
func compareBySerial(i, j *causelist.CaseRecord) bool {
	if i.CourtHall != j.CourtHall {
		return hallLess(i.CourtHall, j.CourtHall)
	}
	if i.ListNumber != j.ListNumber {
		return i.ListNumber < j.ListNumber
	}
	return i.SerialNo < j.SerialNo
}

// hallLess orders hall identifiers numerically when possible ("2" before
// "14"), with numeric halls ahead of lettered ones.
func hallLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	if aerr == nil {
		return true
	}
	if berr == nil {
		return false
	}
	return a < b
}
