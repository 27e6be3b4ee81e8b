package domain

import "sort"

// ProjectionTable is the sparse (team, round ordinal, week) → value grid of
// team-specific future-pick projections. Not every week is populated for
// every team, so callers discover available weeks and pick the closest.
type ProjectionTable struct {
	year   int
	values map[string]map[string]map[int]float64
}

func NewProjectionTable(year int) *ProjectionTable {
	return &ProjectionTable{
		year:   year,
		values: map[string]map[string]map[int]float64{},
	}
}

// Year is the draft year the projections describe.
func (t *ProjectionTable) Year() int {
	return t.year
}

func (t *ProjectionTable) Set(team, roundOrdinal string, week int, value float64) {
	if _, ok := t.values[team]; !ok {
		t.values[team] = map[string]map[int]float64{}
	}
	if _, ok := t.values[team][roundOrdinal]; !ok {
		t.values[team][roundOrdinal] = map[int]float64{}
	}
	t.values[team][roundOrdinal][week] = value
}

func (t *ProjectionTable) HasTeam(team string) bool {
	_, ok := t.values[team]
	return ok
}

// Weeks returns the populated week numbers for a team/round, sorted.
func (t *ProjectionTable) Weeks(team, roundOrdinal string) []int {
	byRound, ok := t.values[team]
	if !ok {
		return nil
	}
	byWeek, ok := byRound[roundOrdinal]
	if !ok {
		return nil
	}
	weeks := make([]int, 0, len(byWeek))
	for w := range byWeek {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)
	return weeks
}

func (t *ProjectionTable) Value(team, roundOrdinal string, week int) (float64, bool) {
	byRound, ok := t.values[team]
	if !ok {
		return 0, false
	}
	byWeek, ok := byRound[roundOrdinal]
	if !ok {
		return 0, false
	}
	v, ok := byWeek[week]
	return v, ok
}
