package main

import (
	"fmt"
	"sort"
	"strconv"
)

// Value is a numeric cell that may be missing.
type Value struct {
	Float float64
	Valid bool
}

func valueOf(f float64) Value {
	return Value{Float: f, Valid: true}
}

// Year is one of the tracked reporting years.
type Year int

var trackedYears = []Year{2005, 2010, 2015}

func parseYear(s string) (Year, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	for _, y := range trackedYears {
		if Year(n) == y {
			return y, true
		}
	}
	return 0, false
}

// YearValues holds one metric for the tracked years. A missing key reads as null.
type YearValues map[Year]Value

// Metric identifies one per-year attribute of a Record. The numeric value is the
// index shown in the session menu.
type Metric int

const (
	CellsPer100 Metric = iota
	CellCount
	InternetPct
	GrowthRate
	Population
)

var metrics = []Metric{CellsPer100, CellCount, InternetPct, GrowthRate, Population}

func (m Metric) String() string {
	switch m {
	case CellsPer100:
		return "Number of cellphones per 100 people"
	case CellCount:
		return "Total # of cellphones"
	case InternetPct:
		return "% Internet users"
	case GrowthRate:
		return "% Population annual rate of increase"
	case Population:
		return "Total population"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

func (m Metric) suffix() string {
	switch m {
	case CellsPer100:
		return "c%"
	case CellCount:
		return "c#"
	case InternetPct:
		return "i%"
	case GrowthRate:
		return "r"
	case Population:
		return "pop"
	}
	return "?"
}

// Column selects one metric in one year.
type Column struct {
	Metric Metric
	Year   Year
}

// ParseColumn maps a menu index (0-4) and a year to a Column.
func ParseColumn(metricIndex int, year Year) (Column, error) {
	if metricIndex < 0 || metricIndex >= len(metrics) {
		return Column{}, fmt.Errorf("metric index %d out of range 0-%d", metricIndex, len(metrics)-1)
	}
	for _, y := range trackedYears {
		if y == year {
			return Column{Metric: metrics[metricIndex], Year: year}, nil
		}
	}
	return Column{}, fmt.Errorf("year %d is not tracked", year)
}

// allColumns returns the 15 selectable columns, metric-major.
func allColumns() []Column {
	cols := make([]Column, 0, len(metrics)*len(trackedYears))
	for _, m := range metrics {
		for _, y := range trackedYears {
			cols = append(cols, Column{Metric: m, Year: y})
		}
	}
	return cols
}

// Key returns the short column name, e.g. "2015_i%".
func (c Column) Key() string {
	return fmt.Sprintf("%d_%s", c.Year, c.Metric.suffix())
}

// Label returns the descriptive column name, e.g. "% Internet users in 2015".
func (c Column) Label() string {
	return fmt.Sprintf("%s in %d", c.Metric, c.Year)
}

// Record is one country row of the merged table.
// Region and SubRegion are empty when the country has no code table entry.
type Record struct {
	Region    string
	SubRegion string
	Country   string

	CellsPer100 YearValues
	CellCount   YearValues
	InternetPct YearValues
	GrowthRate  YearValues
	Population  YearValues // derived from CellCount and CellsPer100
}

// Get returns the value of col for r.
func (r Record) Get(col Column) Value {
	switch col.Metric {
	case CellsPer100:
		return r.CellsPer100[col.Year]
	case CellCount:
		return r.CellCount[col.Year]
	case InternetPct:
		return r.InternetPct[col.Year]
	case GrowthRate:
		return r.GrowthRate[col.Year]
	case Population:
		return r.Population[col.Year]
	}
	return Value{}
}

// Table is the merged (Region, Sub-Region, Country) table. It is not modified
// after newTable returns.
type Table struct {
	rows      []Record
	byCountry map[string][]int
}

// newTable sorts rows by (Region, SubRegion, Country) and indexes them by country.
// Rows without a region sort after all others.
func newTable(rows []Record) *Table {
	sort.SliceStable(rows, func(i, j int) bool {
		return recordLess(rows[i], rows[j])
	})
	t := &Table{rows: rows, byCountry: make(map[string][]int, len(rows))}
	for i, r := range rows {
		t.byCountry[r.Country] = append(t.byCountry[r.Country], i)
	}
	return t
}

func recordLess(a, b Record) bool {
	if c := compareKey(a.Region, b.Region); c != 0 {
		return c < 0
	}
	if c := compareKey(a.SubRegion, b.SubRegion); c != 0 {
		return c < 0
	}
	return a.Country < b.Country
}

// compareKey orders strings lexicographically with the empty (null) key last.
func compareKey(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	case a < b:
		return -1
	}
	return 1
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns the rows in index order. Callers must not modify the records.
func (t *Table) Rows() []Record {
	out := make([]Record, len(t.rows))
	copy(out, t.rows)
	return out
}
