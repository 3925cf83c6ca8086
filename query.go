package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrCountryNotFound  = errors.New("country not found")
	ErrDuplicateCountry = errors.New("country matches more than one row")
	ErrNoSubRegion      = errors.New("country has no sub-region")
)

// summaryYear is the year reported by SubRegionSummary.
const summaryYear Year = 2015

// CountryLookup returns the single row for country.
func CountryLookup(t *Table, country string) (Record, error) {
	idx := t.byCountry[country]
	switch len(idx) {
	case 0:
		return Record{}, fmt.Errorf("%w: %q", ErrCountryNotFound, country)
	case 1:
		return t.rows[idx[0]], nil
	}
	return Record{}, fmt.Errorf("%w: %q has %d rows", ErrDuplicateCountry, country, len(idx))
}

// Countries returns the distinct country names in t, sorted.
func Countries(t *Table) []string {
	names := lo.Keys(t.byCountry)
	sort.Strings(names)
	return names
}

// SubRegionSummary aggregates the sub-region a country belongs to.
type SubRegionSummary struct {
	Region      string
	SubRegion   string
	Members     int
	Population  float64 // sum of non-null populations
	CellsPer100 Value   // mean
	InternetPct Value   // mean
}

// SummarizeSubRegion resolves country's sub-region and aggregates the 2015
// population, cellphone and internet figures of every row in it. Nulls are skipped.
func SummarizeSubRegion(t *Table, country string) (SubRegionSummary, error) {
	rec, err := CountryLookup(t, country)
	if err != nil {
		return SubRegionSummary{}, err
	}
	if rec.SubRegion == "" {
		return SubRegionSummary{}, fmt.Errorf("%w: %q", ErrNoSubRegion, country)
	}

	members := lo.Filter(t.rows, func(r Record, _ int) bool { return r.SubRegion == rec.SubRegion })
	column := func(m Metric) []Value {
		return lo.Map(members, func(r Record, _ int) Value {
			return r.Get(Column{Metric: m, Year: summaryYear})
		})
	}
	return SubRegionSummary{
		Region:      rec.Region,
		SubRegion:   rec.SubRegion,
		Members:     len(members),
		Population:  sumValues(column(Population)),
		CellsPer100: meanValues(column(CellsPer100)),
		InternetPct: meanValues(column(InternetPct)),
	}, nil
}

// RegionTrend holds per-region means for each tracked year.
// CellsPer100[i][j] is the mean for Regions[i] in Years[j].
type RegionTrend struct {
	Regions     []string
	Years       []Year
	CellsPer100 [][]Value
	InternetPct [][]Value
}

// TrendByRegion averages cellphones per 100 and internet users over the member
// countries of each region. Regions appear in table order; rows without a
// region are left out.
func TrendByRegion(t *Table) RegionTrend {
	regions := lo.Uniq(lo.FilterMap(t.rows, func(r Record, _ int) (string, bool) {
		return r.Region, r.Region != ""
	}))
	rt := RegionTrend{
		Regions:     regions,
		Years:       append([]Year(nil), trackedYears...),
		CellsPer100: make([][]Value, len(regions)),
		InternetPct: make([][]Value, len(regions)),
	}
	for i, region := range regions {
		members := lo.Filter(t.rows, func(r Record, _ int) bool { return r.Region == region })
		for _, y := range trackedYears {
			rt.CellsPer100[i] = append(rt.CellsPer100[i], meanValues(lo.Map(members, func(r Record, _ int) Value {
				return r.CellsPer100[y]
			})))
			rt.InternetPct[i] = append(rt.InternetPct[i], meanValues(lo.Map(members, func(r Record, _ int) Value {
				return r.InternetPct[y]
			})))
		}
	}
	return rt
}

// Threshold is the result of CountBelow.
type Threshold struct {
	Column  Column
	Limit   float64
	Count   int // non-null values strictly below Limit
	Total   int // rows in the table, null or not
	Percent int // floor(100 * Count / Total)
}

// CountBelow counts the non-null values of col that are strictly less than limit.
func CountBelow(t *Table, col Column, limit float64) Threshold {
	th := Threshold{Column: col, Limit: limit, Total: t.Len()}
	th.Count = lo.CountBy(ColumnValues(t, col), func(v Value) bool {
		return v.Valid && v.Float < limit
	})
	if th.Total > 0 {
		th.Percent = 100 * th.Count / th.Total
	}
	return th
}

// ColumnValues returns col for every row in table order.
func ColumnValues(t *Table, col Column) []Value {
	return lo.Map(t.rows, func(r Record, _ int) Value { return r.Get(col) })
}

func validFloats(vals []Value) []float64 {
	return lo.FilterMap(vals, func(v Value, _ int) (float64, bool) { return v.Float, v.Valid })
}

func sumValues(vals []Value) float64 {
	return floats.Sum(validFloats(vals))
}

// meanValues is null when no value is present.
func meanValues(vals []Value) Value {
	xs := validFloats(vals)
	if len(xs) == 0 {
		return Value{}
	}
	return valueOf(stat.Mean(xs, nil))
}
