package main

import (
	"fmt"

	"github.com/samber/lo"
)

// Merge joins the loaded sources into a single table indexed by
// (Region, SubRegion, Country) and computes the derived population columns.
//
// Cellphone tables are outer joined, the internet table is left joined with the
// pivoted growth rates, and the result is outer joined with the code table.
// The left join is what drops the region and world aggregate rows of the
// population source: they never appear in the internet table.
func Merge(src *sources) (*Table, error) {
	rates, err := pivotRates(src.rates)
	if err != nil {
		return nil, err
	}

	combined := make(map[string]*Record)
	get := func(country string) *Record {
		r, ok := combined[country]
		if !ok {
			r = &Record{Country: country}
			combined[country] = r
		}
		return r
	}

	// Cellphones per 100 and total cellphones, outer.
	for _, c := range src.cellsPer100.countries {
		get(c).CellsPer100 = src.cellsPer100.values[c]
	}
	for _, c := range src.cellCount.countries {
		get(c).CellCount = src.cellCount.values[c]
	}

	// Internet users with growth rates, left on the internet table.
	for _, c := range src.internet.countries {
		r := get(c)
		r.InternetPct = src.internet.values[c]
		r.GrowthRate = rates[c]
	}

	rows := make([]Record, 0, len(combined)+len(src.codes))
	coded := make(map[string]bool, len(src.codes))
	for _, code := range src.codes {
		r := Record{Country: code.Country}
		if c, ok := combined[code.Country]; ok {
			r = *c
		}
		r.Region = code.Region
		r.SubRegion = code.SubRegion
		rows = append(rows, r)
		coded[code.Country] = true
	}
	for country, r := range combined {
		if !coded[country] {
			rows = append(rows, *r)
		}
	}

	for i := range rows {
		rows[i].Population = derivePopulation(rows[i].CellCount, rows[i].CellsPer100)
	}
	return newTable(rows), nil
}

// pivotRates keeps the annual rate of increase series and reshapes it to one
// YearValues per area. Only tracked years survive loading, so earlier years
// are already gone.
func pivotRates(rows []rateRow) (map[string]YearValues, error) {
	wide := make(map[string]YearValues)
	for _, r := range lo.Filter(rows, func(r rateRow, _ int) bool { return r.Series == rateSeries }) {
		yv, ok := wide[r.Area]
		if !ok {
			yv = make(YearValues, len(trackedYears))
			wide[r.Area] = yv
		}
		if _, dup := yv[r.Year]; dup {
			return nil, fmt.Errorf("duplicate %q entry for %q in %d", rateSeries, r.Area, r.Year)
		}
		yv[r.Year] = r.Value
	}
	return wide, nil
}

// derivePopulation back-calculates population as count / (per100 / 100) for
// each tracked year. The result is null where either input is null or per100 is 0.
func derivePopulation(count, per100 YearValues) YearValues {
	pop := make(YearValues, len(trackedYears))
	for _, y := range trackedYears {
		c, p := count[y], per100[y]
		if !c.Valid || !p.Valid || p.Float == 0 {
			pop[y] = Value{}
			continue
		}
		pop[y] = valueOf(c.Float / (p.Float / 100))
	}
	return pop
}
