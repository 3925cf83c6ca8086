package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func yv(pairs ...float64) YearValues {
	out := make(YearValues)
	for i := 0; i+1 < len(pairs); i += 2 {
		out[Year(pairs[i])] = valueOf(pairs[i+1])
	}
	return out
}

func newCountryTable(values map[string]YearValues) countryTable {
	ct := countryTable{values: values}
	for c := range values {
		ct.countries = append(ct.countries, c)
	}
	return ct
}

// testSources describes a small world:
//   - Canada, United States and Bermuda (codes only) in Americas / Northern America
//   - Mexico in Americas / Central America, Kenya in Africa / Eastern Africa
//   - Tuvalu and Nauru with data but no code entry
func testSources() *sources {
	return &sources{
		cellsPer100: newCountryTable(map[string]YearValues{
			"Canada":        yv(2005, 52, 2010, 70, 2015, 50),
			"United States": yv(2005, 68, 2010, 90, 2015, 125),
			"Mexico":        yv(2005, 44, 2010, 80, 2015, 85),
			"Kenya":         yv(2005, 13, 2010, 61, 2015, 80),
			"Tuvalu":        yv(2005, 0),
		}),
		cellCount: newCountryTable(map[string]YearValues{
			"Canada":        yv(2015, 17_500_000),
			"United States": yv(2015, 400_000_000),
			"Mexico":        yv(2015, 102_000_000),
			"Kenya":         yv(2015, 36_000_000),
			"Tuvalu":        yv(2005, 100),
			"Nauru":         yv(2015, 5_000),
		}),
		internet: newCountryTable(map[string]YearValues{
			"Canada":        yv(2005, 71.7, 2010, 80.3, 2015, 90),
			"United States": yv(2015, 75),
			"Mexico":        yv(2015, 57),
			"Kenya":         yv(2015, 16),
			"Tuvalu":        yv(2015, 46),
		}),
		rates: []rateRow{
			{Area: "Canada", Year: 2005, Series: rateSeries, Value: valueOf(1.0)},
			{Area: "Canada", Year: 2010, Series: rateSeries, Value: valueOf(1.1)},
			{Area: "Canada", Year: 2015, Series: rateSeries, Value: valueOf(0.9)},
			{Area: "Canada", Year: 2015, Series: "Population mid-year estimates (millions)", Value: valueOf(36)},
			{Area: "Kenya", Year: 2015, Series: rateSeries, Value: valueOf(2.6)},
			{Area: "Northern America", Year: 2015, Series: rateSeries, Value: valueOf(0.8)},
		},
		codes: []regionCode{
			{Country: "Canada", Region: "Americas", SubRegion: "Northern America"},
			{Country: "United States", Region: "Americas", SubRegion: "Northern America"},
			{Country: "Bermuda", Region: "Americas", SubRegion: "Northern America"},
			{Country: "Mexico", Region: "Americas", SubRegion: "Central America"},
			{Country: "Kenya", Region: "Africa", SubRegion: "Eastern Africa"},
		},
	}
}

func testTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := Merge(testSources())
	require.NoError(t, err)
	return tbl
}

// writeWorkbook saves rows to the first sheet of a new workbook under dir.
func writeWorkbook(t *testing.T, dir, name string, rows [][]interface{}) string {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	require.NoError(t, f.SaveAs(p))
	return p
}
