package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryLookup(t *testing.T) {
	tbl := testTable(t)
	src := testSources()

	for _, c := range Countries(tbl) {
		r, err := CountryLookup(tbl, c)
		require.NoError(t, err, c)
		assert.Equal(t, c, r.Country)
		for _, code := range src.codes {
			if code.Country == c {
				assert.Equal(t, code.Region, r.Region, c)
				assert.Equal(t, code.SubRegion, r.SubRegion, c)
			}
		}
	}

	_, err := CountryLookup(tbl, "Atlantis")
	assert.ErrorIs(t, err, ErrCountryNotFound)
}

func TestCountries(t *testing.T) {
	assert.Equal(t, []string{
		"Bermuda", "Canada", "Kenya", "Mexico", "Nauru", "Tuvalu", "United States",
	}, Countries(testTable(t)))
}

func TestSummarizeSubRegion(t *testing.T) {
	tbl := testTable(t)

	s, err := SummarizeSubRegion(tbl, "Canada")
	require.NoError(t, err)
	assert.Equal(t, "Northern America", s.SubRegion)
	assert.Equal(t, "Americas", s.Region)
	assert.Equal(t, 3, s.Members)
	assert.InDelta(t, 355_000_000, s.Population, 1e-3)
	require.True(t, s.CellsPer100.Valid)
	assert.InDelta(t, 87.5, s.CellsPer100.Float, 1e-9)
	require.True(t, s.InternetPct.Valid)
	assert.InDelta(t, 82.5, s.InternetPct.Float, 1e-9)

	// Bermuda has no data of its own but resolves to the same sub-region.
	b, err := SummarizeSubRegion(tbl, "Bermuda")
	require.NoError(t, err)
	assert.Equal(t, s, b)
}

func TestSummarizeSubRegionErrors(t *testing.T) {
	tbl := testTable(t)

	_, err := SummarizeSubRegion(tbl, "Tuvalu")
	assert.ErrorIs(t, err, ErrNoSubRegion)

	_, err = SummarizeSubRegion(tbl, "Atlantis")
	assert.ErrorIs(t, err, ErrCountryNotFound)
}

func TestTrendByRegion(t *testing.T) {
	rt := TrendByRegion(testTable(t))

	assert.Equal(t, []string{"Africa", "Americas"}, rt.Regions)
	assert.Equal(t, []Year{2005, 2010, 2015}, rt.Years)
	require.Len(t, rt.CellsPer100, 2)
	require.Len(t, rt.InternetPct, 2)
	for i := range rt.Regions {
		assert.Len(t, rt.CellsPer100[i], 3)
		assert.Len(t, rt.InternetPct[i], 3)
	}

	assert.Equal(t, valueOf(80), rt.CellsPer100[0][2])
	assert.Equal(t, valueOf(16), rt.InternetPct[0][2])
	assert.False(t, rt.InternetPct[0][0].Valid, "Kenya has no 2005 internet figure")

	assert.InDelta(t, 260.0/3, rt.CellsPer100[1][2].Float, 1e-9)
	assert.InDelta(t, 74, rt.InternetPct[1][2].Float, 1e-9)
	assert.InDelta(t, 71.7, rt.InternetPct[1][0].Float, 1e-9)
}

func TestCountBelow(t *testing.T) {
	tbl := testTable(t)

	th := CountBelow(tbl, Column{Metric: InternetPct, Year: 2015}, 50)
	assert.Equal(t, 2, th.Count) // Kenya, Tuvalu
	assert.Equal(t, 7, th.Total)
	assert.Equal(t, 28, th.Percent)

	th = CountBelow(tbl, Column{Metric: InternetPct, Year: 2015}, 16)
	assert.Equal(t, 0, th.Count, "comparison is strict")
}

func TestCountBelowPercentRoundsDown(t *testing.T) {
	rows := make([]Record, 195)
	for i := range rows {
		rows[i] = Record{Country: string(rune('A'+i%26)) + string(rune('a'+i/26))}
		if i < 40 {
			rows[i].InternetPct = YearValues{2015: valueOf(10)}
		}
	}
	th := CountBelow(newTable(rows), Column{Metric: InternetPct, Year: 2015}, 50)
	assert.Equal(t, 40, th.Count)
	assert.Equal(t, 20, th.Percent)
}

func TestCountBelowEmptyTable(t *testing.T) {
	th := CountBelow(newTable(nil), Column{Metric: InternetPct, Year: 2015}, 50)
	assert.Equal(t, Threshold{Column: Column{Metric: InternetPct, Year: 2015}, Limit: 50}, th)
}
