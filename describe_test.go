package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	d := Describe(testTable(t), Column{Metric: InternetPct, Year: 2015})

	// 16, 46, 57, 75, 90 with Bermuda and Nauru dropped.
	assert.Equal(t, 5, d.Count)
	assert.InDelta(t, 56.8, d.Mean.Float, 1e-9)
	assert.InDelta(t, math.Sqrt(803.7), d.Std.Float, 1e-9)
	assert.Equal(t, valueOf(16), d.Min)
	assert.Equal(t, valueOf(46), d.Q25)
	assert.Equal(t, valueOf(57), d.Q50)
	assert.Equal(t, valueOf(75), d.Q75)
	assert.Equal(t, valueOf(90), d.Max)
}

func TestDescribeInterpolates(t *testing.T) {
	rows := []Record{
		{Country: "a", CellsPer100: yv(2010, 1)},
		{Country: "b", CellsPer100: yv(2010, 2)},
		{Country: "c", CellsPer100: yv(2010, 3)},
		{Country: "d", CellsPer100: yv(2010, 4)},
	}
	d := Describe(newTable(rows), Column{Metric: CellsPer100, Year: 2010})

	require.Equal(t, 4, d.Count)
	assert.InDelta(t, 2.5, d.Mean.Float, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), d.Std.Float, 1e-12)
	assert.InDelta(t, 1.75, d.Q25.Float, 1e-12)
	assert.InDelta(t, 2.5, d.Q50.Float, 1e-12)
	assert.InDelta(t, 3.25, d.Q75.Float, 1e-12)
}

func TestDescribeAllNull(t *testing.T) {
	col := Column{Metric: GrowthRate, Year: 2010}
	rows := []Record{{Country: "a"}, {Country: "b"}}
	assert.Equal(t, Description{Column: col}, Describe(newTable(rows), col))
}

func TestDescribeSingleValue(t *testing.T) {
	col := Column{Metric: CellCount, Year: 2005}
	d := Describe(newTable([]Record{{Country: "a", CellCount: yv(2005, 7)}}), col)
	assert.Equal(t, 1, d.Count)
	assert.Equal(t, valueOf(7), d.Mean)
	assert.False(t, d.Std.Valid)
	assert.Equal(t, valueOf(7), d.Q25)
	assert.Equal(t, valueOf(7), d.Max)
}
