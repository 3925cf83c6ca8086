package main

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Description holds descriptive statistics of one column with nulls dropped.
// With Count 0 every other field is null; with Count 1 Std is null.
type Description struct {
	Column Column
	Count  int
	Mean   Value
	Std    Value // sample standard deviation (n-1)
	Min    Value
	Q25    Value
	Q50    Value
	Q75    Value
	Max    Value
}

// Describe computes count, mean, standard deviation, quartiles and extremes of col.
func Describe(t *Table, col Column) Description {
	xs := validFloats(ColumnValues(t, col))
	d := Description{Column: col, Count: len(xs)}
	if len(xs) == 0 {
		return d
	}
	sort.Float64s(xs)

	d.Mean = valueOf(stat.Mean(xs, nil))
	if len(xs) > 1 {
		d.Std = valueOf(stat.StdDev(xs, nil))
	}
	d.Min = valueOf(floats.Min(xs))
	d.Q25 = valueOf(percentile(xs, 0.25))
	d.Q50 = valueOf(percentile(xs, 0.50))
	d.Q75 = valueOf(percentile(xs, 0.75))
	d.Max = valueOf(floats.Max(xs))
	return d
}

// percentile interpolates linearly between the two closest ranks of sorted xs
// (Hyndman-Fan type 7).
func percentile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	below := int(math.Floor(pos))
	above := int(math.Ceil(pos))
	return sorted[below] + (sorted[above]-sorted[below])*(pos-float64(below))
}
