package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const na = "n/a"

var headingColor = color.New(color.FgCyan, color.Bold)

// reporter writes session text to w. The first write error is kept and later
// writes become no-ops.
type reporter struct {
	w   io.Writer
	err error
}

func (r *reporter) printf(format string, args ...interface{}) {
	if r.err == nil {
		_, r.err = fmt.Fprintf(r.w, format, args...)
	}
}

func (r *reporter) heading(format string, args ...interface{}) {
	if r.err == nil {
		_, r.err = headingColor.Fprintf(r.w, format, args...)
	}
}

func (r *reporter) table(header []string, rows [][]string) {
	if r.err != nil {
		return
	}
	tw := tablewriter.NewWriter(r.w)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader(header)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	tw.AppendBulk(rows)
	tw.Render()
}

// country prints the country's location and its figures for every tracked year.
func (r *reporter) country(rec Record) {
	r.printf("\nCountry: %s  UN Sub-Region: %s  UN Region: %s\n",
		rec.Country, orNA(rec.SubRegion), orNA(rec.Region))
	for _, y := range trackedYears {
		r.printf("Year %d: Population = %s  Cellphones per 100 People = %s  Internet Users = %s %%\n",
			y, formatInt(rec.Population[y]), formatInt(rec.CellsPer100[y]), formatFloat(rec.InternetPct[y]))
	}
}

func (r *reporter) subRegion(s SubRegionSummary) {
	r.heading("\nSummary of Sub-Region in %d:\n", summaryYear)
	r.printf("Sub-Region = %s (%d countries)\n", s.SubRegion, s.Members)
	r.printf("Total Population = %d\n", int64(s.Population))
	r.printf("Avg Cellphone per 100 People = %s\n", formatInt(s.CellsPer100))
	r.printf("Avg Internet Users = %s %%\n", formatInt(s.InternetPct))
}

func (r *reporter) metricMenu() {
	for i, m := range metrics {
		r.printf("%d:   %s\n", i, m)
	}
}

func (r *reporter) describe(d Description) {
	r.heading("\n***Statistics of %s***\n", d.Column.Label())
	r.table([]string{"", d.Column.Key()}, [][]string{
		{"count", strconv.Itoa(d.Count)},
		{"mean", formatFloat(d.Mean)},
		{"std", formatFloat(d.Std)},
		{"min", formatFloat(d.Min)},
		{"25%", formatFloat(d.Q25)},
		{"50%", formatFloat(d.Q50)},
		{"75%", formatFloat(d.Q75)},
		{"max", formatFloat(d.Max)},
	})
}

// regionTrend prints one Region x Year table per metric.
func (r *reporter) regionTrend(rt RegionTrend) {
	header := []string{"Region"}
	for _, y := range rt.Years {
		header = append(header, strconv.Itoa(int(y)))
	}
	for _, panel := range []struct {
		title string
		data  [][]Value
	}{
		{"Average cellphones per 100 people", rt.CellsPer100},
		{"Average % internet users", rt.InternetPct},
	} {
		r.heading("\n%s\n", panel.title)
		rows := make([][]string, len(rt.Regions))
		for i, region := range rt.Regions {
			rows[i] = append(rows[i], region)
			for _, v := range panel.data[i] {
				rows[i] = append(rows[i], formatFloat(v))
			}
		}
		r.table(header, rows)
	}
}

func (r *reporter) threshold(th Threshold) {
	r.printf("There are %d countries, that is %d%% in the world.\n", th.Count, th.Percent)
}

func orNA(s string) string {
	if s == "" {
		return na
	}
	return s
}

// formatInt truncates v toward zero.
func formatInt(v Value) string {
	if !v.Valid {
		return na
	}
	return strconv.FormatInt(int64(v.Float), 10)
}

func formatFloat(v Value) string {
	if !v.Valid {
		return na
	}
	return strconv.FormatFloat(v.Float, 'f', 2, 64)
}
