package main

import (
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const chartTitle = "Cellphones vs Internet Usage Trend"

// saveTrendChart draws the cellphone trend above the internet trend, one line
// per year with regions along X, and writes the figure as a PNG to p.
func saveTrendChart(rt RegionTrend, p string) error {
	top, err := trendPanel(chartTitle+"\nData for Cellphones Usage", "Cellphones Usage %", rt, rt.CellsPer100)
	if err != nil {
		return fmt.Errorf("cellphone panel: %w", err)
	}
	bottom, err := trendPanel("Data for Internet Usage", "Internet Usage %", rt, rt.InternetPct)
	if err != nil {
		return fmt.Errorf("internet panel: %w", err)
	}

	img := vgimg.New(14*vg.Inch, 12*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadY:      8 * vg.Millimeter,
		PadTop:    4 * vg.Millimeter,
		PadBottom: 4 * vg.Millimeter,
		PadLeft:   4 * vg.Millimeter,
		PadRight:  4 * vg.Millimeter,
	}
	plots := [][]*plot.Plot{{top}, {bottom}}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	f, err := os.Create(p)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// trendPanel plots data[region][year] with one line per year. Null means are
// left out of their line.
func trendPanel(title, yLabel string, rt RegionTrend, data [][]Value) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Region"
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for j, y := range rt.Years {
		var points plotter.XYs
		for i := range rt.Regions {
			if v := data[i][j]; v.Valid {
				points = append(points, plotter.XY{X: float64(i), Y: v.Float})
			}
		}
		if len(points) == 0 {
			continue
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(j)
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(strconv.Itoa(int(y)), line)
	}

	if len(rt.Regions) > 0 {
		p.NominalX(rt.Regions...)
	}
	return p, nil
}
