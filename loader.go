package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// rateSeries is the population series kept by the merger.
const rateSeries = "Population annual rate of increase (percent)"

// Positions of the long-format population source. Column 0 holds a numeric code
// that is not used.
const (
	rateAreaCol   = 1
	rateYearCol   = 2
	rateSeriesCol = 3
	rateValueCol  = 4
)

var errMissingColumn = errors.New("missing column")

// countryTable is a "country x year" sheet restricted to the tracked years.
type countryTable struct {
	countries []string // sheet order
	values    map[string]YearValues
}

// rateRow is one row of the long-format population source.
type rateRow struct {
	Area   string
	Year   Year
	Series string
	Value  Value
}

// regionCode maps a country to its UN region and sub-region.
type regionCode struct {
	Country   string
	Region    string
	SubRegion string
}

// sources holds every input table as read from disk.
type sources struct {
	cellsPer100 countryTable
	cellCount   countryTable
	internet    countryTable
	rates       []rateRow
	codes       []regionCode
}

// loadSources reads all five input workbooks named by cfg.
func loadSources(cfg config) (*sources, error) {
	var (
		src sources
		err error
	)
	for _, ct := range []struct {
		path string
		dst  *countryTable
	}{
		{cfg.path(cellsPer100File), &src.cellsPer100},
		{cfg.path(cellCountFile), &src.cellCount},
		{cfg.path(internetFile), &src.internet},
	} {
		if *ct.dst, err = loadCountryYears(ct.path); err != nil {
			return nil, fmt.Errorf("loading %v: %w", ct.path, err)
		}
	}
	p := cfg.path(populationFile)
	if src.rates, err = loadPopulationRates(p); err != nil {
		return nil, fmt.Errorf("loading %v: %w", p, err)
	}
	p = cfg.path(codesFile)
	if src.codes, err = loadRegionCodes(p); err != nil {
		return nil, fmt.Errorf("loading %v: %w", p, err)
	}
	return &src, nil
}

// readSheet returns the raw cell values of the first sheet in the workbook at p.
func readSheet(p string) ([][]string, error) {
	f, err := excelize.OpenFile(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("no sheets found")
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}
	return rows, nil
}

// loadCountryYears reads a sheet whose first column is the country name and whose
// header row labels the remaining columns by year.
func loadCountryYears(p string) (countryTable, error) {
	rows, err := readSheet(p)
	if err != nil {
		return countryTable{}, err
	}

	yearCols := make(map[Year]int, len(trackedYears))
	for _, y := range trackedYears {
		i, err := yearIndex(rows[0], y)
		if err != nil {
			return countryTable{}, err
		}
		yearCols[y] = i
	}

	ct := countryTable{values: make(map[string]YearValues)}
	for _, row := range rows[1:] {
		country := strings.TrimSpace(cell(row, 0))
		if country == "" {
			continue
		}
		if _, ok := ct.values[country]; ok {
			return countryTable{}, fmt.Errorf("duplicate country %q", country)
		}
		yv := make(YearValues, len(yearCols))
		for y, i := range yearCols {
			yv[y] = parseValue(cell(row, i))
		}
		ct.countries = append(ct.countries, country)
		ct.values[country] = yv
	}
	return ct, nil
}

// loadPopulationRates reads the long-format population source by column position.
// Only rows for tracked years are returned.
func loadPopulationRates(p string) ([]rateRow, error) {
	rows, err := readSheet(p)
	if err != nil {
		return nil, err
	}
	if len(rows[0]) <= rateValueCol {
		return nil, fmt.Errorf("%w at position %d (header has %d columns)",
			errMissingColumn, rateValueCol, len(rows[0]))
	}

	var rates []rateRow
	for _, row := range rows[1:] {
		yv := parseValue(cell(row, rateYearCol))
		if !yv.Valid {
			continue
		}
		y, ok := parseYear(strconv.Itoa(int(yv.Float)))
		if !ok {
			continue
		}
		rates = append(rates, rateRow{
			Area:   strings.TrimSpace(cell(row, rateAreaCol)),
			Year:   y,
			Series: strings.TrimSpace(cell(row, rateSeriesCol)),
			Value:  parseValue(cell(row, rateValueCol)),
		})
	}
	return rates, nil
}

// loadRegionCodes reads the country code table, locating columns by header name.
func loadRegionCodes(p string) ([]regionCode, error) {
	rows, err := readSheet(p)
	if err != nil {
		return nil, err
	}

	var countryCol, regionCol, subRegionCol int
	for name, dst := range map[string]*int{
		"Country":       &countryCol,
		"UN Region":     &regionCol,
		"UN Sub-Region": &subRegionCol,
	} {
		if *dst, err = headerIndex(rows[0], name); err != nil {
			return nil, err
		}
	}

	var codes []regionCode
	for _, row := range rows[1:] {
		country := strings.TrimSpace(cell(row, countryCol))
		if country == "" {
			continue
		}
		codes = append(codes, regionCode{
			Country:   country,
			Region:    strings.TrimSpace(cell(row, regionCol)),
			SubRegion: strings.TrimSpace(cell(row, subRegionCol)),
		})
	}
	return codes, nil
}

// cell returns row[i], or "" if the row is shorter. excelize drops trailing
// empty cells from each row.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func headerIndex(header []string, name string) (int, error) {
	for i, s := range header {
		if strings.TrimSpace(strings.TrimLeft(s, "\ufeff")) == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w %q", errMissingColumn, name)
}

// yearIndex finds the header column labelled y. Year headers may be stored as
// numbers, so "2005" and "2005.0" both match.
func yearIndex(header []string, y Year) (int, error) {
	for i, s := range header {
		v := parseValue(s)
		if v.Valid && v.Float == float64(y) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w %d", errMissingColumn, y)
}

// parseValue converts a raw cell to a Value. Blank and non-numeric cells are null.
func parseValue(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return valueOf(f)
}
