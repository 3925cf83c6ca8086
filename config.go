package main

import (
	"os"
	"path/filepath"
)

// Input workbooks, relative to the data directory.
const (
	cellsPer100File = "Country Tech Use/num_cell_phones_per_100_people.xlsx"
	cellCountFile   = "Country Tech Use/total_cell_phones_by_country.xlsx"
	internetFile    = "Country Tech Use/percentage_population_internet_users.xlsx"
	populationFile  = "UN Population Datasets/UN Population Dataset 1.xlsx"
	codesFile       = "UN Population Datasets/UN Codes.xlsx"
)

// Environment variables that provide flag defaults. They may also be set in a
// .env file in the working directory.
const (
	envDataDir = "CELLSTATS_DATA_DIR"
	envChart   = "CELLSTATS_CHART"
	envExport  = "CELLSTATS_EXPORT"
)

type config struct {
	dataDir    string
	chartPath  string // PNG written by the region trend report
	exportPath string // merged table workbook; empty to skip
}

func defaultConfig() config {
	return config{
		dataDir:    getEnv(envDataDir, "."),
		chartPath:  getEnv(envChart, "cellphones_vs_internet.png"),
		exportPath: getEnv(envExport, ""),
	}
}

// path resolves an input workbook name against the data directory.
func (c config) path(name string) string {
	return filepath.Join(c.dataDir, filepath.FromSlash(name))
}

// getEnv returns the environment variable key or def if it is unset or empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
