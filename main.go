package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal("Failed reading .env: ", err)
	}
	if err := newRootCommand(os.Stdin, os.Stdout).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	cfg := defaultConfig()
	cmd := &cobra.Command{
		Use:   "cellstats",
		Short: "Cellphone, internet and population statistics by country",
		Long: `cellstats merges country-level cellphone, internet usage and UN population
workbooks into one Region / Sub-Region / Country table and walks through an
interactive report: country figures, sub-region totals, descriptive statistics
for a chosen column, a region trend chart and a count of low internet usage.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSources(cfg)
			if err != nil {
				return err
			}
			t, err := Merge(src)
			if err != nil {
				return fmt.Errorf("merging sources: %w", err)
			}
			log.Printf("Merged %d countries from %v", t.Len(), cfg.dataDir)

			if cfg.exportPath != "" {
				if err := exportTable(t, cfg.exportPath); err != nil {
					return fmt.Errorf("exporting to %v: %w", cfg.exportPath, err)
				}
				log.Printf("Exported merged table to %v", cfg.exportPath)
			}
			return runSession(t, in, out, cfg.chartPath)
		},
	}
	cmd.Flags().StringVar(&cfg.dataDir, "data-dir", cfg.dataDir,
		"Directory holding the \"Country Tech Use\" and \"UN Population Datasets\" workbooks (env "+envDataDir+")")
	cmd.Flags().StringVar(&cfg.chartPath, "chart", cfg.chartPath, "PNG file for the region trend chart (env "+envChart+")")
	cmd.Flags().StringVar(&cfg.exportPath, "export", cfg.exportPath, "Write the merged table to this .xlsx file (env "+envExport+")")
	return cmd
}

// runSession drives the interactive report over t, reading answers from in.
func runSession(t *Table, in io.Reader, out io.Writer, chartPath string) error {
	p := newPrompter(in, out)
	r := &reporter{w: out}
	r.heading("\n***Country Tech Use and Population Statistics***\n")

	known := make(map[string]bool, t.Len())
	for _, c := range Countries(t) {
		known[c] = true
	}
	country, err := p.until("Please enter a country you would like to analyze: ",
		func(s string) bool { return known[s] },
		"You must enter a valid country name")
	if err != nil {
		return err
	}

	rec, err := CountryLookup(t, country)
	if err != nil {
		return err
	}
	r.country(rec)
	if rec.SubRegion != "" {
		s, err := SummarizeSubRegion(t, country)
		if err != nil {
			return err
		}
		r.subRegion(s)
	} else {
		r.printf("\n%s has no UN Sub-Region.\n", country)
	}

	r.printf("\nLet us analyze the basic statistics of a particular set of data for all countries...\n")
	r.metricMenu()
	answer, err := p.until("Please select an index number to choose your data series from the menu above: ",
		func(s string) bool {
			i, err := strconv.Atoi(s)
			return err == nil && i >= 0 && i < len(metrics)
		},
		fmt.Sprintf("You must enter a valid number between 0 - %d from the menu.", len(metrics)-1))
	if err != nil {
		return err
	}
	metricIndex, _ := strconv.Atoi(answer)

	r.printf("\nNow please choose a specific year to pull the information...\n")
	answer, err = p.until("Please select a year between 2005, 2010, or 2015: ",
		func(s string) bool {
			_, ok := parseYear(s)
			return ok
		},
		"You must enter a valid year. It has to be either 2005, 2010 or 2015.")
	if err != nil {
		return err
	}
	year, _ := parseYear(answer)

	col, err := ParseColumn(metricIndex, year)
	if err != nil {
		return err
	}
	r.printf("\nYou have chosen to look into: %s\n", col.Label())
	r.describe(Describe(t, col))

	r.printf("\nNow that we have seen data about cellphones and internet usage, let us look for a trend between them.\n")
	rt := TrendByRegion(t)
	r.regionTrend(rt)
	if err := saveTrendChart(rt, chartPath); err != nil {
		return fmt.Errorf("saving chart to %v: %w", chartPath, err)
	}
	r.printf("\nTrend chart saved to %s\n", chartPath)

	r.heading("\nFUN ANALYSIS:\n")
	r.printf("How many countries have less than half of their population that uses internet in %d?\n", summaryYear)
	r.threshold(CountBelow(t, Column{Metric: InternetPct, Year: summaryYear}, 50))
	return r.err
}
