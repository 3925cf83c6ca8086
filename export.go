package main

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Merged"

// exportTable writes every row of t to a new workbook at p: Region, Sub-Region
// and Country followed by the 15 metric columns. Null cells are left empty.
func exportTable(t *Table, p string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}

	cols := allColumns()
	headers := []string{"UN Region", "UN Sub-Region", "Country"}
	for _, c := range cols {
		headers = append(headers, c.Label())
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(exportSheet, "A", "C", 24); err != nil {
		return err
	}

	for i, rec := range t.rows {
		row := i + 2
		values := []interface{}{rec.Region, rec.SubRegion, rec.Country}
		for _, c := range cols {
			if v := rec.Get(c); v.Valid {
				values = append(values, v.Float)
			} else {
				values = append(values, nil)
			}
		}
		for j, v := range values {
			if v == nil || v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return fmt.Errorf("writing %s: %w", cell, err)
			}
		}
	}

	return f.SaveAs(p)
}
