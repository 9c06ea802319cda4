// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table reads subject records and caption header labels from the
// first sheet of an xlsx workbook.
//
// Sheet layout: row 2 is the header row; data rows start at row 3 and run
// to the last populated row. Columns A through E hold serial, image key,
// category, size and age.
package table

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/deckgen/pkg/types"
)

const (
	// headerRow is the 1-based row holding the caption labels.
	headerRow = 2
	// firstDataRow is the 1-based row of the first subject.
	firstDataRow = 3
)

// Zero-based column indexes.
const (
	colSerial = iota
	colImageKey
	colCategory
	colSize
	colAge
)

// Result is the outcome of reading a subject table.
type Result struct {
	// Sheet is the name of the sheet that was read.
	Sheet string

	// Labels are the header labels from row 2.
	Labels types.HeaderLabels

	// Subjects holds one record per data row with an image key, in row order.
	Subjects []types.Subject

	// Skipped counts data rows dropped for an empty image key.
	Skipped int
}

// Read opens the workbook at path and reads its first sheet. Every failure
// wraps types.ErrData.
func Read(path string) (Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: opening workbook %s: %v", types.ErrData, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Result{}, fmt.Errorf("%w: workbook %s has no sheets", types.ErrData, path)
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Result{}, fmt.Errorf("%w: reading sheet %q: %v", types.ErrData, sheet, err)
	}

	res, err := FromRows(rows)
	if err != nil {
		return Result{}, fmt.Errorf("%w: sheet %q: %v", types.ErrData, sheet, err)
	}
	res.Sheet = sheet
	return res, nil
}

// FromRows builds a Result from already-extracted cell text, where rows[0]
// is sheet row 1. Rows may be ragged; missing cells read as empty.
func FromRows(rows [][]string) (Result, error) {
	if len(rows) < headerRow {
		return Result{}, fmt.Errorf("header row %d is missing", headerRow)
	}

	header := rows[headerRow-1]
	labels := types.HeaderLabels{
		Serial:   cell(header, colSerial),
		Category: cell(header, colCategory),
		Size:     cell(header, colSize),
		Age:      cell(header, colAge),
	}
	if err := checkTemplate("size", labels.Size); err != nil {
		return Result{}, err
	}
	if err := checkTemplate("age", labels.Age); err != nil {
		return Result{}, err
	}

	res := Result{Labels: labels}
	for i := firstDataRow - 1; i < len(rows); i++ {
		row := rows[i]
		key := cell(row, colImageKey)
		if key == "" {
			res.Skipped++
			continue
		}
		res.Subjects = append(res.Subjects, types.Subject{
			Serial:   cell(row, colSerial),
			ImageKey: key,
			Category: cell(row, colCategory),
			Size:     cell(row, colSize),
			Age:      cell(row, colAge),
		})
	}
	return res, nil
}

// checkTemplate rejects a header template that has no value insertion point.
func checkTemplate(name, tmpl string) error {
	if !strings.Contains(tmpl, types.TemplateSeparator) {
		return fmt.Errorf("%s header %q has no %q separator", name, tmpl, types.TemplateSeparator)
	}
	return nil
}

func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
