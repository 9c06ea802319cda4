// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/deckgen/pkg/types"
)

var headerCells = []interface{}{"编号", "图片号", "树种", "胸径\n/厘米", "树龄\n/年"}

// writeWorkbook saves rows to a new workbook whose first sheet is named
// sheet. rows[0] lands in row 1.
func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &r))
	}

	path := filepath.Join(t.TempDir(), "subjects.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestRead(t *testing.T) {
	path := writeWorkbook(t, "古树", [][]interface{}{
		{"古树名木登记表"},
		headerCells,
		{"001", 101, "银杏", 45, 300},
		{"002", nil, "樟树", 60, 500},
		{"003", 103, "松树", 30, 120},
		{},
		{"005", "105", "柏树", 25.5, 80},
	})

	res, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "古树", res.Sheet)
	assert.Equal(t, types.HeaderLabels{
		Serial:   "编号",
		Category: "树种",
		Size:     "胸径\n/厘米",
		Age:      "树龄\n/年",
	}, res.Labels)

	require.Len(t, res.Subjects, 3)
	assert.Equal(t, types.Subject{Serial: "001", ImageKey: "101", Category: "银杏", Size: "45", Age: "300"}, res.Subjects[0])
	assert.Equal(t, "103", res.Subjects[1].ImageKey)
	assert.Equal(t, types.Subject{Serial: "005", ImageKey: "105", Category: "柏树", Size: "25.5", Age: "80"}, res.Subjects[2])
	assert.Equal(t, 2, res.Skipped)
}

func TestRead_FirstSheetOnly(t *testing.T) {
	path := writeWorkbook(t, "first", [][]interface{}{
		{"title"},
		headerCells,
		{"1", "11", "oak", "10", "20"},
	})

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	_, err = f.NewSheet("second")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("second", "A3", &[]interface{}{"9", "99", "elm", "1", "2"}))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	res, err := Read(path)
	require.NoError(t, err)
	require.Len(t, res.Subjects, 1)
	assert.Equal(t, "11", res.Subjects[0].ImageKey)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T) string
		errMsg string
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.xlsx")
			},
			errMsg: "opening workbook",
		},
		{
			name: "not a workbook",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "junk.xlsx")
				require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))
				return path
			},
			errMsg: "opening workbook",
		},
		{
			name: "no header row",
			setup: func(t *testing.T) string {
				return writeWorkbook(t, "Sheet1", [][]interface{}{{"title only"}})
			},
			errMsg: "header row 2 is missing",
		},
		{
			name: "size template without separator",
			setup: func(t *testing.T) string {
				return writeWorkbook(t, "Sheet1", [][]interface{}{
					{"title"},
					{"编号", "图片号", "树种", "胸径", "树龄\n/年"},
				})
			},
			errMsg: "size header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(tt.setup(t))
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrData)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestFromRows(t *testing.T) {
	tests := []struct {
		name        string
		rows        [][]string
		wantKeys    []string
		wantSkipped int
	}{
		{
			name:     "header only",
			rows:     [][]string{{"t"}, {"a", "b", "c", "d\n/x", "e\n/y"}},
			wantKeys: nil,
		},
		{
			name: "ragged rows read missing cells as empty",
			rows: [][]string{
				{"t"},
				{"a", "b", "c", "d\n/x", "e\n/y"},
				{"1", "k1"},
				{"2"},
				{"3", "k3", "c3", "s3", "a3"},
			},
			wantKeys:    []string{"k1", "k3"},
			wantSkipped: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := FromRows(tt.rows)
			require.NoError(t, err)

			var keys []string
			for _, s := range res.Subjects {
				keys = append(keys, s.ImageKey)
			}
			assert.Equal(t, tt.wantKeys, keys)
			assert.Equal(t, tt.wantSkipped, res.Skipped)
		})
	}
}
