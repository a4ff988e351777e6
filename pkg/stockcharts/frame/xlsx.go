package frame

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads a table from a worksheet. The first row is a header naming
// the columns; the first column is the timestamp index. An empty sheet name
// selects the first sheet.
func ReadXLSX(path, sheet string) (*Frame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError("xlsx", 0, err)
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, NewLoadError("xlsx", 0, fmt.Errorf("workbook has no sheets"))
		}
		sheet = list[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, NewLoadError("xlsx", 0, err)
	}
	if len(rows) == 0 {
		return nil, NewLoadError("xlsx", 0, fmt.Errorf("sheet %q is empty", sheet))
	}

	header := rows[0]
	if len(header) == 0 {
		return nil, NewLoadError("xlsx", 0, fmt.Errorf("sheet %q has an empty header row", sheet))
	}
	cols := make([]Column, 0, len(header))
	for _, name := range header[1:] {
		cols = append(cols, Column{Name: strings.TrimSpace(name)})
	}

	var index []time.Time
	for rowIdx, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		rowNum := rowIdx + 1 // 1-based data row, header excluded

		t, err := ParseTime(cell(row, 0))
		if err != nil {
			return nil, NewLoadError("xlsx", rowNum, err)
		}
		index = append(index, t)
		for i := range cols {
			raw := cell(row, i+1)
			if raw == "" {
				return nil, NewLoadError("xlsx", rowNum, fmt.Errorf("column %q: empty cell", cols[i].Name))
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, NewLoadError("xlsx", rowNum, fmt.Errorf("column %q: %w", cols[i].Name, err))
			}
			cols[i].Values = append(cols[i].Values, v)
		}
	}

	out, err := New(index, cols)
	if err != nil {
		return nil, NewLoadError("xlsx", 0, err)
	}
	return out, nil
}

// cell returns the trimmed cell at a column index. GetRows trims trailing
// empty cells, so short rows read as empty strings.
func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// isEmptyRow reports whether every cell in the row is blank.
func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
