package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// timeLayouts are the accepted timestamp formats, tried in order. The short
// layouts cover the date formats spreadsheet exports commonly produce.
var timeLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"1/2/2006",
	"1/2/06",
	"1/2/06 15:04",
}

// ParseTime parses a timestamp string in one of the accepted layouts.
// Layouts without a zone are interpreted as UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

// ReadCSV reads a table from CSV data. The first record is a header naming
// the columns; the first column is the timestamp index, every other column
// must be numeric.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, NewLoadError("csv", 0, err)
	}

	cols := make([]Column, len(header)-1)
	for i, name := range header[1:] {
		cols[i] = Column{Name: strings.TrimSpace(name)}
	}

	var index []time.Time
	row := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, NewLoadError("csv", row, err)
		}
		t, err := ParseTime(record[0])
		if err != nil {
			return nil, NewLoadError("csv", row, err)
		}
		index = append(index, t)
		for i := range cols {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[i+1]), 64)
			if err != nil {
				return nil, NewLoadError("csv", row, fmt.Errorf("column %q: %w", cols[i].Name, err))
			}
			cols[i].Values = append(cols[i].Values, v)
		}
		row++
	}

	f, err := New(index, cols)
	if err != nil {
		return nil, NewLoadError("csv", 0, err)
	}
	return f, nil
}
