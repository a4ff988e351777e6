package frame

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestReadCSV(t *testing.T) {
	input := "date,A,B\n" +
		"2017-01-03,1.5,10\n" +
		"2017-01-04,2.5,20\n"

	f, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV returned error: %v", err)
	}

	if f.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", f.Len())
	}
	names := f.Columns()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("Columns() = %v, expected [A B]", names)
	}

	values, err := f.Column("A")
	if err != nil {
		t.Fatalf("Column(A) returned error: %v", err)
	}
	if values[0] != 1.5 || values[1] != 2.5 {
		t.Errorf("Column(A) = %v, expected [1.5 2.5]", values)
	}

	if !f.Index()[1].Equal(time.Date(2017, time.January, 4, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Index()[1] = %v, expected 2017-01-04", f.Index()[1])
	}
}

func TestReadCSVDuplicateHeader(t *testing.T) {
	input := "date,A,A\n" +
		"2017-01-03,1,9\n" +
		"2017-01-04,2,8\n"

	_, err := ReadCSV(strings.NewReader(input))
	if !errors.Is(err, ErrDuplicateColumn) {
		t.Fatalf("ReadCSV error = %v, expected ErrDuplicateColumn", err)
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("ReadCSV error = %v, expected a LoadError", err)
	}
	if loadErr.Source != "csv" {
		t.Errorf("LoadError source = %q, expected csv", loadErr.Source)
	}
}

func TestReadCSVBadNumber(t *testing.T) {
	input := "date,A\n" +
		"2017-01-03,1.5\n" +
		"2017-01-04,oops\n"

	_, err := ReadCSV(strings.NewReader(input))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("ReadCSV error = %v, expected a LoadError", err)
	}
	if loadErr.Source != "csv" || loadErr.Row != 2 {
		t.Errorf("LoadError = %+v, expected source csv row 2", loadErr)
	}
}

func TestReadCSVBadDate(t *testing.T) {
	input := "date,A\n" +
		"not-a-date,1.5\n"

	_, err := ReadCSV(strings.NewReader(input))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("ReadCSV error = %v, expected a LoadError", err)
	}
	if loadErr.Row != 1 {
		t.Errorf("LoadError row = %d, expected 1", loadErr.Row)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		ok       bool
	}{
		{"2017-01-03", time.Date(2017, time.January, 3, 0, 0, 0, 0, time.UTC), true},
		{"2017-01-03 14:30:00", time.Date(2017, time.January, 3, 14, 30, 0, 0, time.UTC), true},
		{"2017-01-03T14:30:00", time.Date(2017, time.January, 3, 14, 30, 0, 0, time.UTC), true},
		{"2017/01/03", time.Date(2017, time.January, 3, 0, 0, 0, 0, time.UTC), true},
		{"1/3/2017", time.Date(2017, time.January, 3, 0, 0, 0, 0, time.UTC), true},
		{" 2017-01-03 ", time.Date(2017, time.January, 3, 0, 0, 0, 0, time.UTC), true},
		{"03.01.2017", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		got, err := ParseTime(tt.input)
		if tt.ok != (err == nil) {
			t.Errorf("ParseTime(%q) error = %v, expected ok=%v", tt.input, err, tt.ok)
			continue
		}
		if tt.ok && !got.Equal(tt.expected) {
			t.Errorf("ParseTime(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
