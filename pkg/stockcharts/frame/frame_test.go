package frame

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testFrame(t *testing.T) *Frame {
	t.Helper()
	f, err := New(
		[]time.Time{day(2017, time.January, 3), day(2017, time.January, 4), day(2017, time.January, 5)},
		[]Column{
			{Name: "A", Values: []float64{1.5, 2.5, 3.5}},
			{Name: "B", Values: []float64{10, 20, 30}},
		},
	)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return f
}

func TestNewLengthMismatch(t *testing.T) {
	_, err := New(
		[]time.Time{day(2017, time.January, 3)},
		[]Column{{Name: "A", Values: []float64{1, 2}}},
	)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("New error = %v, expected ErrLengthMismatch", err)
	}
}

func TestNewDuplicateColumn(t *testing.T) {
	_, err := New(
		[]time.Time{day(2017, time.January, 3), day(2017, time.January, 4)},
		[]Column{
			{Name: "A", Values: []float64{1, 2}},
			{Name: "A", Values: []float64{9, 8}},
		},
	)
	if !errors.Is(err, ErrDuplicateColumn) {
		t.Errorf("New error = %v, expected ErrDuplicateColumn", err)
	}
}

func TestColumns(t *testing.T) {
	f := testFrame(t)

	names := f.Columns()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("Columns() = %v, expected [A B]", names)
	}

	values, err := f.Column("B")
	if err != nil {
		t.Fatalf("Column(B) returned error: %v", err)
	}
	if len(values) != 3 || values[0] != 10 || values[2] != 30 {
		t.Errorf("Column(B) = %v, expected [10 20 30]", values)
	}

	_, err = f.Column("missing")
	if !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("Column(missing) error = %v, expected ErrColumnNotFound", err)
	}
}

func TestEpochMillis(t *testing.T) {
	f := testFrame(t)

	ms := f.EpochMillis()
	expected := []int64{1483401600000, 1483488000000, 1483574400000}
	for i, v := range expected {
		if ms[i] != v {
			t.Errorf("EpochMillis()[%d] = %d, expected %d", i, ms[i], v)
		}
	}

	// Conversion is a pure function of the index.
	again := f.EpochMillis()
	for i := range ms {
		if ms[i] != again[i] {
			t.Errorf("EpochMillis changed between calls at %d: %d vs %d", i, ms[i], again[i])
		}
	}
}

func TestCopyIsolated(t *testing.T) {
	f := testFrame(t)
	cp := f.Copy()

	values, err := cp.Column("A")
	if err != nil {
		t.Fatalf("Column(A) returned error: %v", err)
	}
	values[0] = -99

	original, err := f.Column("A")
	if err != nil {
		t.Fatalf("Column(A) returned error: %v", err)
	}
	if original[0] != 1.5 {
		t.Errorf("original column changed after mutating the copy: %v", original)
	}

	cp.Index()[0] = day(2000, time.January, 1)
	if !f.Index()[0].Equal(day(2017, time.January, 3)) {
		t.Errorf("original index changed after mutating the copy: %v", f.Index()[0])
	}
}

func TestLen(t *testing.T) {
	f := testFrame(t)
	if f.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", f.Len())
	}
}
