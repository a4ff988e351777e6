// Package frame provides the tabular time series model consumed by the chart
// builders: a timestamp index plus ordered, named numeric columns.
package frame

import (
	"fmt"
	"time"
)

// Column is a single named column of values in row order.
type Column struct {
	// Name is the column name, used as the series name.
	Name string
	// Values holds the column values, one per index entry.
	Values []float64
}

// Frame is a table of numeric columns sharing one timestamp index. Column
// order is preserved and determines series order.
type Frame struct {
	index []time.Time
	cols  []Column
}

// New builds a Frame from an index and columns. Every column must have
// exactly as many values as the index has entries, and no two columns may
// share a name: columns are looked up by name when series are built, so a
// duplicate would serve one column's values under both names.
func New(index []time.Time, cols []Column) (*Frame, error) {
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if len(c.Values) != len(index) {
			return nil, fmt.Errorf("%w: column %q has %d values for %d index entries",
				ErrLengthMismatch, c.Name, len(c.Values), len(index))
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		seen[c.Name] = true
	}
	return &Frame{index: index, cols: cols}, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.index)
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name
	}
	return names
}

// Column returns the values of the named column.
func (f *Frame) Column(name string) ([]float64, error) {
	for _, c := range f.cols {
		if c.Name == name {
			return c.Values, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// Index returns the timestamp index.
func (f *Frame) Index() []time.Time {
	return f.index
}

// EpochMillis returns the index converted to epoch milliseconds, the numeric
// x representation the charting API expects.
func (f *Frame) EpochMillis() []int64 {
	ms := make([]int64, len(f.index))
	for i, t := range f.index {
		ms[i] = t.UnixMilli()
	}
	return ms
}

// Copy returns a deep copy. Builders copy their input before reshaping so
// callers never observe mutation.
func (f *Frame) Copy() *Frame {
	index := make([]time.Time, len(f.index))
	copy(index, f.index)
	cols := make([]Column, len(f.cols))
	for i, c := range f.cols {
		values := make([]float64, len(c.Values))
		copy(values, c.Values)
		cols[i] = Column{Name: c.Name, Values: values}
	}
	return &Frame{index: index, cols: cols}
}
