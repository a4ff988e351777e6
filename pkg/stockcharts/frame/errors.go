package frame

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch indicates a column whose length differs from the index.
var ErrLengthMismatch = errors.New("column length does not match index length")

// ErrDuplicateColumn indicates two columns sharing one name.
var ErrDuplicateColumn = errors.New("duplicate column name")

// ErrColumnNotFound indicates a requested column does not exist.
var ErrColumnNotFound = errors.New("column not found")

// LoadError represents an error while loading a table.
type LoadError struct {
	Source string // "csv", "xlsx"
	Row    int    // 1-based data row, 0 when not row-specific
	Err    error
}

func (e *LoadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("load error in %s row %d: %v", e.Source, e.Row, e.Err)
	}
	return fmt.Sprintf("load error in %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(source string, row int, err error) *LoadError {
	return &LoadError{
		Source: source,
		Row:    row,
		Err:    err,
	}
}
