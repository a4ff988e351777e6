package stockcharts

import "errors"

// ErrNoColumns indicates an input table with no value columns.
var ErrNoColumns = errors.New("table has no value columns")

// ErrBoxplotColumns indicates a boxplot table without exactly a grouping key
// column and a value column.
var ErrBoxplotColumns = errors.New("boxplot table needs exactly two columns: grouping key and value")
