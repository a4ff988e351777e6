package highstock

import (
	"math"
	"strconv"
)

// Point is a single [timestamp, value] pair with the timestamp in epoch
// milliseconds.
type Point struct {
	// Time is the x value in epoch milliseconds.
	Time int64
	// Value is the y value.
	Value float64
}

// MarshalJSON renders the point as a two-element [time, value] array.
func (p Point) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 32)
	b = append(b, '[')
	b = strconv.AppendInt(b, p.Time, 10)
	b = append(b, ',')
	b = appendFloat(b, p.Value)
	b = append(b, ']')
	return b, nil
}

// JSFunc is a literal JavaScript function used as an option value, e.g. an
// axis label formatter. JSON output carries it as a plain string; the HTML
// writer emits the body unquoted.
type JSFunc string

// appendFloat formats a float the way encoding/json does: fixed notation in
// the normal range, exponent notation for extreme magnitudes.
func appendFloat(b []byte, v float64) []byte {
	abs := math.Abs(v)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.AppendFloat(b, v, format, -1, 64)
}
