// Package palette supplies series colors: a fixed default palette applied
// cyclically, and named continuous colormaps sampled over a normalized index.
package palette

// Default is the fixed series palette, used when no colormap is requested.
var Default = []string{
	"#7cb5ec", "#434348", "#90ed7d", "#f7a35c", "#8085e9",
	"#f15c80", "#e4d354", "#2b908f", "#f45b5b", "#91e8e1",
}

// Color returns the default palette color for a series index, repeating
// cyclically.
func Color(i int) string {
	return Default[i%len(Default)]
}

// Norm maps values from [Min, Max] onto [0, 1] for colormap lookups.
type Norm struct {
	Min float64
	Max float64
}

// Apply returns the normalized position of v, clamped to [0, 1]. A
// degenerate interval maps everything to 0.
func (n Norm) Apply(v float64) float64 {
	if n.Max <= n.Min {
		return 0
	}
	t := (v - n.Min) / (n.Max - n.Min)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
