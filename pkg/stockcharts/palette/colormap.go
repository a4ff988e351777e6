package palette

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColormap indicates a colormap name with no registered gradient.
var ErrUnknownColormap = errors.New("unknown colormap")

// gradientStops holds the registered colormaps: ColorBrewer 11-class anchors
// for the diverging maps, sampled anchors for viridis. Names are
// case-sensitive, matching their conventional spellings.
var gradientStops = map[string][]string{
	"RdYlBu": {
		"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee090", "#ffffbf",
		"#e0f3f8", "#abd9e9", "#74add1", "#4575b4", "#313695",
	},
	"RdBu": {
		"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7",
		"#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061",
	},
	"Spectral": {
		"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#ffffbf",
		"#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2",
	},
	"viridis": {
		"#440154", "#46327e", "#365c8d", "#277f8e", "#1fa187", "#4ac16d",
		"#a0da39", "#fde725",
	},
}

// Gradient is a continuous colormap defined by evenly spaced color stops.
type Gradient struct {
	name  string
	stops []colorful.Color
}

// ByName returns the named gradient.
func ByName(name string) (Gradient, error) {
	stops, ok := gradientStops[name]
	if !ok {
		return Gradient{}, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}
	parsed := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			return Gradient{}, fmt.Errorf("colormap %s stop %q: %w", name, s, err)
		}
		parsed[i] = c
	}
	return Gradient{name: name, stops: parsed}, nil
}

// Names returns the registered colormap names, sorted.
func Names() []string {
	names := make([]string, 0, len(gradientStops))
	for name := range gradientStops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the gradient name.
func (g Gradient) Name() string {
	return g.name
}

// At samples the gradient at t in [0, 1], blending linearly between stops,
// and returns a lowercase #rrggbb color.
func (g Gradient) At(t float64) string {
	if len(g.stops) == 0 {
		return ""
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	pos := t * float64(len(g.stops)-1)
	i := int(math.Floor(pos))
	if i >= len(g.stops)-1 {
		return g.stops[len(g.stops)-1].Hex()
	}
	return g.stops[i].BlendRgb(g.stops[i+1], pos-float64(i)).Hex()
}
