// Package highstock models Highcharts and Highstock chart objects: attached
// series records plus a nested option tree, rendered to a JSON configuration
// or a standalone HTML page.
package highstock

import (
	"github.com/tiendc/go-deepcopy"
)

// Kind selects the JavaScript constructor used when rendering.
type Kind string

const (
	// KindChart renders with Highcharts.chart.
	KindChart Kind = "chart"
	// KindStock renders with Highcharts.stockChart.
	KindStock Kind = "stockChart"
)

// Series is one attached data series and its series-level options.
type Series struct {
	// Data holds the series records, typically []Point or grouped rows.
	Data interface{}
	// Type is the series type (line, area, boxplot).
	Type string
	// Name is the display name used in legends and tooltips.
	Name string
	// Options holds extra series-level settings merged into the rendered
	// series object, e.g. a color, an axis index, or a per-series tooltip.
	Options Options
}

// Chart is a chart handle under construction: a kind, the attached series,
// and the merged option tree. It is configured once by a builder and handed
// back to the caller for rendering.
type Chart struct {
	kind   Kind
	opts   Options
	series []Series
}

// New creates an empty chart of the given kind and canvas size in pixels.
func New(kind Kind, width, height int) *Chart {
	return &Chart{
		kind: kind,
		opts: Options{
			"chart": Options{
				"width":  width,
				"height": height,
			},
		},
	}
}

// Kind returns the chart kind.
func (c *Chart) Kind() Kind {
	return c.kind
}

// AddSeries attaches a data series. Extra options, when non-nil, appear in
// the rendered series object verbatim.
func (c *Chart) AddSeries(data interface{}, seriesType, name string, extra Options) {
	c.series = append(c.series, Series{
		Data:    data,
		Type:    seriesType,
		Name:    name,
		Options: extra,
	})
}

// Series returns the attached series in attachment order.
func (c *Chart) Series() []Series {
	out := make([]Series, len(c.series))
	copy(out, c.series)
	return out
}

// SetOptions merges an option tree into the chart. Nested maps merge key by
// key, every other value overwrites. The input is deep-copied first, so
// later mutation of caller-owned maps cannot reach into the chart.
func (c *Chart) SetOptions(opts Options) error {
	if opts == nil {
		return nil
	}
	var cp Options
	if err := deepcopy.Copy(&cp, opts); err != nil {
		return err
	}
	merge(c.opts, cp)
	return nil
}

// Options returns a deep-copied snapshot of the merged option tree.
// Mutating the snapshot does not affect the chart.
func (c *Chart) Options() (Options, error) {
	var cp Options
	if err := deepcopy.Copy(&cp, c.opts); err != nil {
		return nil, err
	}
	return cp, nil
}
