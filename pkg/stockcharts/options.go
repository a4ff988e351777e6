// Package stockcharts builds Highcharts and Highstock configuration objects
// from timestamp-indexed tables: plain and annotated line charts, stacked
// and percent-of-total areas, dual-axis comparisons, grouped boxplots, and
// percent-change views.
package stockcharts

// Range selects which range selector button starts active on a stock chart.
// Values are the ordinal button positions and are passed through to the
// chart uninterpreted.
type Range int

const (
	// RangeOneMonth starts on the 1m button.
	RangeOneMonth Range = iota
	// RangeThreeMonth starts on the 3m button.
	RangeThreeMonth
	// RangeSixMonth starts on the 6m button.
	RangeSixMonth
	// RangeYearToDate starts on the YTD button.
	RangeYearToDate
	// RangeOneYear starts on the 1y button.
	RangeOneYear
	// RangeAll starts on the All button.
	RangeAll
)

// Options configures chart construction. The zero value selects the default
// for every setting.
type Options struct {
	// Title is the chart title.
	// If nil, defaults to "Chart title".
	Title *string
	// YTitle is the value axis title. Empty leaves the axis untitled.
	YTitle string
	// XTitle is the x axis title, used by the boxplot chart only.
	// If empty, defaults to "Date".
	XTitle string
	// Decimals is the number of decimals shown for tooltip values.
	// If nil, defaults to 2.
	Decimals *int
	// Legend toggles the series legend.
	// If nil, defaults to true.
	Legend *bool
	// Range selects the initially active range selector button.
	// If nil, defaults to RangeThreeMonth.
	Range *Range
	// Colormap names a continuous colormap used to color area series.
	// If empty, the fixed default palette is applied cyclically.
	Colormap string
	// PlotlineText is the label shown on the vertical marker drawn by the
	// annotated line chart.
	PlotlineText string
	// Width is the canvas width in pixels. If zero, defaults to 900.
	Width int
	// Height is the canvas height in pixels. If zero, defaults to 700.
	Height int
}

// DefaultOptions returns default chart options.
func DefaultOptions() Options {
	return Options{}
}

// ChartTitle returns the chart title to display.
func (o Options) ChartTitle() string {
	if o.Title != nil {
		return *o.Title
	}
	return "Chart title"
}

// XAxisTitle returns the x axis title to display.
func (o Options) XAxisTitle() string {
	if o.XTitle != "" {
		return o.XTitle
	}
	return "Date"
}

// ValueDecimals returns the tooltip decimal count.
func (o Options) ValueDecimals() int {
	if o.Decimals != nil {
		return *o.Decimals
	}
	return 2
}

// ShowLegend returns whether the series legend is enabled.
func (o Options) ShowLegend() bool {
	if o.Legend != nil {
		return *o.Legend
	}
	return true
}

// SelectedRange returns the initially active range selector button.
func (o Options) SelectedRange() Range {
	if o.Range != nil {
		return *o.Range
	}
	return RangeThreeMonth
}

// CanvasSize returns the canvas width and height in pixels.
func (o Options) CanvasSize() (width, height int) {
	width, height = o.Width, o.Height
	if width <= 0 {
		width = 900
	}
	if height <= 0 {
		height = 700
	}
	return width, height
}
