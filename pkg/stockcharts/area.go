package stockcharts

import (
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/frame"
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/highstock"
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/palette"
)

// seriesColors assigns one color per series: the default palette applied
// cyclically, or the named colormap sampled at the series index normalized
// over [0, series count).
func seriesColors(names []string, colormap string) ([]string, error) {
	colors := make([]string, len(names))
	if colormap == "" {
		for i := range names {
			colors[i] = palette.Color(i)
		}
		return colors, nil
	}
	grad, err := palette.ByName(colormap)
	if err != nil {
		return nil, err
	}
	norm := palette.Norm{Min: 0, Max: float64(len(names))}
	for i := range names {
		colors[i] = grad.At(norm.Apply(float64(i)))
	}
	return colors, nil
}

// areaChart builds the stacked area variants, which differ only in the
// stacking mode and the value axis title.
func areaChart(data *frame.Frame, opts Options, stacking, yTitle string) (*highstock.Chart, error) {
	h, err := newStockChart(opts)
	if err != nil {
		return nil, err
	}
	names := data.Columns()
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	colors, err := seriesColors(names, opts.Colormap)
	if err != nil {
		return nil, err
	}

	data = data.Copy()
	ms := data.EpochMillis()
	for i, name := range names {
		values, err := data.Column(name)
		if err != nil {
			return nil, err
		}
		h.AddSeries(seriesPoints(ms, values), "area", name, highstock.Options{
			"color": colors[i],
		})
	}

	if err := h.SetOptions(highstock.Options{
		"legend": highstock.Options{
			"enabled": opts.ShowLegend(),
		},
		"rangeSelector": highstock.Options{
			"selected": int(opts.SelectedRange()),
		},
		"title": titleBlock(opts.ChartTitle(), "20px"),
		"xAxis": dateTimeAxis(),
		"yAxis": highstock.Options{
			"title": titleBlock(yTitle, "13px"),
			"labels": highstock.Options{
				"formatter": yLabelRaw,
			},
		},
		"tooltip": sharedTooltip(opts.ValueDecimals()),
		"plotOptions": highstock.Options{
			"area": highstock.Options{
				"stacking":     stacking,
				"connectNulls": true,
				"lineWidth":    1,
				"marker": highstock.Options{
					"lineWidth": 1,
				},
			},
		},
	}); err != nil {
		return nil, err
	}
	return h, nil
}

// StackedArea builds a stacked area chart with one series per value column,
// stacked in absolute units.
func StackedArea(data *frame.Frame, opts Options) (*highstock.Chart, error) {
	return areaChart(data, opts, "normal", opts.YTitle)
}

// PercentOfTotalArea builds a stacked area chart showing each series as a
// percent of the per-timestamp total. Relative to StackedArea it changes
// only the stacking mode and the value axis title; the percentage itself is
// computed by the chart.
func PercentOfTotalArea(data *frame.Frame, opts Options) (*highstock.Chart, error) {
	return areaChart(data, opts, "percent", "Percent of "+opts.YTitle)
}
