package stockcharts

import (
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/frame"
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/highstock"
)

// tooltipDateFormat is the tooltip header date format shared by the stock
// charts.
const tooltipDateFormat = "%A, %b %d, %Y"

// yLabelRaw echoes the axis value unchanged.
const yLabelRaw highstock.JSFunc = "function () { return this.value; }"

// yLabelSignedPercent shows the axis value as a percent with an explicit
// plus sign on positive values.
const yLabelSignedPercent highstock.JSFunc = "function () { return (this.value > 0 ? ' + ' : '') + this.value + '%'; }"

// dateTimeAxis returns a datetime axis block with the shared label formats.
// Built fresh per call so charts never share option maps.
func dateTimeAxis() highstock.Options {
	return highstock.Options{
		"type": "datetime",
		"dateTimeLabelFormats": highstock.Options{
			"millisecond": "%H:%M:%S.%L",
			"second":      "%H:%M:%S",
			"minute":      "%H:%M",
			"hour":        "%H:%M",
			"day":         "%e. %b",
			"week":        "%e. %b",
			"month":       "%b '%y",
			"year":        "%Y",
		},
		"tickmarkPlacement": "on",
		"title": highstock.Options{
			"enabled": false,
		},
	}
}

// sharedTooltip returns the shared tooltip block used by the time series
// charts.
func sharedTooltip(decimals int) highstock.Options {
	return highstock.Options{
		"valueDecimals": decimals,
		"xDateFormat":   tooltipDateFormat,
		"shared":        true,
	}
}

// titleBlock returns a text block with an optional font size style.
func titleBlock(text, fontSize string) highstock.Options {
	block := highstock.Options{"text": text}
	if fontSize != "" {
		block["style"] = highstock.Options{"fontSize": fontSize}
	}
	return block
}

// seriesPoints pairs the epoch millisecond index with one column's values in
// row order.
func seriesPoints(ms []int64, values []float64) []highstock.Point {
	points := make([]highstock.Point, len(values))
	for i, v := range values {
		points[i] = highstock.Point{Time: ms[i], Value: v}
	}
	return points
}

// addLineSeries attaches one line series per column in column order.
func addLineSeries(h *highstock.Chart, data *frame.Frame, extra highstock.Options) error {
	ms := data.EpochMillis()
	for _, name := range data.Columns() {
		values, err := data.Column(name)
		if err != nil {
			return err
		}
		h.AddSeries(seriesPoints(ms, values), "line", name, extra)
	}
	return nil
}

// newStockChart checks the renderer and starts an empty stock chart sized
// per the options.
func newStockChart(opts Options) (*highstock.Chart, error) {
	if err := highstock.Ready(); err != nil {
		return nil, err
	}
	width, height := opts.CanvasSize()
	return highstock.New(highstock.KindStock, width, height), nil
}
