package stockcharts

import (
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/frame"
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/highstock"
)

// Line builds a stock line chart with one series per value column. The
// input table is reshaped on a private copy and never modified; series
// follow its column order.
func Line(data *frame.Frame, opts Options) (*highstock.Chart, error) {
	h, err := newStockChart(opts)
	if err != nil {
		return nil, err
	}
	if len(data.Columns()) == 0 {
		return nil, ErrNoColumns
	}
	if err := addLineSeries(h, data.Copy(), nil); err != nil {
		return nil, err
	}
	if err := h.SetOptions(highstock.Options{
		"legend": highstock.Options{
			"enabled": opts.ShowLegend(),
		},
		"rangeSelector": highstock.Options{
			"selected": int(opts.SelectedRange()),
		},
		"title": titleBlock(opts.ChartTitle(), "21px"),
		"yAxis": highstock.Options{
			"title": titleBlock(opts.YTitle, "14px"),
		},
		"tooltip": sharedTooltip(opts.ValueDecimals()),
	}); err != nil {
		return nil, err
	}
	return h, nil
}

// LineWithPlotline builds a stock line chart with a labeled vertical marker
// at the given date, for showing when an event occurred. The date accepts
// the same layouts frame.ParseTime does; the marker label comes from
// opts.PlotlineText.
func LineWithPlotline(data *frame.Frame, plotlineDate string, opts Options) (*highstock.Chart, error) {
	h, err := newStockChart(opts)
	if err != nil {
		return nil, err
	}
	if len(data.Columns()) == 0 {
		return nil, ErrNoColumns
	}
	at, err := frame.ParseTime(plotlineDate)
	if err != nil {
		return nil, err
	}
	if err := addLineSeries(h, data.Copy(), nil); err != nil {
		return nil, err
	}
	if err := h.SetOptions(highstock.Options{
		"legend": highstock.Options{
			"enabled": opts.ShowLegend(),
		},
		"rangeSelector": highstock.Options{
			"selected": int(opts.SelectedRange()),
		},
		"title": titleBlock(opts.ChartTitle(), "21px"),
		"xAxis": highstock.Options{
			"plotLines": []highstock.Options{{
				"value":  at.UnixMilli(),
				"color":  "black",
				"width":  2,
				"zIndex": 4,
				"label": highstock.Options{
					"text": opts.PlotlineText,
				},
			}},
		},
		"yAxis": highstock.Options{
			"title": titleBlock(opts.YTitle, "14px"),
		},
		"tooltip": sharedTooltip(opts.ValueDecimals()),
	}); err != nil {
		return nil, err
	}
	return h, nil
}
