package stockcharts

import (
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/frame"
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/highstock"
)

// LineWithSecondaryAxis builds a stock line chart plotting two tables
// against separate value axes: the first table on the primary axis, the
// second on a secondary axis titled secondaryYTitle. Both tables need at
// least one value column; they may differ in rows and timestamps.
func LineWithSecondaryAxis(data, secondary *frame.Frame, secondaryYTitle string, opts Options) (*highstock.Chart, error) {
	h, err := newStockChart(opts)
	if err != nil {
		return nil, err
	}
	if len(data.Columns()) == 0 || len(secondary.Columns()) == 0 {
		return nil, ErrNoColumns
	}
	if err := addLineSeries(h, data.Copy(), nil); err != nil {
		return nil, err
	}
	if err := addLineSeries(h, secondary.Copy(), highstock.Options{"yAxis": 1}); err != nil {
		return nil, err
	}
	if err := h.SetOptions(highstock.Options{
		"legend": highstock.Options{
			"enabled": opts.ShowLegend(),
		},
		"rangeSelector": highstock.Options{
			"selected": int(opts.SelectedRange()),
		},
		"title": titleBlock(opts.ChartTitle(), "23px"),
		"yAxis": []highstock.Options{
			{
				"title": titleBlock(opts.YTitle, "14px"),
			},
			{
				"title": titleBlock(secondaryYTitle, "14px"),
				// The second scale renders on the same side as the first,
				// not the usual opposite placement.
				"opposite": false,
			},
		},
		"tooltip": sharedTooltip(opts.ValueDecimals()),
	}); err != nil {
		return nil, err
	}
	return h, nil
}
