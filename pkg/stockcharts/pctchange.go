package stockcharts

import (
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/frame"
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/highstock"
)

// PercentChangeLine builds a stock line chart plotting each series as
// percent change from its first visible value. The comparison itself is
// delegated to the chart's percent compare mode; only reshaping happens
// here.
func PercentChangeLine(data *frame.Frame, opts Options) (*highstock.Chart, error) {
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
		"title": titleBlock(opts.ChartTitle(), ""),
		"yAxis": highstock.Options{
			"title": titleBlock(opts.YTitle, ""),
			"labels": highstock.Options{
				"formatter": yLabelSignedPercent,
			},
			"plotLines": []highstock.Options{{
				"value": 0,
				"width": 2,
				"color": "silver",
			}},
		},
		"plotOptions": highstock.Options{
			"series": highstock.Options{
				"compare": "percent",
			},
		},
		"tooltip": highstock.Options{
			"pointFormat":   `<span style="color:{series.color}">{series.name}</span>: <b>{point.y}</b> ({point.change}%)<br/>`,
			"valueDecimals": opts.ValueDecimals(),
		},
	}); err != nil {
		return nil, err
	}
	return h, nil
}
