package stockcharts

import (
	"math"
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/frame"
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/highstock"
)

// Boxplot builds a boxplot chart from a two-column table: a numeric grouping
// key (typically epoch millisecond dates) and a value column. Each key
// becomes one box of five quantiles; a horizontal plotline marks the mean of
// all values, rounded to the configured decimals.
func Boxplot(data *frame.Frame, opts Options) (*highstock.Chart, error) {
	if err := highstock.Ready(); err != nil {
		return nil, err
	}
	names := data.Columns()
	if len(names) != 2 {
		return nil, ErrBoxplotColumns
	}
	data = data.Copy()
	keys, err := data.Column(names[0])
	if err != nil {
		return nil, err
	}
	values, err := data.Column(names[1])
	if err != nil {
		return nil, err
	}

	mean, err := stats.Mean(stats.Float64Data(values))
	if err != nil {
		return nil, err
	}
	mean = roundTo(mean, opts.ValueDecimals())

	rows, err := groupedSummaries(keys, values)
	if err != nil {
		return nil, err
	}

	width, height := opts.CanvasSize()
	h := highstock.New(highstock.KindChart, width, height)
	h.AddSeries(rows, "boxplot", opts.YTitle, highstock.Options{
		"tooltip": highstock.Options{
			"headerFormat": "<em>Date {point.key}</em><br/>",
		},
	})

	xAxis := dateTimeAxis()
	xAxis["title"] = highstock.Options{"text": opts.XAxisTitle()}

	if err := h.SetOptions(highstock.Options{
		"chart": highstock.Options{
			"type": "boxplot",
		},
		"title": titleBlock(opts.ChartTitle(), ""),
		"legend": highstock.Options{
			"enabled": false,
		},
		"xAxis": xAxis,
		"yAxis": highstock.Options{
			"title": titleBlock(opts.YTitle, ""),
			"plotLines": []highstock.Options{{
				"value":  mean,
				"color":  "red",
				"width":  1,
				"zIndex": 4,
				"label": highstock.Options{
					"text":  "Mean: " + strconv.FormatFloat(mean, 'f', -1, 64) + "  ",
					"align": "right",
					"style": highstock.Options{
						"color": "gray",
						"plotOptions": highstock.Options{
							"series": highstock.Options{
								"dataLabels": highstock.Options{
									"enabled":  true,
									"crop":     false,
									"overflow": "none",
								},
							},
						},
					},
				},
			}},
		},
		"tooltip": sharedTooltip(opts.ValueDecimals()),
	}); err != nil {
		return nil, err
	}
	return h, nil
}

// groupedSummaries sorts the rows by value, groups them by key, and returns
// one [key, min, q1, median, q3, max] row per key in ascending key order.
func groupedSummaries(keys, values []float64) ([][]float64, error) {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	groups := make(map[float64][]float64, len(keys))
	for _, i := range order {
		groups[keys[i]] = append(groups[keys[i]], values[i])
	}

	sorted := make([]float64, 0, len(groups))
	for k := range groups {
		sorted = append(sorted, k)
	}
	sort.Float64s(sorted)

	rows := make([][]float64, 0, len(groups))
	for _, k := range sorted {
		five, err := fiveNumber(groups[k])
		if err != nil {
			return nil, err
		}
		rows = append(rows, append([]float64{k}, five[:]...))
	}
	return rows, nil
}

// fiveNumber returns the min, lower quartile, median, upper quartile, and
// max of one group's values.
func fiveNumber(values []float64) ([5]float64, error) {
	// A single observation is its own five-number summary; the quartile
	// split needs at least two.
	if len(values) == 1 {
		v := values[0]
		return [5]float64{v, v, v, v, v}, nil
	}
	d := stats.Float64Data(values)
	lo, err := stats.Min(d)
	if err != nil {
		return [5]float64{}, err
	}
	hi, err := stats.Max(d)
	if err != nil {
		return [5]float64{}, err
	}
	q, err := stats.Quartile(d)
	if err != nil {
		return [5]float64{}, err
	}
	return [5]float64{lo, q.Q1, q.Q2, q.Q3, hi}, nil
}

// roundTo rounds v to the given decimal count, ties to the even neighbor.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.RoundToEven(v*scale) / scale
}
