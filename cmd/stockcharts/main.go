// Package main provides the CLI entry point for stockcharts-go.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantbrew/stockcharts-go/pkg/stockcharts"
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/frame"
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/highstock"
	"github.com/quantbrew/stockcharts-go/pkg/stockcharts/palette"
	"github.com/spf13/cobra"
)

var (
	chartType       string
	title           string
	yTitle          string
	xTitle          string
	decimals        int
	legend          bool
	colormap        string
	rangeName       string
	width           int
	height          int
	plotlineDate    string
	plotlineText    string
	secondaryPath   string
	secondaryYTitle string
	sheet           string
	containerID     string
	asJSON          bool
	pretty          bool
	outputPath      string
	verbose         bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stockcharts [input.csv|input.xlsx]",
		Short: "Build Highcharts and Highstock configurations from time series tables",
		Long: `stockcharts-go reads a timestamp-indexed table from a CSV or Excel file,
builds one of several chart variants, and writes the chart as a standalone
HTML page or a JSON configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&chartType, "chart", "line", "Chart variant: line, plotline, area, area-pct, secondary, boxplot, pct-change")
	rootCmd.Flags().StringVar(&title, "title", "", "Chart title")
	rootCmd.Flags().StringVar(&yTitle, "y-title", "", "Value axis title")
	rootCmd.Flags().StringVar(&xTitle, "x-title", "", "X axis title (boxplot only)")
	rootCmd.Flags().IntVar(&decimals, "decimals", 2, "Tooltip value decimals")
	rootCmd.Flags().BoolVar(&legend, "legend", true, "Show the series legend")
	rootCmd.Flags().StringVar(&colormap, "colormap", "", "Colormap for area series: "+strings.Join(palette.Names(), ", "))
	rootCmd.Flags().StringVar(&rangeName, "range", "3m", "Initial range selection: 1m, 3m, 6m, ytd, 1y, all")
	rootCmd.Flags().IntVar(&width, "width", 0, "Canvas width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 0, "Canvas height in pixels")
	rootCmd.Flags().StringVar(&plotlineDate, "plotline-date", "", "Marker date for the plotline chart")
	rootCmd.Flags().StringVar(&plotlineText, "plotline-text", "", "Marker label for the plotline chart")
	rootCmd.Flags().StringVar(&secondaryPath, "secondary", "", "Second input table for the secondary axis chart")
	rootCmd.Flags().StringVar(&secondaryYTitle, "secondary-y-title", "", "Secondary axis title")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Excel sheet name (default: first sheet)")
	rootCmd.Flags().StringVar(&containerID, "container", "container", "HTML container element id")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Write the chart configuration as JSON instead of HTML")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := highstock.Ready(); err != nil {
		return err
	}

	if colormap != "" {
		grad, err := palette.ByName(colormap)
		if err != nil {
			return err
		}
		slog.Debug("using colormap", "name", grad.Name())
	}

	data, err := loadTable(args[0])
	if err != nil {
		return err
	}
	slog.Debug("table loaded", "path", args[0], "rows", data.Len(), "columns", len(data.Columns()))

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	chart, err := buildChart(data, opts)
	if err != nil {
		return fmt.Errorf("chart build failed: %w", err)
	}

	return writeChart(chart)
}

// loadTable reads a timestamp-indexed table from a CSV or Excel file.
func loadTable(path string) (*frame.Frame, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return frame.ReadXLSX(path, sheet)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return frame.ReadCSV(f)
}

// buildOptions maps the command flags onto chart options. Optional settings
// only override the chart defaults when their flag was set.
func buildOptions(cmd *cobra.Command) (stockcharts.Options, error) {
	opts := stockcharts.Options{
		YTitle:       yTitle,
		XTitle:       xTitle,
		Colormap:     colormap,
		PlotlineText: plotlineText,
		Width:        width,
		Height:       height,
	}
	if cmd.Flags().Changed("title") {
		opts.Title = &title
	}
	if cmd.Flags().Changed("decimals") {
		opts.Decimals = &decimals
	}
	if cmd.Flags().Changed("legend") {
		opts.Legend = &legend
	}

	rng, err := parseRange(rangeName)
	if err != nil {
		return stockcharts.Options{}, err
	}
	opts.Range = &rng
	return opts, nil
}

func parseRange(name string) (stockcharts.Range, error) {
	switch name {
	case "1m":
		return stockcharts.RangeOneMonth, nil
	case "3m":
		return stockcharts.RangeThreeMonth, nil
	case "6m":
		return stockcharts.RangeSixMonth, nil
	case "ytd":
		return stockcharts.RangeYearToDate, nil
	case "1y":
		return stockcharts.RangeOneYear, nil
	case "all":
		return stockcharts.RangeAll, nil
	}
	return 0, fmt.Errorf("invalid range: %s (must be 1m, 3m, 6m, ytd, 1y, or all)", name)
}

func buildChart(data *frame.Frame, opts stockcharts.Options) (*highstock.Chart, error) {
	switch chartType {
	case "line":
		return stockcharts.Line(data, opts)
	case "plotline":
		if plotlineDate == "" {
			return nil, fmt.Errorf("--plotline-date is required for the plotline chart")
		}
		return stockcharts.LineWithPlotline(data, plotlineDate, opts)
	case "area":
		return stockcharts.StackedArea(data, opts)
	case "area-pct":
		return stockcharts.PercentOfTotalArea(data, opts)
	case "secondary":
		if secondaryPath == "" {
			return nil, fmt.Errorf("--secondary is required for the secondary axis chart")
		}
		secondary, err := loadTable(secondaryPath)
		if err != nil {
			return nil, err
		}
		return stockcharts.LineWithSecondaryAxis(data, secondary, secondaryYTitle, opts)
	case "boxplot":
		adapted, err := boxplotTable(data)
		if err != nil {
			return nil, err
		}
		return stockcharts.Boxplot(adapted, opts)
	case "pct-change":
		return stockcharts.PercentChangeLine(data, opts)
	}
	return nil, fmt.Errorf("invalid chart variant: %s (must be line, plotline, area, area-pct, secondary, boxplot, or pct-change)", chartType)
}

// boxplotTable adapts a table for the boxplot builder: a single value
// column is paired with the timestamp index as the grouping key.
func boxplotTable(data *frame.Frame) (*frame.Frame, error) {
	names := data.Columns()
	if len(names) != 1 {
		return data, nil
	}

	values, err := data.Column(names[0])
	if err != nil {
		return nil, err
	}
	keys := make([]float64, data.Len())
	for i, ms := range data.EpochMillis() {
		keys[i] = float64(ms)
	}
	return frame.New(data.Index(), []frame.Column{
		{Name: "date", Values: keys},
		{Name: names[0], Values: values},
	})
}

func writeChart(chart *highstock.Chart) error {
	var out []byte
	if asJSON {
		raw, err := chart.ConfigJSON(pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		out = append(raw, '\n')
	} else {
		var buf bytes.Buffer
		if err := chart.WriteHTML(&buf, containerID); err != nil {
			return fmt.Errorf("rendering failed: %w", err)
		}
		out = buf.Bytes()
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, out, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		slog.Info("chart written", "path", outputPath, "bytes", len(out))
		return nil
	}

	_, err := os.Stdout.Write(out)
	return err
}
