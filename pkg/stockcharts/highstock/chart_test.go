package highstock

import (
	"testing"
)

func TestNewSeedsCanvas(t *testing.T) {
	c := New(KindStock, 900, 700)

	opts, err := c.Options()
	if err != nil {
		t.Fatalf("Options returned error: %v", err)
	}
	chart, ok := asMap(opts["chart"])
	if !ok {
		t.Fatalf("chart block missing: %v", opts)
	}
	if chart["width"] != 900 || chart["height"] != 700 {
		t.Errorf("chart block = %v, expected width 900 height 700", chart)
	}
	if c.Kind() != KindStock {
		t.Errorf("Kind() = %q, expected %q", c.Kind(), KindStock)
	}
}

func TestSetOptionsMerge(t *testing.T) {
	c := New(KindChart, 900, 700)

	err := c.SetOptions(Options{
		"chart": Options{
			"type": "boxplot",
		},
		"custom": Options{
			"x": 1,
		},
	})
	if err != nil {
		t.Fatalf("SetOptions returned error: %v", err)
	}

	opts, err := c.Options()
	if err != nil {
		t.Fatalf("Options returned error: %v", err)
	}

	chart, _ := asMap(opts["chart"])
	if chart["width"] != 900 {
		t.Errorf("merge dropped chart.width: %v", chart)
	}
	if chart["type"] != "boxplot" {
		t.Errorf("merge missed chart.type: %v", chart)
	}

	// Unknown sections pass through verbatim.
	custom, ok := asMap(opts["custom"])
	if !ok || custom["x"] != 1 {
		t.Errorf("custom block = %v, expected {x: 1}", opts["custom"])
	}
}

func TestSetOptionsOverwritesScalars(t *testing.T) {
	c := New(KindChart, 900, 700)

	if err := c.SetOptions(Options{"title": Options{"text": "first"}}); err != nil {
		t.Fatalf("SetOptions returned error: %v", err)
	}
	if err := c.SetOptions(Options{"title": Options{"text": "second"}}); err != nil {
		t.Fatalf("SetOptions returned error: %v", err)
	}

	opts, err := c.Options()
	if err != nil {
		t.Fatalf("Options returned error: %v", err)
	}
	title, _ := asMap(opts["title"])
	if title["text"] != "second" {
		t.Errorf("title.text = %v, expected second", title["text"])
	}
}

func TestSetOptionsIsolatedFromCaller(t *testing.T) {
	c := New(KindChart, 900, 700)

	src := Options{
		"legend": Options{
			"enabled": true,
		},
	}
	if err := c.SetOptions(src); err != nil {
		t.Fatalf("SetOptions returned error: %v", err)
	}

	// Mutating the caller's tree after the fact must not reach the chart.
	legend, _ := asMap(src["legend"])
	legend["enabled"] = false

	opts, err := c.Options()
	if err != nil {
		t.Fatalf("Options returned error: %v", err)
	}
	got, _ := asMap(opts["legend"])
	if got["enabled"] != true {
		t.Errorf("legend.enabled = %v, expected true", got["enabled"])
	}
}

func TestOptionsSnapshotIsolated(t *testing.T) {
	c := New(KindChart, 300, 200)

	first, err := c.Options()
	if err != nil {
		t.Fatalf("Options returned error: %v", err)
	}
	chart, _ := asMap(first["chart"])
	chart["width"] = -1

	second, err := c.Options()
	if err != nil {
		t.Fatalf("Options returned error: %v", err)
	}
	got, _ := asMap(second["chart"])
	if got["width"] != 300 {
		t.Errorf("chart.width = %v, expected 300 after snapshot mutation", got["width"])
	}
}

func TestAddSeriesOrder(t *testing.T) {
	c := New(KindStock, 900, 700)
	c.AddSeries([]Point{{1, 1}}, "line", "first", nil)
	c.AddSeries([]Point{{2, 2}}, "line", "second", Options{"yAxis": 1})
	c.AddSeries([]Point{{3, 3}}, "area", "third", nil)

	series := c.Series()
	if len(series) != 3 {
		t.Fatalf("Series() has %d entries, expected 3", len(series))
	}
	names := []string{"first", "second", "third"}
	for i, name := range names {
		if series[i].Name != name {
			t.Errorf("series[%d].Name = %q, expected %q", i, series[i].Name, name)
		}
	}
	if series[1].Options["yAxis"] != 1 {
		t.Errorf("series[1].Options = %v, expected yAxis 1", series[1].Options)
	}
	if series[2].Type != "area" {
		t.Errorf("series[2].Type = %q, expected area", series[2].Type)
	}
}
