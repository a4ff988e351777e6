package highstock

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"sort"
	"sync"
)

// ErrRendererUnavailable indicates the HTML rendering dependency failed to
// initialize.
var ErrRendererUnavailable = errors.New("chart renderer unavailable")

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://code.highcharts.com/stock/highstock.js"></script>
<script src="https://code.highcharts.com/stock/highcharts-more.js"></script>
</head>
<body>
<div id="{{.ContainerID}}" style="width:{{.Width}}px;height:{{.Height}}px"></div>
<script>
Highcharts.{{.Kind}}('{{.ContainerID}}', {{.Config}});
</script>
</body>
</html>
`

var (
	pageOnce sync.Once
	pageTmpl *template.Template
	pageErr  error
)

// Ready reports whether the HTML renderer is available, compiling the page
// template on first use. Builders call it before assembling a chart so a
// broken rendering dependency surfaces as one clear error up front rather
// than at write time.
func Ready() error {
	pageOnce.Do(func() {
		pageTmpl, pageErr = template.New("page").Parse(pageHTML)
	})
	if pageErr != nil {
		return fmt.Errorf("%w: %v", ErrRendererUnavailable, pageErr)
	}
	return nil
}

// config returns the full renderable tree: the option tree plus the series
// list, each series object carrying data, type, name, and its extra options.
func (c *Chart) config() (Options, error) {
	cfg, err := c.Options()
	if err != nil {
		return nil, err
	}
	list := make([]interface{}, len(c.series))
	for i, s := range c.series {
		obj := Options{
			"data": s.Data,
			"type": s.Type,
			"name": s.Name,
		}
		for k, v := range s.Options {
			obj[k] = v
		}
		list[i] = obj
	}
	cfg["series"] = list
	return cfg, nil
}

// ConfigJSON renders the full chart configuration as JSON. Function-valued
// options appear as plain strings; HTML inside format strings is not
// escaped.
func (c *Chart) ConfigJSON(pretty bool) ([]byte, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ConfigJS renders the configuration as a JavaScript object literal with
// JSFunc options emitted as real functions.
func (c *Chart) ConfigJS() (string, error) {
	cfg, err := c.config()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := appendJS(&buf, cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteHTML writes a standalone HTML page that renders the chart into the
// given container element.
func (c *Chart) WriteHTML(w io.Writer, containerID string) error {
	if err := Ready(); err != nil {
		return err
	}
	js, err := c.ConfigJS()
	if err != nil {
		return err
	}
	width, height := c.canvasSize()
	return pageTmpl.Execute(w, struct {
		Title       string
		ContainerID string
		Width       int
		Height      int
		Kind        template.JS
		Config      template.JS
	}{
		Title:       c.titleText(),
		ContainerID: containerID,
		Width:       width,
		Height:      height,
		Kind:        template.JS(c.kind),
		Config:      template.JS(js),
	})
}

// canvasSize reads the pixel size seeded into the chart block.
func (c *Chart) canvasSize() (int, int) {
	width, height := 0, 0
	if chart, ok := asMap(c.opts["chart"]); ok {
		if w, ok := chart["width"].(int); ok {
			width = w
		}
		if h, ok := chart["height"].(int); ok {
			height = h
		}
	}
	return width, height
}

// titleText reads title.text for the page title.
func (c *Chart) titleText() string {
	if title, ok := asMap(c.opts["title"]); ok {
		if s, ok := title["text"].(string); ok && s != "" {
			return s
		}
	}
	return "Chart"
}

// appendJS writes v as a JavaScript literal: JSFunc bodies unquoted, maps
// with sorted keys, everything else as JSON.
func appendJS(buf *bytes.Buffer, v interface{}) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case JSFunc:
		buf.WriteString(string(t))
	case Options:
		return appendJSMap(buf, map[string]interface{}(t))
	case map[string]interface{}:
		return appendJSMap(buf, t)
	case []interface{}:
		return appendJSList(buf, t)
	case []Options:
		list := make([]interface{}, len(t))
		for i, e := range t {
			list[i] = e
		}
		return appendJSList(buf, list)
	case []Point:
		buf.WriteByte('[')
		for i, p := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := p.MarshalJSON()
			if err != nil {
				return err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
	default:
		b, err := jsonNoEscape(v)
		if err != nil {
			return err
		}
		buf.Write(b)
	}
	return nil
}

func appendJSList(buf *bytes.Buffer, list []interface{}) error {
	buf.WriteByte('[')
	for i, e := range list {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := appendJS(buf, e); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func appendJSMap(buf *bytes.Buffer, m map[string]interface{}) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := jsonNoEscape(k)
		if err != nil {
			return err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		if err := appendJS(buf, m[k]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// jsonNoEscape marshals v without HTML escaping or a trailing newline.
func jsonNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
