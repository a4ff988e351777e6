package highstock

// Options is a nested chart configuration tree keyed the way the Highcharts
// API expects. Unknown keys are passed through to the output verbatim.
type Options map[string]interface{}

// merge recursively merges src into dst: nested maps merge key by key,
// every other value overwrites.
func merge(dst, src map[string]interface{}) {
	for k, v := range src {
		if sm, ok := asMap(v); ok {
			if dm, ok := asMap(dst[k]); ok {
				merge(dm, sm)
				continue
			}
		}
		dst[k] = v
	}
}

// asMap unwraps the two map shapes option values come in.
func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case Options:
		return map[string]interface{}(m), true
	case map[string]interface{}:
		return m, true
	}
	return nil, false
}
