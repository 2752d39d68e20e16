package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

var stripTags = bluemonday.StrictPolicy()

// plainText strips markup from paragraph and HTML field content before it
// reaches the terminal.
func plainText(input string) string {
	return strings.TrimSpace(html.UnescapeString(stripTags.Sanitize(input)))
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		form := url.Values{}
		walkAnswers("", values, func(path string, _ int, value any) {
			form.Add(path, fmt.Sprint(value))
		})
		return []byte(form.Encode()), nil
	case OutputFormatPrettyText:
		return []byte(prettyAnswers(values)), nil
	case OutputFormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(values); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return json.Marshal(values)
	}
}

// prettyAnswers lists one path=value line per answer.
func prettyAnswers(values map[string]any) string {
	var b strings.Builder
	walkAnswers("", values, func(path string, index int, value any) {
		if index >= 0 {
			path = fmt.Sprintf("%s[%d]", path, index)
		}
		fmt.Fprintf(&b, "%s=%v\n", path, value)
	})
	return b.String()
}

// walkAnswers visits every leaf answer in path order. Entries of repeatable
// and multi-select fields share their field path and carry their position;
// single values get index -1. Repeating the path is how DDM submissions
// encode repeated fields.
func walkAnswers(path string, value any, visit func(path string, index int, value any)) {
	switch v := value.(type) {
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(v)) {
			walkAnswers(joinPath(path, key), v[key], visit)
		}
	case []any:
		for i, item := range v {
			visit(path, i, item)
		}
	case []string:
		for i, item := range v {
			visit(path, i, item)
		}
	default:
		if path != "" {
			visit(path, -1, v)
		}
	}
}
