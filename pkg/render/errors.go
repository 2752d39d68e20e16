package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-ddmform/pkg/model"
)

// ErrorMapping groups submission errors by the dotted DDM field path they
// belong to. Messages that cannot be tied to a field land in Form.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MergeFormErrors appends extras to existing and returns the trimmed,
// de-duplicated result in first-seen order.
func MergeFormErrors(existing []string, extras ...string) []string {
	return cleanMessages(append(append([]string(nil), existing...), extras...))
}

// MapErrorPayload assigns each payload entry to a field of form. Keys may be
// dotted DDM paths ("Where.latitude"), JSON pointers ("/Where/latitude") or
// indexed repeatable occurrences ("Phone[1]"). Leading envelope segments such
// as "values" or "body" are ignored. Keys that match no field are form-level.
func MapErrorPayload(form model.FormModel, payload map[string][]string) ErrorMapping {
	var mapping ErrorMapping
	if len(payload) == 0 {
		mapping.Fields = map[string][]string{}
		return mapping
	}

	index := newFieldIndex(form.Fields)
	fields := make(map[string][]string)
	for key, messages := range payload {
		messages = cleanMessages(messages)
		if len(messages) == 0 {
			continue
		}
		if path := index.resolve(key); path != "" {
			fields[path] = append(fields[path], messages...)
			continue
		}
		mapping.Form = append(mapping.Form, messages...)
	}

	if len(fields) > 0 {
		mapping.Fields = fields
	}
	mapping.Form = cleanMessages(mapping.Form)
	return mapping
}

func cleanMessages(messages []string) []string {
	var out []string
	seen := make(map[string]bool, len(messages))
	for _, message := range messages {
		message = strings.TrimSpace(message)
		if message == "" || seen[message] {
			continue
		}
		seen[message] = true
		out = append(out, message)
	}
	return out
}

// fieldIndex is the set of addressable field paths of a form.
type fieldIndex map[string]bool

func newFieldIndex(fields []model.Field) fieldIndex {
	index := make(fieldIndex)
	index.add(fields, "")
	return index
}

func (idx fieldIndex) add(fields []model.Field, prefix string) {
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		idx[path] = true
		idx.add(field.Nested, path)
		if field.Items != nil {
			idx.add(field.Items.Nested, path)
		}
	}
}

var envelopeSegments = map[string]bool{
	"body":    true,
	"data":    true,
	"fields":  true,
	"payload": true,
	"request": true,
	"values":  true,
}

// resolve returns the deepest known path addressed by key, or "" when the key
// is form-level or unknown.
func (idx fieldIndex) resolve(key string) string {
	if isFormLevelKey(key) {
		return ""
	}
	segments := keySegments(key)

	best := idx.longestPrefix(segments)
	trimmed := segments
	for len(trimmed) > 0 && envelopeSegments[strings.ToLower(trimmed[0])] {
		trimmed = trimmed[1:]
	}
	if candidate := idx.longestPrefix(trimmed); strings.Count(candidate, ".") > strings.Count(best, ".") || best == "" {
		best = candidate
	}
	return best
}

func (idx fieldIndex) longestPrefix(segments []string) string {
	for end := len(segments); end > 0; end-- {
		if path := strings.Join(segments[:end], "."); idx[path] {
			return path
		}
	}
	return ""
}

// keySegments splits an error key on dots, slashes and brackets. Numeric
// segments address repeatable occurrences and are dropped.
func keySegments(key string) []string {
	key = strings.TrimLeft(strings.TrimSpace(key), "#$./")
	parts := strings.FieldsFunc(key, func(r rune) bool {
		switch r {
		case '.', '/', '[', ']':
			return true
		}
		return false
	})

	segments := parts[:0]
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := strconv.Atoi(part); err == nil {
			continue
		}
		part = strings.ReplaceAll(part, "~1", "/")
		segments = append(segments, strings.ReplaceAll(part, "~0", "~"))
	}
	return segments
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "__all__", "non_field_errors":
		return true
	}
	return false
}
