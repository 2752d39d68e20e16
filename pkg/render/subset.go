package render

import (
	"strings"

	"github.com/goliatone/go-ddmform/pkg/model"
)

// FieldSubset selects top-level fields by name, DDM editor type, or DDM index
// type. A field is kept when it matches any non-empty filter.
type FieldSubset struct {
	Names       []string
	EditorTypes []string
	IndexTypes  []string
}

// Empty reports whether the subset has no filters.
func (s FieldSubset) Empty() bool {
	return newSubsetMatcher(s).empty()
}

// ApplySubset removes top-level fields that do not match subset. When subset
// is empty or form is nil, the form is returned unchanged.
func ApplySubset(form *model.FormModel, subset FieldSubset) {
	if form == nil {
		return
	}

	matcher := newSubsetMatcher(subset)
	if matcher.empty() {
		return
	}

	filtered := make([]model.Field, 0, len(form.Fields))
	for _, field := range form.Fields {
		if matcher.matches(field) {
			filtered = append(filtered, field)
		}
	}
	form.Fields = filtered
	if len(form.Fields) == 0 {
		form.Fields = nil
	}
}

type subsetMatcher struct {
	names   map[string]struct{}
	editors map[string]struct{}
	indexes map[string]struct{}
}

func newSubsetMatcher(subset FieldSubset) subsetMatcher {
	return subsetMatcher{
		names:   normaliseTokens(subset.Names),
		editors: normaliseTokens(subset.EditorTypes),
		indexes: normaliseTokens(subset.IndexTypes),
	}
}

func (m subsetMatcher) empty() bool {
	return len(m.names) == 0 && len(m.editors) == 0 && len(m.indexes) == 0
}

func (m subsetMatcher) matches(field model.Field) bool {
	return m.hit(m.names, field.Name) ||
		m.hit(m.editors, field.Metadata[model.MetadataEditorType]) ||
		m.hit(m.indexes, field.Metadata[model.MetadataIndexType])
}

func (subsetMatcher) hit(set map[string]struct{}, value string) bool {
	if len(set) == 0 {
		return false
	}
	token := normaliseToken(value)
	if token == "" {
		return false
	}
	_, ok := set[token]
	return ok
}

func normaliseTokens(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	result := make(map[string]struct{}, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if token := normaliseToken(part); token != "" {
				result[token] = struct{}{}
			}
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func normaliseToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
