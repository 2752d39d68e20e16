package validation

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-ddmform/pkg/ddm"
	"github.com/goliatone/go-ddmform/pkg/model"
)

// Issue is a single validation failure.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result captures validation outcomes for a submission.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Errors groups issue messages by field path, the shape
// render.RenderOptions.Errors expects.
func (r Result) Errors() map[string][]string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make(map[string][]string, len(r.Issues))
	for _, issue := range r.Issues {
		key := issue.Field
		if key == "" {
			key = "form"
		}
		out[key] = append(out[key], issue.Message)
	}
	return out
}

// ValidateSubmission checks values against the form. Text values from form
// posts are converted to the field type first, so "42" is a valid integer.
// Empty strings count as missing.
func ValidateSubmission(form model.FormModel, values map[string]any) Result {
	normalized := normalizeFields(form.Fields, values)

	var issues []Issue
	if err := SchemaFor(form).VisitJSON(normalized, openapi3.MultiErrors()); err != nil {
		issues = append(issues, issuesFromError(err)...)
	}
	issues = append(issues, valueIssues(form.Fields, normalized, nil)...)

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Field < issues[j].Field
	})
	return Result{Valid: len(issues) == 0, Issues: dedupe(issues)}
}

// normalizeFields mirrors the property layout produced by SchemaFor.
func normalizeFields(fields []model.Field, values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for key, value := range values {
		out[key] = value
	}
	for _, field := range fields {
		if field.Type != model.FieldTypeObject && len(field.Nested) > 0 {
			for key, value := range normalizeFields(field.Nested, values) {
				out[key] = value
			}
		}
		if isDecorative(field) {
			continue
		}
		value, ok := values[field.Name]
		if !ok {
			continue
		}
		normalized, keep := normalizeValue(field, value)
		if !keep {
			delete(out, field.Name)
			continue
		}
		out[field.Name] = normalized
	}
	return out
}

func normalizeValue(field model.Field, value any) (any, bool) {
	if field.Metadata[model.MetadataRepeatable] == "true" {
		items := asItems(value)
		out := make([]any, 0, len(items))
		for _, item := range items {
			if v, keep := normalizeSingle(field, item); keep {
				out = append(out, v)
			}
		}
		return out, len(out) > 0
	}
	return normalizeSingle(field, value)
}

func normalizeSingle(field model.Field, value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, false
		}
		switch field.Type {
		case model.FieldTypeBoolean, model.FieldTypeInteger, model.FieldTypeNumber:
			if converted, err := model.Definition(field).Convert(v); err == nil {
				return converted, true
			}
		case model.FieldTypeArray:
			return []any{v}, true
		}
		return v, true
	case []string:
		if len(v) == 0 {
			return nil, false
		}
		return asItems(v), true
	case []any:
		if len(v) == 0 && !field.Required {
			return nil, false
		}
		return v, true
	case map[string]any:
		if field.Type == model.FieldTypeObject {
			return normalizeFields(field.Nested, v), true
		}
		return v, true
	default:
		return v, true
	}
}

// valueIssues applies the DDM value rules the schema cannot express, such as
// the accepted date layouts.
func valueIssues(fields []model.Field, values map[string]any, prefix []string) []Issue {
	var issues []Issue
	for _, field := range fields {
		if field.Type == model.FieldTypeObject {
			if nested, ok := values[field.Name].(map[string]any); ok {
				issues = append(issues, valueIssues(field.Nested, nested, childPath(prefix, field.Name))...)
			}
			continue
		}
		if len(field.Nested) > 0 {
			issues = append(issues, valueIssues(field.Nested, values, prefix)...)
		}
		def := model.Definition(field)
		if def.DataType != ddm.DataTypeDate {
			continue
		}
		value, ok := values[field.Name]
		if !ok {
			continue
		}
		for idx, item := range asItems(value) {
			text, ok := item.(string)
			if !ok {
				continue
			}
			if err := def.Validate(text); err != nil {
				segments := childPath(prefix, field.Name)
				if field.Metadata[model.MetadataRepeatable] == "true" {
					segments = append(segments, strconv.Itoa(idx))
				}
				issues = append(issues, newIssue(segments, "value must be a date"))
			}
		}
	}
	return issues
}

func issuesFromError(err error) []Issue {
	if multi, ok := err.(openapi3.MultiError); ok {
		var out []Issue
		for _, item := range multi {
			out = append(out, issuesFromError(item)...)
		}
		return out
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return []Issue{newIssue(schemaErr.JSONPointer(), schemaErr.Reason)}
	}
	return []Issue{{Message: strings.TrimSpace(err.Error())}}
}

func newIssue(segments []string, message string) Issue {
	issue := Issue{Message: message}
	if len(segments) > 0 {
		issue.Path = "/" + strings.Join(segments, "/")
		issue.Field = strings.Join(segments, ".")
	}
	return issue
}

func asItems(value any) []any {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return []any{v}
	}
}

func dedupe(issues []Issue) []Issue {
	if len(issues) == 0 {
		return nil
	}
	seen := make(map[Issue]struct{}, len(issues))
	out := issues[:0]
	for _, issue := range issues {
		if _, ok := seen[issue]; ok {
			continue
		}
		seen[issue] = struct{}{}
		out = append(out, issue)
	}
	return out
}

func childPath(prefix []string, name string) []string {
	out := make([]string, 0, len(prefix)+1)
	out = append(out, prefix...)
	return append(out, name)
}
