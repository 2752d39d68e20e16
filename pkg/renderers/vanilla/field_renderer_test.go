package vanilla

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ddmform/pkg/model"
	"github.com/goliatone/go-ddmform/pkg/render"
	"github.com/goliatone/go-ddmform/pkg/renderers/vanilla/components"
)

func TestResolveComponentName(t *testing.T) {
	registry := components.NewDefaultRegistry()
	if err := registry.Alias("ddm-text-html", components.NameTextarea); err != nil {
		t.Fatalf("alias: %v", err)
	}

	cases := []struct {
		name  string
		field model.Field
		want  string
	}{
		{name: "widget hint", field: model.Field{Type: model.FieldTypeString, UIHints: map[string]string{"widget": "textarea"}}, want: components.NameTextarea},
		{
			name: "editor type alias",
			field: model.Field{
				Type:     model.FieldTypeString,
				Metadata: map[string]string{model.MetadataEditorType: "ddm-text-html"},
				UIHints:  map[string]string{"widget": "text-html"},
			},
			want: components.NameTextarea,
		},
		{name: "unknown hint", field: model.Field{Type: model.FieldTypeBoolean, UIHints: map[string]string{"widget": "fancy"}}, want: components.NameCheckbox},
		{name: "object", field: model.Field{Type: model.FieldTypeObject}, want: components.NameGroup},
		{name: "integer", field: model.Field{Type: model.FieldTypeInteger}, want: components.NameInteger},
		{name: "number", field: model.Field{Type: model.FieldTypeNumber}, want: components.NameNumber},
		{name: "enum array", field: model.Field{Type: model.FieldTypeArray, Items: &model.Field{Enum: []any{"a"}}}, want: components.NameSelect},
		{name: "date format", field: model.Field{Type: model.FieldTypeString, Format: "date"}, want: components.NameDate},
		{name: "plain", field: model.Field{Type: model.FieldTypeString}, want: components.NameText},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveComponentName(tc.field, registry); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestOptionViewsMarksSelection(t *testing.T) {
	field := model.Field{
		Type:  model.FieldTypeArray,
		Items: &model.Field{Enum: []any{"a", "b", "c"}, EnumLabels: []string{"<i>A</i>", "", "C"}},
	}

	got := optionViews(field, "Letters", []any{"a", "c"})
	want := []components.OptionView{
		{ID: "fg-Letters-0", Value: "a", Label: "A", Selected: true},
		{ID: "fg-Letters-1", Value: "b", Label: "b"},
		{ID: "fg-Letters-2", Value: "c", Label: "C", Selected: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatValue(t *testing.T) {
	cases := map[string]any{
		"":     nil,
		"true": true,
		"1.25": 1.25,
		"7":    int64(7),
		"x":    []string{"x", "y"},
		"y":    []any{"y"},
	}
	for want, value := range cases {
		if got := formatValue(value); got != want {
			t.Fatalf("formatValue(%#v) = %q, want %q", value, got, want)
		}
	}
}

func TestPlainTextAndRichText(t *testing.T) {
	if got := plainText(`<a href="javascript:x()">Tom &amp; Jerry</a>`); got != "Tom & Jerry" {
		t.Fatalf("unexpected plain text %q", got)
	}
	rich := richText(`<p onclick="x()">Hi <a href="https://example.com">there</a></p>`)
	if strings.Contains(rich, "onclick") {
		t.Fatalf("expected event handler removed, got %q", rich)
	}
	if !strings.Contains(rich, "noreferrer") {
		t.Fatalf("expected link rel attributes, got %q", rich)
	}
}

func TestBuildFieldMarkupDropsDuplicateHelp(t *testing.T) {
	renderer := newComponentRenderer(nil, nil, nil, nil, renderState{})
	field := model.Field{
		Name:        "Notes",
		Label:       "Notes",
		Description: "Same copy",
		UIHints:     map[string]string{"helpText": "Same copy"},
	}
	control := components.Control{ID: "fg-Notes", Name: "Notes"}

	out := renderer.buildFieldMarkup(field, components.NameTextarea, control, "<textarea></textarea>")
	if strings.Count(out, "Same copy") != 1 {
		t.Fatalf("expected copy rendered once, got:\n%s", out)
	}
	if !strings.Contains(out, `<label id="fg-Notes-label" for="fg-Notes" class="ddmform-label">Notes</label>`) {
		t.Fatalf("expected bound label, got:\n%s", out)
	}
}

func TestFormMethod(t *testing.T) {
	if method, hidden := formMethod(renderOptions("get")); method != "get" || len(hidden) != 0 {
		t.Fatalf("unexpected GET mapping: %s %v", method, hidden)
	}
	method, hidden := formMethod(renderOptions("delete"))
	if method != "post" || len(hidden) != 1 || hidden[0].Value != "DELETE" {
		t.Fatalf("unexpected DELETE mapping: %s %v", method, hidden)
	}
}

func renderOptions(method string) render.RenderOptions {
	return render.RenderOptions{Method: method}
}
