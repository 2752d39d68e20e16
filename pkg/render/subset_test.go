package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ddmform/pkg/model"
	"github.com/goliatone/go-ddmform/pkg/render"
)

func subsetForm() model.FormModel {
	return model.FormModel{Fields: []model.Field{
		{Name: "title", Metadata: map[string]string{model.MetadataEditorType: "text", model.MetadataIndexType: "keyword"}},
		{Name: "body", Metadata: map[string]string{model.MetadataEditorType: "ddm-text-html", model.MetadataIndexType: "text"}},
		{Name: "published", Metadata: map[string]string{model.MetadataEditorType: "ddm-date"}},
		{Name: "hero", Metadata: map[string]string{model.MetadataEditorType: "ddm-image"}},
	}}
}

func fieldNames(fields []model.Field) []string {
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		out = append(out, field.Name)
	}
	return out
}

func TestApplySubset(t *testing.T) {
	cases := []struct {
		name   string
		subset render.FieldSubset
		want   []string
	}{
		{name: "empty keeps everything", subset: render.FieldSubset{}, want: []string{"title", "body", "published", "hero"}},
		{name: "by name", subset: render.FieldSubset{Names: []string{" Title ", "hero"}}, want: []string{"title", "hero"}},
		{name: "by editor", subset: render.FieldSubset{EditorTypes: []string{"ddm-date,ddm-image"}}, want: []string{"published", "hero"}},
		{name: "by index type", subset: render.FieldSubset{IndexTypes: []string{"keyword"}}, want: []string{"title"}},
		{name: "union", subset: render.FieldSubset{Names: []string{"body"}, IndexTypes: []string{"keyword"}}, want: []string{"title", "body"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			form := subsetForm()
			render.ApplySubset(&form, tc.subset)
			if diff := cmp.Diff(tc.want, fieldNames(form.Fields)); diff != "" {
				t.Fatalf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplySubset_NoMatchClearsFields(t *testing.T) {
	form := subsetForm()
	render.ApplySubset(&form, render.FieldSubset{Names: []string{"missing"}})
	if form.Fields != nil {
		t.Fatalf("expected nil fields, got %+v", form.Fields)
	}
}
