package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-ddmform/pkg/model"
	"github.com/goliatone/go-ddmform/pkg/render"
)

func locationForm() model.FormModel {
	return model.FormModel{
		Fields: []model.Field{
			{Name: "Name", Type: model.FieldTypeString},
			{
				Name: "Where",
				Type: model.FieldTypeObject,
				Nested: []model.Field{
					{Name: "latitude", Type: model.FieldTypeNumber},
					{Name: "longitude", Type: model.FieldTypeNumber},
				},
			},
			{Name: "Phone", Type: model.FieldTypeArray, Items: &model.Field{Type: model.FieldTypeString}},
		},
	}
}

func TestMapErrorPayload(t *testing.T) {
	payload := map[string][]string{
		"Name":                  {"Name is required", " Name is required "},
		"/Where/latitude":       {"must be a number"},
		"values.Where.longitude": {"out of range"},
		"Phone[1]":              {"invalid phone"},
		"body/Where/altitude":   {"unknown coordinate"},
		"Missing":               {"no such field"},
		"non_field_errors":      {"submission expired"},
		"":                      {"   "},
	}

	mapped := render.MapErrorPayload(locationForm(), payload)

	wantFields := map[string][]string{
		"Name":            {"Name is required"},
		"Where":           {"unknown coordinate"},
		"Where.latitude":  {"must be a number"},
		"Where.longitude": {"out of range"},
		"Phone":           {"invalid phone"},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{"no such field", "submission expired"}
	if diff := cmp.Diff(wantForm, mapped.Form, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorPayload_OnlyFormLevel(t *testing.T) {
	mapped := render.MapErrorPayload(locationForm(), map[string][]string{"form": {"try again"}})
	if mapped.Fields != nil {
		t.Fatalf("expected no field errors, got %v", mapped.Fields)
	}
	if diff := cmp.Diff([]string{"try again"}, mapped.Form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" Expired ", "Retry"}, "Retry", "offline", "  ")
	if diff := cmp.Diff([]string{"Expired", "Retry", "offline"}, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}
