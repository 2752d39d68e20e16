package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ddmform/pkg/ddm"
	"github.com/goliatone/go-ddmform/pkg/model"
)

func TestDefinition_RestoresDDMField(t *testing.T) {
	field := model.Field{
		Name:       "Color",
		Type:       model.FieldTypeArray,
		Label:      "Colour",
		Required:   true,
		Enum:       []any{"red", "blue"},
		EnumLabels: []string{"Red", "Blue"},
		Metadata: map[string]string{
			model.MetadataDataType:   "string",
			model.MetadataEditorType: "select",
			model.MetadataRepeatable: "true",
		},
	}

	want := ddm.Field{
		Name:       "Color",
		DataType:   ddm.DataTypeString,
		EditorType: ddm.EditorTypeSelect,
		Label:      "Colour",
		Required:   true,
		Repeatable: true,
		Multiple:   true,
		ShowLabel:  true,
		Options: []ddm.Option{
			{Value: "red", Label: "Red"},
			{Value: "blue", Label: "Blue"},
		},
	}
	if diff := cmp.Diff(want, model.Definition(field)); diff != "" {
		t.Fatalf("definition mismatch (-want +got):\n%s", diff)
	}
}

func TestDefinition_FallsBackToFieldType(t *testing.T) {
	def := model.Definition(model.Field{Name: "count", Type: model.FieldTypeInteger})
	if def.DataType != ddm.DataTypeInteger || def.Editor() != ddm.EditorTypeInteger {
		t.Fatalf("unexpected definition %+v", def)
	}
	if err := def.Validate("4.5"); err == nil {
		t.Fatalf("expected integer validation to reject 4.5")
	}
}
