package model

import (
	"fmt"

	"github.com/goliatone/go-ddmform/pkg/ddm"
)

// Definition rebuilds the DDM field a model field was generated from, so
// submitted values can go through ddm.Field.Convert and ddm.Field.Validate.
// Fields built by hand fall back to their FieldType.
func Definition(field Field) ddm.Field {
	def := ddm.Field{
		Name:       field.Name,
		DataType:   ddm.ParseDataType(field.Metadata[MetadataDataType]),
		EditorType: ddm.ParseEditorType(field.Metadata[MetadataEditorType]),
		Label:      field.Label,
		Required:   field.Required,
		ReadOnly:   field.ReadOnly,
		Repeatable: field.Metadata[MetadataRepeatable] == "true",
		Multiple:   field.Type == FieldTypeArray || field.Metadata[MetadataMultiple] == "true",
		ShowLabel:  field.UIHints[UIHintHideLabel] != "true",
	}
	if def.DataType == ddm.DataTypeUnsupported {
		switch field.Type {
		case FieldTypeBoolean:
			def.DataType = ddm.DataTypeBoolean
		case FieldTypeInteger:
			def.DataType = ddm.DataTypeInteger
		case FieldTypeNumber:
			def.DataType = ddm.DataTypeNumber
		case FieldTypeObject:
		default:
			def.DataType = ddm.DataTypeString
		}
	}
	for i, value := range field.Enum {
		opt := ddm.Option{Value: fmt.Sprint(value)}
		if i < len(field.EnumLabels) {
			opt.Label = field.EnumLabels[i]
		}
		def.Options = append(def.Options, opt)
	}
	if len(def.Options) > 0 && !def.EditorType.HasOptions() {
		def.EditorType = ddm.EditorTypeSelect
	}
	return def
}
