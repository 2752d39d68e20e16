package validation

import (
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-ddmform/pkg/model"
)

// Coordinate bounds applied to geolocation children.
var coordinateBounds = map[string][2]float64{
	"latitude":  {-90, 90},
	"longitude": {-180, 180},
}

// SchemaFor compiles the form into an object schema. Decorative fields are
// left out; children of scalar fields become sibling properties.
func SchemaFor(form model.FormModel) *openapi3.Schema {
	root := openapi3.NewObjectSchema()
	root.Title = form.Title
	root.Description = form.Description
	addProperties(root, form.Fields)
	return root
}

func addProperties(parent *openapi3.Schema, fields []model.Field) {
	for _, field := range fields {
		if isDecorative(field) {
			continue
		}
		parent.WithProperty(field.Name, propertySchema(field))
		if field.Required {
			parent.Required = append(parent.Required, field.Name)
		}
		if field.Type != model.FieldTypeObject && len(field.Nested) > 0 {
			addProperties(parent, field.Nested)
		}
	}
}

func propertySchema(field model.Field) *openapi3.Schema {
	schema := valueSchema(field)
	if field.Metadata[model.MetadataRepeatable] == "true" {
		schema = openapi3.NewArraySchema().WithItems(schema)
		if field.Required {
			schema.WithMinItems(1)
		}
	}
	schema.Title = field.Label
	schema.Description = field.Description
	schema.ReadOnly = field.ReadOnly
	return schema
}

func valueSchema(field model.Field) *openapi3.Schema {
	var schema *openapi3.Schema
	switch field.Type {
	case model.FieldTypeBoolean:
		schema = openapi3.NewBoolSchema()
	case model.FieldTypeInteger:
		schema = openapi3.NewIntegerSchema()
	case model.FieldTypeNumber:
		schema = openapi3.NewFloat64Schema()
		if bounds, ok := coordinateBounds[field.Name]; ok {
			schema.WithMin(bounds[0]).WithMax(bounds[1])
		}
	case model.FieldTypeObject:
		schema = openapi3.NewObjectSchema()
		addProperties(schema, field.Nested)
		return schema
	case model.FieldTypeArray:
		item := openapi3.NewStringSchema()
		if len(field.Enum) > 0 {
			item.WithEnum(field.Enum...)
		} else if field.Items != nil {
			item = valueSchema(*field.Items)
		}
		schema = openapi3.NewArraySchema().WithItems(item)
		if field.Required {
			schema.WithMinItems(1)
		}
		return schema
	default:
		schema = openapi3.NewStringSchema()
		if len(field.Enum) > 0 {
			schema.WithEnum(field.Enum...)
		}
	}
	applyRules(schema, field)
	return schema
}

func applyRules(schema *openapi3.Schema, field model.Field) {
	numeric := field.Type == model.FieldTypeInteger || field.Type == model.FieldTypeNumber
	for _, rule := range field.Validations {
		switch rule.Kind {
		case model.ValidationRuleMin:
			if v, err := strconv.ParseFloat(rule.Params["value"], 64); err == nil && numeric {
				schema.WithMin(v)
			}
		case model.ValidationRuleMax:
			if v, err := strconv.ParseFloat(rule.Params["value"], 64); err == nil && numeric {
				schema.WithMax(v)
			}
		case model.ValidationRuleMinLength:
			if v, err := strconv.ParseInt(rule.Params["value"], 10, 64); err == nil && !numeric {
				schema.WithMinLength(v)
			}
		case model.ValidationRuleMaxLength:
			if v, err := strconv.ParseInt(rule.Params["value"], 10, 64); err == nil && !numeric {
				schema.WithMaxLength(v)
			}
		case model.ValidationRulePattern:
			// Numeric patterns describe the text input; the schema checks the type.
			if p := rule.Params["pattern"]; p != "" && !numeric {
				schema.WithPattern(p)
			}
		}
	}
}

func isDecorative(field model.Field) bool {
	return field.UIHints[model.UIHintDecorative] == "true"
}
