package model

import (
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-ddmform/pkg/ddm"
)

// Metadata keys recorded on every field so renderers and validators can
// recover the DDM origin of a field.
const (
	MetadataDataType   = "ddm.dataType"
	MetadataEditorType = "ddm.editorType"
	MetadataRepeatable = "ddm.repeatable"
	MetadataReadOnly   = "ddm.readOnly"
	MetadataWidth      = "ddm.width"
	MetadataIndexType  = "ddm.indexType"
	MetadataMultiple   = "ddm.multiple"
	MetadataLocale     = "ddm.locale"
	MetadataLocales    = "ddm.availableLocales"
	metadataDefault    = "ddm.defaultLocale"
	metadataAttrPrefix = "ddm.attr."
)

// UI hint keys understood by the bundled renderers.
const (
	UIHintWidget      = "widget"
	UIHintHideLabel   = "hideLabel"
	UIHintHelpText    = "helpText"
	UIHintDecorative  = "decorative"
	UIHintPlaceholder = "placeholder"
	uiHintRepeatable  = "repeatable"
)

const (
	integerPattern = `^-?\d+$`
	numberPattern  = `^-?\d*(\.\d+)?$`
)

// Builder converts DDM structures into form models.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	if options.DateLayout != "" {
		opts.DateLayout = options.DateLayout
	}
	return &Builder{opts: opts}
}

// Build transforms a parsed DDM structure into a FormModel. Field order
// follows the definition.
func (b *Builder) Build(structure ddm.Structure) (FormModel, error) {
	if err := validateStructure(structure); err != nil {
		return FormModel{}, err
	}

	form := FormModel{
		Locale:   structure.Locale,
		Metadata: make(map[string]string),
	}
	if structure.Locale != "" {
		form.Metadata[MetadataLocale] = structure.Locale
	}
	if structure.DefaultLocale != "" {
		form.Metadata[metadataDefault] = structure.DefaultLocale
	}
	if len(structure.AvailableLocales) > 0 {
		form.Metadata[MetadataLocales] = strings.Join(structure.AvailableLocales, ",")
	}
	if len(form.Metadata) == 0 {
		form.Metadata = nil
	}

	form.Fields = b.fields(structure.Fields)
	return form, nil
}

func (b *Builder) fields(source []ddm.Field) []Field {
	if len(source) == 0 {
		return nil
	}
	out := make([]Field, 0, len(source))
	for _, field := range source {
		out = append(out, b.field(field))
	}
	return out
}

func (b *Builder) field(source ddm.Field) Field {
	editor := source.Editor()
	field := Field{
		Name:        source.Name,
		Type:        mapType(source.DataType),
		Format:      mapFormat(source.DataType),
		Required:    source.Required,
		ReadOnly:    source.ReadOnly,
		Label:       source.Label,
		Placeholder: source.Placeholder,
		Description: source.Tip,
	}
	if field.Label == "" {
		field.Label = b.opts.Labeler(source.Name)
	}

	switch {
	case editor.IsDecorative():
		field.Type = FieldTypeString
		field.Format = ""
		field.Required = false
		field.ensureUIHints()[UIHintDecorative] = "true"
	case editor.HasOptions():
		b.applyOptions(&field, source)
	case source.DataType == ddm.DataTypeGeolocation:
		field.Type = FieldTypeObject
		field.Nested = []Field{
			{Name: "latitude", Type: FieldTypeNumber, Label: b.opts.Labeler("latitude"), Required: source.Required},
			{Name: "longitude", Type: FieldTypeNumber, Label: b.opts.Labeler("longitude"), Required: source.Required},
		}
	}

	if !editor.IsDecorative() {
		field.Default = b.defaultValue(source)
	}
	applyValidations(&field, source)
	applyMetadata(&field, source)
	applyUIHints(&field, source, editor)

	if nested := b.fields(source.Fields); len(nested) > 0 {
		field.Nested = append(field.Nested, nested...)
	}

	field.normalizeMetadata()
	field.normalizeUIHints()
	return field
}

func (b *Builder) applyOptions(field *Field, source ddm.Field) {
	enum := make([]any, 0, len(source.Options))
	labels := make([]string, 0, len(source.Options))
	for _, opt := range source.Options {
		enum = append(enum, opt.Value)
		labels = append(labels, opt.Label)
	}
	if len(enum) > 0 {
		field.Enum = enum
		field.EnumLabels = labels
	}

	if !source.Multiple {
		field.Type = FieldTypeString
		return
	}
	field.Type = FieldTypeArray
	field.Items = &Field{
		Name:       source.Name + "Item",
		Type:       FieldTypeString,
		Enum:       field.Enum,
		EnumLabels: field.EnumLabels,
	}
}

func (b *Builder) defaultValue(source ddm.Field) any {
	switch value := source.TypedPredefinedValue().(type) {
	case nil:
		return nil
	case time.Time:
		return value.Format(b.opts.DateLayout)
	case []string:
		if len(value) == 0 {
			return nil
		}
		if !source.Multiple {
			return value[0]
		}
		out := make([]any, len(value))
		for i, v := range value {
			out[i] = v
		}
		return out
	default:
		return value
	}
}

func mapType(dataType ddm.DataType) FieldType {
	switch dataType {
	case ddm.DataTypeBoolean:
		return FieldTypeBoolean
	case ddm.DataTypeInteger:
		return FieldTypeInteger
	case ddm.DataTypeNumber, ddm.DataTypeDouble:
		return FieldTypeNumber
	case ddm.DataTypeGeolocation:
		return FieldTypeObject
	default:
		return FieldTypeString
	}
}

func mapFormat(dataType ddm.DataType) string {
	switch dataType {
	case ddm.DataTypeDate:
		return "date"
	case ddm.DataTypeHTML:
		return "html"
	case ddm.DataTypeDocumentLibrary, ddm.DataTypeImage, ddm.DataTypeLinkToPage:
		return string(dataType)
	default:
		return ""
	}
}

func applyValidations(field *Field, source ddm.Field) {
	if field.Type == FieldTypeArray || field.Type == FieldTypeObject {
		return
	}
	switch source.DataType {
	case ddm.DataTypeInteger:
		field.Validations = append(field.Validations, ValidationRule{
			Kind:   ValidationRulePattern,
			Params: map[string]string{"pattern": integerPattern},
		})
	case ddm.DataTypeNumber, ddm.DataTypeDouble:
		field.Validations = append(field.Validations, ValidationRule{
			Kind:   ValidationRulePattern,
			Params: map[string]string{"pattern": numberPattern},
		})
	}
}

func applyMetadata(field *Field, source ddm.Field) {
	meta := field.ensureMetadata()
	if source.DataType != ddm.DataTypeUnsupported {
		meta[MetadataDataType] = string(source.DataType)
	}
	if source.EditorType != ddm.EditorTypeUnsupported {
		meta[MetadataEditorType] = string(source.EditorType)
	}
	if source.Repeatable {
		meta[MetadataRepeatable] = "true"
	}
	if source.ReadOnly {
		meta[MetadataReadOnly] = "true"
	}
	if source.Multiple {
		meta[MetadataMultiple] = "true"
	}
	if source.Width != "" {
		meta[MetadataWidth] = source.Width
	}
	if source.IndexType != "" {
		meta[MetadataIndexType] = source.IndexType
	}

	keys := make([]string, 0, len(source.Attributes))
	for key := range source.Attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		meta[metadataAttrPrefix+key] = source.Attributes[key]
	}
}

func applyUIHints(field *Field, source ddm.Field, editor ddm.EditorType) {
	hints := field.ensureUIHints()
	if widget := widgetFor(editor); widget != "" {
		hints[UIHintWidget] = widget
	}
	if !source.ShowLabel {
		hints[UIHintHideLabel] = "true"
	}
	if source.Tip != "" {
		hints[UIHintHelpText] = source.Tip
	}
	if source.Placeholder != "" {
		hints[UIHintPlaceholder] = source.Placeholder
	}
	if source.Repeatable {
		hints[uiHintRepeatable] = "true"
	}
}

// widgetFor drops the ddm- prefix so widget names stay renderer neutral
// (ddm-date becomes date).
func widgetFor(editor ddm.EditorType) string {
	return strings.TrimPrefix(string(editor), "ddm-")
}

func (f *Field) ensureMetadata() map[string]string {
	if f.Metadata == nil {
		f.Metadata = make(map[string]string)
	}
	return f.Metadata
}

func (f *Field) ensureUIHints() map[string]string {
	if f.UIHints == nil {
		f.UIHints = make(map[string]string)
	}
	return f.UIHints
}

func (f *Field) normalizeMetadata() {
	if len(f.Metadata) == 0 {
		f.Metadata = nil
	}
}

func (f *Field) normalizeUIHints() {
	if len(f.UIHints) == 0 {
		f.UIHints = nil
	}
}
