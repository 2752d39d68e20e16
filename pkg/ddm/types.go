package ddm

import "strings"

// DataType is the storage type declared by a dynamic element's dataType
// attribute.
type DataType string

const (
	DataTypeString          DataType = "string"
	DataTypeBoolean         DataType = "boolean"
	DataTypeDate            DataType = "date"
	DataTypeInteger         DataType = "integer"
	DataTypeNumber          DataType = "number"
	DataTypeDouble          DataType = "double"
	DataTypeDocumentLibrary DataType = "document-library"
	DataTypeHTML            DataType = "html"
	DataTypeGeolocation     DataType = "geolocation"
	DataTypeImage           DataType = "image"
	DataTypeLinkToPage      DataType = "link-to-page"
	DataTypeUnsupported     DataType = ""
)

// ParseDataType normalises a raw dataType attribute. Unknown values map to
// DataTypeUnsupported.
func ParseDataType(raw string) DataType {
	switch DataType(strings.ToLower(strings.TrimSpace(raw))) {
	case DataTypeString:
		return DataTypeString
	case DataTypeBoolean:
		return DataTypeBoolean
	case DataTypeDate:
		return DataTypeDate
	case DataTypeInteger, "int", "long":
		return DataTypeInteger
	case DataTypeNumber:
		return DataTypeNumber
	case DataTypeDouble, "float", "decimal":
		return DataTypeDouble
	case DataTypeDocumentLibrary:
		return DataTypeDocumentLibrary
	case DataTypeHTML:
		return DataTypeHTML
	case DataTypeGeolocation:
		return DataTypeGeolocation
	case DataTypeImage:
		return DataTypeImage
	case DataTypeLinkToPage:
		return DataTypeLinkToPage
	default:
		return DataTypeUnsupported
	}
}

// IsNumeric reports whether values of this type are numbers.
func (t DataType) IsNumeric() bool {
	return t == DataTypeInteger || t == DataTypeNumber || t == DataTypeDouble
}

// EditorType is the widget a dynamic element asks for through its type
// attribute.
type EditorType string

const (
	EditorTypeCheckbox    EditorType = "checkbox"
	EditorTypeText        EditorType = "text"
	EditorTypeTextArea    EditorType = "textarea"
	EditorTypeSelect      EditorType = "select"
	EditorTypeRadio       EditorType = "radio"
	EditorTypeDate        EditorType = "ddm-date"
	EditorTypeInteger     EditorType = "ddm-integer"
	EditorTypeNumber      EditorType = "ddm-number"
	EditorTypeDecimal     EditorType = "ddm-decimal"
	EditorTypeDocument    EditorType = "ddm-documentlibrary"
	EditorTypeGeolocation EditorType = "ddm-geolocation"
	EditorTypeTextHTML    EditorType = "ddm-text-html"
	EditorTypeImage       EditorType = "ddm-image"
	EditorTypeLinkToPage  EditorType = "ddm-link-to-page"
	EditorTypeSeparator   EditorType = "ddm-separator"
	EditorTypeParagraph   EditorType = "ddm-paragraph"
	EditorTypeUnsupported EditorType = ""
)

// OptionElementType marks a nested dynamic element that contributes an option
// to its parent instead of a field.
const OptionElementType = "option"

const (
	editorTypeDDMPrefix      = "ddm-"
	editorTypeDDMShortPrefix = "ddm"
)

var knownEditors = map[EditorType]struct{}{
	EditorTypeCheckbox:    {},
	EditorTypeText:        {},
	EditorTypeTextArea:    {},
	EditorTypeSelect:      {},
	EditorTypeRadio:       {},
	EditorTypeDate:        {},
	EditorTypeInteger:     {},
	EditorTypeNumber:      {},
	EditorTypeDecimal:     {},
	EditorTypeDocument:    {},
	EditorTypeGeolocation: {},
	EditorTypeTextHTML:    {},
	EditorTypeImage:       {},
	EditorTypeLinkToPage:  {},
	EditorTypeSeparator:   {},
	EditorTypeParagraph:   {},
}

// ParseEditorType normalises a raw type attribute. Older structures omit the
// dash ("ddmdate"), both spellings are accepted.
func ParseEditorType(raw string) EditorType {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return EditorTypeUnsupported
	}
	if strings.HasPrefix(value, editorTypeDDMShortPrefix) && !strings.HasPrefix(value, editorTypeDDMPrefix) {
		value = editorTypeDDMPrefix + strings.TrimPrefix(value, editorTypeDDMShortPrefix)
	}
	if _, ok := knownEditors[EditorType(value)]; ok {
		return EditorType(value)
	}
	return EditorTypeUnsupported
}

// HasOptions reports whether the editor renders a fixed option list.
func (t EditorType) HasOptions() bool {
	return t == EditorTypeSelect || t == EditorTypeRadio
}

// IsDecorative reports whether the editor carries no value.
func (t EditorType) IsDecorative() bool {
	return t == EditorTypeSeparator || t == EditorTypeParagraph
}

// Option is a selectable entry of a select or radio field.
type Option struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// Field is one dynamic element of a structure, localized for the locale the
// parser resolved.
type Field struct {
	Name            string            `json:"name"`
	DataType        DataType          `json:"dataType,omitempty"`
	EditorType      EditorType        `json:"editorType,omitempty"`
	Label           string            `json:"label,omitempty"`
	Tip             string            `json:"tip,omitempty"`
	Placeholder     string            `json:"placeholder,omitempty"`
	PredefinedValue string            `json:"predefinedValue,omitempty"`
	Required        bool              `json:"required"`
	ReadOnly        bool              `json:"readOnly,omitempty"`
	Repeatable      bool              `json:"repeatable,omitempty"`
	ShowLabel       bool              `json:"showLabel"`
	Multiple        bool              `json:"multiple,omitempty"`
	IndexType       string            `json:"indexType,omitempty"`
	Width           string            `json:"width,omitempty"`
	Options         []Option          `json:"options,omitempty"`
	Fields          []Field           `json:"fields,omitempty"`
	Attributes      map[string]string `json:"attributes,omitempty"`
}

// Editor resolves the widget for the field. When the type attribute is
// missing or unknown the data type decides.
func (f Field) Editor() EditorType {
	if f.EditorType != EditorTypeUnsupported {
		return f.EditorType
	}
	switch f.DataType {
	case DataTypeBoolean:
		return EditorTypeCheckbox
	case DataTypeDate:
		return EditorTypeDate
	case DataTypeInteger:
		return EditorTypeInteger
	case DataTypeNumber:
		return EditorTypeNumber
	case DataTypeDouble:
		return EditorTypeDecimal
	case DataTypeDocumentLibrary:
		return EditorTypeDocument
	case DataTypeGeolocation:
		return EditorTypeGeolocation
	case DataTypeHTML:
		return EditorTypeTextHTML
	case DataTypeImage:
		return EditorTypeImage
	case DataTypeLinkToPage:
		return EditorTypeLinkToPage
	case DataTypeString:
		if len(f.Options) > 0 {
			return EditorTypeSelect
		}
		return EditorTypeText
	default:
		return EditorTypeUnsupported
	}
}

// Option returns the option whose value, or failing that label, equals key.
func (f Field) Option(key string) (Option, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Option{}, false
	}
	for _, opt := range f.Options {
		if opt.Value == key {
			return opt, true
		}
	}
	for _, opt := range f.Options {
		if opt.Label == key {
			return opt, true
		}
	}
	return Option{}, false
}

// Structure is the parsed form definition.
type Structure struct {
	AvailableLocales []string `json:"availableLocales,omitempty"`
	DefaultLocale    string   `json:"defaultLocale,omitempty"`
	// Locale is the locale whose metadata was applied to the fields.
	Locale string  `json:"locale,omitempty"`
	Fields []Field `json:"fields"`
}

// Field looks a field up by name, depth first.
func (s Structure) Field(name string) (Field, bool) {
	var (
		found Field
		ok    bool
	)
	s.Walk(func(path string, field Field) bool {
		if field.Name == name {
			found, ok = field, true
			return false
		}
		return true
	})
	return found, ok
}

// Walk visits every field depth first with its dotted path. Returning false
// stops the walk.
func (s Structure) Walk(fn func(path string, field Field) bool) {
	if fn == nil {
		return
	}
	walkFields(s.Fields, "", fn)
}

func walkFields(fields []Field, prefix string, fn func(string, Field) bool) bool {
	for _, field := range fields {
		path := field.Name
		if prefix != "" {
			path = prefix + "." + field.Name
		}
		if !fn(path, field) {
			return false
		}
		if !walkFields(field.Fields, path, fn) {
			return false
		}
	}
	return true
}
