package vanilla

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-ddmform/pkg/model"
	"github.com/goliatone/go-ddmform/pkg/renderers/vanilla/components"
)

const (
	metadataAuthMethod = "ddm.attr.authMethod"
	metadataText       = "ddm.attr.text"
	uiHintRepeatable   = "repeatable"
	labelRepeat        = "repeat"
)

func labelSupportsFor(componentName string) bool {
	switch strings.TrimSpace(componentName) {
	case components.NameRadio, components.NameGroup, components.NameGeolocation,
		components.NameParagraph, components.NameSeparator:
		return false
	default:
		return true
	}
}

func componentHandlesChrome(componentName string) bool {
	switch strings.TrimSpace(componentName) {
	case components.NameGroup, components.NameGeolocation:
		return true
	default:
		return false
	}
}

// componentHandlesDescription returns true when the component shows the tip
// as its own content.
func componentHandlesDescription(componentName string) bool {
	return strings.TrimSpace(componentName) == components.NameParagraph
}

// resolveComponentName tries an alias registered for the DDM editor type,
// then the widget hint, then falls back to the field type.
func resolveComponentName(field model.Field, registry *components.Registry) string {
	for _, candidate := range []string{
		field.Metadata[model.MetadataEditorType],
		field.UIHints[model.UIHintWidget],
	} {
		if candidate = strings.TrimSpace(candidate); candidate == "" {
			continue
		}
		if descriptor, ok := registry.Descriptor(candidate); ok {
			return descriptor.Name
		}
	}
	switch field.Type {
	case model.FieldTypeObject:
		return components.NameGroup
	case model.FieldTypeBoolean:
		return components.NameCheckbox
	case model.FieldTypeInteger:
		return components.NameInteger
	case model.FieldTypeNumber:
		return components.NameNumber
	case model.FieldTypeArray:
		if len(field.Enum) > 0 || (field.Items != nil && len(field.Items.Enum) > 0) {
			return components.NameSelect
		}
	}
	if field.Format == "date" {
		return components.NameDate
	}
	return components.NameText
}

// formatValue renders a submitted or default value as the string a control
// shows.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case time.Time:
		return v.Format("2006-01-02")
	case []string:
		if len(v) == 0 {
			return ""
		}
		return v[0]
	case []any:
		if len(v) == 0 {
			return ""
		}
		return formatValue(v[0])
	default:
		return fmt.Sprint(v)
	}
}

// selectedValues collects the option values a control should mark selected.
func selectedValues(value any) map[string]struct{} {
	out := make(map[string]struct{})
	switch v := value.(type) {
	case nil:
	case []string:
		for _, item := range v {
			out[item] = struct{}{}
		}
	case []any:
		for _, item := range v {
			out[formatValue(item)] = struct{}{}
		}
	default:
		if s := formatValue(v); s != "" {
			out[s] = struct{}{}
		}
	}
	return out
}

func optionViews(field model.Field, path string, value any) []components.OptionView {
	enum, labels := field.Enum, field.EnumLabels
	if len(enum) == 0 && field.Items != nil {
		enum, labels = field.Items.Enum, field.Items.EnumLabels
	}
	if len(enum) == 0 {
		return nil
	}

	selected := selectedValues(value)
	baseID := components.ControlID(path)
	out := make([]components.OptionView, 0, len(enum))
	for idx, raw := range enum {
		val := formatValue(raw)
		label := val
		if idx < len(labels) && strings.TrimSpace(labels[idx]) != "" {
			label = plainText(labels[idx])
		}
		_, isSelected := selected[val]
		out = append(out, components.OptionView{
			ID:       baseID + "-" + strconv.Itoa(idx),
			Value:    val,
			Label:    label,
			Selected: isSelected,
		})
	}
	return out
}

func patternFor(field model.Field) string {
	for _, rule := range field.Validations {
		if rule.Kind == model.ValidationRulePattern {
			return rule.Params["pattern"]
		}
	}
	return ""
}

// sanitizeField strips markup from the human readable copy of a field.
func sanitizeField(field model.Field) model.Field {
	field.Label = plainText(field.Label)
	field.Description = plainText(field.Description)
	field.Placeholder = plainText(field.Placeholder)
	if help := field.UIHints[model.UIHintHelpText]; help != "" {
		hints := cloneStringMap(field.UIHints)
		hints[model.UIHintHelpText] = plainText(help)
		field.UIHints = hints
	}
	return field
}

func cloneStringMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}

func joinPath(parent, child string) string {
	parent = strings.TrimSpace(parent)
	child = strings.TrimSpace(child)
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}
