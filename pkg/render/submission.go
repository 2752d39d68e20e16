package render

import (
	"fmt"
	"slices"
	"strings"
)

// HiddenField is a hidden input emitted next to the DDM fields.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for name, formatting value with fmt.Sprint.
func Hidden(name string, value any) HiddenField {
	return HiddenField{Name: strings.TrimSpace(name), Value: fmt.Sprint(value)}
}

// CSRFToken carries a CSRF token under the input name the backend expects.
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// PortalAuthToken carries the portal "p_auth" token that guards
// state-changing portlet requests.
func PortalAuthToken(token string) HiddenField {
	return Hidden("p_auth", token)
}

// LocaleField carries the "languageId" the submitted values are written in.
func LocaleField(locale string) HiddenField {
	return Hidden("languageId", locale)
}

// StructureKeyField carries the key of the structure the form was rendered
// from so the backend can detect submissions against a stale definition.
func StructureKeyField(key string) HiddenField {
	return Hidden("ddmStructureKey", key)
}

// HiddenFields collapses fields by name, later entries winning, and returns
// them sorted by name. Fields without a name are dropped.
func HiddenFields(fields ...HiddenField) []HiddenField {
	byName := make(map[string]string, len(fields))
	for _, field := range fields {
		if name := strings.TrimSpace(field.Name); name != "" {
			byName[name] = field.Value
		}
	}
	if len(byName) == 0 {
		return nil
	}

	out := make([]HiddenField, 0, len(byName))
	for name, value := range byName {
		out = append(out, HiddenField{Name: name, Value: value})
	}
	slices.SortFunc(out, func(a, b HiddenField) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
