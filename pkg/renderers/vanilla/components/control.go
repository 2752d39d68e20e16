package components

import (
	"html"
	"strings"
)

// Control is the render state of a single field: identifiers, the current
// value, errors, and hints resolved by the renderer.
type Control struct {
	ID          string
	Name        string
	Value       string
	Options     []OptionView
	Multiple    bool
	Errors      []string
	DescribedBy string
	Placeholder string
	InputMode   string
	Pattern     string
	Icon        string
	// HTML holds sanitized markup for html and paragraph widgets.
	HTML   string
	Labels map[string]string
}

// OptionView is a selectable option with its checked state.
type OptionView struct {
	ID       string
	Value    string
	Label    string
	Selected bool
}

// Invalid reports whether the control carries validation errors.
func (c Control) Invalid() bool {
	return len(c.Errors) > 0
}

// ControlID derives the element id for a dotted field path.
func ControlID(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	return "fg-" + strings.ReplaceAll(trimmed, ".", "-")
}

// LabelID derives the id of the label/legend describing a control.
func LabelID(path string) string {
	id := ControlID(path)
	if id == "" {
		return ""
	}
	return id + "-label"
}

func writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}
