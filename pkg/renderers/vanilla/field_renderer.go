package vanilla

import (
	"bytes"
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/goliatone/go-ddmform/pkg/model"
	"github.com/goliatone/go-ddmform/pkg/render"
	"github.com/goliatone/go-ddmform/pkg/render/template"
	"github.com/goliatone/go-ddmform/pkg/renderers/vanilla/components"
	"github.com/goliatone/go-ddmform/pkg/theme"
)

// renderState is the per-request data shared by every field of a form.
type renderState struct {
	options render.RenderOptions
	errors  map[string][]string
	styler  *theme.Styler
	view    theme.View
	labels  map[string]string
}

type componentRenderer struct {
	templates template.TemplateRenderer
	registry  *components.Registry
	overrides map[string]string
	partials  map[string]string
	state     renderState

	usedComponents map[string]struct{}
}

func newComponentRenderer(templates template.TemplateRenderer, registry *components.Registry, overrides, partials map[string]string, state renderState) *componentRenderer {
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}
	if state.styler == nil {
		state.styler = theme.NewStyler()
	}
	return &componentRenderer{
		templates:      templates,
		registry:       registry,
		overrides:      cloneStringMap(overrides),
		partials:       cloneStringMap(partials),
		state:          state,
		usedComponents: make(map[string]struct{}),
	}
}

func (r *componentRenderer) render(field model.Field, path string) (string, error) {
	field = sanitizeField(field)

	componentName := r.overrideFor(path, field.Name)
	if componentName == "" {
		componentName = resolveComponentName(field, r.registry)
	}

	descriptor, ok := r.registry.Descriptor(componentName)
	if !ok {
		return "", fmt.Errorf("component %q not registered for field %q", componentName, path)
	}

	control := r.control(field, path, componentName)
	data := components.ComponentData{
		Template:      r.templates,
		ThemePartials: r.partials,
		RenderChild:   r.childRenderer(path, componentName),
		Control:       control,
	}

	var buf bytes.Buffer
	if err := descriptor.Renderer(&buf, field, data); err != nil {
		return "", fmt.Errorf("render component %q for field %q: %w", componentName, path, err)
	}
	r.usedComponents[componentName] = struct{}{}

	markup := buf.String()
	if !componentHandlesChrome(componentName) && len(field.Nested) > 0 {
		nested, err := r.renderNested(field.Nested, path)
		if err != nil {
			return "", err
		}
		markup += nested
	}

	return r.buildFieldMarkup(field, componentName, control, markup), nil
}

func (r *componentRenderer) renderNested(fields []model.Field, parent string) (string, error) {
	var builder strings.Builder
	builder.WriteString(`<div class="ddmform-nested">` + "\n")
	for _, nested := range fields {
		child, err := r.render(nested, joinPath(parent, nested.Name))
		if err != nil {
			return "", err
		}
		builder.WriteString(child)
	}
	builder.WriteString("</div>")
	return builder.String(), nil
}

func (r *componentRenderer) childRenderer(parentPath, componentName string) func(model.Field) (string, error) {
	return func(field model.Field) (string, error) {
		if componentName == components.NameGeolocation {
			field.Label = render.Text(r.state.options, "form.geolocation."+field.Name, field.Label)
		}
		return r.render(field, joinPath(parentPath, field.Name))
	}
}

func (r *componentRenderer) control(field model.Field, path, componentName string) components.Control {
	value := r.value(field, path)

	control := components.Control{
		ID:          components.ControlID(path),
		Name:        path,
		Value:       formatValue(value),
		Options:     optionViews(field, path, value),
		Multiple:    field.Type == model.FieldTypeArray,
		Errors:      r.state.errors[path],
		Placeholder: field.Placeholder,
		Pattern:     patternFor(field),
		Labels:      r.state.labels,
	}
	if control.Placeholder == "" {
		control.Placeholder = plainText(field.UIHints[model.UIHintPlaceholder])
	}

	switch componentName {
	case components.NameParagraph:
		text := field.Metadata[metadataText]
		if strings.TrimSpace(text) == "" {
			text = field.Description
		}
		control.HTML = richText(text)
	case components.NameTextHTML:
		control.HTML = richText(control.Value)
	case components.NameInteger:
		control.InputMode = "numeric"
	case components.NameNumber, components.NameDecimal:
		control.InputMode = "decimal"
	}

	r.applyAuthMethod(field, &control)
	control.DescribedBy = describedBy(field, componentName, control)
	return control
}

// applyAuthMethod styles user name inputs tagged with an authMethod
// attribute through the theme styler.
func (r *componentRenderer) applyAuthMethod(field model.Field, control *components.Control) {
	raw := strings.TrimSpace(field.Metadata[metadataAuthMethod])
	if raw == "" {
		return
	}
	method, err := theme.ParseAuthMethod(raw)
	if err != nil {
		return
	}

	textField := theme.TextField{
		Name:        control.Name,
		Value:       control.Value,
		Placeholder: control.Placeholder,
	}
	var icon theme.ImageView
	r.state.styler.SetAuthMethodStyles(r.state.view, method, &textField, &icon)

	control.Placeholder = textField.Placeholder
	control.InputMode = textField.KeyboardType.InputMode()
	if icon.Image != nil {
		control.Icon = icon.Image.URL
	}
}

func (r *componentRenderer) value(field model.Field, path string) any {
	if r.state.options.Values != nil {
		if value, ok := r.state.options.Values[path]; ok {
			return value
		}
	}
	return field.Default
}

func (r *componentRenderer) assets() (stylesheets []string, scripts []components.Script) {
	if r.registry == nil || len(r.usedComponents) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(r.usedComponents))
	for name := range r.usedComponents {
		names = append(names, name)
	}
	slices.Sort(names)
	return r.registry.Assets(names)
}

func (r *componentRenderer) overrideFor(path, name string) string {
	if len(r.overrides) == 0 {
		return ""
	}
	if value := r.overrides[path]; value != "" {
		return value
	}
	return r.overrides[name]
}

func (r *componentRenderer) buildFieldMarkup(field model.Field, componentName string, control components.Control, markup string) string {
	var builder strings.Builder
	builder.Grow(len(markup) + 256)

	builder.WriteString(`<div class="ddmform-field`)
	if control.Invalid() {
		builder.WriteString(` ddmform-field-invalid`)
	}
	builder.WriteString(`"`)
	writeAttr(&builder, "data-widget", componentName)
	writeAttr(&builder, "data-path", control.Name)
	writeAttr(&builder, "data-ddm-width", field.Metadata[model.MetadataWidth])
	if field.UIHints[uiHintRepeatable] == "true" {
		builder.WriteString(` data-ddm-repeatable`)
	}
	builder.WriteString(">\n")

	if !componentHandlesChrome(componentName) && shouldRenderLabel(field) {
		tag := "span"
		if labelSupportsFor(componentName) {
			tag = "label"
		}
		builder.WriteString(`    <` + tag)
		writeAttr(&builder, "id", components.LabelID(control.Name))
		if tag == "label" {
			writeAttr(&builder, "for", control.ID)
		}
		builder.WriteString(` class="ddmform-label">`)
		builder.WriteString(html.EscapeString(field.Label))
		if field.Required {
			builder.WriteString(` <span class="ddmform-required" aria-hidden="true">*</span>`)
		}
		builder.WriteString(`</` + tag + ">\n")
	}

	for _, line := range strings.Split(markup, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		builder.WriteString("    ")
		builder.WriteString(line)
		builder.WriteByte('\n')
	}

	desc, help := chromeCopy(field, componentName)
	if desc != "" {
		builder.WriteString(`    <small`)
		writeAttr(&builder, "id", control.ID+"-description")
		builder.WriteString(` class="ddmform-description">`)
		builder.WriteString(html.EscapeString(desc))
		builder.WriteString("</small>\n")
	}
	if help != "" {
		builder.WriteString(`    <small`)
		writeAttr(&builder, "id", control.ID+"-help")
		builder.WriteString(` class="ddmform-help">`)
		builder.WriteString(html.EscapeString(help))
		builder.WriteString("</small>\n")
	}
	if len(control.Errors) > 0 {
		builder.WriteString(`    <ul`)
		writeAttr(&builder, "id", control.ID+"-error")
		builder.WriteString(` class="ddmform-field-errors" role="alert">`)
		for _, message := range control.Errors {
			builder.WriteString(`<li>`)
			builder.WriteString(html.EscapeString(message))
			builder.WriteString(`</li>`)
		}
		builder.WriteString("</ul>\n")
	}
	if field.UIHints[uiHintRepeatable] == "true" && !field.ReadOnly {
		builder.WriteString(`    <button type="button" class="ddmform-repeat"`)
		writeAttr(&builder, "data-ddm-repeat", control.Name)
		builder.WriteString(`>`)
		builder.WriteString(html.EscapeString(r.state.labels[labelRepeat]))
		builder.WriteString("</button>\n")
	}

	builder.WriteString("</div>\n")
	return builder.String()
}

// chromeCopy returns the description and help text shown under a control.
// The builder copies the tip into both, so help is dropped when identical.
func chromeCopy(field model.Field, componentName string) (desc, help string) {
	if !componentHandlesDescription(componentName) {
		desc = strings.TrimSpace(field.Description)
	}
	help = strings.TrimSpace(field.UIHints[model.UIHintHelpText])
	if help == strings.TrimSpace(field.Description) {
		help = ""
	}
	return desc, help
}

func describedBy(field model.Field, componentName string, control components.Control) string {
	var ids []string
	desc, help := chromeCopy(field, componentName)
	if desc != "" {
		ids = append(ids, control.ID+"-description")
	}
	if help != "" {
		ids = append(ids, control.ID+"-help")
	}
	if len(control.Errors) > 0 {
		ids = append(ids, control.ID+"-error")
	}
	return strings.Join(ids, " ")
}

func shouldRenderLabel(field model.Field) bool {
	if strings.TrimSpace(field.Label) == "" {
		return false
	}
	return strings.TrimSpace(field.UIHints[model.UIHintHideLabel]) != "true"
}

func writeAttr(builder *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	builder.WriteByte(' ')
	builder.WriteString(name)
	builder.WriteString(`="`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteByte('"')
}
