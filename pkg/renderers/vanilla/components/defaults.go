package components

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-ddmform/pkg/model"
)

const (
	templatePrefix = "templates/components/"
)

// DefaultPartials maps theme partial keys to the embedded templates they
// replace. Theme manifests override entries by key.
func DefaultPartials() map[string]string {
	return map[string]string{
		"forms.form":      "templates/form.tmpl",
		"forms.input":     templatePrefix + "input.tmpl",
		"forms.textarea":  templatePrefix + "textarea.tmpl",
		"forms.select":    templatePrefix + "select.tmpl",
		"forms.radio":     templatePrefix + "radio.tmpl",
		"forms.checkbox":  templatePrefix + "checkbox.tmpl",
		"forms.html":      templatePrefix + "html.tmpl",
		"forms.paragraph": templatePrefix + "paragraph.tmpl",
		"forms.separator": templatePrefix + "separator.tmpl",
	}
}

// NewDefaultRegistry constructs a registry with one component per DDM editor
// type.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameText, Descriptor{
		Renderer: inputRenderer("text", ""),
	})
	registry.MustRegister(NameDate, Descriptor{
		Renderer: inputRenderer("date", ""),
	})
	registry.MustRegister(NameInteger, Descriptor{
		Renderer: inputRenderer("number", "1"),
	})
	registry.MustRegister(NameNumber, Descriptor{
		Renderer: inputRenderer("number", "any"),
	})
	registry.MustRegister(NameDecimal, Descriptor{
		Renderer: inputRenderer("number", "any"),
	})
	registry.MustRegister(NameDocumentLibrary, Descriptor{
		Renderer: inputRenderer("text", ""),
	})
	registry.MustRegister(NameImage, Descriptor{
		Renderer: inputRenderer("url", ""),
	})
	registry.MustRegister(NameLinkToPage, Descriptor{
		Renderer: inputRenderer("text", ""),
	})
	registry.MustRegister(NameTextarea, Descriptor{
		Renderer: templateComponentRenderer("forms.textarea", templatePrefix+"textarea.tmpl", nil),
	})
	registry.MustRegister(NameSelect, Descriptor{
		Renderer: templateComponentRenderer("forms.select", templatePrefix+"select.tmpl", nil),
	})
	registry.MustRegister(NameRadio, Descriptor{
		Renderer: templateComponentRenderer("forms.radio", templatePrefix+"radio.tmpl", nil),
	})
	registry.MustRegister(NameCheckbox, Descriptor{
		Renderer: templateComponentRenderer("forms.checkbox", templatePrefix+"checkbox.tmpl", nil),
	})
	registry.MustRegister(NameTextHTML, Descriptor{
		Renderer: templateComponentRenderer("forms.html", templatePrefix+"html.tmpl", nil),
	})
	registry.MustRegister(NameParagraph, Descriptor{
		Renderer: templateComponentRenderer("forms.paragraph", templatePrefix+"paragraph.tmpl", nil),
	})
	registry.MustRegister(NameSeparator, Descriptor{
		Renderer: templateComponentRenderer("forms.separator", templatePrefix+"separator.tmpl", nil),
	})
	registry.MustRegister(NameGeolocation, Descriptor{
		Renderer: geolocationRenderer,
		Scripts:  []Script{{Src: GeolocationScript, Defer: true}},
	})
	registry.MustRegister(NameGroup, Descriptor{
		Renderer: groupRenderer,
	})

	return registry
}

func inputRenderer(inputType, step string) Renderer {
	return templateComponentRenderer("forms.input", templatePrefix+"input.tmpl", map[string]any{
		"type": inputType,
		"step": step,
	})
}

func templateComponentRenderer(partialKey, templateName string, config map[string]any) Renderer {
	return func(buf *bytes.Buffer, field model.Field, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		resolvedTemplate := templateName
		if data.ThemePartials != nil {
			if candidate := strings.TrimSpace(data.ThemePartials[partialKey]); candidate != "" {
				resolvedTemplate = candidate
			}
		}

		payload := map[string]any{
			"field":   field,
			"control": data.Control,
			"config":  config,
		}
		rendered, err := data.Template.RenderTemplate(resolvedTemplate, payload)
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", resolvedTemplate, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}

// geolocationRenderer groups the latitude/longitude inputs and offers a
// button the bundled script wires to the browser location.
func geolocationRenderer(buf *bytes.Buffer, field model.Field, data ComponentData) error {
	if data.RenderChild == nil {
		return fmt.Errorf("components: geolocation %q requires a child renderer", field.Name)
	}

	var builder strings.Builder
	writeFieldsetOpen(&builder, field, data.Control, "ddmform-geolocation")
	builder.WriteString(` data-ddm-geolocation>`)
	writeLegend(&builder, field, data.Control)

	builder.WriteString(`<div class="ddmform-geolocation-coords">`)
	for _, nested := range field.Nested {
		child, err := data.RenderChild(nested)
		if err != nil {
			return err
		}
		builder.WriteString(child)
	}
	builder.WriteString(`</div>`)

	if locate := strings.TrimSpace(data.Control.Labels[LabelLocate]); locate != "" && !field.ReadOnly {
		builder.WriteString(`<button type="button" class="ddmform-geolocation-locate" data-ddm-locate>`)
		builder.WriteString(html.EscapeString(locate))
		builder.WriteString(`</button>`)
	}
	builder.WriteString(`</fieldset>`)
	buf.WriteString(builder.String())
	return nil
}

func groupRenderer(buf *bytes.Buffer, field model.Field, data ComponentData) error {
	var builder strings.Builder
	writeFieldsetOpen(&builder, field, data.Control, "ddmform-group")
	builder.WriteString(`>`)
	writeLegend(&builder, field, data.Control)

	if data.RenderChild != nil {
		builder.WriteString(`<div class="ddmform-group-fields">`)
		for _, nested := range field.Nested {
			child, err := data.RenderChild(nested)
			if err != nil {
				return err
			}
			builder.WriteString(child)
		}
		builder.WriteString(`</div>`)
	}
	builder.WriteString(`</fieldset>`)
	buf.WriteString(builder.String())
	return nil
}

func writeFieldsetOpen(builder *strings.Builder, field model.Field, control Control, class string) {
	builder.WriteString(`<fieldset`)
	writeAttr(builder, "id", control.ID)
	writeAttr(builder, "class", class)
	if strings.TrimSpace(field.Label) != "" && field.UIHints[model.UIHintHideLabel] != "true" {
		writeAttr(builder, "aria-labelledby", control.ID+"-label")
	}
	if control.DescribedBy != "" {
		writeAttr(builder, "aria-describedby", control.DescribedBy)
	}
	if field.ReadOnly {
		builder.WriteString(` disabled`)
	}
}

func writeLegend(builder *strings.Builder, field model.Field, control Control) {
	label := strings.TrimSpace(field.Label)
	if label == "" || field.UIHints[model.UIHintHideLabel] == "true" {
		return
	}
	builder.WriteString(`<legend`)
	writeAttr(builder, "id", control.ID+"-label")
	builder.WriteString(` class="ddmform-label">`)
	builder.WriteString(html.EscapeString(label))
	if field.Required {
		builder.WriteString(` <span class="ddmform-required" aria-hidden="true">*</span>`)
	}
	builder.WriteString(`</legend>`)
}
