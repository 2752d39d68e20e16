package template

import (
	"io"
)

// TemplateRenderer is the engine contract renderers use. Render accepts
// either a template name or inline template content; the out writers receive
// the rendered text in addition to the returned string.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
