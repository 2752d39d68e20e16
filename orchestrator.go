package ddmform

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ddmform/pkg/orchestrator"
	"github.com/goliatone/go-ddmform/pkg/render"
	"github.com/goliatone/go-ddmform/pkg/schema"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.RenderOptions

// FieldSubset aliases render.FieldSubset for callers configuring partial
// rendering by group/tag/section.
type FieldSubset = render.FieldSubset

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// ErrNoFields is returned by the generate helpers when a definition yields no
// fields.
var ErrNoFields = orchestrator.ErrNoFields

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads the definition, builds a form model localized to locale,
// and renders it using the named renderer ("" selects the vanilla renderer).
func GenerateHTML(ctx context.Context, source schema.Source, locale, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Locale:   locale,
		Renderer: rendererName,
	})
}

// GenerateHTMLFromXSD renders an inline definition, bypassing the loader.
func GenerateHTMLFromXSD(ctx context.Context, xsd, locale, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		XSD:      xsd,
		Locale:   locale,
		Renderer: rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeProvider constructs a go-theme selector from a ThemeProvider and
// default theme/variant.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) orchestrator.Option {
	return orchestrator.WithThemeProvider(provider, defaultTheme, defaultVariant)
}

// WithThemes registers manifests alongside the default theme and picks the
// theme and variant used by default.
func WithThemes(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) orchestrator.Option {
	return orchestrator.WithThemes(defaultTheme, defaultVariant, manifests...)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}

// WithTranslator forwards the translator used for *Key hints and renderer
// chrome.
func WithTranslator(translator render.Translator) orchestrator.Option {
	return orchestrator.WithTranslator(translator)
}
