package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the form model pipeline.
type RenderOptions struct {
	// Locale selects translations for renderer chrome and *Key hints.
	Locale string
	// Translator resolves message keys. Nil leaves fallbacks in place.
	Translator Translator
	// OnMissing decides the text used when a key cannot be translated.
	OnMissing MissingTranslationHandler
	// Theme carries the resolved theme partials, tokens, and asset URLs.
	Theme *theme.RendererConfig
	// FormID identifies the rendered form instance. Renderers generate one
	// when empty.
	FormID string
	// Action and Method populate the HTML form element. Method defaults to POST.
	Action string
	Method string
	// Values pre-populates rendered controls using dotted field paths (e.g.
	// "address.street"). Missing paths fall back to the field default.
	Values map[string]any
	// Errors surfaces server-side validation feedback keyed by field path.
	// Unknown paths are shown as form-level errors.
	Errors map[string][]string
	// Hidden adds hidden inputs such as CSRF tokens.
	Hidden []HiddenField
	// Subset limits rendering to matching fields.
	Subset FieldSubset
}
