package render

import (
	"errors"
	"strings"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when a key needs
// translating but no Translator was configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves message keys for a locale. *i18n.Catalog satisfies it.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate calls fn.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler returns the text shown when key cannot be
// translated. Params carry the original args; localization passes a single
// map with the "default" fallback.
type MissingTranslationHandler func(locale, key string, params []any, err error) string

// missingTranslationDefault prefers the "default" param and falls back to
// the key itself.
func missingTranslationDefault(_ string, key string, params []any, _ error) string {
	for _, param := range params {
		values, ok := param.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return key
}

// Text translates key, returning fallback (or key) when translation fails.
// Renderers use it for their own chrome strings.
func Text(opts RenderOptions, key, fallback string, args ...any) string {
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	if opts.Translator == nil {
		return onMissing(opts.Locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
	}
	msg, err := opts.Translator.Translate(opts.Locale, key, args...)
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(opts.Locale, key, []any{map[string]any{"default": fallback}}, err)
	}
	return msg
}
