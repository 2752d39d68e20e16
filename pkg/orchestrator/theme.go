package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ddmform/pkg/renderers/vanilla/components"
	ddmtheme "github.com/goliatone/go-ddmform/pkg/theme"
)

// WithThemeSelector resolves theme/variant pairs through the supplied
// selector instead of the built-in default theme.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
		o.themeDisabled = selector == nil
	}
}

// WithThemeProvider resolves themes through a go-theme selector over
// provider, using defaultTheme and defaultVariant for empty requests. Unknown
// themes fall back to defaultTheme the way go-theme does.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		if provider == nil {
			o.themeSelector = nil
			o.themeDisabled = true
			return
		}
		o.themeSelector = theme.Selector{
			Registry:       provider,
			DefaultTheme:   strings.TrimSpace(defaultTheme),
			DefaultVariant: strings.TrimSpace(defaultVariant),
		}
		o.themeDisabled = false
	}
}

// WithThemes registers extra manifests next to the default theme and sets the
// theme and variant used when a request leaves them empty. An empty
// defaultTheme keeps the built-in default.
func WithThemes(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) Option {
	return func(o *Orchestrator) {
		var options []ddmtheme.SelectorOption
		if strings.TrimSpace(defaultTheme) != "" {
			options = append(options, ddmtheme.WithDefaults(defaultTheme, defaultVariant))
		}
		selector, err := ddmtheme.NewSelector(options...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: theme selector: %w", err)
			return
		}
		for _, manifest := range manifests {
			if err := selector.Register(manifest); err != nil {
				o.initialiseErr = fmt.Errorf("orchestrator: theme selector: %w", err)
				return
			}
		}
		o.themeSelector = selector
		o.themeDisabled = false
	}
}

// WithThemeFallbacks replaces the partials used when a theme does not
// override a template.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

func defaultThemeFallbacks() map[string]string {
	return components.DefaultPartials()
}

func (o *Orchestrator) applyThemeDefaults() {
	if o.themeFallbacks == nil {
		o.themeFallbacks = defaultThemeFallbacks()
	}
	if o.themeSelector != nil || o.themeDisabled {
		return
	}
	selector, err := ddmtheme.NewSelector()
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: theme selector: %w", err)
		return
	}
	o.themeSelector = selector
}

func (o *Orchestrator) themeConfig(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return ddmtheme.RendererConfig(nil, o.themeFallbacks), nil
	}
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	return ddmtheme.RendererConfig(selection, o.themeFallbacks), nil
}
