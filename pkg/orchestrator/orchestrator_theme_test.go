package orchestrator

import (
	"context"
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-ddmform/pkg/render"
	ddmtheme "github.com/goliatone/go-ddmform/pkg/theme"
)

func TestOrchestrator_PassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
	}

	selection := &theme.Selection{
		Theme:    "acme",
		Variant:  "custom-variant",
		Manifest: manifest,
	}

	selector := &stubThemeSelector{selection: selection}
	renderer := &captureRenderer{}

	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithThemeSelector(selector),
	)

	_, err := orch.Generate(context.Background(), Request{
		XSD:          profileXSD,
		ThemeName:    "custom-theme",
		ThemeVariant: "custom-variant",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "custom-theme" || selector.calls[0].variant != "custom-variant" {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != selection.Theme || cfg.Variant != selection.Variant {
		t.Fatalf("selection mismatch: got %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.AssetURL == nil {
		t.Fatalf("expected AssetURL resolver present")
	}
	if got := cfg.Partials["forms.input"]; got != defaultThemeFallbacks()["forms.input"] {
		t.Fatalf("partials not merged with fallbacks: want %s, got %s", defaultThemeFallbacks()["forms.input"], got)
	}
	if cfg.Tokens["brand"] != "#123456" || cfg.CSSVars["--brand"] != "#123456" {
		t.Fatalf("tokens not propagated: %+v %+v", cfg.Tokens, cfg.CSSVars)
	}
}

func TestOrchestrator_WithThemesUsesDefaults(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
		Templates: map[string]string{
			"forms.input": "themes/acme/input.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Templates: map[string]string{
					"forms.checkbox": "themes/acme/dark/checkbox.tmpl",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						ddmtheme.DefaultButtonAsset: "button.dark.png",
					},
				},
			},
		},
	}

	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithThemes("acme", "dark", manifest),
	)

	if _, err := orch.Generate(context.Background(), Request{XSD: profileXSD}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("expected acme/dark, got %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Partials["forms.input"] != "themes/acme/input.tmpl" {
		t.Fatalf("expected base template override, got %s", cfg.Partials["forms.input"])
	}
	if cfg.Partials["forms.checkbox"] != "themes/acme/dark/checkbox.tmpl" {
		t.Fatalf("expected variant template override, got %s", cfg.Partials["forms.checkbox"])
	}
	if cfg.Partials["forms.textarea"] != defaultThemeFallbacks()["forms.textarea"] {
		t.Fatalf("fallback partial not applied for textarea")
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived from variant tokens, got %s", cfg.CSSVars["--brand"])
	}
	if got := cfg.AssetURL(ddmtheme.DefaultButtonAsset); got != "/assets/themes/acme/button.dark.png" {
		t.Fatalf("unexpected button asset url: %s", got)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet asset url: %s", got)
	}

	if _, err := orch.Generate(context.Background(), Request{XSD: profileXSD, ThemeName: ddmtheme.DefaultThemeName}); err != nil {
		t.Fatalf("generate with default theme: %v", err)
	}
	if renderer.options.Theme.Theme != ddmtheme.DefaultThemeName {
		t.Fatalf("expected default theme still registered, got %s", renderer.options.Theme.Theme)
	}
}

func TestOrchestrator_WithThemeProviderUsesDefaults(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456"},
		Templates: map[string]string{
			"forms.input": "themes/acme/input.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "https://cdn.example.com/acme",
			Files:  map[string]string{"stylesheet": "theme.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{"brand": "#654321"},
				Templates: map[string]string{
					"forms.checkbox": "themes/acme/dark/checkbox.tmpl",
				},
			},
		},
	}
	provider := theme.NewRegistry()
	if err := provider.Register(manifest); err != nil {
		t.Fatalf("register manifest: %v", err)
	}

	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithThemeProvider(provider, "acme", "dark"),
	)
	if _, err := orch.Generate(context.Background(), Request{XSD: profileXSD}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("expected acme/dark, got %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Partials["forms.input"] != "themes/acme/input.tmpl" {
		t.Fatalf("expected base template override, got %s", cfg.Partials["forms.input"])
	}
	if cfg.Partials["forms.checkbox"] != "themes/acme/dark/checkbox.tmpl" {
		t.Fatalf("expected variant template override, got %s", cfg.Partials["forms.checkbox"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("expected variant css var, got %s", cfg.CSSVars["--brand"])
	}
	if got := cfg.AssetURL("stylesheet"); got != "https://cdn.example.com/acme/theme.css" {
		t.Fatalf("unexpected stylesheet url: %s", got)
	}
}

func TestOrchestrator_ThemeSelectionErrors(t *testing.T) {
	orch := New(WithRegistry(render.NewRegistry(&captureRenderer{})))

	_, err := orch.Generate(context.Background(), Request{XSD: profileXSD, ThemeName: "missing"})
	if !errors.Is(err, ddmtheme.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
}

func TestOrchestrator_DisabledThemeKeepsFallbacks(t *testing.T) {
	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithThemeSelector(nil),
		WithThemeFallbacks(map[string]string{"forms.input": "custom/input.tmpl"}),
	)

	if _, err := orch.Generate(context.Background(), Request{XSD: profileXSD}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	cfg := renderer.options.Theme
	if cfg == nil || cfg.Theme != "" || cfg.Partials["forms.input"] != "custom/input.tmpl" {
		t.Fatalf("expected fallback-only config, got %+v", cfg)
	}
}

func TestOrchestrator_RequestThemeWins(t *testing.T) {
	selector := &stubThemeSelector{}
	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithThemeSelector(selector),
	)

	preset := &theme.RendererConfig{Theme: "preset"}
	_, err := orch.Generate(context.Background(), Request{
		XSD:           profileXSD,
		RenderOptions: render.RenderOptions{Theme: preset},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.options.Theme != preset || len(selector.calls) != 0 {
		t.Fatalf("expected request theme to bypass the selector")
	}
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}
