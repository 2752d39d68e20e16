package theme_test

import (
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	ddmtheme "github.com/goliatone/go-ddmform/pkg/theme"
)

func TestSelector_DefaultManifest(t *testing.T) {
	selector, err := ddmtheme.NewSelector(ddmtheme.WithDefaults(ddmtheme.DefaultThemeName, ddmtheme.DarkVariant))
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Theme != "default" || selection.Variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", selection.Theme, selection.Variant)
	}

	cfg := ddmtheme.RendererConfig(selection, map[string]string{"forms.text": "templates/text.tmpl"})
	if cfg.Partials["forms.text"] != "templates/text.tmpl" {
		t.Fatalf("expected fallback partial, got %+v", cfg.Partials)
	}
	if cfg.Tokens[ddmtheme.TokenButtonCornerRadius] != "4px" {
		t.Fatalf("expected base token, got %+v", cfg.Tokens)
	}
	if cfg.CSSVars["--basic-blue"] != "rgba(0, 140, 170, 0.87)" {
		t.Fatalf("expected dark variant token, got %q", cfg.CSSVars["--basic-blue"])
	}
	if got := cfg.AssetURL(ddmtheme.DefaultButtonAsset); got != "/assets/themes/default/dark/default-button.png" {
		t.Fatalf("unexpected button asset: %s", got)
	}
	if got := cfg.AssetURL("default-mail-icon"); got != "/assets/themes/default/default-mail-icon.png" {
		t.Fatalf("unexpected icon asset: %s", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for missing asset, got %s", got)
	}
}

func TestSelector_CustomManifest(t *testing.T) {
	selector, err := ddmtheme.NewSelector()
	if err != nil {
		t.Fatalf("selector: %v", err)
	}

	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456"},
		Assets: theme.Assets{
			Prefix: "https://cdn.example.com/acme/",
			Files:  map[string]string{"default-button": "button.png"},
		},
	}
	if err := selector.Register(manifest); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := selector.Register(manifest); err == nil {
		t.Fatalf("expected duplicate registration error")
	}

	selection, err := selector.Select("acme", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	cfg := ddmtheme.RendererConfig(selection, nil)
	if got := cfg.AssetURL("default-button"); got != "https://cdn.example.com/acme/button.png" {
		t.Fatalf("unexpected asset url: %s", got)
	}
	if cfg.CSSVars["--brand"] != "#123456" {
		t.Fatalf("expected css var, got %+v", cfg.CSSVars)
	}

	if _, err := selector.Select("acme", "dark"); !errors.Is(err, ddmtheme.ErrVariantNotFound) {
		t.Fatalf("expected ErrVariantNotFound, got %v", err)
	}
	if _, err := selector.Select("nope", ""); !errors.Is(err, ddmtheme.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
}

func TestSelector_MatchesGoThemeSelection(t *testing.T) {
	reg := theme.NewRegistry()
	if err := reg.Register(ddmtheme.DefaultManifest()); err != nil {
		t.Fatalf("register: %v", err)
	}
	plain, err := theme.Selector{Registry: reg, DefaultTheme: ddmtheme.DefaultThemeName}.Select("", ddmtheme.DarkVariant)
	if err != nil {
		t.Fatalf("go-theme select: %v", err)
	}

	selector, err := ddmtheme.NewSelector()
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	selection, err := selector.Select("", ddmtheme.DarkVariant)
	if err != nil {
		t.Fatalf("select: %v", err)
	}

	want := plain.RendererTheme(nil)
	got := ddmtheme.RendererConfig(selection, nil)
	if diff := cmp.Diff(want.Tokens, got.Tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.CSSVars, got.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	for _, asset := range ddmtheme.AssetNames(selection) {
		if want.AssetURL(asset) != got.AssetURL(asset) {
			t.Fatalf("asset %s: want %s, got %s", asset, want.AssetURL(asset), got.AssetURL(asset))
		}
	}
}

func TestSelector_Versions(t *testing.T) {
	selector, err := ddmtheme.NewSelector()
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	for _, version := range []string{"1.0.0", "1.2.0"} {
		manifest := &theme.Manifest{
			Name:    "acme",
			Version: version,
			Tokens:  map[string]string{"brand": version},
		}
		if err := selector.Register(manifest); err != nil {
			t.Fatalf("register %s: %v", version, err)
		}
	}

	latest, err := selector.Select("acme", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if latest.Manifest.Version != "1.2.0" {
		t.Fatalf("expected latest version, got %s", latest.Manifest.Version)
	}
	pinned, err := selector.Select("acme", "", theme.WithVersion("1.0.0"))
	if err != nil {
		t.Fatalf("select pinned: %v", err)
	}
	if pinned.Manifest.Tokens["brand"] != "1.0.0" {
		t.Fatalf("expected pinned manifest, got %+v", pinned.Manifest.Tokens)
	}

	if diff := cmp.Diff([]string{"acme", "default"}, selector.Themes()); diff != "" {
		t.Fatalf("themes mismatch (-want +got):\n%s", diff)
	}
}

func TestSelector_DefaultVariantMissingFromTheme(t *testing.T) {
	selector, err := ddmtheme.NewSelector(ddmtheme.WithDefaults(ddmtheme.DefaultThemeName, ddmtheme.DarkVariant))
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	if err := selector.Register(&theme.Manifest{Name: "plain", Version: "1.0.0"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	selection, err := selector.Select("plain", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Theme != "plain" || selection.Variant != "" {
		t.Fatalf("expected plain without variant, got %s/%s", selection.Theme, selection.Variant)
	}
}
