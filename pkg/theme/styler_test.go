package theme_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ddmform/pkg/i18n"
	"github.com/goliatone/go-ddmform/pkg/theme"
)

func TestConstants(t *testing.T) {
	if theme.ButtonCornerRadius != 4 {
		t.Fatalf("expected corner radius 4, got %v", theme.ButtonCornerRadius)
	}
	if got := theme.BasicBlue.String(); got != "rgba(0, 184, 224, 0.87)" {
		t.Fatalf("unexpected basic blue: %s", got)
	}
	if got := theme.ClearColor.CSS(); got != "transparent" {
		t.Fatalf("expected transparent, got %s", got)
	}
}

func TestSetDefaultButtonBackground_AppliesStretchableImage(t *testing.T) {
	styler := theme.NewStyler(theme.WithAssetResolver(func(name string) string {
		if name == theme.DefaultButtonAsset {
			return "/assets/default-button.png"
		}
		return ""
	}))

	button := theme.Button{Title: "Sign in"}
	styler.SetDefaultButtonBackground(&button)

	want := &theme.Image{
		Name:         theme.DefaultButtonAsset,
		URL:          "/assets/default-button.png",
		CapInsets:    theme.Insets{Top: 5, Left: 5, Bottom: 5, Right: 5},
		ResizingMode: theme.ResizingModeStretch,
	}
	if diff := cmp.Diff(want, button.BackgroundImage); diff != "" {
		t.Fatalf("background image mismatch (-want +got):\n%s", diff)
	}
	if button.BackgroundColor == nil || !button.BackgroundColor.IsClear() {
		t.Fatalf("expected clear background colour, got %+v", button.BackgroundColor)
	}
	if got := button.Style(); got != `border-image: url("/assets/default-button.png") 5 5 5 5 fill / 5px 5px 5px 5px stretch; background-color: transparent` {
		t.Fatalf("unexpected style: %s", got)
	}
}

func TestSetDefaultButtonBackground_NoAssetOrButton(t *testing.T) {
	button := theme.Button{Title: "Sign in"}
	theme.NewStyler().SetDefaultButtonBackground(&button)
	if button.BackgroundImage != nil || button.BackgroundColor != nil {
		t.Fatalf("expected button untouched without asset, got %+v", button)
	}

	styler := theme.NewStyler(theme.WithAssetResolver(func(string) string { return "/x.png" }))
	styler.SetDefaultButtonBackground(nil)
}

func TestSetAuthMethodStyles(t *testing.T) {
	catalog, err := i18n.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	catalog.Add("en_US", map[string]string{"flat-screenName": "Nickname"})

	selector, err := theme.NewSelector()
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	styler := theme.NewStyler(
		theme.WithRendererConfig(theme.RendererConfig(selection, nil)),
		theme.WithLocalizer(catalog),
	)

	cases := []struct {
		name        string
		view        theme.View
		method      theme.AuthMethod
		placeholder string
		keyboard    theme.KeyboardType
		icon        string
	}{
		{
			name:        "email",
			view:        theme.ViewContext{Language: "en_US"},
			method:      theme.AuthMethodEmail,
			placeholder: "Email address",
			keyboard:    theme.KeyboardEmailAddress,
			icon:        "/assets/themes/default/default-mail-icon.png",
		},
		{
			name:        "screen name in spanish",
			view:        theme.ViewContext{Language: "es_ES"},
			method:      theme.AuthMethodScreenName,
			placeholder: "Nombre de usuario",
			keyboard:    theme.KeyboardASCIICapable,
			icon:        "/assets/themes/default/default-user-icon.png",
		},
		{
			name:        "theme scoped key",
			view:        theme.ViewContext{Theme: "flat", Language: "en_US"},
			method:      theme.AuthMethodScreenName,
			placeholder: "Nickname",
			keyboard:    theme.KeyboardASCIICapable,
			icon:        "/assets/themes/default/default-user-icon.png",
		},
		{
			name:        "user id without view",
			method:      theme.AuthMethodUserID,
			placeholder: "User ID",
			keyboard:    theme.KeyboardNumberPad,
			icon:        "/assets/themes/default/default-user-icon.png",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var field theme.TextField
			var icon theme.ImageView
			styler.SetAuthMethodStyles(tc.view, tc.method, &field, &icon)

			if field.Placeholder != tc.placeholder {
				t.Fatalf("expected placeholder %q, got %q", tc.placeholder, field.Placeholder)
			}
			if field.KeyboardType != tc.keyboard {
				t.Fatalf("expected keyboard %q, got %q", tc.keyboard, field.KeyboardType)
			}
			if icon.Image == nil || icon.Image.URL != tc.icon {
				t.Fatalf("expected icon %q, got %+v", tc.icon, icon.Image)
			}
		})
	}
}

func TestSetAuthMethodStyles_SkipsNilControls(t *testing.T) {
	var field theme.TextField
	theme.SetAuthMethodStyles(nil, theme.AuthMethodEmail, &field, nil)
	if field.Placeholder != "Email address" || field.KeyboardType != theme.KeyboardEmailAddress {
		t.Fatalf("unexpected field state: %+v", field)
	}

	var icon theme.ImageView
	theme.SetAuthMethodStyles(nil, theme.AuthMethodUserID, nil, &icon)
	if icon.Image == nil || icon.Image.Name != "default-user-icon" {
		t.Fatalf("expected user icon, got %+v", icon.Image)
	}
}

func TestSetAuthMethodStyles_MissingIconKeepsImage(t *testing.T) {
	previous := &theme.Image{Name: "custom-icon", URL: "/custom.png"}
	icon := theme.ImageView{Image: previous}
	var field theme.TextField

	theme.NewStyler().SetAuthMethodStyles(nil, theme.AuthMethodEmail, &field, &icon)

	if icon.Image != previous {
		t.Fatalf("expected icon image untouched, got %+v", icon.Image)
	}
	if field.KeyboardType != theme.KeyboardEmailAddress {
		t.Fatalf("expected field styled, got %+v", field)
	}
}

func TestParseAuthMethod(t *testing.T) {
	method, err := theme.ParseAuthMethod("ScreenName")
	if err != nil || method != theme.AuthMethodScreenName {
		t.Fatalf("expected screenName, got %q (%v)", method, err)
	}
	if _, err := theme.ParseAuthMethod("phone"); err == nil {
		t.Fatalf("expected error for unknown method")
	}
}
