package theme

import theme "github.com/goliatone/go-theme"

// Names of the default theme and its assets.
const (
	DefaultThemeName    = "default"
	DarkVariant         = "dark"
	DefaultButtonAsset  = "default-button"
	DefaultAssetsPrefix = "/assets/themes/default"
)

// Token names published by the default manifest.
const (
	TokenButtonCornerRadius = "button-corner-radius"
	TokenBasicBlue          = "basic-blue"
	TokenButtonBackground   = "button-background"
)

// IconAsset returns the asset name of an icon type ("default-mail-icon").
func IconAsset(iconType string) string {
	return DefaultThemeName + "-" + iconType + "-icon"
}

// DefaultManifest returns a fresh copy of the default theme manifest.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			TokenButtonCornerRadius: "4px",
			TokenBasicBlue:          BasicBlue.CSS(),
			TokenButtonBackground:   ClearColor.CSS(),
		},
		Assets: theme.Assets{
			Prefix: DefaultAssetsPrefix,
			Files: map[string]string{
				DefaultButtonAsset: "default-button.png",
				IconAsset("mail"):  "default-mail-icon.png",
				IconAsset("user"):  "default-user-icon.png",
			},
		},
		Variants: map[string]theme.Variant{
			DarkVariant: {
				Tokens: map[string]string{
					TokenBasicBlue: Color{R: 0, G: 140.0 / 255.0, B: 170.0 / 255.0, A: 0.87}.CSS(),
				},
				Assets: theme.Assets{
					Files: map[string]string{
						DefaultButtonAsset: "dark/default-button.png",
					},
				},
			},
		},
	}
}
