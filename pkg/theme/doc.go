// Package theme provides the default look of generated forms. It ships a
// go-theme manifest (tokens, assets, a dark variant), a selector that resolves
// theme/variant pairs into renderer configuration, and the styling helpers
// applied to buttons, text fields, and icons:
//
//	styler := theme.NewStyler(theme.WithRendererConfig(cfg))
//	styler.SetDefaultButtonBackground(&button)
//	styler.SetAuthMethodStyles(view, theme.AuthMethodEmail, &field, &icon)
//
// Helpers never fail. Missing controls or assets leave the targets untouched.
package theme
