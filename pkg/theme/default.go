package theme

import (
	"sync"

	"github.com/goliatone/go-ddmform/pkg/i18n"
)

var (
	defaultStylerOnce sync.Once
	defaultStyler     *Styler
)

// DefaultStyler returns a Styler bound to the default manifest (base
// variant) and the bundled translation catalog.
func DefaultStyler() *Styler {
	defaultStylerOnce.Do(func() {
		options := []StylerOption{}
		if selector, err := NewSelector(); err == nil {
			if selection, err := selector.Select(DefaultThemeName, ""); err == nil {
				options = append(options, WithRendererConfig(RendererConfig(selection, nil)))
			}
		}
		if catalog, err := i18n.Default(); err == nil {
			options = append(options, WithLocalizer(catalog))
		}
		defaultStyler = NewStyler(options...)
	})
	return defaultStyler
}

// SetDefaultButtonBackground styles button with DefaultStyler.
func SetDefaultButtonBackground(button *Button) {
	DefaultStyler().SetDefaultButtonBackground(button)
}

// SetAuthMethodStyles styles the user name controls with DefaultStyler.
func SetAuthMethodStyles(view View, method AuthMethod, userNameField *TextField, userNameIcon *ImageView) {
	DefaultStyler().SetAuthMethodStyles(view, method, userNameField, userNameIcon)
}
