package theme

import (
	"strings"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"
)

// LocalizationTable is the table consulted for auth-method placeholders.
const LocalizationTable = "default"

// View carries the context a control is styled for: the theme scoping
// translations and the locale they are resolved in.
type View interface {
	ThemeName() string
	Locale() string
}

// ViewContext is a plain View.
type ViewContext struct {
	Theme    string
	Language string
}

// ThemeName implements View.
func (v ViewContext) ThemeName() string { return v.Theme }

// Locale implements View.
func (v ViewContext) Locale() string { return v.Language }

// Localizer resolves theme-scoped strings. *i18n.Catalog implements it.
type Localizer interface {
	Lookup(locale, table, key, scope string) string
}

// AssetResolver maps an asset name to its URL, returning "" when the asset
// is not available.
type AssetResolver func(name string) string

// Styler applies the default theme to controls.
type Styler struct {
	assets    AssetResolver
	localizer Localizer
	logger    *zap.Logger
}

// StylerOption configures a Styler.
type StylerOption func(*Styler)

// WithRendererConfig resolves assets through cfg.AssetURL.
func WithRendererConfig(cfg *theme.RendererConfig) StylerOption {
	return func(s *Styler) {
		if cfg != nil && cfg.AssetURL != nil {
			s.assets = cfg.AssetURL
		}
	}
}

// WithAssetResolver sets the asset lookup directly.
func WithAssetResolver(resolver AssetResolver) StylerOption {
	return func(s *Styler) {
		s.assets = resolver
	}
}

// WithLocalizer sets the source of placeholder strings.
func WithLocalizer(localizer Localizer) StylerOption {
	return func(s *Styler) {
		s.localizer = localizer
	}
}

// WithLogger attaches a logger for skipped styling steps.
func WithLogger(logger *zap.Logger) StylerOption {
	return func(s *Styler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStyler builds a Styler. Without options no asset is available and
// placeholders fall back to the auth method description.
func NewStyler(options ...StylerOption) *Styler {
	s := &Styler{logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Image returns the named asset when it is available.
func (s *Styler) Image(name string) (Image, bool) {
	if s == nil || s.assets == nil {
		return Image{}, false
	}
	url := s.assets(name)
	if url == "" {
		return Image{}, false
	}
	return Image{Name: name, URL: url}, true
}

// SetDefaultButtonBackground gives button the stretchable default-button
// image (5pt cap insets) over a clear background. Nothing changes when the
// button is nil or the asset is not available.
func (s *Styler) SetDefaultButtonBackground(button *Button) {
	img, ok := s.Image(DefaultButtonAsset)
	if !ok {
		s.debug("default button asset unavailable")
		return
	}
	if button == nil {
		return
	}
	stretchable := img.Resizable(Insets{Top: 5, Left: 5, Bottom: 5, Right: 5}, ResizingModeStretch)
	transparent := ClearColor
	button.BackgroundImage = &stretchable
	button.BackgroundColor = &transparent
}

// SetAuthMethodStyles sets the placeholder and keyboard of the user name
// field and the icon next to it for method. The placeholder is looked up in
// the "default" table scoped by the view's theme. Nil controls are skipped.
func (s *Styler) SetAuthMethodStyles(view View, method AuthMethod, userNameField *TextField, userNameIcon *ImageView) {
	if userNameField != nil {
		userNameField.Placeholder = s.localizedString(LocalizationTable, method.Description(), view)
		userNameField.KeyboardType = method.KeyboardType()
	}
	if userNameIcon != nil {
		if img, ok := s.Image(IconAsset(method.IconType())); ok {
			userNameIcon.Image = &img
		} else {
			s.debug("auth method icon unavailable", zap.String("method", string(method)))
		}
	}
}

func (s *Styler) localizedString(table, key string, view View) string {
	if s == nil || s.localizer == nil {
		return key
	}
	var scope, loc string
	if view != nil {
		scope = strings.TrimSpace(view.ThemeName())
		loc = view.Locale()
	}
	if scope == "" {
		scope = DefaultThemeName
	}
	return s.localizer.Lookup(loc, table, key, scope)
}

func (s *Styler) debug(msg string, fields ...zap.Field) {
	if s != nil && s.logger != nil {
		s.logger.Debug(msg, fields...)
	}
}
