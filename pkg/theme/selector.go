package theme

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

var (
	// ErrThemeNotFound is returned when a selection names an unregistered
	// theme. It is the go-theme registry sentinel.
	ErrThemeNotFound = theme.ErrThemeNotFound
	// ErrVariantNotFound is returned when the theme lacks the requested variant.
	ErrVariantNotFound = errors.New("theme: variant not found")
)

// Selector resolves theme/variant pairs against a go-theme registry seeded
// with the default manifest. Unlike go-theme's Selector it does not fall back
// to the default theme when an explicit name is unknown.
type Selector struct {
	mu       sync.Mutex
	registry *theme.MemoryRegistry
	base     theme.Selector
}

var _ theme.ThemeSelector = (*Selector)(nil)

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithDefaults sets the theme and variant used when a request leaves them
// empty.
func WithDefaults(name, variant string) SelectorOption {
	return func(s *Selector) {
		s.base.DefaultTheme = strings.TrimSpace(name)
		s.base.DefaultVariant = strings.TrimSpace(variant)
	}
}

// NewSelector returns a selector seeded with the default manifest.
func NewSelector(options ...SelectorOption) (*Selector, error) {
	reg := theme.NewRegistry()
	s := &Selector{
		registry: reg,
		base:     theme.Selector{Registry: reg, DefaultTheme: DefaultThemeName},
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if err := s.Register(DefaultManifest()); err != nil {
		return nil, err
	}
	return s, nil
}

// Register adds a manifest. A name and version pair can only be registered
// once; other versions of a registered theme are accepted.
func (s *Selector) Register(manifest *theme.Manifest) error {
	if manifest == nil {
		return errors.New("theme: manifest is nil")
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return errors.New("theme: manifest name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.registry.Get(name, theme.WithVersion(manifest.Version), theme.WithoutFallback()); err == nil {
		return fmt.Errorf("theme: %s@%s already registered", name, manifest.Version)
	}
	if err := s.registry.Register(manifest); err != nil {
		return fmt.Errorf("theme: register %q: %w", name, err)
	}
	return nil
}

// Themes lists the registered theme names, sorted.
func (s *Selector) Themes() []string {
	var names []string
	for _, ref := range s.registry.Themes() {
		if !slices.Contains(names, ref.Name) {
			names = append(names, ref.Name)
		}
	}
	slices.Sort(names)
	return names
}

// Select resolves name and variant, substituting the configured defaults
// for empty values. Query options such as theme.WithVersion reach the
// registry. A default variant the theme does not declare is dropped; an
// explicit one is an error.
func (s *Selector) Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	variant = strings.TrimSpace(variant)

	selection, err := s.base.Select(name, variant, opts...)
	if err != nil {
		return nil, fmt.Errorf("theme: select %q: %w", name, err)
	}
	if selection.Manifest == nil || selection.Manifest.Name != selection.Theme {
		return nil, fmt.Errorf("theme: select %q: %w", selection.Theme, ErrThemeNotFound)
	}
	if selection.Variant != "" {
		if _, ok := selection.Manifest.Variants[selection.Variant]; !ok {
			if variant != "" {
				return nil, fmt.Errorf("%w: %s/%s", ErrVariantNotFound, selection.Theme, variant)
			}
			selection.Variant = ""
		}
	}
	return selection, nil
}
