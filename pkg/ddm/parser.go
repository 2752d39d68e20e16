package ddm

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/goliatone/go-ddmform/pkg/schema"
)

var (
	// ErrEmptyDefinition signals an empty (or whitespace only) definition.
	ErrEmptyDefinition = errors.New("ddm: definition is empty")
	// ErrMalformedDefinition wraps markup errors raised while decoding.
	ErrMalformedDefinition = errors.New("ddm: definition is not well-formed")
	// ErrNoFields signals a well-formed root without dynamic elements.
	ErrNoFields = errors.New("ddm: definition declares no fields")
)

// Parser turns DDM XSD definitions into localized structures.
type Parser interface {
	// Parse returns the localized fields, or nil when the definition is
	// empty, malformed, or declares no fields.
	Parse(xsd string, locale string) []Field
	// ParseStructure reports why a definition yielded no fields through the
	// Err* sentinels.
	ParseStructure(xsd string, locale string) (Structure, error)
	// ParseDocument parses a loaded document.
	ParseDocument(ctx context.Context, doc schema.Document, locale string) (Structure, error)
}

// ParserOptions configures parser behaviour.
type ParserOptions struct {
	// Logger receives debug entries describing why a definition produced no
	// fields. Defaults to a no-op logger.
	Logger *zap.Logger
	// FallbackLocale is used when a definition omits default-locale.
	FallbackLocale string
	// Labeler derives labels for fields without a localized label.
	Labeler func(string) string
}

// ParserOption mutates ParserOptions prior to construction.
type ParserOption func(*ParserOptions)

// WithLogger injects a zap logger.
func WithLogger(logger *zap.Logger) ParserOption {
	return func(opts *ParserOptions) {
		opts.Logger = logger
	}
}

// WithFallbackLocale overrides the locale used when a definition omits
// default-locale.
func WithFallbackLocale(locale string) ParserOption {
	return func(opts *ParserOptions) {
		opts.FallbackLocale = locale
	}
}

// WithLabeler overrides the label derivation for unlabeled fields. Pass nil to
// keep labels empty.
func WithLabeler(labeler func(string) string) ParserOption {
	return func(opts *ParserOptions) {
		opts.Labeler = labeler
	}
}

// DefaultFallbackLocale is the locale assumed when a definition omits
// default-locale.
const DefaultFallbackLocale = "en_US"

// NewParserOptions applies the supplied options over the defaults.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		Logger:         zap.NewNop(),
		FallbackLocale: DefaultFallbackLocale,
		Labeler:        DefaultLabeler,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}
