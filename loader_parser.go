package ddmform

import (
	internalLoader "github.com/goliatone/go-ddmform/internal/ddm/loader"
	internalParser "github.com/goliatone/go-ddmform/internal/ddm/parser"
	"github.com/goliatone/go-ddmform/pkg/ddm"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...ddm.LoaderOption) ddm.Loader {
	cfg := ddm.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...ddm.ParserOption) ddm.Parser {
	cfg := ddm.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// Parse is a shortcut for NewParser().Parse: it returns the fields of the
// definition localized to locale, or nil when the definition is empty,
// malformed, or declares no fields.
func Parse(xsd, locale string) []ddm.Field {
	return NewParser().Parse(xsd, locale)
}
