package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-ddmform/pkg/ddm"
	"github.com/goliatone/go-ddmform/pkg/locale"
	"github.com/goliatone/go-ddmform/pkg/schema"
)

const (
	rootElement      = "root"
	dynamicElement   = "dynamic-element"
	metadataElement  = "meta-data"
	entryElement     = "entry"
	availableLocales = "available-locales"
	defaultLocale    = "default-locale"
)

// Parser implements ddm.Parser on top of encoding/xml.
type Parser struct {
	logger         *zap.Logger
	fallbackLocale string
	labeler        func(string) string
}

var _ ddm.Parser = (*Parser)(nil)

// New constructs a Parser from pre-resolved options.
func New(options ddm.ParserOptions) *Parser {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		logger:         logger,
		fallbackLocale: locale.Normalize(options.FallbackLocale),
		labeler:        options.Labeler,
	}
}

// Parse returns the localized fields of the definition or nil when the
// definition is empty, malformed, or has no dynamic elements.
func (p *Parser) Parse(xsd string, requested string) []ddm.Field {
	structure, err := p.ParseStructure(xsd, requested)
	if err != nil {
		p.logger.Debug("ddm definition produced no fields",
			zap.String("reason", reason(err)),
			zap.String("locale", requested),
			zap.Error(err),
		)
		return nil
	}
	return structure.Fields
}

// ParseDocument parses a loaded document.
func (p *Parser) ParseDocument(ctx context.Context, doc schema.Document, requested string) (ddm.Structure, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return ddm.Structure{}, err
		}
	}
	structure, err := p.ParseStructure(doc.String(), requested)
	if err != nil {
		return ddm.Structure{}, fmt.Errorf("ddm parser: %s: %w", doc.Location(), err)
	}
	return structure, nil
}

// ParseStructure parses the definition and reports absence causes through the
// ddm.Err* sentinels.
func (p *Parser) ParseStructure(xsd string, requested string) (ddm.Structure, error) {
	if strings.TrimSpace(xsd) == "" {
		return ddm.Structure{}, ddm.ErrEmptyDefinition
	}

	root, err := decodeTree(xsd)
	if err != nil {
		return ddm.Structure{}, err
	}
	if root.name != rootElement {
		return ddm.Structure{}, fmt.Errorf("%w: unexpected root element <%s>", ddm.ErrMalformedDefinition, root.name)
	}

	var elements []*element
	for _, el := range root.childrenNamed(dynamicElement) {
		if !isOption(el) {
			elements = append(elements, el)
		}
	}
	if len(elements) == 0 {
		return ddm.Structure{}, ddm.ErrNoFields
	}

	structure := ddm.Structure{
		AvailableLocales: locale.Split(root.attrs[availableLocales]),
		DefaultLocale:    locale.Normalize(root.attrs[defaultLocale]),
	}
	if structure.DefaultLocale == "" {
		structure.DefaultLocale = p.fallbackLocale
	}
	structure.Locale = p.structureLocale(structure, requested)

	ctx := localeContext{
		requested: locale.Normalize(requested),
		fallback:  structure.DefaultLocale,
	}

	structure.Fields = make([]ddm.Field, 0, len(elements))
	for _, el := range elements {
		structure.Fields = append(structure.Fields, p.buildField(el, ctx))
	}

	p.logger.Debug("ddm definition parsed",
		zap.Int("fields", len(structure.Fields)),
		zap.String("locale", structure.Locale),
	)
	return structure, nil
}

func (p *Parser) structureLocale(structure ddm.Structure, requested string) string {
	if idx := locale.Match(requested, structure.AvailableLocales, structure.DefaultLocale); idx >= 0 {
		return structure.AvailableLocales[idx]
	}
	if structure.DefaultLocale != "" {
		return structure.DefaultLocale
	}
	return locale.Normalize(requested)
}

func reason(err error) string {
	switch {
	case errors.Is(err, ddm.ErrEmptyDefinition):
		return "empty"
	case errors.Is(err, ddm.ErrMalformedDefinition):
		return "malformed"
	case errors.Is(err, ddm.ErrNoFields):
		return "no-fields"
	default:
		return "unknown"
	}
}
