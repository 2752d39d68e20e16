package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-ddmform/internal/ddm/loader"
	internalParser "github.com/goliatone/go-ddmform/internal/ddm/parser"
	"github.com/goliatone/go-ddmform/pkg/ddm"
	"github.com/goliatone/go-ddmform/pkg/model"
	"github.com/goliatone/go-ddmform/pkg/render"
	"github.com/goliatone/go-ddmform/pkg/renderers/vanilla"
	"github.com/goliatone/go-ddmform/pkg/schema"
)

const defaultRendererName = "vanilla"

// ErrNoFields is returned when a definition yields no fields. At this level
// absence is an error rather than a nil result.
var ErrNoFields = errors.New("orchestrator: definition has no fields")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom definition loader.
func WithLoader(loader ddm.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom DDM parser.
func WithParser(parser ddm.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithModelBuilder injects a custom form model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSchemaTransformer registers a Transformer that mutates form models
// after building and before decorators run.
func WithSchemaTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithUIDecorators registers decorators that run against the generated form
// model before rendering.
func WithUIDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithTranslator sets the translator used when a request does not carry one
// in its RenderOptions.
func WithTranslator(translator render.Translator) Option {
	return func(o *Orchestrator) {
		o.translator = translator
	}
}

// WithLogger injects a zap logger. Nil keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the pipeline from DDM definition to rendered
// output. Missing dependencies fall back to the built-in implementations
// (file loader, encoding/xml parser, vanilla renderer, default theme).
type Orchestrator struct {
	loader          ddm.Loader
	parser          ddm.Parser
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	initialiseErr   error
	defaultsApplied bool
	decorators      []model.Decorator
	transformer     Transformer
	translator      render.Translator
	logger          *zap.Logger

	themeSelector  theme.ThemeSelector
	themeFallbacks map[string]string
	themeDisabled  bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a form from a DDM
// definition. Exactly one of Source, Document, or XSD is needed; Document
// wins over XSD, XSD wins over Source.
type Request struct {
	// Source identifies where the definition lives.
	Source schema.Source

	// Document bypasses the loader when the caller already holds the bytes.
	Document *schema.Document

	// XSD carries an inline definition.
	XSD string

	// Locale selects the localized labels. Empty uses the definition's
	// default locale.
	Locale string

	// Renderer names the renderer to use. Empty falls back to the configured
	// default renderer.
	Renderer string

	// ThemeName and ThemeVariant pick the theme passed to the renderer. Empty
	// values use the selector defaults.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request values, errors, and translator.
	RenderOptions render.RenderOptions
}

// Generate executes load → parse → build → transform → decorate → localize →
// theme → render and returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	form, err := o.Form(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	opts, err := o.renderOptions(form, req)
	if err != nil {
		return nil, err
	}
	render.LocalizeFormModel(&form, opts)

	output, err := renderer.Render(ctx, form, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	o.logger.Debug("form rendered",
		zap.String("renderer", renderer.Name()),
		zap.String("form", form.ID),
		zap.String("locale", form.Locale),
		zap.Int("bytes", len(output)),
	)
	return output, nil
}

// Form runs the pipeline up to (and including) decoration and returns the
// form model. Callers use it to validate submissions against the same model
// a renderer would receive.
func (o *Orchestrator) Form(ctx context.Context, req Request) (model.FormModel, error) {
	if ctx == nil {
		return model.FormModel{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.FormModel{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	if err := o.initialiseErr; err != nil {
		return model.FormModel{}, err
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return model.FormModel{}, err
	}

	structure, err := o.parser.ParseDocument(ctx, doc, req.Locale)
	if err != nil {
		if errors.Is(err, ddm.ErrEmptyDefinition) || errors.Is(err, ddm.ErrMalformedDefinition) || errors.Is(err, ddm.ErrNoFields) {
			o.logger.Debug("definition has no fields",
				zap.String("location", doc.Location()),
				zap.Error(err),
			)
			return model.FormModel{}, fmt.Errorf("%w: %w", ErrNoFields, err)
		}
		return model.FormModel{}, fmt.Errorf("orchestrator: parse definition: %w", err)
	}
	if len(structure.Fields) == 0 {
		return model.FormModel{}, ErrNoFields
	}

	form, err := o.builder.Build(structure)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: build form model: %w", err)
	}
	if form.ID == "" && doc.Source() != nil && doc.Source().Kind() != schema.SourceKindInline {
		form.ID = formID(doc.Location())
	}

	if err := o.applyTransformer(ctx, &form); err != nil {
		return model.FormModel{}, err
	}
	if err := o.applyDecorators(&form); err != nil {
		return model.FormModel{}, err
	}
	return form, nil
}

func (o *Orchestrator) renderOptions(form model.FormModel, req Request) (render.RenderOptions, error) {
	opts := req.RenderOptions
	if opts.Locale == "" {
		opts.Locale = form.Locale
	}
	if opts.Translator == nil {
		opts.Translator = o.translator
	}

	if opts.Theme == nil {
		cfg, err := o.themeConfig(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return render.RenderOptions{}, err
		}
		opts.Theme = cfg
	}
	return opts, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (schema.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if strings.TrimSpace(req.XSD) != "" {
		return schema.NewDocument(schema.SourceInline("inline.xsd"), []byte(req.XSD))
	}
	if req.Source == nil {
		return schema.Document{}, errors.New("orchestrator: source, document, or xsd is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return schema.Document{}, fmt.Errorf("orchestrator: load definition: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	renderer := o.registry.First()
	if renderer == nil {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(form *model.FormModel) error {
	if len(o.decorators) == 0 || form == nil {
		return nil
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(form); err != nil {
			return fmt.Errorf("orchestrator: decorate form: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, form *model.FormModel) error {
	if o.transformer == nil || form == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, form); err != nil {
		return fmt.Errorf("orchestrator: transform form: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.loader == nil {
		o.loader = internalLoader.New(ddm.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(ddm.NewParserOptions(ddm.WithLogger(o.logger)))
	}
	if o.builder == nil {
		o.builder = model.NewBuilder()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	o.applyThemeDefaults()

	o.defaultsApplied = true
}

// formID derives a form identifier from the definition location:
// "forms/profile.xsd" becomes "profile".
func formID(location string) string {
	location = strings.TrimSpace(location)
	if location == "" {
		return ""
	}
	if idx := strings.IndexAny(location, "?#"); idx >= 0 {
		location = location[:idx]
	}
	base := path.Base(strings.ReplaceAll(location, "\\", "/"))
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
