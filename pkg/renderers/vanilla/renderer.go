package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-ddmform/pkg/model"
	"github.com/goliatone/go-ddmform/pkg/render"
	rendertemplate "github.com/goliatone/go-ddmform/pkg/render/template"
	"github.com/goliatone/go-ddmform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-ddmform/pkg/renderers/vanilla/components"
	"github.com/goliatone/go-ddmform/pkg/theme"
)

const (
	formTemplate   = "templates/form.tmpl"
	formPartialKey = "forms.form"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	registry         *components.Registry
	overrides        map[string]string
	styler           *theme.Styler
	stylesheets      []string
	inlineStyles     bool
	assetsPrefix     string
	newID            func() string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponentRegistry replaces the default widget registry.
func WithComponentRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithComponentOverrides forces a widget for a field, keyed by dotted path or
// bare field name.
func WithComponentOverrides(overrides map[string]string) Option {
	return func(cfg *config) {
		cfg.overrides = cloneStringMap(overrides)
	}
}

// WithStyler fixes the styler used for the submit button and auth method
// fields. By default one is built per render from RenderOptions.Theme.
func WithStyler(styler *theme.Styler) Option {
	return func(cfg *config) {
		cfg.styler = styler
	}
}

// WithDefaultStyles inlines the bundled stylesheet.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// WithStylesheet links an additional stylesheet.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		if href = strings.TrimSpace(href); href != "" {
			cfg.stylesheets = append(cfg.stylesheets, href)
		}
	}
}

// WithAssetsPrefix sets where component scripts are served from.
func WithAssetsPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.assetsPrefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	}
}

// WithIDGenerator overrides how form ids are generated when
// RenderOptions.FormID is empty.
func WithIDGenerator(fn func() string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.newID = fn
		}
	}
}

type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	registry     *components.Registry
	overrides    map[string]string
	styler       *theme.Styler
	stylesheets  []string
	inlineStyles bool
	assetsPrefix string
	newID        func() string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		assetsPrefix: DefaultAssetsPrefix,
		newID: func() string {
			return "ddmform-" + uuid.NewString()
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.registry == nil {
		cfg.registry = components.NewDefaultRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:    renderer,
		registry:     cfg.registry,
		overrides:    cfg.overrides,
		styler:       cfg.styler,
		stylesheets:  cfg.stylesheets,
		inlineStyles: cfg.inlineStyles,
		assetsPrefix: cfg.assetsPrefix,
		newID:        cfg.newID,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	render.ApplySubset(&form, opts.Subset)
	if opts.Locale == "" {
		opts.Locale = form.Locale
	}
	mapping := render.MapErrorPayload(form, opts.Errors)

	view := theme.ViewContext{Language: opts.Locale}
	var partials map[string]string
	if opts.Theme != nil {
		view.Theme = opts.Theme.Theme
		partials = opts.Theme.Partials
	}
	styler := r.stylerFor(opts)

	fieldRenderer := newComponentRenderer(r.templates, r.registry, r.overrides, partials, renderState{
		options: opts,
		errors:  mapping.Fields,
		styler:  styler,
		view:    view,
		labels: map[string]string{
			components.LabelSelectPlaceholder: render.Text(opts, "form.select.placeholder", "Choose an option"),
			components.LabelLocate:            render.Text(opts, "form.geolocation.locate", "Use my location"),
			labelRepeat:                       render.Text(opts, "form.repeat", "Add another"),
		},
	})

	fields := make([]string, 0, len(form.Fields))
	for _, field := range form.Fields {
		markup, err := fieldRenderer.render(field, field.Name)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: %w", err)
		}
		fields = append(fields, markup)
	}

	button := theme.Button{
		Title:        render.Text(opts, "form.submit", "Submit"),
		CornerRadius: theme.ButtonCornerRadius,
	}
	styler.SetDefaultButtonBackground(&button)

	invalid := len(mapping.Fields)
	summary := render.Text(opts, "form.errors.summary", fmt.Sprintf("%d field(s) need attention", invalid), invalid)

	payload := map[string]any{
		"form":           form,
		"fields":         fields,
		"form_id":        r.formID(opts),
		"action":         strings.TrimSpace(opts.Action),
		"classes":        chromeClasses(),
		"show_errors":    len(mapping.Form) > 0 || invalid > 0,
		"errors_summary": summary,
		"form_errors":    mapping.Form,
		"submit": map[string]any{
			"title": button.Title,
			"style": button.Style(),
		},
	}

	method, hidden := formMethod(opts)
	payload["method"] = method
	if opts.Locale != "" {
		payload["locale"] = opts.Locale
		payload["lang"] = strings.ReplaceAll(opts.Locale, "_", "-")
		hidden = append([]render.HiddenField{render.LocaleField(opts.Locale)}, hidden...)
	}
	payload["hidden_fields"] = render.HiddenFields(hidden...)

	if opts.Theme != nil {
		payload["theme"] = map[string]any{
			"name":    opts.Theme.Theme,
			"variant": opts.Theme.Variant,
		}
		if len(opts.Theme.CSSVars) > 0 {
			payload["css_vars"] = opts.Theme.CSSVars
		}
	}

	stylesheets, scripts := fieldRenderer.assets()
	payload["stylesheets"] = append(append([]string(nil), r.stylesheets...), stylesheets...)
	payload["scripts"] = r.resolveScripts(scripts)
	if r.inlineStyles {
		payload["inline_styles"] = defaultStylesheet()
	}

	templateName := formTemplate
	if candidate := strings.TrimSpace(partials[formPartialKey]); candidate != "" {
		templateName = candidate
	}
	result, err := r.templates.RenderTemplate(templateName, payload)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) stylerFor(opts render.RenderOptions) *theme.Styler {
	if r.styler != nil {
		return r.styler
	}
	options := []theme.StylerOption{theme.WithRendererConfig(opts.Theme)}
	if localizer, ok := opts.Translator.(theme.Localizer); ok {
		options = append(options, theme.WithLocalizer(localizer))
	}
	return theme.NewStyler(options...)
}

func (r *Renderer) formID(opts render.RenderOptions) string {
	if id := strings.TrimSpace(opts.FormID); id != "" {
		return id
	}
	return r.newID()
}

func (r *Renderer) resolveScripts(scripts []components.Script) []components.Script {
	if len(scripts) == 0 {
		return nil
	}
	out := make([]components.Script, 0, len(scripts))
	for _, script := range scripts {
		if script.Src != "" && !isAbsoluteURL(script.Src) {
			script.Src = r.assetsPrefix + "/" + strings.TrimLeft(script.Src, "/")
		}
		out = append(out, script)
	}
	return out
}

// formMethod maps the requested method onto GET/POST, carrying other verbs
// in a "_method" hidden field.
func formMethod(opts render.RenderOptions) (string, []render.HiddenField) {
	hidden := append([]render.HiddenField(nil), opts.Hidden...)
	method := strings.ToUpper(strings.TrimSpace(opts.Method))
	switch method {
	case "", "POST":
		return "post", hidden
	case "GET":
		return "get", hidden
	default:
		return "post", append(hidden, render.Hidden("_method", method))
	}
}

func isAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "/") || strings.Contains(value, "://")
}
