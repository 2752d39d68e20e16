// Package gotemplate implements template.TemplateRenderer with
// github.com/goliatone/go-template, which runs pongo2 (Django-style syntax
// with autoescaping). Render data reaches templates through a JSON round
// trip, so struct fields are addressed by their json names.
package gotemplate

import (
	"errors"
	"fmt"
	"io"

	gotpl "github.com/goliatone/go-template"

	"github.com/goliatone/go-ddmform/pkg/render/template"
)

// Engine adapts a go-template engine to the renderer contract.
type Engine struct {
	engine *gotpl.Engine
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. At least one of WithBaseDir or WithFS is
// required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{
		extension: ".tmpl",
		funcs: map[string]any{
			"css_vars": filterCSSVars,
		},
	}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if !cfg.hasSource {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}

	opts := append([]gotpl.Option{
		gotpl.WithExtension(cfg.extension),
		gotpl.WithTemplateFunc(cfg.funcs),
	}, cfg.options...)

	engine, err := gotpl.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load engine: %w", err)
	}
	return &Engine{engine: engine}, nil
}

// Render treats name as inline content when it contains template tags and
// as a template name otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if err := e.check(); err != nil {
		return "", err
	}
	rendered, err := e.engine.Render(name, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return rendered, nil
}

// RenderTemplate executes a named template, appending the configured
// extension when missing.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if err := e.check(); err != nil {
		return "", err
	}
	rendered, err := e.engine.RenderTemplate(name, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return rendered, nil
}

// RenderString compiles and executes inline template content.
func (e *Engine) RenderString(content string, data any, out ...io.Writer) (string, error) {
	if err := e.check(); err != nil {
		return "", err
	}
	rendered, err := e.engine.RenderString(content, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return rendered, nil
}

// RegisterFilter registers a filter. pongo2 filters are process-wide, so a
// name can only be registered once.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if err := e.check(); err != nil {
		return err
	}
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if err := e.engine.RegisterFilter(name, fn); err != nil {
		return fmt.Errorf("gotemplate: %w", err)
	}
	return nil
}

// GlobalContext merges data into the globals every template sees.
func (e *Engine) GlobalContext(data any) error {
	if err := e.check(); err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := e.engine.GlobalContext(data); err != nil {
		return fmt.Errorf("gotemplate: %w", err)
	}
	return nil
}

func (e *Engine) check() error {
	if e == nil || e.engine == nil {
		return errors.New("gotemplate: engine is nil")
	}
	return nil
}
