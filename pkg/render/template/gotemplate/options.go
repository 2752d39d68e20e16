package gotemplate

import (
	"io/fs"
	"strings"

	gotpl "github.com/goliatone/go-template"
)

// Option configures the adapter before the go-template engine is built.
type Option func(*config)

type config struct {
	extension string
	hasSource bool
	funcs     map[string]any
	options   []gotpl.Option
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(dir); trimmed != "" {
			cfg.hasSource = true
			cfg.options = append(cfg.options, gotpl.WithBaseDir(trimmed))
		}
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.hasSource = true
			cfg.options = append(cfg.options, gotpl.WithFS(files))
		}
	}
}

// WithExtension overrides the ".tmpl" extension appended to template names
// that lack it.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(ext); trimmed != "" {
			cfg.extension = trimmed
		}
	}
}

// WithTemplateFunc registers helpers. pongo2 filter functions become filters,
// any other func is exposed as a global callable.
func WithTemplateFunc(funcs map[string]any) Option {
	return func(cfg *config) {
		for name, fn := range funcs {
			if trimmed := strings.TrimSpace(name); trimmed != "" && fn != nil {
				cfg.funcs[trimmed] = fn
			}
		}
	}
}

// WithGlobalData seeds values visible to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) > 0 {
			cfg.options = append(cfg.options, gotpl.WithGlobalData(data))
		}
	}
}

// WithGoTemplateOptions forwards options to the underlying go-template
// engine. They run after the adapter's own options.
func WithGoTemplateOptions(options ...gotpl.Option) Option {
	return func(cfg *config) {
		for _, opt := range options {
			if opt != nil {
				cfg.options = append(cfg.options, opt)
			}
		}
	}
}
