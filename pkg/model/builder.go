package model

import (
	"github.com/goliatone/go-ddmform/internal/model"
	"github.com/goliatone/go-ddmform/pkg/ddm"
)

// Builder converts DDM structures into form models.
type Builder interface {
	Build(structure ddm.Structure) (FormModel, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	labeler    func(string) string
	dateLayout string
}

// WithLabeler overrides the default label generation function.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(opts *builderOptions) {
		opts.labeler = labeler
	}
}

// WithDateLayout overrides the layout used to format date defaults.
func WithDateLayout(layout string) BuilderOption {
	return func(opts *builderOptions) {
		opts.dateLayout = layout
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	internalOpts := model.Options{}
	if cfg.labeler != nil {
		internalOpts.Labeler = cfg.labeler
	}
	if cfg.dateLayout != "" {
		internalOpts.DateLayout = cfg.dateLayout
	}

	return model.New(internalOpts)
}
