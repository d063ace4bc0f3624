package model

import (
	internalmodel "github.com/Kalai-nithi-guhan/next-deploy/internal/model"
	pkgopenapi "github.com/Kalai-nithi-guhan/next-deploy/pkg/openapi"
)

// Builder converts OpenAPI operations into form models.
type Builder interface {
	Build(op pkgopenapi.Operation) (FormModel, error)
}

// BuilderOption configures NewBuilder.
type BuilderOption func(*internalmodel.Options)

// WithLabeler replaces the name-to-label function.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(opts *internalmodel.Options) { opts.Labeler = labeler }
}

// NewBuilder returns the default Builder.
func NewBuilder(options ...BuilderOption) Builder {
	var opts internalmodel.Options
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}
	return internalmodel.New(opts)
}

// DefaultLabeler splits camelCase, snake_case and kebab-case names into
// title-cased words.
func DefaultLabeler(name string) string {
	return internalmodel.DefaultLabeler(name)
}
