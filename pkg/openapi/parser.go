package openapi

import "context"

// Parser extracts the operations of a Document keyed by operation id.
type Parser interface {
	Operations(ctx context.Context, doc Document) (map[string]Operation, error)
}

// ParserOptions configures a Parser.
type ParserOptions struct {
	// ValidateDocument runs full OpenAPI validation before extraction.
	ValidateDocument bool
}

// ParserOption mutates ParserOptions.
type ParserOption func(*ParserOptions)

// WithDocumentValidation turns document validation on or off (default on).
func WithDocumentValidation(enabled bool) ParserOption {
	return func(opts *ParserOptions) { opts.ValidateDocument = enabled }
}

// NewParserOptions applies options over the defaults.
func NewParserOptions(options ...ParserOption) ParserOptions {
	opts := ParserOptions{ValidateDocument: true}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}
	return opts
}
