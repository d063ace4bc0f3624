package openapi

import (
	"context"
	"io/fs"
)

// Loader reads the document a Source names.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures a Loader.
type LoaderOptions struct {
	// FileSystem serves SourceFromFS lookups.
	FileSystem fs.FS
}

// LoaderOption mutates LoaderOptions.
type LoaderOption func(*LoaderOptions)

// WithFileSystem sets the fs.FS used for SourceFromFS documents.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) { opts.FileSystem = files }
}

// NewLoaderOptions applies options over the zero value.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	var opts LoaderOptions
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}
	return opts
}
