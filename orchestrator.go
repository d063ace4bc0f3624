// Package agrismart is the top-level entry point for the analyzer form
// pipeline. Most callers only need GenerateAnalyzerHTML; the subpackages
// expose each stage for finer control.
package agrismart

import (
	"context"

	internalLoader "github.com/Kalai-nithi-guhan/next-deploy/internal/openapi/loader"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/analyzer"
	pkgopenapi "github.com/Kalai-nithi-guhan/next-deploy/pkg/openapi"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/orchestrator"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/render"
)

// RenderOptions describes per-request values mirrored into the form controls.
type RenderOptions = render.RenderOptions

// NewLoader returns the file/fs.FS document loader.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	return internalLoader.New(pkgopenapi.NewLoaderOptions(options...))
}

// GenerateHTML loads source, builds the form for operationID and renders it
// with the named renderer (empty selects vanilla).
func GenerateHTML(ctx context.Context, source pkgopenapi.Source, operationID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source:      source,
		OperationID: operationID,
		Renderer:    rendererName,
	})
}

// GenerateAnalyzerHTML renders the embedded analyzer form with values
// mirrored into its controls.
func GenerateAnalyzerHTML(ctx context.Context, values map[string]string, options ...orchestrator.Option) ([]byte, error) {
	loader := NewLoader(pkgopenapi.WithFileSystem(analyzer.DocumentFS()))
	gen := orchestrator.New(append([]orchestrator.Option{orchestrator.WithLoader(loader)}, options...)...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:        pkgopenapi.SourceFromFS(analyzer.DocumentName),
		OperationID:   analyzer.OperationID,
		RenderOptions: RenderOptions{Values: values},
	})
}
