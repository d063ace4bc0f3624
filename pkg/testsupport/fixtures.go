// Package testsupport holds fixtures shared by package tests: the analyzer
// document run through the loader, parser, builder and UI schema stages.
package testsupport

import (
	"context"
	"testing"

	"github.com/Kalai-nithi-guhan/next-deploy/internal/openapi/loader"
	"github.com/Kalai-nithi-guhan/next-deploy/internal/openapi/parser"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/analyzer"
	pkgmodel "github.com/Kalai-nithi-guhan/next-deploy/pkg/model"
	pkgopenapi "github.com/Kalai-nithi-guhan/next-deploy/pkg/openapi"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/uischema"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// AnalyzerOperation loads and parses the embedded analyzer document.
func AnalyzerOperation(t *testing.T) pkgopenapi.Operation {
	t.Helper()

	l := loader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(analyzer.DocumentFS())))
	doc, err := l.Load(Context(), pkgopenapi.SourceFromFS(analyzer.DocumentName))
	if err != nil {
		t.Fatalf("load analyzer document: %v", err)
	}
	ops, err := parser.New(pkgopenapi.NewParserOptions()).Operations(Context(), doc)
	if err != nil {
		t.Fatalf("parse analyzer document: %v", err)
	}
	op, ok := ops[analyzer.OperationID]
	if !ok {
		t.Fatalf("operation %q missing", analyzer.OperationID)
	}
	return op
}

// AnalyzerForm returns the analyzer form model with the embedded UI schema
// applied.
func AnalyzerForm(t *testing.T) pkgmodel.FormModel {
	t.Helper()

	form, err := pkgmodel.NewBuilder().Build(AnalyzerOperation(t))
	if err != nil {
		t.Fatalf("build analyzer form: %v", err)
	}
	store, err := uischema.LoadFS(uischema.EmbeddedFS())
	if err != nil {
		t.Fatalf("load ui schema: %v", err)
	}
	if err := uischema.NewDecorator(store).Decorate(&form); err != nil {
		t.Fatalf("decorate analyzer form: %v", err)
	}
	return form
}
