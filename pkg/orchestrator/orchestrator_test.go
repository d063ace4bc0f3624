package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/analyzer"
	pkgmodel "github.com/Kalai-nithi-guhan/next-deploy/pkg/model"
	pkgopenapi "github.com/Kalai-nithi-guhan/next-deploy/pkg/openapi"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/render"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/testsupport"

	internalLoader "github.com/Kalai-nithi-guhan/next-deploy/internal/openapi/loader"
)

func analyzerOrchestrator(options ...Option) *Orchestrator {
	loader := internalLoader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(analyzer.DocumentFS())))
	return New(append([]Option{WithLoader(loader)}, options...)...)
}

func analyzerRequest() Request {
	return Request{
		Source:      pkgopenapi.SourceFromFS(analyzer.DocumentName),
		OperationID: analyzer.OperationID,
	}
}

func TestGenerate_AnalyzerHTML(t *testing.T) {
	html, err := analyzerOrchestrator().Generate(testsupport.Context(), analyzerRequest())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := string(html)
	for _, want := range []string{
		`name="humidity"`,
		`max="100"`,
		`<select`,
		"Fertilizer Recommendations",
		"Analyze &amp; Recommend",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestBuild_AppliesEmbeddedUISchemaThenCallerDecorators(t *testing.T) {
	var seen []string
	capture := pkgmodel.DecoratorFunc(func(form *pkgmodel.FormModel) error {
		for _, field := range form.Fields {
			seen = append(seen, field.Name)
		}
		return nil
	})

	form, err := analyzerOrchestrator(WithUIDecorators(capture)).Build(testsupport.Context(), analyzerRequest())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	var want []string
	for _, name := range analyzer.FieldNames() {
		want = append(want, string(name))
	}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("decorator saw wrong order (-want +got):\n%s", diff)
	}
	if got := form.Fields[1].Label; got != "Humidity (%)" {
		t.Fatalf("expected ui schema label, got %q", got)
	}
}

func TestBuild_WithoutUISchemaKeepsLexicalOrder(t *testing.T) {
	form, err := analyzerOrchestrator(WithUISchemaFS(nil)).Build(testsupport.Context(), analyzerRequest())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if form.Fields[0].Name != "humidity" {
		t.Fatalf("expected lexical order, got first field %q", form.Fields[0].Name)
	}
}

func TestBuild_Errors(t *testing.T) {
	orch := analyzerOrchestrator()

	if _, err := orch.Build(testsupport.Context(), Request{Source: pkgopenapi.SourceFromFS(analyzer.DocumentName)}); err == nil {
		t.Fatalf("expected missing operation id error")
	}
	if _, err := orch.Build(testsupport.Context(), Request{OperationID: "x"}); err == nil {
		t.Fatalf("expected missing source error")
	}

	req := analyzerRequest()
	req.OperationID = "missing"
	if _, err := orch.Build(testsupport.Context(), req); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := orch.Build(ctx, analyzerRequest()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGenerate_UsesNamedRenderer(t *testing.T) {
	capture := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(capture)

	req := analyzerRequest()
	req.Renderer = capture.Name()
	req.RenderOptions = render.RenderOptions{Values: map[string]string{"humidity": "45"}}

	out, err := analyzerOrchestrator(WithRegistry(registry)).Generate(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != analyzer.OperationID {
		t.Fatalf("unexpected output %q", out)
	}
	if capture.options.Value("humidity") != "45" {
		t.Fatalf("render options not forwarded: %+v", capture.options)
	}

	req.Renderer = "missing"
	if _, err := analyzerOrchestrator(WithRegistry(registry)).Generate(testsupport.Context(), req); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestRenderer_FallsBackToFirstRegistered(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(&captureRenderer{})

	renderer, err := New(WithRegistry(registry), WithUISchemaFS(nil)).Renderer("")
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	if renderer.Name() != "capture" {
		t.Fatalf("expected capture renderer, got %q", renderer.Name())
	}
}

func TestRenderer_DefaultRendererOption(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("html"))
	registry.MustRegister(namedRenderer("text"))

	orch := New(WithRegistry(registry), WithUISchemaFS(nil), WithDefaultRenderer("text"))
	renderer, err := orch.Renderer("")
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	if renderer.Name() != "text" {
		t.Fatalf("expected text renderer, got %q", renderer.Name())
	}
	if r, _ := New(WithRegistry(registry), WithUISchemaFS(nil)).Renderer(""); r.Name() != "html" {
		t.Fatalf("expected first registered renderer, got %q", r.Name())
	}
}

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, pkgmodel.FormModel, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

type captureRenderer struct {
	options render.RenderOptions
}

func (r *captureRenderer) Name() string        { return "capture" }
func (r *captureRenderer) ContentType() string { return "text/plain" }

func (r *captureRenderer) Render(_ context.Context, form pkgmodel.FormModel, opts render.RenderOptions) ([]byte, error) {
	r.options = opts
	return []byte(form.OperationID), nil
}
