package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/model"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, model.FormModel, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("vanilla"))
	registry.MustRegister(namedRenderer("tui"))

	if err := registry.Register(namedRenderer("tui")); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected empty name error")
	}
	if diff := cmp.Diff([]string{"vanilla", "tui"}, registry.List()); diff != "" {
		t.Fatalf("list should keep registration order (-want +got):\n%s", diff)
	}
	if r, err := registry.Get("tui"); err != nil || r.Name() != "tui" {
		t.Fatalf("get tui: %v %v", r, err)
	}
	if _, err := registry.Get("pdf"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestRenderOptionsValue(t *testing.T) {
	var empty render.RenderOptions
	if got := empty.Value("humidity"); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
	opts := render.RenderOptions{Values: map[string]string{"humidity": " 45 "}}
	if got := opts.Value("humidity"); got != " 45 " {
		t.Fatalf("expected verbatim value, got %q", got)
	}
}
