package gotemplate_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/flosch/pongo2/v6"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()
	options = append([]gotemplate.Option{gotemplate.WithFS(os.DirFS("testdata"))}, options...)
	engine, err := gotemplate.New(options...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_Execute(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	if err := engine.Execute(&buf, "hello", map[string]any{"name": "Ada"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := buf.String(); got != "Hello Ada!\n" {
		t.Fatalf("unexpected output %q", got)
	}

	// explicit extension resolves to the same cached template
	got, err := engine.ExecuteString("hello.html", map[string]any{"name": "Grace"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != "Hello Grace!\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_EscapesByDefault(t *testing.T) {
	got, err := newEngine(t).ExecuteString("hello", map[string]any{"name": "<b>x</b>"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.Contains(got, "<b>") {
		t.Fatalf("expected escaped output, got %q", got)
	}
}

func TestEngine_GlobalsAndStructData(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"site": map[string]any{"brand": "AgriSmart"},
	}))

	type page struct {
		Page string `json:"page"`
	}
	got, err := engine.ExecuteString("use-global", page{Page: "about"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != "AgriSmart/about\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_Filters(t *testing.T) {
	engine := newEngine(t, gotemplate.WithFilter("shout_test", func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(strings.ToUpper(in.String())), nil
	}))

	got, err := engine.ExecuteString("trimmed", map[string]any{"value": "  45.2 "})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != "[45.2]" {
		t.Fatalf("unexpected trim output %q", got)
	}

	got, err = engine.ExecuteString("shouted", map[string]any{"word": "clay"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != "CLAY" {
		t.Fatalf("unexpected filter output %q", got)
	}
}

func TestEngine_BaseDirShadowsFS(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hello.html"), []byte("Override {{ name }}"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	engine, err := gotemplate.New(
		gotemplate.WithBaseDir(dir),
		gotemplate.WithFS(fstest.MapFS{
			"hello.html": &fstest.MapFile{Data: []byte("Embedded {{ name }}")},
			"other.html": &fstest.MapFile{Data: []byte("Other {{ name }}")},
		}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	tests := map[string]string{"hello": "Override Ada", "other": "Other Ada"}
	for name, want := range tests {
		got, err := engine.ExecuteString(name, map[string]any{"name": "Ada"})
		if err != nil {
			t.Fatalf("execute %s: %v", name, err)
		}
		if got != want {
			t.Fatalf("%s: want %q, got %q", name, want, got)
		}
	}
}

func TestEngine_Errors(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without template sources")
	}
	if _, err := newEngine(t).ExecuteString("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}
