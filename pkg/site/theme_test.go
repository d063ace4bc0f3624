package site

import (
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"
)

func TestRendererConfig_MergesVariant(t *testing.T) {
	selector, err := NewThemeSelector(BaseVariant, BrandManifest())
	if err != nil {
		t.Fatalf("selector: %v", err)
	}

	selection, err := selector.Select("", "dark")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	cfg, err := RendererConfig(selection)
	if err != nil {
		t.Fatalf("renderer config: %v", err)
	}

	if cfg.Theme != BrandThemeName || cfg.Variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Tokens["text"] != "#f9fafb" || cfg.CSSVars["--text"] != "#f9fafb" {
		t.Fatalf("variant token not applied: %v", cfg.Tokens)
	}
	if cfg.CSSVars["--accent"] != BrandManifest().Tokens["accent"] {
		t.Fatalf("base token lost")
	}

	gotAssets := map[string]string{
		"site":    cfg.AssetURL("site.stylesheet"),
		"runtime": cfg.AssetURL("analyzer.runtime"),
		"missing": cfg.AssetURL("nope"),
	}
	wantAssets := map[string]string{
		"site":    "/static/site.css",
		"runtime": "/static/form/agrismart-analyzer.js",
		"missing": "",
	}
	if diff := cmp.Diff(wantAssets, gotAssets); diff != "" {
		t.Fatalf("asset urls mismatch (-want +got):\n%s", diff)
	}
}

func TestSelector_ResolvesThroughRegistry(t *testing.T) {
	harvest := &theme.Manifest{
		Name:    "harvest",
		Version: "0.1.0",
		Tokens:  map[string]string{"brand": "#b45309"},
	}
	selector, err := NewThemeSelector(BaseVariant, BrandManifest(), harvest)
	if err != nil {
		t.Fatalf("selector: %v", err)
	}

	selection, err := selector.Select("harvest", "")
	if err != nil {
		t.Fatalf("select harvest: %v", err)
	}
	cfg, err := RendererConfig(selection)
	if err != nil {
		t.Fatalf("renderer config: %v", err)
	}
	if cfg.CSSVars["--brand"] != "#b45309" || cfg.Variant != BaseVariant {
		t.Fatalf("unexpected harvest config %s %v", cfg.Variant, cfg.CSSVars)
	}

	// Unknown themes fall back to the first registered manifest.
	selection, err = selector.Select("unknown", "")
	if err != nil {
		t.Fatalf("select unknown: %v", err)
	}
	if selection.Manifest.Name != BrandThemeName {
		t.Fatalf("expected fallback to %s, got %s", BrandThemeName, selection.Manifest.Name)
	}
}

func TestSelector_Errors(t *testing.T) {
	if _, err := NewThemeSelector(BaseVariant); err == nil {
		t.Fatalf("expected error without manifests")
	}
	if _, err := NewThemeSelector(BaseVariant, &theme.Manifest{Name: "broken"}); err == nil {
		t.Fatalf("expected manifest validation error")
	}
	if _, err := RendererConfig(nil); err == nil {
		t.Fatalf("expected error for nil selection")
	}

	selector, err := NewThemeSelector(BaseVariant, BrandManifest())
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	selection, err := selector.Select("", "sepia")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := RendererConfig(selection); err == nil {
		t.Fatalf("expected unknown variant error")
	}
}
