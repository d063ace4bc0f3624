package site

import (
	"fmt"
	"sort"

	theme "github.com/goliatone/go-theme"
)

const (
	// BrandThemeName identifies the built-in theme.
	BrandThemeName = "agrismart"
	// BaseVariant is served from the manifest's base tokens.
	BaseVariant = "light"
)

// BrandManifest describes the site palette. Tokens become CSS custom
// properties; the dark variant only overrides what changes.
func BrandManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    BrandThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":       "#166534",
			"brand-dark":  "#14532d",
			"brand-light": "#bbf7d0",
			"accent":      "#16a34a",
			"surface":     "#ffffff",
			"surface-alt": "#f0fdf4",
			"text":        "#111827",
			"text-muted":  "#4b5563",
			"border":      "#d1d5db",
		},
		Assets: theme.Assets{
			Prefix: "/static",
			Files: map[string]string{
				"site.stylesheet":  "site.css",
				"form.stylesheet":  "form/agrismart-form.css",
				"analyzer.runtime": "form/agrismart-analyzer.js",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"surface":     "#0f172a",
					"surface-alt": "#052e16",
					"text":        "#f9fafb",
					"text-muted":  "#cbd5e1",
					"border":      "#334155",
				},
			},
		},
	}
}

// NewThemeSelector registers the manifests with a go-theme registry and
// returns a selector over it. The first manifest is the default theme.
func NewThemeSelector(defaultVariant string, manifests ...*theme.Manifest) (theme.ThemeSelector, error) {
	registry := theme.NewRegistry()
	defaultTheme := ""
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("site theme: register %q: %w", manifest.Name, err)
		}
		if defaultTheme == "" {
			defaultTheme = manifest.Name
		}
	}
	if defaultTheme == "" {
		return nil, fmt.Errorf("site theme: at least one manifest is required")
	}
	return theme.Selector{
		Registry:       registry,
		DefaultTheme:   defaultTheme,
		DefaultVariant: defaultVariant,
	}, nil
}

// RendererConfig resolves tokens, CSS variables and asset URLs for a
// selection. The base palette is the light variant; any other variant must
// be declared by the manifest.
func RendererConfig(selection *theme.Selection) (*theme.RendererConfig, error) {
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("site theme: selection has no manifest")
	}
	if variant := selection.Variant; variant != "" && variant != BaseVariant {
		if _, ok := selection.Manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("site theme: theme %q has no variant %q", selection.Manifest.Name, variant)
		}
	}
	cfg := selection.RendererTheme(nil)
	return &cfg, nil
}

type cssVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type themeView struct {
	Name    string            `json:"name"`
	Variant string            `json:"variant"`
	Vars    []cssVar          `json:"vars"`
	Assets  map[string]string `json:"assets"`
}

func newThemeView(cfg *theme.RendererConfig) themeView {
	view := themeView{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Assets: map[string]string{
			"stylesheet": cfg.AssetURL("site.stylesheet"),
			"form":       cfg.AssetURL("form.stylesheet"),
			"runtime":    cfg.AssetURL("analyzer.runtime"),
		},
	}
	for name, value := range cfg.CSSVars {
		view.Vars = append(view.Vars, cssVar{Name: name, Value: value})
	}
	sort.Slice(view.Vars, func(i, j int) bool { return view.Vars[i].Name < view.Vars[j].Name })
	return view
}
