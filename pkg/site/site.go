// Package site serves the AgriSmart pages: home, about, contact and the soil
// analyzer. Pages are pongo2 templates filled from the content document; the
// analyzer form is generated from its OpenAPI description.
package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/Kalai-nithi-guhan/next-deploy/internal/logging"
	internalLoader "github.com/Kalai-nithi-guhan/next-deploy/internal/openapi/loader"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/analyzer"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/content"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/model"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/navigation"
	pkgopenapi "github.com/Kalai-nithi-guhan/next-deploy/pkg/openapi"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/orchestrator"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/render/template/gotemplate"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/renderers/vanilla"
)

// Option configures the Server.
type Option func(*options)

type options struct {
	logger       *zap.Logger
	content      *content.Document
	templatesDir string
	uiSchemaFS   fs.FS
	uiSchemaSet  bool
	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
}

// WithLogger sets the logger used for access logs and handler errors.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithContent replaces the embedded page copy.
func WithContent(doc content.Document) Option {
	return func(o *options) {
		o.content = &doc
	}
}

// WithTemplatesDir serves page templates from dir, falling back to the
// embedded copies for files it does not contain.
func WithTemplatesDir(dir string) Option {
	return func(o *options) {
		o.templatesDir = dir
	}
}

// WithUISchemaFS replaces the embedded analyzer UI schema.
func WithUISchemaFS(fsys fs.FS) Option {
	return func(o *options) {
		o.uiSchemaFS = fsys
		o.uiSchemaSet = true
	}
}

// WithThemeSelector swaps the selector used to resolve the brand theme.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *options) {
		o.selector = selector
	}
}

// WithTheme chooses the theme and variant passed to the selector.
func WithTheme(name, variant string) Option {
	return func(o *options) {
		o.themeName = name
		o.themeVariant = variant
	}
}

// Server holds everything the handlers read. All fields are immutable after
// New returns, so one Server is shared across requests.
type Server struct {
	logger    *zap.Logger
	content   content.Document
	routes    []navigation.Route
	pages     *gotemplate.Engine
	generator *orchestrator.Orchestrator
	form      model.FormModel
	theme     themeView
}

// New builds the analyzer form, loads templates and resolves the theme.
func New(ctx context.Context, opts ...Option) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("site: context is required")
	}
	cfg := options{themeName: BrandThemeName, themeVariant: BaseVariant}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	doc := cfg.content
	if doc == nil {
		loaded, err := content.Default()
		if err != nil {
			return nil, fmt.Errorf("site: %w", err)
		}
		doc = &loaded
	}

	themeCfg, err := resolveTheme(cfg)
	if err != nil {
		return nil, err
	}
	view := newThemeView(themeCfg)

	generator := newGenerator(cfg)
	form, err := generator.Build(ctx, AnalyzerRequest())
	if err != nil {
		return nil, fmt.Errorf("site: build analyzer form: %w", err)
	}

	engineOpts := []gotemplate.Option{
		gotemplate.WithName("site"),
		gotemplate.WithFS(TemplatesFS()),
		gotemplate.WithExtension(".html"),
		gotemplate.WithGlobalData(map[string]any{
			"site":  doc.Site,
			"theme": view,
		}),
	}
	if cfg.templatesDir != "" {
		engineOpts = append(engineOpts, gotemplate.WithBaseDir(cfg.templatesDir))
	}
	pages, err := gotemplate.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("site: configure templates: %w", err)
	}

	return &Server{
		logger:    cfg.logger,
		content:   *doc,
		routes:    navigation.DefaultRoutes(),
		pages:     pages,
		generator: generator,
		form:      form,
		theme:     view,
	}, nil
}

// AnalyzerRequest selects the analyzer operation from its embedded document.
func AnalyzerRequest() orchestrator.Request {
	return orchestrator.Request{
		Source:      pkgopenapi.SourceFromFS(analyzer.DocumentName),
		OperationID: analyzer.OperationID,
	}
}

// NewGenerator returns an orchestrator wired to the embedded analyzer
// document. uiSchemaFS replaces the embedded UI schema when non-nil.
func NewGenerator(uiSchemaFS fs.FS) *orchestrator.Orchestrator {
	return newGenerator(options{uiSchemaFS: uiSchemaFS, uiSchemaSet: uiSchemaFS != nil})
}

func newGenerator(cfg options) *orchestrator.Orchestrator {
	loader := internalLoader.New(pkgopenapi.NewLoaderOptions(
		pkgopenapi.WithFileSystem(analyzer.DocumentFS()),
	))
	genOpts := []orchestrator.Option{orchestrator.WithLoader(loader)}
	if cfg.uiSchemaSet {
		genOpts = append(genOpts, orchestrator.WithUISchemaFS(cfg.uiSchemaFS))
	}
	return orchestrator.New(genOpts...)
}

func resolveTheme(cfg options) (*theme.RendererConfig, error) {
	selector := cfg.selector
	if selector == nil {
		var err error
		selector, err = NewThemeSelector(cfg.themeVariant, BrandManifest())
		if err != nil {
			return nil, err
		}
	}
	selection, err := selector.Select(cfg.themeName, cfg.themeVariant)
	if err != nil {
		return nil, fmt.Errorf("site: select theme: %w", err)
	}
	return RendererConfig(selection)
}

// Form returns the analyzer form model served by this Server.
func (s *Server) Form() model.FormModel {
	return s.form
}

// Handler returns the routed, access-logged handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/static/form/", http.StripPrefix("/static/form/", http.FileServerFS(vanilla.AssetsFS())))
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServerFS(StaticFS())))
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/about", s.staticPage("about", "About", func(doc content.Document) any { return doc.About }))
	mux.HandleFunc("/contact", s.staticPage("contact", "Contact", func(doc content.Document) any { return doc.Contact }))
	mux.HandleFunc("/analyzer", s.handleAnalyzer)
	mux.HandleFunc("/", s.handleRoot)
	return logging.Middleware(s.logger, mux)
}
