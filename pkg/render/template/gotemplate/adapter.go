package gotemplate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/render/template"
)

// Option configures an Engine.
type Option func(*settings)

type settings struct {
	name    string
	dir     string
	files   fs.FS
	ext     string
	filters map[string]pongo2.FilterFunction
	globals map[string]any
}

// WithBaseDir adds an on-disk template directory. It wins over WithFS so
// local copies can shadow the embedded templates during development.
func WithBaseDir(dir string) Option {
	return func(s *settings) { s.dir = strings.TrimSpace(dir) }
}

// WithFS adds an fs.FS template source.
func WithFS(files fs.FS) Option {
	return func(s *settings) { s.files = files }
}

// WithName names the pongo2 template set (shows up in pongo2 errors).
func WithName(name string) Option {
	return func(s *settings) {
		if name = strings.TrimSpace(name); name != "" {
			s.name = name
		}
	}
}

// WithExtension sets the extension appended to bare template names.
func WithExtension(ext string) Option {
	return func(s *settings) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		s.ext = "." + strings.TrimPrefix(ext, ".")
	}
}

// WithFilter registers a pongo2 filter. pongo2 filters are global, so a
// name that is already registered keeps its first definition.
func WithFilter(name string, fn pongo2.FilterFunction) Option {
	return func(s *settings) {
		if s.filters == nil {
			s.filters = map[string]pongo2.FilterFunction{}
		}
		s.filters[strings.TrimSpace(name)] = fn
	}
}

// WithGlobalData exposes values to every template rendered by the engine.
func WithGlobalData(data map[string]any) Option {
	return func(s *settings) {
		if s.globals == nil {
			s.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			s.globals[key] = value
		}
	}
}

// Engine is a pongo2 template set with a per-name cache of parsed templates.
// It is safe for concurrent use.
type Engine struct {
	set *pongo2.TemplateSet
	ext string

	mu    sync.RWMutex
	cache map[string]*pongo2.Template
}

var _ template.Executor = (*Engine)(nil)

// New builds an Engine. At least one of WithBaseDir or WithFS is required.
func New(options ...Option) (*Engine, error) {
	s := settings{name: "agrismart", ext: ".html"}
	for _, opt := range options {
		if opt != nil {
			opt(&s)
		}
	}

	loaders, err := s.loaders()
	if err != nil {
		return nil, err
	}

	set := pongo2.NewSet(s.name, loaders...)
	if set.Globals == nil {
		set.Globals = pongo2.Context{}
	}
	if len(s.globals) > 0 {
		globals, err := toContext(s.globals)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: global data: %w", err)
		}
		set.Globals.Update(globals)
	}

	if err := registerFilters(s.filters); err != nil {
		return nil, err
	}

	return &Engine{
		set:   set,
		ext:   s.ext,
		cache: make(map[string]*pongo2.Template),
	}, nil
}

func (s settings) loaders() ([]pongo2.TemplateLoader, error) {
	var loaders []pongo2.TemplateLoader
	if s.dir != "" {
		local, err := pongo2.NewLocalFileSystemLoader(s.dir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: template dir %q: %w", s.dir, err)
		}
		loaders = append(loaders, local)
	}
	if s.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(s.files))
	}
	if len(loaders) == 0 {
		return nil, errors.New("gotemplate: no template source configured")
	}
	return loaders, nil
}

// Execute renders the named template into w. Struct data is addressed in
// templates by its json field names.
func (e *Engine) Execute(w io.Writer, name string, data any) error {
	if e == nil {
		return errors.New("gotemplate: nil engine")
	}
	tpl, err := e.lookup(name)
	if err != nil {
		return err
	}
	ctx, err := toContext(data)
	if err != nil {
		return fmt.Errorf("gotemplate: %s: convert data: %w", name, err)
	}
	if err := tpl.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("gotemplate: %s: %w", name, err)
	}
	return nil
}

// ExecuteString is Execute into a string.
func (e *Engine) ExecuteString(name string, data any) (string, error) {
	var b strings.Builder
	if err := e.Execute(&b, name, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (e *Engine) lookup(name string) (*pongo2.Template, error) {
	file := name
	if !strings.HasSuffix(file, e.ext) {
		file += e.ext
	}

	e.mu.RLock()
	tpl, ok := e.cache[file]
	e.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	tpl, err := e.set.FromFile(file)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load %s: %w", file, err)
	}
	e.mu.Lock()
	e.cache[file] = tpl
	e.mu.Unlock()
	return tpl, nil
}

// toContext round-trips data through JSON so templates see the same field
// names as the JSON API.
func toContext(data any) (pongo2.Context, error) {
	if data == nil {
		return pongo2.Context{}, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	ctx := pongo2.Context{}
	if err := json.Unmarshal(raw, &ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}

var filtersMu sync.Mutex

func registerFilters(filters map[string]pongo2.FilterFunction) error {
	filtersMu.Lock()
	defer filtersMu.Unlock()

	if !pongo2.FilterExists("trim") {
		if err := pongo2.RegisterFilter("trim", trimFilter); err != nil {
			return fmt.Errorf("gotemplate: register filter trim: %w", err)
		}
	}
	for name, fn := range filters {
		if name == "" || fn == nil || pongo2.FilterExists(name) {
			continue
		}
		if err := pongo2.RegisterFilter(name, fn); err != nil {
			return fmt.Errorf("gotemplate: register filter %s: %w", name, err)
		}
	}
	return nil
}

func trimFilter(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}
