package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	internalLoader "github.com/Kalai-nithi-guhan/next-deploy/internal/openapi/loader"
	internalParser "github.com/Kalai-nithi-guhan/next-deploy/internal/openapi/parser"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/model"
	pkgopenapi "github.com/Kalai-nithi-guhan/next-deploy/pkg/openapi"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/render"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/renderers/vanilla"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/uischema"
)

// DefaultRenderer is used when neither the request nor WithDefaultRenderer
// names one.
const DefaultRenderer = "vanilla"

// Option customises an Orchestrator.
type Option func(*Orchestrator)

// WithLoader replaces the file/fs.FS loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) { o.loader = loader }
}

// WithRegistry replaces the renderer registry. The default registry only
// holds the vanilla HTML renderer.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) { o.registry = registry }
}

// WithDefaultRenderer names the renderer used when Request.Renderer is empty.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) { o.fallback = name }
}

// WithUIDecorators appends decorators. They run after the UI schema overlay.
func WithUIDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) { o.decorators = append(o.decorators, decorators...) }
}

// WithUISchemaFS replaces the embedded UI schema documents. nil turns the
// overlay off so fields keep the builder's lexical order.
func WithUISchemaFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.uiSchema = fsys
		o.uiSchemaSet = true
	}
}

// Orchestrator turns an OpenAPI operation into a decorated form model and
// renders it.
type Orchestrator struct {
	loader     pkgopenapi.Loader
	parser     pkgopenapi.Parser
	builder    model.Builder
	registry   *render.Registry
	fallback   string
	decorators []model.Decorator

	uiSchema    fs.FS
	uiSchemaSet bool

	// setupErr is reported by every Build call.
	setupErr error
}

// New applies options and fills in the built-in loader, parser, builder,
// registry and UI schema overlay.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}
	o.setup()
	return o
}

// Request selects an operation from a document and how to render it.
type Request struct {
	// Source is loaded when Document is nil.
	Source   pkgopenapi.Source
	Document *pkgopenapi.Document

	OperationID   string
	Renderer      string
	RenderOptions render.RenderOptions
}

// Generate is Build followed by Render.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	form, err := o.Build(ctx, req)
	if err != nil {
		return nil, err
	}
	return o.Render(ctx, form, req.Renderer, req.RenderOptions)
}

// Build loads the document, picks the requested operation and returns its
// decorated form model.
func (o *Orchestrator) Build(ctx context.Context, req Request) (model.FormModel, error) {
	op, err := o.operation(ctx, req)
	if err != nil {
		return model.FormModel{}, err
	}
	form, err := o.builder.Build(op)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: build form model: %w", err)
	}
	for _, d := range o.decorators {
		if d == nil {
			continue
		}
		if err := d.Decorate(&form); err != nil {
			return model.FormModel{}, fmt.Errorf("orchestrator: decorate %s: %w", form.OperationID, err)
		}
	}
	return form, nil
}

func (o *Orchestrator) operation(ctx context.Context, req Request) (pkgopenapi.Operation, error) {
	switch {
	case ctx == nil:
		return pkgopenapi.Operation{}, errors.New("orchestrator: context is required")
	case o.setupErr != nil:
		return pkgopenapi.Operation{}, o.setupErr
	case req.OperationID == "":
		return pkgopenapi.Operation{}, errors.New("orchestrator: operation id is required")
	}
	if err := ctx.Err(); err != nil {
		return pkgopenapi.Operation{}, err
	}

	var doc pkgopenapi.Document
	switch {
	case req.Document != nil:
		doc = *req.Document
	case req.Source != nil:
		loaded, err := o.loader.Load(ctx, req.Source)
		if err != nil {
			return pkgopenapi.Operation{}, fmt.Errorf("orchestrator: load document: %w", err)
		}
		doc = loaded
	default:
		return pkgopenapi.Operation{}, errors.New("orchestrator: source or document is required")
	}

	ops, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return pkgopenapi.Operation{}, fmt.Errorf("orchestrator: parse operations: %w", err)
	}
	op, ok := ops[req.OperationID]
	if !ok {
		return pkgopenapi.Operation{}, fmt.Errorf("orchestrator: operation %q not found in %s", req.OperationID, doc.Location())
	}
	return op, nil
}

// Render renders form with the named renderer (see Renderer).
func (o *Orchestrator) Render(ctx context.Context, form model.FormModel, name string, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	renderer, err := o.Renderer(name)
	if err != nil {
		return nil, err
	}
	out, err := renderer.Render(ctx, form, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %s renderer: %w", renderer.Name(), err)
	}
	return out, nil
}

// Renderer looks up name. An empty name means the default renderer, or the
// first registered one when the default is not registered.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}
	if name != "" {
		r, err := o.registry.Get(name)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
		return r, nil
	}
	if r, err := o.registry.Get(o.fallback); err == nil {
		return r, nil
	}
	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) setup() {
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	o.builder = model.NewBuilder()
	if o.fallback == "" {
		o.fallback = DefaultRenderer
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		html, err := vanilla.New()
		if err != nil {
			o.setupErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(html)
	}

	if !o.uiSchemaSet {
		o.uiSchema = uischema.EmbeddedFS()
	}
	if o.uiSchema == nil {
		return
	}
	store, err := uischema.LoadFS(o.uiSchema)
	if err != nil {
		o.setupErr = fmt.Errorf("orchestrator: load ui schema: %w", err)
		return
	}
	if !store.Empty() {
		// caller decorators see final labels and order
		o.decorators = append([]model.Decorator{uischema.NewDecorator(store)}, o.decorators...)
	}
}
