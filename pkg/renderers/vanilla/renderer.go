package vanilla

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/model"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/render"
	rendertemplate "github.com/Kalai-nithi-guhan/next-deploy/pkg/render/template"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/render/template/gotemplate"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/uischema"
)

// RuntimeAttribute marks forms the submit runtime takes over.
const RuntimeAttribute = "data-runtime"

type Option func(*config)

type config struct {
	templateFS fs.FS
	executor   rendertemplate.Executor
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithExecutor renders the "form" template through executor instead of the
// built-in pongo2 engine.
func WithExecutor(executor rendertemplate.Executor) Option {
	return func(cfg *config) {
		if executor != nil {
			cfg.executor = executor
		}
	}
}

// Renderer emits a plain HTML form whose controls carry the native
// constraints (required, min, max, step) declared by the form model.
type Renderer struct {
	templates rendertemplate.Executor
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	executor := cfg.executor
	if executor == nil {
		engine, err := gotemplate.New(
			gotemplate.WithName("vanilla"),
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		executor = engine
	}
	return &Renderer{templates: executor}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the form markup. Values in options are mirrored into the
// controls verbatim.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view, err := buildFormView(form, options)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: %w", err)
	}
	var buf bytes.Buffer
	if err := r.templates.Execute(&buf, "form", map[string]any{"form": view}); err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return buf.Bytes(), nil
}

type formView struct {
	ID          string       `json:"id"`
	OperationID string       `json:"operationId"`
	Action      string       `json:"action"`
	Method      string       `json:"method"`
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	Fields      []fieldView  `json:"fields"`
	Actions     []actionView `json:"actions"`
}

type fieldView struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Label       string       `json:"label"`
	Control     string       `json:"control"`
	InputType   string       `json:"inputType"`
	Value       string       `json:"value"`
	Placeholder string       `json:"placeholder"`
	Help        string       `json:"help"`
	Unit        string       `json:"unit"`
	Class       string       `json:"class"`
	Required    bool         `json:"required"`
	Min         string       `json:"min"`
	Max         string       `json:"max"`
	Step        string       `json:"step"`
	Options     []optionView `json:"options"`
}

type optionView struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type actionView struct {
	Kind  string `json:"kind"`
	Type  string `json:"type"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

func buildFormView(form model.FormModel, options render.RenderOptions) (formView, error) {
	view := formView{
		ID:          "form-" + form.OperationID,
		OperationID: form.OperationID,
		Action:      firstNonEmpty(options.Action, form.Endpoint),
		Method:      strings.ToLower(firstNonEmpty(options.Method, form.Method, "post")),
		Title:       firstNonEmpty(form.UIHints[uischema.TitleHint], form.Summary),
		Subtitle:    form.UIHints[uischema.SubtitleHint],
	}

	for _, field := range form.Fields {
		view.Fields = append(view.Fields, buildFieldView(view.ID, field, options.Value(field.Name)))
	}

	actions, err := uischema.Actions(form)
	if err != nil {
		return formView{}, err
	}
	for _, action := range actions {
		view.Actions = append(view.Actions, actionView{
			Kind:  firstNonEmpty(action.Kind, "secondary"),
			Type:  firstNonEmpty(action.Type, "button"),
			Label: action.Label,
			Icon:  action.Icon,
		})
	}
	if len(view.Actions) == 0 {
		view.Actions = []actionView{{Kind: "primary", Type: "submit", Label: firstNonEmpty(form.UIHints["submitLabel"], "Submit")}}
	}
	return view, nil
}

func buildFieldView(formID string, field model.Field, value string) fieldView {
	view := fieldView{
		ID:          formID + "-" + field.Name,
		Name:        field.Name,
		Label:       firstNonEmpty(field.Label, field.Name),
		Control:     "input",
		InputType:   firstNonEmpty(field.UIHints["inputType"], "text"),
		Value:       value,
		Placeholder: field.Placeholder,
		Help:        field.Description,
		Unit:        field.UIHints["unit"],
		Class:       field.UIHints["cssClass"],
		Required:    field.Required,
	}
	if rule, ok := field.Rule(model.ValidationRuleMin); ok {
		view.Min = rule.Params["value"]
	}
	if rule, ok := field.Rule(model.ValidationRuleMax); ok {
		view.Max = rule.Params["value"]
	}
	if rule, ok := field.Rule(model.ValidationRuleStep); ok {
		view.Step = rule.Params["value"]
	}
	if step := field.UIHints["step"]; step != "" {
		view.Step = step
	}

	if len(field.Enum) > 0 {
		view.Control = "select"
		for _, option := range field.Enum {
			raw := fmt.Sprint(option)
			view.Options = append(view.Options, optionView{
				Value:    raw,
				Label:    model.DefaultLabeler(raw),
				Selected: raw == value,
			})
		}
	}
	return view
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
