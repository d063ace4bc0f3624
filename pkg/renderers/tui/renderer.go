package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/model"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/render"
)

// Renderer implements render.Renderer for terminal sessions. Each field is
// prompted in form order; answers that a browser would refuse are reported
// and asked again. Accepted answers are kept as the raw typed text.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{outputFormat: OutputFormatJSON}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(terminal.Stdio{})
	}
	switch r.outputFormat {
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Render prompts every field and serializes the answers.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	values, err := r.Collect(ctx, form, opts)
	if err != nil {
		return nil, err
	}
	return r.serialize(form, values)
}

// Collect prompts every top-level field and returns the accepted raw answers
// keyed by field name. Values in opts seed the prompt defaults.
func (r *Renderer) Collect(ctx context.Context, form model.FormModel, opts render.RenderOptions) (map[string]string, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	values := make(map[string]string, len(form.Fields))
	for _, field := range form.Fields {
		var (
			answer string
			err    error
		)
		switch {
		case len(field.Enum) > 0:
			answer, err = r.promptEnum(ctx, field, opts.Value(field.Name))
		case field.Type == model.FieldTypeNumber || field.Type == model.FieldTypeInteger:
			answer, err = r.promptNumber(ctx, field, opts.Value(field.Name))
		case field.Type == model.FieldTypeBoolean:
			answer, err = r.promptBoolean(ctx, field, opts.Value(field.Name))
		case field.Type == model.FieldTypeString:
			answer, err = r.promptString(ctx, field, opts.Value(field.Name))
		default:
			return nil, fmt.Errorf("tui: field %q of type %s is not supported", field.Name, field.Type)
		}
		if err != nil {
			return nil, err
		}
		values[field.Name] = answer
	}
	return values, nil
}

func (r *Renderer) promptNumber(ctx context.Context, field model.Field, seed string) (string, error) {
	rules := numberRulesFor(field)
	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message: displayLabel(field),
			Default: seed,
			Help:    displayHelp(field),
		})
		if err != nil {
			return "", err
		}
		if err := rules.validate(response); err != nil {
			if infoErr := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", displayLabel(field), err)); infoErr != nil {
				return "", infoErr
			}
			continue
		}
		return response, nil
	}
}

func (r *Renderer) promptString(ctx context.Context, field model.Field, seed string) (string, error) {
	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message: displayLabel(field),
			Default: seed,
			Help:    displayHelp(field),
		})
		if err != nil {
			return "", err
		}
		if field.Required && strings.TrimSpace(response) == "" {
			if infoErr := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: a value is required", displayLabel(field))); infoErr != nil {
				return "", infoErr
			}
			continue
		}
		return response, nil
	}
}

func (r *Renderer) promptEnum(ctx context.Context, field model.Field, seed string) (string, error) {
	values := make([]string, 0, len(field.Enum))
	labels := make([]string, 0, len(field.Enum))
	defaultIndex := -1
	for i, option := range field.Enum {
		value := fmt.Sprint(option)
		values = append(values, value)
		labels = append(labels, model.DefaultLabeler(value))
		if value == seed {
			defaultIndex = i
		}
	}
	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      displayLabel(field),
			Options:      labels,
			DefaultIndex: defaultIndex,
			Help:         displayHelp(field),
		})
		if err != nil {
			return "", err
		}
		if idx >= 0 && idx < len(values) {
			return values[idx], nil
		}
		if infoErr := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: pick one of the listed options", displayLabel(field))); infoErr != nil {
			return "", infoErr
		}
	}
}

func (r *Renderer) promptBoolean(ctx context.Context, field model.Field, seed string) (string, error) {
	answer, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: displayLabel(field),
		Default: seed == "true",
		Help:    displayHelp(field),
	})
	if err != nil {
		return "", err
	}
	if answer {
		return "true", nil
	}
	return "false", nil
}

func (r *Renderer) serialize(form model.FormModel, values map[string]string) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		encoded := url.Values{}
		for name, value := range values {
			encoded.Set(name, value)
		}
		return []byte(encoded.Encode()), nil
	case OutputFormatPrettyText:
		var b strings.Builder
		for _, field := range form.Fields {
			fmt.Fprintf(&b, "%s: %s\n", displayLabel(field), values[field.Name])
		}
		return []byte(b.String()), nil
	default:
		payload, err := json.Marshal(values)
		if err != nil {
			return nil, fmt.Errorf("tui: encode values: %w", err)
		}
		return payload, nil
	}
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func displayHelp(field model.Field) string {
	parts := make([]string, 0, 2)
	if field.Description != "" {
		parts = append(parts, field.Description)
	}
	if field.Placeholder != "" {
		parts = append(parts, field.Placeholder)
	}
	return strings.Join(parts, " | ")
}
