package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig describes a free-text prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// SelectConfig describes a single-choice prompt. DefaultIndex -1 means no
// preselection.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
}

// ConfirmConfig describes a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// PromptDriver is the terminal the renderer talks to. Select returns the
// chosen index; drivers may return an out-of-range index, which the renderer
// treats as an invalid answer.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Info(ctx context.Context, msg string) error
}

// SurveyDriver prompts through survey on a terminal.
type SurveyDriver struct {
	stdio terminal.Stdio
}

var _ PromptDriver = (*SurveyDriver)(nil)

// NewSurveyDriver returns a driver bound to stdio. Zero members default to
// the process's standard streams.
func NewSurveyDriver(stdio terminal.Stdio) *SurveyDriver {
	if stdio.In == nil {
		stdio.In = os.Stdin
	}
	if stdio.Out == nil {
		stdio.Out = os.Stdout
	}
	if stdio.Err == nil {
		stdio.Err = os.Stderr
	}
	return &SurveyDriver{stdio: stdio}
}

func (d *SurveyDriver) ask(ctx context.Context, prompt survey.Prompt, answer any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := survey.AskOne(prompt, answer, survey.WithStdio(d.stdio.In, d.stdio.Out, d.stdio.Err))
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func (d *SurveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	var answer string
	err := d.ask(ctx, &survey.Input{Message: cfg.Message, Default: cfg.Default, Help: cfg.Help}, &answer)
	return answer, err
}

func (d *SurveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	prompt := &survey.Select{Message: cfg.Message, Options: cfg.Options, Help: cfg.Help}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.DefaultIndex
	}
	// an int answer receives the option index
	answer := -1
	if err := d.ask(ctx, prompt, &answer); err != nil {
		return -1, err
	}
	return answer, nil
}

func (d *SurveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	var answer bool
	err := d.ask(ctx, &survey.Confirm{Message: cfg.Message, Default: cfg.Default, Help: cfg.Help}, &answer)
	return answer, err
}

// Info prints msg on the driver's output stream.
func (d *SurveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.stdio.Out, msg)
	return err
}
