package tui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/model"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/render"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/testsupport"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	inputErr     error
	infoMessages []string
	prompts      []string
	inputPos     int
	selectPos    int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.inputErr != nil {
		return "", s.inputErr
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestCollect_AnalyzerOrderAndVerbatimValues(t *testing.T) {
	driver := &stubDriver{
		// temperature, humidity, moisture, nitrogen, phosphorus, potassium
		inputs:    []string{"25.5", "45", "30", "1.2e1", "0", "100.0"},
		selectIdx: []int{1},
	}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	values, err := r.Collect(testsupport.Context(), testsupport.AnalyzerForm(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := map[string]string{
		"temperature": "25.5",
		"humidity":    "45",
		"moisture":    "30",
		"soilType":    "clay",
		"nitrogen":    "1.2e1",
		"phosphorus":  "0",
		"potassium":   "100.0",
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	wantPrompts := []string{
		"Temperature (°C)",
		"Humidity (%)",
		"Moisture (%)",
		"Soil Type",
		"Nitrogen (N) ppm",
		"Phosphorus (P) ppm",
		"Potassium (K) ppm",
	}
	if diff := cmp.Diff(wantPrompts, driver.prompts); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
	if len(driver.infoMessages) != 0 {
		t.Fatalf("unexpected validation messages: %v", driver.infoMessages)
	}
}

func TestCollect_HumidityAboveMaximumIsReprompted(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{"101", "45"},
	}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	form := testsupport.AnalyzerForm(t)
	humidity, ok := form.Field("humidity")
	if !ok {
		t.Fatalf("humidity field missing")
	}

	values, err := r.Collect(testsupport.Context(), model.FormModel{Fields: []model.Field{humidity}}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if values["humidity"] != "45" {
		t.Fatalf("expected humidity 45, got %q", values["humidity"])
	}
	if len(driver.infoMessages) != 1 {
		t.Fatalf("expected one validation message, got %v", driver.infoMessages)
	}
	if !strings.Contains(driver.infoMessages[0], "at most 100") {
		t.Fatalf("unexpected validation message %q", driver.infoMessages[0])
	}
}

func TestNumberRules(t *testing.T) {
	form := testsupport.AnalyzerForm(t)
	humidity, _ := form.Field("humidity")
	temperature, _ := form.Field("temperature")
	nitrogen, _ := form.Field("nitrogen")

	tests := []struct {
		name    string
		field   model.Field
		raw     string
		wantErr string
	}{
		{name: "lower bound", field: humidity, raw: "0"},
		{name: "upper bound", field: humidity, raw: "100"},
		{name: "one decimal", field: humidity, raw: "55.5"},
		{name: "above max", field: humidity, raw: "101", wantErr: "at most 100"},
		{name: "below min", field: humidity, raw: "-4", wantErr: "at least 0"},
		{name: "off step", field: humidity, raw: "45.25", wantErr: "multiple of 0.1"},
		{name: "empty required", field: humidity, raw: "   ", wantErr: "required"},
		{name: "garbage", field: humidity, raw: "wet", wantErr: "enter a number"},
		{name: "leading plus", field: humidity, raw: "+5", wantErr: "enter a number"},
		{name: "hex float", field: humidity, raw: "0x1p4", wantErr: "enter a number"},
		{name: "surrounding spaces", field: humidity, raw: " 5 ", wantErr: "enter a number"},
		{name: "trailing dot", field: humidity, raw: "5.", wantErr: "enter a number"},
		{name: "leading dot", field: humidity, raw: ".5"},
		{name: "exponent", field: temperature, raw: "-1.5E2"},
		{name: "unbounded negative", field: temperature, raw: "-12.5"},
		{name: "unbounded large", field: temperature, raw: "1000"},
		{name: "no max", field: nitrogen, raw: "100000"},
		{name: "negative nitrogen", field: nitrogen, raw: "-1", wantErr: "at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := numberRulesFor(tt.field).validate(tt.raw)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected %q to be accepted, got %v", tt.raw, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRender_OutputFormats(t *testing.T) {
	form := model.FormModel{
		Fields: []model.Field{
			{Name: "soilType", Type: model.FieldTypeString, Label: "Soil Type", Enum: []any{"loamy", "clay", "sandy"}},
			{Name: "nitrogen", Type: model.FieldTypeNumber, Label: "Nitrogen"},
		},
	}

	t.Run("json", func(t *testing.T) {
		r, err := New(WithPromptDriver(&stubDriver{inputs: []string{"7"}, selectIdx: []int{2}}))
		if err != nil {
			t.Fatalf("new renderer: %v", err)
		}
		out, err := r.Render(context.Background(), form, render.RenderOptions{})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		var got map[string]string
		if err := json.Unmarshal(out, &got); err != nil {
			t.Fatalf("decode output: %v", err)
		}
		if diff := cmp.Diff(map[string]string{"soilType": "sandy", "nitrogen": "7"}, got); diff != "" {
			t.Fatalf("output mismatch (-want +got):\n%s", diff)
		}
		if r.ContentType() != "application/json" {
			t.Fatalf("unexpected content type %q", r.ContentType())
		}
	})

	t.Run("pretty", func(t *testing.T) {
		r, err := New(
			WithPromptDriver(&stubDriver{inputs: []string{"7"}, selectIdx: []int{0}}),
			WithOutputFormat(OutputFormatPrettyText),
		)
		if err != nil {
			t.Fatalf("new renderer: %v", err)
		}
		out, err := r.Render(context.Background(), form, render.RenderOptions{})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if got, want := string(out), "Soil Type: loamy\nNitrogen: 7\n"; got != want {
			t.Fatalf("pretty output: want %q, got %q", want, got)
		}
	})

	t.Run("form", func(t *testing.T) {
		r, err := New(
			WithPromptDriver(&stubDriver{inputs: []string{"7"}, selectIdx: []int{1}}),
			WithOutputFormat(OutputFormatFormURLEncoded),
		)
		if err != nil {
			t.Fatalf("new renderer: %v", err)
		}
		out, err := r.Render(context.Background(), form, render.RenderOptions{})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if got, want := string(out), "nitrogen=7&soilType=clay"; got != want {
			t.Fatalf("form output: want %q, got %q", want, got)
		}
	})
}

func TestRender_AbortPropagates(t *testing.T) {
	r, err := New(WithPromptDriver(&stubDriver{inputErr: ErrAborted}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	_, err = r.Render(testsupport.Context(), testsupport.AnalyzerForm(t), render.RenderOptions{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSelect_OutOfRangeIsReprompted(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{-1, 0}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	form := model.FormModel{Fields: []model.Field{
		{Name: "soilType", Type: model.FieldTypeString, Enum: []any{"loamy", "clay"}},
	}}
	values, err := r.Collect(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if values["soilType"] != "loamy" || len(driver.infoMessages) != 1 {
		t.Fatalf("unexpected result %v / %v", values, driver.infoMessages)
	}
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	if _, err := New(WithOutputFormat("xml")); err == nil {
		t.Fatalf("expected error for unknown output format")
	}
}
