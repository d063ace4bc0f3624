package model

import (
	"errors"
	"fmt"
	"strings"

	pkgopenapi "github.com/Kalai-nithi-guhan/next-deploy/pkg/openapi"
)

// Options configures a Builder.
type Options struct {
	// Labeler derives a field label from its name. Defaults to DefaultLabeler.
	Labeler func(string) string
}

// Builder converts flattened OpenAPI operations into form models.
type Builder struct {
	label func(string) string
}

// New creates a Builder.
func New(options Options) *Builder {
	b := &Builder{label: options.Labeler}
	if b.label == nil {
		b.label = DefaultLabeler
	}
	return b
}

// Build returns the form for op. Fields come out in lexical order;
// presentation order is applied later by the UI schema decorator.
func (b *Builder) Build(op pkgopenapi.Operation) (FormModel, error) {
	switch {
	case op.ID == "":
		return FormModel{}, errors.New("model builder: operation id is required")
	case op.Method == "" || op.Path == "":
		return FormModel{}, fmt.Errorf("model builder: operation %s: method and path are required", op.ID)
	}

	form := FormModel{
		OperationID: op.ID,
		Endpoint:    op.Path,
		Method:      strings.ToUpper(op.Method),
		Summary:     op.Summary,
		Description: op.Description,
	}
	ext := merge(extensionStrings(op.Extensions), extensionStrings(op.RequestBody.Extensions))
	form.Metadata = ext
	form.UIHints = uiHints(ext)

	body := op.RequestBody
	for _, name := range body.PropertyNames() {
		field, err := b.field(name, body.Properties[name], body.IsRequired(name))
		if err != nil {
			return FormModel{}, fmt.Errorf("model builder: operation %s: %w", op.ID, err)
		}
		form.Fields = append(form.Fields, field)
	}
	return form, nil
}

func (b *Builder) field(name string, schema pkgopenapi.Schema, required bool) (Field, error) {
	if err := schema.Validate(); err != nil {
		return Field{}, fmt.Errorf("field %s: %w", name, err)
	}

	field := Field{
		Name:        name,
		Type:        fieldType(schema.Type),
		Format:      schema.Format,
		Required:    required,
		Label:       b.label(name),
		Description: schema.Description,
		Default:     schema.Default,
		Validations: constraints(schema),
	}
	if len(schema.Enum) > 0 {
		field.Enum = append([]any(nil), schema.Enum...)
	}

	field.Metadata = extensionStrings(schema.Extensions)
	field.UIHints = uiHints(field.Metadata)
	if label := field.UIHints["label"]; label != "" {
		field.Label = label
	}
	if placeholder := field.UIHints["placeholder"]; placeholder != "" {
		field.Placeholder = placeholder
	}
	if help := field.UIHints["helpText"]; help != "" && field.Description == "" {
		field.Description = help
	}
	if field.UIHints["inputType"] == "" {
		field.UIHints = merge(field.UIHints, map[string]string{"inputType": inputType(field)})
	}
	return field, nil
}

func fieldType(schemaType string) FieldType {
	switch schemaType {
	case "integer":
		return FieldTypeInteger
	case "number":
		return FieldTypeNumber
	case "boolean":
		return FieldTypeBoolean
	default:
		return FieldTypeString
	}
}
