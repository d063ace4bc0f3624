package parser

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/Kalai-nithi-guhan/next-deploy/pkg/openapi"
)

// Parser implements pkgopenapi.Parser with kin-openapi. Request bodies are
// flattened into one level of scalar properties, the shape an HTML form or a
// prompt session can collect.
type Parser struct {
	options pkgopenapi.ParserOptions
}

var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	return &Parser{options: options}
}

// formMediaTypes are tried in order when picking the body schema.
var formMediaTypes = []string{
	"application/x-www-form-urlencoded",
	"multipart/form-data",
	"application/json",
}

// Operations returns every operation in doc keyed by operationId. Operations
// without an id are keyed "method:path".
func (p *Parser) Operations(ctx context.Context, doc pkgopenapi.Document) (map[string]pkgopenapi.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	api, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load %s: %w", doc.Location(), err)
	}
	if p.options.ValidateDocument {
		if err := api.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate %s: %w", doc.Location(), err)
		}
	}
	if api.Paths == nil || api.Paths.Len() == 0 {
		return nil, fmt.Errorf("openapi parser: %s declares no paths", doc.Location())
	}

	ops := make(map[string]pkgopenapi.Operation)
	for path, item := range api.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			op, err := convertOperation(strings.ToUpper(method), path, operation)
			if err != nil {
				return nil, err
			}
			ops[op.ID] = op
		}
	}
	if len(ops) == 0 {
		return nil, fmt.Errorf("openapi parser: %s has no operations", doc.Location())
	}
	return ops, nil
}

func convertOperation(method, path string, src *openapi3.Operation) (pkgopenapi.Operation, error) {
	id := src.OperationID
	if id == "" {
		id = strings.ToLower(method) + ":" + path
	}

	mediaType, body, err := requestBody(src.RequestBody)
	if err != nil {
		return pkgopenapi.Operation{}, fmt.Errorf("openapi parser: operation %s: %w", id, err)
	}
	op, err := pkgopenapi.NewOperation(id, method, path, body)
	if err != nil {
		return pkgopenapi.Operation{}, err
	}
	op.Summary = src.Summary
	op.Description = src.Description
	op.MediaType = mediaType
	op.Extensions = formgenExtensions(src.Extensions)
	op.Responses = responses(src.Responses)
	return op, nil
}

func requestBody(ref *openapi3.RequestBodyRef) (string, pkgopenapi.Schema, error) {
	if ref == nil || ref.Value == nil || len(ref.Value.Content) == 0 {
		return "", pkgopenapi.Schema{}, nil
	}
	content := ref.Value.Content

	mediaType := ""
	for _, candidate := range formMediaTypes {
		if mt := content.Get(candidate); mt != nil {
			mediaType = candidate
			break
		}
	}
	if mediaType == "" {
		// no form-friendly type; fall back to the first declared one
		declared := make([]string, 0, len(content))
		for name := range content {
			declared = append(declared, name)
		}
		sort.Strings(declared)
		mediaType = declared[0]
	}

	mt := content.Get(mediaType)
	if mt == nil || mt.Schema == nil || mt.Schema.Value == nil {
		return mediaType, pkgopenapi.Schema{}, nil
	}
	body, err := flattenBody(mt.Schema.Value)
	return mediaType, body, err
}

// flattenBody converts the body object. Nested objects and arrays have no
// native form control and are rejected.
func flattenBody(src *openapi3.Schema) (pkgopenapi.Schema, error) {
	body := scalar(src)
	if len(src.Properties) == 0 {
		return body, nil
	}
	body.Properties = make(map[string]pkgopenapi.Schema, len(src.Properties))
	for name, prop := range src.Properties {
		if prop == nil || prop.Value == nil {
			return pkgopenapi.Schema{}, fmt.Errorf("property %q has no schema", name)
		}
		switch typ := schemaType(prop.Value.Type); typ {
		case "object", "array":
			return pkgopenapi.Schema{}, fmt.Errorf("property %q: %s values cannot be collected by a flat form", name, typ)
		}
		body.Properties[name] = scalar(prop.Value)
	}
	return body, nil
}

func scalar(src *openapi3.Schema) pkgopenapi.Schema {
	s := pkgopenapi.Schema{
		Type:             schemaType(src.Type),
		Format:           src.Format,
		Description:      src.Description,
		Default:          src.Default,
		ExclusiveMinimum: src.ExclusiveMin,
		ExclusiveMaximum: src.ExclusiveMax,
		Minimum:          copyFloat(src.Min),
		Maximum:          copyFloat(src.Max),
		MultipleOf:       copyFloat(src.MultipleOf),
		Extensions:       formgenExtensions(src.Extensions),
	}
	if len(src.Required) > 0 {
		s.Required = append([]string(nil), src.Required...)
	}
	if len(src.Enum) > 0 {
		s.Enum = append([]any(nil), src.Enum...)
	}
	return s
}

func responses(src *openapi3.Responses) map[string]string {
	if src == nil || src.Len() == 0 {
		return nil
	}
	out := make(map[string]string, src.Len())
	for status, ref := range src.Map() {
		if ref == nil || ref.Value == nil {
			continue
		}
		desc := ""
		if ref.Value.Description != nil {
			desc = *ref.Value.Description
		}
		out[status] = desc
	}
	return out
}

func schemaType(types *openapi3.Types) string {
	if types == nil || len(types.Slice()) == 0 {
		return ""
	}
	return types.Slice()[0]
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

const extensionPrefix = "x-formgen"

// formgenExtensions keeps x-formgen-* keys. A nested x-formgen object is
// flattened into the same prefixed keys.
func formgenExtensions(raw map[string]any) map[string]any {
	out := make(map[string]any)
	for key, value := range raw {
		switch {
		case key == extensionPrefix:
			nested, ok := value.(map[string]any)
			if !ok {
				continue
			}
			for k, v := range nested {
				out[extensionPrefix+"-"+k] = v
			}
		case strings.HasPrefix(key, extensionPrefix+"-"):
			out[key] = value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
