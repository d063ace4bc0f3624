package openapi

import (
	"errors"
	"fmt"
	"sort"
)

// Operation is one form-backed OpenAPI operation.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	// MediaType is the request content type the body schema was taken from.
	MediaType   string
	RequestBody Schema
	// Responses maps status codes to their descriptions.
	Responses  map[string]string
	Extensions map[string]any
}

// NewOperation checks the identifying fields.
func NewOperation(id, method, path string, body Schema) (Operation, error) {
	switch {
	case id == "":
		return Operation{}, errors.New("openapi: operation id is required")
	case method == "":
		return Operation{}, fmt.Errorf("openapi: operation %s: method is required", id)
	case path == "":
		return Operation{}, fmt.Errorf("openapi: operation %s: path is required", id)
	}
	return Operation{ID: id, Method: method, Path: path, RequestBody: body}, nil
}

// MustNewOperation panics when NewOperation fails.
func MustNewOperation(id, method, path string, body Schema) Operation {
	op, err := NewOperation(id, method, path, body)
	if err != nil {
		panic(err)
	}
	return op
}

// HasResponse reports whether the operation declares the status code.
func (op Operation) HasResponse(code string) bool {
	_, ok := op.Responses[code]
	return ok
}

// Schema is a request body or one of its scalar properties. Form bodies are
// flat: Properties is only set on the body itself.
type Schema struct {
	Type             string
	Format           string
	Description      string
	Default          any
	Enum             []any
	Required         []string
	Properties       map[string]Schema
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum bool
	ExclusiveMaximum bool
	MultipleOf       *float64
	Extensions       map[string]any
}

// PropertyNames returns the property keys sorted.
func (s Schema) PropertyNames() []string {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRequired reports whether name is listed in Required.
func (s Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Validate checks numeric constraints for consistency.
func (s Schema) Validate() error {
	if s.Minimum != nil && s.Maximum != nil && *s.Minimum > *s.Maximum {
		return fmt.Errorf("minimum %v exceeds maximum %v", *s.Minimum, *s.Maximum)
	}
	if s.MultipleOf != nil && *s.MultipleOf <= 0 {
		return fmt.Errorf("multipleOf %v must be positive", *s.MultipleOf)
	}
	return nil
}
