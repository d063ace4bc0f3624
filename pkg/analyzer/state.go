package analyzer

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when an update targets a name outside the
// analyzer field set.
var ErrUnknownField = errors.New("analyzer: unknown field")

// Recommendation is the notice produced by every submission.
const Recommendation = "Analysis complete! Recommendation: Based on your soil data, we recommend a balanced NPK fertilizer with additional organic matter."

// Notification is the user-visible result of a submission.
type Notification struct {
	Message string `json:"message"`
}

// FormState mirrors the analyzer inputs. Every field is always present and
// holds the raw text last written to it.
type FormState struct {
	values map[FieldName]string
}

// NewFormState returns a state with every field set to the empty string.
func NewFormState() *FormState {
	state := &FormState{values: make(map[FieldName]string, len(fieldNames))}
	state.Reset()
	return state
}

// UpdateField replaces the value stored for name. The value is kept verbatim.
func (s *FormState) UpdateField(name, value string) error {
	if s == nil {
		return errors.New("analyzer: form state is nil")
	}
	if !IsField(name) {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	s.values[FieldName(name)] = value
	return nil
}

// Value returns the stored text for name.
func (s *FormState) Value(name string) (string, bool) {
	if s == nil || !IsField(name) {
		return "", false
	}
	return s.values[FieldName(name)], true
}

// Values returns a copy of the state keyed by field name.
func (s *FormState) Values() map[string]string {
	out := make(map[string]string, len(fieldNames))
	for _, name := range fieldNames {
		value := ""
		if s != nil {
			value = s.values[name]
		}
		out[string(name)] = value
	}
	return out
}

// Reset clears every field back to the empty string.
func (s *FormState) Reset() {
	if s.values == nil {
		s.values = make(map[FieldName]string, len(fieldNames))
	}
	for _, name := range fieldNames {
		s.values[name] = ""
	}
}

// Submit produces the analyzer notification. The current values do not
// influence the result.
func (s *FormState) Submit() Notification {
	return Notification{Message: Recommendation}
}
