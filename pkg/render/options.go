package render

// RenderOptions carry per-request data that renderers use without mutating
// the form model.
type RenderOptions struct {
	// Values pre-populates controls keyed by field name. Values are raw text
	// and are written back exactly as received.
	Values map[string]string
	// Method overrides the HTTP method declared by the form model.
	Method string
	// Action overrides the form's submit target.
	Action string
}

// Value returns the pre-populated text for name, or the empty string.
func (o RenderOptions) Value(name string) string {
	if o.Values == nil {
		return ""
	}
	return o.Values[name]
}
