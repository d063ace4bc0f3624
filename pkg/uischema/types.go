package uischema

// Store holds UI schema overlays keyed by operation id. It is read-only once
// LoadFS returns.
type Store struct {
	operations map[string]Operation
}

// Operation is the overlay for one OpenAPI operation.
type Operation struct {
	ID string
	// Source is the file the overlay was read from.
	Source string
	Form   FormConfig
	Fields map[string]FieldConfig
}

// FormConfig is form-level chrome.
type FormConfig struct {
	Title    string            `yaml:"title"`
	Subtitle string            `yaml:"subtitle"`
	Actions  []ActionConfig    `yaml:"actions"`
	UIHints  map[string]string `yaml:"uiHints"`
}

// ActionConfig is a button rendered below the fields.
type ActionConfig struct {
	Kind  string `json:"kind" yaml:"kind"`
	Type  string `json:"type" yaml:"type"`
	Label string `json:"label" yaml:"label"`
	// Icon is sanitized markup or a plain glyph.
	Icon string `json:"icon,omitempty" yaml:"icon"`
}

// FieldConfig overrides how one field is presented. Order is 1-based;
// fields without one keep their builder order after the ordered ones.
type FieldConfig struct {
	Order       *int              `yaml:"order"`
	Label       string            `yaml:"label"`
	Placeholder string            `yaml:"placeholder"`
	HelpText    string            `yaml:"helpText"`
	CSSClass    string            `yaml:"cssClass"`
	UIHints     map[string]string `yaml:"uiHints"`
}
