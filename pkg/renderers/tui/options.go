package tui

// OutputFormat selects how Render serializes the collected answers.
type OutputFormat string

const (
	OutputFormatJSON           OutputFormat = "json"
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText writes "Label: value" lines in form order.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Option configures New.
type Option func(*Renderer)

// WithPromptDriver replaces the survey driver. nil is ignored.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat sets the Render output. New rejects unknown formats.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}
