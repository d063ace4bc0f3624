// Package analyzer models the soil analyzer form: a fixed set of fields whose
// values are held as raw text exactly as entered, and a submit action that
// always answers with the same recommendation notice. No value is parsed,
// range-checked, or persisted here; widget-level constraints (min/max/step,
// required, the soil type choice) are declared in the embedded OpenAPI
// document and enforced by whichever renderer presents the form.
package analyzer
