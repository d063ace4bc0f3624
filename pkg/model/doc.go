// Package model exposes the flat form model shared by the HTML and terminal
// renderers, and the builder that produces it from an OpenAPI operation.
// Numeric schema bounds become min/max/step rules; x-formgen-* extensions
// become Metadata, and the presentation subset (label, placeholder, unit,
// inputType, step...) is mirrored into UIHints.
package model
