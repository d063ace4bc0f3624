// Package template defines the seam between page handlers, form renderers and
// a concrete template engine. The pongo2 engine lives in gotemplate.
package template
