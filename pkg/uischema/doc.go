// Package uischema loads presentation overlays for generated forms (title,
// buttons, field labels, placeholders, order) and applies them as a
// model.Decorator.
package uischema
