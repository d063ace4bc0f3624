// Package openapi defines the loader and parser contracts of the form
// pipeline and the flattened operation/schema types they exchange. The
// kin-openapi backed implementations live under internal/openapi.
package openapi
