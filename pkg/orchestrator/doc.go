// Package orchestrator wires the loader, parser, model builder, decorators and
// renderer registry into a single entry point.
package orchestrator
