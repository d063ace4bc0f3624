package template

import "io"

// Executor renders named templates. Names may omit the engine's extension.
type Executor interface {
	Execute(w io.Writer, name string, data any) error
}

// ExecutorFunc adapts a function into an Executor.
type ExecutorFunc func(w io.Writer, name string, data any) error

// Execute calls fn.
func (fn ExecutorFunc) Execute(w io.Writer, name string, data any) error {
	return fn(w, name, data)
}
