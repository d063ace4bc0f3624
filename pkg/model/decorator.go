package model

// Decorator adjusts a built form before it is rendered (labels, order,
// buttons). Decorators run in registration order.
type Decorator interface {
	Decorate(*FormModel) error
}

// DecoratorFunc lets a plain function act as a Decorator.
type DecoratorFunc func(*FormModel) error

func (fn DecoratorFunc) Decorate(form *FormModel) error { return fn(form) }
