package model

import "fmt"

// Decorator adjusts a field declaration before it is placed in a Model, for
// example to fill labels or sanitise text loaded from external documents.
type Decorator interface {
	Decorate(*Field) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Field) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(field *Field) error {
	return fn(field)
}

// Decorate applies decorators to every field in order and stops at the first
// failure.
func Decorate(fields []Field, decorators ...Decorator) error {
	for i := range fields {
		for _, decorator := range decorators {
			if decorator == nil {
				continue
			}
			if err := decorator.Decorate(&fields[i]); err != nil {
				return fmt.Errorf("model: decorate %q: %w", fields[i].Key, err)
			}
		}
	}
	return nil
}

// LabelDecorator fills empty labels using labeler (DefaultLabeler when nil).
func LabelDecorator(labeler func(string) string) Decorator {
	if labeler == nil {
		labeler = DefaultLabeler
	}
	return DecoratorFunc(func(field *Field) error {
		if field.Label == "" {
			field.Label = labeler(string(field.Key))
		}
		return nil
	})
}
