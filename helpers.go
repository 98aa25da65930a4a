package adorn

import "fmt"

// Resolve returns the decorated service for a context with type safety.
func Resolve[T any](r Registry, context string) (T, error) {
	var zero T

	composed, err := r.Factory(context)
	if err != nil {
		return zero, err
	}

	typed, ok := composed.Value().(T)
	if !ok {
		return zero, ErrTypeMismatch(context, composed.Value())
	}

	return typed, nil
}

// Must resolves the decorated service or panics - use only during startup.
func Must[T any](r Registry, context string) T {
	typed, err := Resolve[T](r, context)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve factory for context %q: %v", context, err))
	}

	return typed
}

// AddFunc is a convenience wrapper registering a plain function as the
// middleware factory.
func AddFunc(r Registry, meta Meta, fn func(service any) any, context ...string) error {
	return r.Add(meta, FactoryFunc(fn), context...)
}

// AddBefore registers a middleware constrained to run before the named
// targets.
func AddBefore(r Registry, name string, factory Factory, targets ...string) error {
	return r.Add(Meta{Name: name, Before: targets}, factory)
}

// AddAfter registers a middleware constrained to run after the named
// targets.
func AddAfter(r Registry, name string, factory Factory, targets ...string) error {
	return r.Add(Meta{Name: name, After: targets}, factory)
}

// First registers a middleware anchored to the very start of the chain.
func First(r Registry, name string, factory Factory) error {
	return r.Add(Meta{Name: name, Before: Priority{Wildcard}}, factory)
}

// Last registers a middleware anchored to the very end of the chain.
func Last(r Registry, name string, factory Factory) error {
	return r.Add(Meta{Name: name, After: Priority{Wildcard}}, factory)
}
