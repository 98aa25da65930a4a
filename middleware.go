package adorn

import (
	"fmt"
	"strings"
)

// Factory is the opaque transform a middleware contributes. Wrap receives
// a value (the service, or the service already enhanced by inner
// middlewares) and returns its enhanced form.
type Factory interface {
	Wrap(service any) any
}

// FactoryFunc adapts a plain function to the Factory interface.
type FactoryFunc func(service any) any

// Wrap implements Factory.
func (f FactoryFunc) Wrap(service any) any {
	return f(service)
}

// Priority is an ordered list of middleware names a registration is
// constrained against. A single-element list holding the wildcard token
// anchors the middleware to an end of the chain instead.
type Priority []string

// Meta describes one middleware registration. Name identifies the
// middleware in the ordering graph; Before and After declare relative
// ordering against other names. Both priorities are optional.
type Meta struct {
	Name   string
	Before Priority
	After  Priority
}

// Middleware is one normalized registration record. Records are immutable
// once created; the registry re-orders the record list but never mutates
// a record.
type Middleware struct {
	name    string
	before  []string
	after   []string
	factory Factory
	context []string // nil means global scope
}

// Name returns the middleware name.
func (m *Middleware) Name() string {
	return m.name
}

// Before returns a copy of the normalized before-priority list. The list
// is always non-nil, possibly empty.
func (m *Middleware) Before() []string {
	out := make([]string, len(m.before))
	copy(out, m.before)

	return out
}

// After returns a copy of the normalized after-priority list. The list is
// always non-nil, possibly empty.
func (m *Middleware) After() []string {
	out := make([]string, len(m.after))
	copy(out, m.after)

	return out
}

// Factory returns the registered transform.
func (m *Middleware) Factory() Factory {
	return m.factory
}

// Context returns a copy of the scope path, or nil for global scope.
func (m *Middleware) Context() []string {
	if m.context == nil {
		return nil
	}

	return append([]string(nil), m.context...)
}

// Global reports whether the middleware is scoped globally.
func (m *Middleware) Global() bool {
	return m.context == nil
}

// anchored reports whether the middleware declares a wildcard anchor
// under either priority key. Validation of wildcard placement happens at
// sort time; this is a plain containment check for diagnostics.
func (m *Middleware) anchored() bool {
	for _, name := range m.before {
		if name == Wildcard {
			return true
		}
	}

	for _, name := range m.after {
		if name == Wildcard {
			return true
		}
	}

	return false
}

// Decorated is the memoized result of composing all context-matching
// factories over the service. Value is the fully enhanced service; Label
// is a derived debug name listing the applied middlewares.
type Decorated struct {
	value any
	label string
}

// Value returns the enhanced service.
func (d *Decorated) Value() any {
	return d.value
}

// Label returns the derived display label.
func (d *Decorated) Label() string {
	return d.label
}

// composeLabel derives the display label for a composed factory. Purely
// cosmetic; names appear in application order.
func composeLabel(names []string) string {
	return fmt.Sprintf("decorated(%s)", strings.Join(names, ","))
}
