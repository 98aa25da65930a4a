// Package adorn is a middleware/decorator registry. Independent callers
// register named enhancements against a shared service, declare relative
// ordering between them (including wildcard anchors that pull a middleware
// to the very start or end of the chain), scope them to hierarchical
// contexts, and resolve a single composed decoration per context.
//
// The registry is built for a register-then-resolve lifecycle: add all
// middlewares, set the service, then resolve factories per context.
// Composed factories are memoized per context string and never
// invalidated; middlewares added after a context has been resolved only
// affect contexts that have not been resolved yet.
package adorn

// Wildcard is the token that, as the sole entry of a before/after
// priority, anchors a middleware to the start or end of the chain. Inside
// a registered context path it matches any requested segment.
const Wildcard = "*"

// Registry orders and composes middlewares over a shared service.
type Registry interface {
	// Add registers one middleware. The factory must be non-nil and meta
	// priorities must be well-formed. An empty context scopes the
	// middleware globally; otherwise the segments form a hierarchical
	// scope path (segments may be the wildcard token).
	Add(meta Meta, factory Factory, context ...string) error

	// SetService sets the decoration target for subsequent resolutions.
	SetService(service any)

	// Service returns the current decoration target, or nil.
	Service() any

	// Sort recomputes the middleware order from the declared constraints.
	// It fails with a cycle error if the constraints are contradictory,
	// leaving the current order untouched. Resolution sorts lazily, so
	// calling Sort directly is only needed to inspect ordering early.
	Sort() error

	// MatchesForContext returns the middlewares whose scope matches the
	// dot-delimited context path, in current registry order. Pure query.
	MatchesForContext(context string) []*Middleware

	// Factory composes the factories of all middlewares matching the
	// context over the service and returns the memoized result. The
	// empty string is the global context. Fails if no service is set.
	Factory(context string) (*Decorated, error)

	// Middlewares returns all registered middlewares in current registry
	// order (sorted order once a sort has run).
	Middlewares() []*Middleware
}

// New creates an empty registry.
func New(opts ...Option) Registry {
	return newRegistry(opts)
}
