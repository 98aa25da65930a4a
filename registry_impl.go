package adorn

import (
	"sync"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// registryImpl implements Registry.
type registryImpl struct {
	records []*Middleware
	service any
	cache   *gocache.Cache // context string -> *Decorated, never invalidated
	sorted  bool
	logger  *zap.Logger
	mu      sync.RWMutex
}

// newRegistry creates a new registry implementation.
func newRegistry(opts []Option) *registryImpl {
	r := &registryImpl{
		records: make([]*Middleware, 0),
		cache:   gocache.New(gocache.NoExpiration, 0),
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Add registers one middleware. The record is validated, normalized, and
// appended; no ordering or composition work happens here.
func (r *registryImpl) Add(meta Meta, factory Factory, context ...string) error {
	if factory == nil {
		return ErrInvalidFactory
	}

	if err := validateMeta(meta); err != nil {
		return err
	}

	record := &Middleware{
		name:    meta.Name,
		before:  copyNames(meta.Before),
		after:   copyNames(meta.After),
		factory: factory,
	}

	// Unconstrained records are contained between the synthetic anchors:
	// somewhere in the middle, unordered relative to each other.
	if len(record.before) == 0 && len(record.after) == 0 {
		record.after = []string{anchorHead}
		record.before = []string{anchorTail}
	}

	if len(context) > 0 {
		record.context = append([]string(nil), context...)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)
	r.sorted = false

	r.logger.Debug("middleware registered",
		zap.String("name", record.name),
		zap.Strings("before", record.before),
		zap.Strings("after", record.after),
		zap.Strings("context", record.context),
	)

	return nil
}

// SetService sets the decoration target. Reassigning is permitted but has
// no effect on contexts already resolved and cached.
func (r *registryImpl) SetService(service any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.service = service
}

// Service returns the current decoration target.
func (r *registryImpl) Service() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.service
}

// Sort recomputes the middleware order from the declared constraints.
func (r *registryImpl) Sort() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sortLocked()
}

// sortLocked builds the constraint graph, linearizes it, and replaces the
// record list with the sorted sequence. On failure the record list is
// left in its pre-sort state. Caller must hold the write lock.
func (r *registryImpl) sortLocked() error {
	g := newOrderGraph()
	g.ensure(anchorHead)
	g.ensure(anchorTail)

	for _, record := range r.records {
		kind, err := wildcardPriority(record)
		if err != nil {
			return err
		}

		switch kind {
		case wildcardAfter:
			// Pulled past the tail: runs after everything contained.
			g.addEdge(anchorTail, record.name)
		case wildcardBefore:
			// Pulled past the head: runs before everything contained.
			g.addEdge(record.name, anchorHead)
		default:
			g.addEdge(anchorHead, record.name)
			g.addEdge(record.name, anchorTail)

			for _, target := range record.before {
				g.addEdge(record.name, target)
			}

			for _, target := range record.after {
				g.addEdge(target, record.name)
			}
		}
	}

	order, err := g.sort()
	if err != nil {
		return err
	}

	// Re-expand names into records. Duplicate names share one ordering
	// identity: all records under a name land at its sorted position, in
	// their existing relative order. Names with no records (anchors,
	// priority targets never registered) expand to nothing.
	byName := make(map[string][]*Middleware, len(r.records))
	for _, record := range r.records {
		byName[record.name] = append(byName[record.name], record)
	}

	sorted := make([]*Middleware, 0, len(r.records))
	for _, name := range order {
		sorted = append(sorted, byName[name]...)
		delete(byName, name)
	}

	r.records = sorted
	r.sorted = true

	r.logger.Debug("middlewares sorted", zap.Strings("order", recordNames(sorted)))

	return nil
}

// MatchesForContext returns the records whose scope matches the requested
// dot-delimited context path, in current registry order.
func (r *registryImpl) MatchesForContext(context string) []*Middleware {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.matchesLocked(splitContext(context))
}

func (r *registryImpl) matchesLocked(requested []string) []*Middleware {
	matches := make([]*Middleware, 0, len(r.records))

	for _, record := range r.records {
		if contextMatches(record.context, requested) {
			matches = append(matches, record)
		}
	}

	return matches
}

// Factory returns the composed decoration for a context, memoized per
// context string. The first resolution after a registration sorts the
// records; cached entries are never recomputed, even if the service or
// the middleware set changes afterwards.
func (r *registryImpl) Factory(context string) (*Decorated, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.service == nil {
		return nil, ErrNoService
	}

	if cached, ok := r.cache.Get(context); ok {
		r.logger.Debug("factory cache hit", zap.String("context", context))

		return cached.(*Decorated), nil
	}

	if !r.sorted {
		if err := r.sortLocked(); err != nil {
			return nil, err
		}
	}

	matches := r.matchesLocked(splitContext(context))
	names := recordNames(matches)

	// First-sorted middleware is applied first, so the last-sorted one
	// wraps the whole chain. Compose is right-to-left, hence the reversal.
	factories := make([]Factory, len(matches))
	for i, record := range matches {
		factories[len(matches)-1-i] = record.factory
	}

	composed := &Decorated{
		value: Compose(r.service, factories...),
		label: composeLabel(names),
	}

	r.cache.Set(context, composed, gocache.NoExpiration)

	r.logger.Debug("factory composed",
		zap.String("context", context),
		zap.Strings("middlewares", names),
	)

	return composed, nil
}

// Middlewares returns all records in current registry order.
func (r *registryImpl) Middlewares() []*Middleware {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*Middleware(nil), r.records...)
}

// copyNames normalizes a priority into an owned, never-nil name list.
func copyNames(priority Priority) []string {
	names := make([]string, 0, len(priority))

	return append(names, priority...)
}

func recordNames(records []*Middleware) []string {
	names := make([]string, len(records))
	for i, record := range records {
		names[i] = record.name
	}

	return names
}
