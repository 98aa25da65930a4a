package adorn

import "go.uber.org/zap"

// Option configures a registry at construction time.
type Option func(*registryImpl)

// WithLogger sets the structured logger used for debug events
// (registration, sort, composition, cache hits). The default is a no-op
// logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *registryImpl) {
		if logger != nil {
			r.logger = logger
		}
	}
}
