// Package health provides a thread-safe health check registry for the state
// backend and any downstream dependencies. The readiness endpoint uses it to
// decide whether the service can accept traffic.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-store/internal/platform/fanout"
	"github.com/jsamuelsen11/todo-store/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

const (
	// DefaultCheckTimeout bounds a single checker when no option overrides it.
	DefaultCheckTimeout = 2 * time.Second

	// DefaultMaxConcurrency is the number of checkers run at once.
	DefaultMaxConcurrency = 4
)

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets the deadline applied to each checker. A value <= 0
// disables the per-check deadline so only the caller's context applies.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.timeout = d
	}
}

// WithMaxConcurrency sets how many checkers CheckAll runs at the same time.
func WithMaxConcurrency(n int) Option {
	return func(r *Registry) {
		r.maxConcurrency = n
	}
}

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness probe.
type Registry struct {
	mu             sync.RWMutex
	checkers       []ports.HealthChecker
	timeout        time.Duration
	maxConcurrency int
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout, maxConcurrency: DefaultMaxConcurrency}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks and returns results keyed by
// checker name. Nil values indicate healthy components. Checks run
// concurrently, each under its own deadline, without holding the lock. When
// two checkers share a name the later registration wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, r.maxConcurrency, checkers,
		func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
			return struct{}{}, r.check(ctx, c)
		})

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = outcomes[i].Err
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	if r.timeout <= 0 {
		return c.HealthCheck(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return c.HealthCheck(ctx)
}
