// SPDX-License-Identifier: MPL-2.0

package adapter

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
)

type (
	// Registry maps adapter identifiers to factories and caches the single
	// instance built for each identifier. Create one per process (or per
	// test) and share it between containers.
	//
	// Only successful constructions are cached; a failed GetOrCreate is
	// retried from scratch by the next caller.
	Registry struct {
		mu        sync.RWMutex
		factories map[string]Factory
		instances map[string]LanguageAdapter

		flights singleflight.Group
		logger  *log.Logger
	}

	// RegistryOption configures a Registry.
	RegistryOption func(*Registry)
)

// WithLogger sets the logger used for construction events.
func WithLogger(logger *log.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		instances: make(map[string]LanguageAdapter),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a factory under id.
func (r *Registry) Register(id string, factory Factory) error {
	if id == "" {
		return ErrEmptyIdentifier
	}
	if factory == nil {
		return fmt.Errorf("%w: %q", ErrNilFactory, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateFactory, id)
	}
	r.factories[id] = factory
	return nil
}

// MustRegister is like Register but panics on error. Use it for startup wiring.
func (r *Registry) MustRegister(id string, factory Factory) {
	if err := r.Register(id, factory); err != nil {
		panic(err)
	}
}

// Lookup returns the cached instance for id without constructing one.
func (r *Registry) Lookup(id string) (LanguageAdapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.instances[id]
	return a, ok
}

// Identifiers returns the registered factory identifiers, sorted.
func (r *Registry) Identifiers() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// GetOrCreate returns the shared adapter for id, constructing it on first
// use. modID names the requesting mod and only feeds diagnostics.
//
// Concurrent first-time callers for the same id share a single
// construction; callers for different ids do not wait on each other.
func (r *Registry) GetOrCreate(id, modID string) (LanguageAdapter, error) {
	if a, ok := r.Lookup(id); ok {
		return a, nil
	}

	v, err, _ := r.flights.Do(id, func() (any, error) {
		// A flight that finished between Lookup and Do already stored it.
		if a, ok := r.Lookup(id); ok {
			return a, nil
		}

		a, err := r.construct(id)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.instances[id] = a
		r.mu.Unlock()

		r.logger.Debug("created language adapter", "adapter", id, "mod", modID)
		return a, nil
	})
	if err != nil {
		r.logger.Debug("language adapter construction failed", "adapter", id, "mod", modID, "err", err)
		return nil, &InstantiationError{AdapterID: id, ModID: modID, Cause: err}
	}
	return v.(LanguageAdapter), nil
}

func (r *Registry) construct(id string) (a LanguageAdapter, err error) {
	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownAdapter
	}

	defer func() {
		if rec := recover(); rec != nil {
			a, err = nil, fmt.Errorf("%w: %v", ErrFactoryPanic, rec)
		}
	}()

	a, err = factory()
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNilAdapter
	}
	return a, nil
}
