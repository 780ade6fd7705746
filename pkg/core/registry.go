package core

import (
	"fmt"
	"sort"
	"sync"
)

// Global registry for source self-registration during init().
var globalRegistry = &Registry{
	prototypes: make(map[Kind]Source),
	sources:    make(map[Kind]Source),
}

// Registry holds source prototypes and the configured instances built from
// them. Prototypes register once per process; instances are created per
// configuration and closed with the registry.
type Registry struct {
	prototypes map[Kind]Source
	sources    map[Kind]Source
	mu         sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		prototypes: make(map[Kind]Source),
		sources:    make(map[Kind]Source),
	}
}

// RegisterSourcePrototype lets source packages register themselves from
// init().
func RegisterSourcePrototype(kind Kind, prototype Source) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.prototypes[kind] = prototype
}

// GlobalRegistry returns a fresh registry seeded with every prototype
// registered so far. Instances created on the copy do not leak into the
// global one, keeping tests isolated.
func GlobalRegistry() *Registry {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	registry := NewRegistry()
	for kind, prototype := range globalRegistry.prototypes {
		registry.prototypes[kind] = prototype
	}
	return registry
}

func (r *Registry) RegisterPrototype(kind Kind, prototype Source) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.prototypes[kind]; exists {
		return fmt.Errorf("source prototype %s already registered", kind)
	}
	r.prototypes[kind] = prototype
	return nil
}

// CreateSource builds a configured instance for the kind. Sources that report
// themselves disabled for the settings (role-gated kinds without credentials)
// are skipped silently: the collection simply stays empty.
func (r *Registry) CreateSource(kind Kind, settings SourceSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prototype, exists := r.prototypes[kind]
	if !exists {
		return fmt.Errorf("source prototype %s not found", kind)
	}

	if !prototype.Enabled(settings) {
		return nil
	}

	source, err := prototype.Factory(settings)
	if err != nil {
		return fmt.Errorf("creating source %s: %w", kind, err)
	}

	if existing, exists := r.sources[kind]; exists {
		if err := existing.Close(); err != nil {
			return fmt.Errorf("closing existing source %s: %w", kind, err)
		}
	}

	r.sources[kind] = source
	return nil
}

func (r *Registry) Source(kind Kind) (Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	source, exists := r.sources[kind]
	return source, exists
}

// Sources returns all configured instances, ordered by kind for
// deterministic iteration.
func (r *Registry) Sources() []Source {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Source, 0, len(r.sources))
	for _, source := range r.sources {
		out = append(out, source)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Kind() < out[j].Kind()
	})
	return out
}

func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for kind, source := range r.sources {
		if err := source.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing source %s: %w", kind, err))
		}
	}
	r.sources = make(map[Kind]Source)

	if len(errs) > 0 {
		return fmt.Errorf("errors closing sources: %v", errs)
	}
	return nil
}
