package registry

import (
	"fmt"
	"log/slog"
	"sync"
)

// Registry holds the registered capability types and the ordered instance
// lists for a single application instance.
type Registry struct {
	mu sync.RWMutex

	producerTypes  map[string]*RegisteredProducer
	displayerTypes map[string]*RegisteredDisplayer

	// Instance lists are append-only and preserve registration order; the
	// demo driver's traversal order is defined by them.
	producers  []Producer
	displayers []Displayer
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		producerTypes:  make(map[string]*RegisteredProducer),
		displayerTypes: make(map[string]*RegisteredDisplayer),
	}
}

// RegisterProducerType registers the factory for a producer type. A
// duplicate name is a programmer error and panics.
func (r *Registry) RegisterProducerType(name string, f *RegisteredProducer) {
	if f == nil || f.Build == nil {
		panic(fmt.Sprintf("producer type '%s' registered with nil factory", name))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.producerTypes[name]; exists {
		panic(fmt.Sprintf("producer type '%s' already registered", name))
	}
	slog.Debug("Registering producer type.", "name", name)
	r.producerTypes[name] = f
}

// RegisterDisplayerType registers the factory for a displayer type. A
// duplicate name is a programmer error and panics.
func (r *Registry) RegisterDisplayerType(name string, f *RegisteredDisplayer) {
	if f == nil || f.Build == nil {
		panic(fmt.Sprintf("displayer type '%s' registered with nil factory", name))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.displayerTypes[name]; exists {
		panic(fmt.Sprintf("displayer type '%s' already registered", name))
	}
	slog.Debug("Registering displayer type.", "name", name)
	r.displayerTypes[name] = f
}

// ProducerType looks up a producer factory by type name.
func (r *Registry) ProducerType(name string) (*RegisteredProducer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.producerTypes[name]
	return f, ok
}

// DisplayerType looks up a displayer factory by type name.
func (r *Registry) DisplayerType(name string) (*RegisteredDisplayer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.displayerTypes[name]
	return f, ok
}

// AddProducer appends a producer instance. A nil reference is rejected here
// rather than blowing up later inside the demo loop.
func (r *Registry) AddProducer(p Producer) error {
	if p == nil {
		return fmt.Errorf("refusing to register nil producer")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.producers = append(r.producers, p)
	return nil
}

// AddDisplayer appends a displayer instance. A nil reference is rejected.
func (r *Registry) AddDisplayer(d Displayer) error {
	if d == nil {
		return fmt.Errorf("refusing to register nil displayer")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.displayers = append(r.displayers, d)
	return nil
}

// Producers returns a snapshot of the registered producers in registration
// order.
func (r *Registry) Producers() []Producer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Producer, len(r.producers))
	copy(out, r.producers)
	return out
}

// Displayers returns a snapshot of the registered displayers in registration
// order.
func (r *Registry) Displayers() []Displayer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Displayer, len(r.displayers))
	copy(out, r.displayers)
	return out
}

// Reset clears the instance lists while keeping the registered types.
// Intended for tests that rebuild the cast between runs.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.producers = nil
	r.displayers = nil
}
