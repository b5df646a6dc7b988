package harness

import (
	"reflect"
	"runtime"
	"slices"
	"sync"
)

// Example is one registered example.
type Example struct {
	ID   int    // 1-based registration position
	Name string // function symbol, for logs
	Fn   func()
}

// Registry is an ordered list of examples.
//
// Thread-safety: All methods are safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	examples []Example
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry, creating it on first use.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register appends fn and returns its ID.
// It panics if fn is nil.
func (r *Registry) Register(fn func()) int {
	if fn == nil {
		panic("harness: Register called with nil example")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	id := len(r.examples) + 1
	r.examples = append(r.examples, Example{ID: id, Name: funcName(fn), Fn: fn})
	return id
}

// Examples returns the registered examples in registration order.
func (r *Registry) Examples() []Example {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.examples)
}

// Len returns the number of registered examples.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.examples)
}

func funcName(fn func()) string {
	if f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()); f != nil {
		return f.Name()
	}
	return "unknown"
}
