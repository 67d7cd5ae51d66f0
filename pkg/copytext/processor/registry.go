package processor

import (
	"sort"
	"sync"

	"github.com/ukaji3/copytext-go/pkg/copytext/markup"
	"github.com/ukaji3/copytext-go/pkg/copytext/models"
)

// Registry maps processor names to processors.
//
// Lookups are safe for concurrent use. Registration is expected during setup,
// before sheets are processed.
type Registry struct {
	mu    sync.RWMutex
	procs map[string]Processor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{procs: make(map[string]Processor)}
}

// NewDefaultRegistry returns a registry holding the built-in processors.
// renderer enables markup rendering in both of them; nil leaves values raw.
func NewDefaultRegistry(renderer markup.Renderer) *Registry {
	r := NewRegistry()
	table := Table{Renderer: renderer}
	r.Register(KeyValueName, KeyValue{Renderer: renderer})
	r.Register(TableName, table)
	r.Register(ObjectListName, table)
	return r
}

// Register adds p under name, replacing any existing processor.
func (r *Registry) Register(name string, p Processor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.procs[name] = p
}

// RegisterFunc adds fn under name.
func (r *Registry) RegisterFunc(name string, fn func(*models.Sheet) (any, error)) {
	r.Register(name, Func(fn))
}

// Get returns the processor registered under name.
func (r *Registry) Get(name string) (Processor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.procs[name]
	if !ok {
		return nil, &UnknownProcessorError{Name: name}
	}
	return p, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.procs[name]
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.procs))
	for name := range r.procs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
