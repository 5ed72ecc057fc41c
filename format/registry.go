package format

import (
	"fmt"
	"sort"
	"strings"
)

// Registry holds registered serializers.
type Registry struct {
	serializers map[string]Serializer
}

// DefaultRegistry is the global serializer registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new serializer registry.
func NewRegistry() *Registry {
	return &Registry{
		serializers: make(map[string]Serializer),
	}
}

// Register adds a serializer to the registry.
func (r *Registry) Register(s Serializer) {
	r.serializers[s.Name()] = s
}

// Get retrieves a serializer by name.
func (r *Registry) Get(name string) (Serializer, error) {
	s, ok := r.serializers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	return s, nil
}

// List returns all registered serializer names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.serializers))
	for name := range r.serializers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a serializer to the default registry.
func Register(s Serializer) {
	DefaultRegistry.Register(s)
}

// Get retrieves a serializer from the default registry.
func Get(name string) (Serializer, error) {
	return DefaultRegistry.Get(name)
}

// List returns serializer names from the default registry.
func List() []string {
	return DefaultRegistry.List()
}
