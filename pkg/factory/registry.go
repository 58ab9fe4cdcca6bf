package factory

import (
	"sort"
	"strings"
	"sync"

	"github.com/inercia/go-llm-openai/pkg/llm"
)

// ProviderConstructor is a function that creates a new client for a provider
type ProviderConstructor func(config llm.ClientConfig) (llm.Client, error)

// Registry maps provider names to constructors. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]ProviderConstructor
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]ProviderConstructor)}
}

// Register adds or replaces the constructor for name. Names are case-insensitive.
func (r *Registry) Register(name string, constructor ProviderConstructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[strings.ToLower(name)] = constructor
}

// Lookup returns the constructor registered for name
func (r *Registry) Lookup(name string) (ProviderConstructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	constructor, exists := r.providers[strings.ToLower(name)]
	return constructor, exists
}

// Names returns the registered provider names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// RegisterProvider registers a provider constructor in the default registry
func RegisterProvider(name string, constructor ProviderConstructor) {
	defaultRegistry.Register(name, constructor)
}

// GetProvider returns a provider constructor from the default registry
func GetProvider(name string) (ProviderConstructor, bool) {
	return defaultRegistry.Lookup(name)
}

// ListProviders returns all provider names in the default registry
func ListProviders() []string {
	return defaultRegistry.Names()
}
