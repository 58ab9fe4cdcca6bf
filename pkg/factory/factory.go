package factory

import (
	"fmt"
	"strings"

	"github.com/inercia/go-llm-openai/pkg/llm"
	"github.com/inercia/go-llm-openai/pkg/providers/mock"
	"github.com/inercia/go-llm-openai/pkg/providers/openai"
)

func init() {
	RegisterProvider("openai", func(config llm.ClientConfig) (llm.Client, error) {
		client, err := openai.NewClient(config)
		if err != nil {
			return nil, err
		}
		return client, nil
	})
	RegisterProvider("mock", func(config llm.ClientConfig) (llm.Client, error) {
		client, err := mock.NewClient(config.Model, "mock")
		if err != nil {
			return nil, err
		}
		return client, nil
	})
}

// Factory creates LLM clients based on configuration
type Factory struct {
	registry *Registry
}

// New creates a factory backed by the default registry
func New() *Factory {
	return &Factory{registry: defaultRegistry}
}

// NewWithRegistry creates a factory backed by registry
func NewWithRegistry(registry *Registry) *Factory {
	return &Factory{registry: registry}
}

// CreateClient creates an LLM client based on the configuration. An empty
// provider means openai.
func (f *Factory) CreateClient(config llm.ClientConfig) (llm.Client, error) {
	provider := strings.ToLower(config.Provider)
	if provider == "" {
		provider = llm.DefaultProvider
	}

	constructor, exists := f.registry.Lookup(provider)
	if !exists {
		return nil, llm.NewConfigError("unsupported_provider", fmt.Sprintf("unsupported provider: %s", provider))
	}

	return constructor(config)
}
