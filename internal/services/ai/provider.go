package ai

import "context"

// Provider is the interface for language-model gateways. Generate sends a
// fully built prompt and returns the raw response text, untouched.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderFactory creates a provider from a flat configuration map.
type ProviderFactory func(config map[string]string) (Provider, error)

// ProviderRegistry stores available provider factories by name.
type ProviderRegistry struct {
	providers map[string]ProviderFactory
}

// NewProviderRegistry creates a new provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]ProviderFactory),
	}
}

// Register registers a provider factory under a name.
func (r *ProviderRegistry) Register(name string, factory ProviderFactory) {
	r.providers[name] = factory
}

// GetProvider builds a provider by name.
func (r *ProviderRegistry) GetProvider(name string, config map[string]string) (Provider, error) {
	factory, ok := r.providers[name]
	if !ok {
		return nil, &ErrProviderNotFound{Name: name}
	}
	return factory(config)
}

// ErrProviderNotFound is returned when a provider is not registered.
type ErrProviderNotFound struct {
	Name string
}

func (e *ErrProviderNotFound) Error() string {
	return "AI provider not found: " + e.Name
}
