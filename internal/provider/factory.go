// Package provider implements the LLM backends a chatbot can run on. Each
// bot brings its own provider name and API key (BYOK), so providers are
// constructed per request rather than once at startup.
package provider

import (
	"pitchbot/internal/domain"
	"pitchbot/internal/port"
)

// Factory builds an LLMProvider from an API key.
type Factory func(apiKey string) (port.LLMProvider, error)

var registry = map[string]Factory{}

// Register adds a provider factory by name.
func Register(name string, f Factory) {
	registry[name] = f
}

func init() {
	Register(domain.ProviderGoogle, func(apiKey string) (port.LLMProvider, error) {
		if apiKey == "" {
			return nil, domain.ErrMissingAPIKey
		}
		return NewGoogle(apiKey), nil
	})
	Register(domain.ProviderOpenAI, func(apiKey string) (port.LLMProvider, error) {
		if apiKey == "" {
			return nil, domain.ErrMissingAPIKey
		}
		return NewOpenAI(apiKey), nil
	})
	Register(domain.ProviderMock, func(string) (port.LLMProvider, error) {
		return NewMock(0), nil
	})
}

// New resolves a provider by name. Unknown names are an error, never a silent
// default.
func New(name, apiKey string) (port.LLMProvider, error) {
	f, ok := registry[name]
	if !ok {
		return nil, domain.ErrUnknownProvider
	}
	return f(apiKey)
}
