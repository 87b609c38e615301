package port

import "context"

// Embedder produces embedding vectors for a batch of texts.
type Embedder interface {
	Embed(ctx context.Context, inputs []string) ([][]float32, error)
}

// Generator produces a completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// LLMProvider bundles the two capabilities a chatbot needs.
type LLMProvider interface {
	Embedder
	Generator
	Name() string
}
