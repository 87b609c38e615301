package provider

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"strings"

	"pitchbot/internal/domain"
)

// Mock is a deterministic offline provider: embeddings are derived from a
// content hash and answers echo the question. It makes the whole pipeline
// runnable without credentials.
type Mock struct {
	dim int
}

// NewMock creates a Mock with the given embedding dimension.
func NewMock(dim int) *Mock {
	if dim <= 0 {
		dim = 768
	}
	return &Mock{dim: dim}
}

func (m *Mock) Name() string { return domain.ProviderMock }

func (m *Mock) Embed(_ context.Context, inputs []string) ([][]float32, error) {
	vectors := make([][]float32, len(inputs))
	for i, input := range inputs {
		vectors[i] = deterministicVector(input, m.dim)
	}
	return vectors, nil
}

func (m *Mock) Generate(_ context.Context, prompt string) (string, error) {
	// Surface the question back so tests can assert prompt plumbing.
	if i := strings.LastIndex(prompt, "Current Question:"); i >= 0 {
		q := strings.TrimSpace(strings.TrimSuffix(prompt[i+len("Current Question:"):], "Answer:"))
		return "Mock advocate answer to: " + q, nil
	}
	return "Mock advocate answer.", nil
}

func deterministicVector(input string, dim int) []float32 {
	vec := make([]float32, dim)
	seed := sha256.Sum256([]byte(input))
	state := seed[:]
	for i := 0; i < dim; i++ {
		if i%8 == 0 && i > 0 {
			next := sha256.Sum256(state)
			state = next[:]
		}
		bits := binary.BigEndian.Uint32(state[(i%8)*4 : (i%8)*4+4])
		vec[i] = float32(bits%2000)/1000.0 - 1.0
	}
	return vec
}
