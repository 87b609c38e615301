package service

import (
	"context"
	"errors"
	"fmt"

	"pitchbot/internal/config"
	"pitchbot/internal/domain"
	"pitchbot/internal/rag"
)

// ChatInput is one question against a collection.
type ChatInput struct {
	Collection string
	Query      string
	Provider   ProviderChoice
}

// ChatResult is the advocate answer plus memory state.
type ChatResult struct {
	Answer string               `json:"answer"`
	Memory domain.MemorySummary `json:"memory"`
}

// ChatService answers questions against a bot's knowledge base.
type ChatService interface {
	Query(ctx context.Context, input *ChatInput) (*ChatResult, error)
	ResetMemory(collection string)
	MemorySummary(collection string) domain.MemorySummary
}

type chatService struct {
	engine   *rag.Engine
	registry RegistryService
	cfg      config.RAGConfig
}

// NewChatService creates a ChatService over the RAG engine. Registered bots
// resolve their stored credentials through the registry when a request
// carries no API key of its own.
func NewChatService(engine *rag.Engine, registry RegistryService, cfg config.RAGConfig) ChatService {
	return &chatService{engine: engine, registry: registry, cfg: cfg}
}

func (s *chatService) Query(ctx context.Context, input *ChatInput) (*ChatResult, error) {
	if input.Collection == "" || input.Query == "" {
		return nil, fmt.Errorf("missing collection name or query: %w", domain.ErrNotFound)
	}
	choice := input.Provider
	if choice.APIKey == "" {
		stored, err := s.registry.ProviderFor(ctx, input.Collection)
		switch {
		case err == nil:
			choice = stored
		case errors.Is(err, domain.ErrChatbotNotFound):
			// Temporary preview collections are not registered; the
			// request's own provider choice stands.
		default:
			return nil, err
		}
	}
	p, err := resolveProvider(choice, s.cfg)
	if err != nil {
		return nil, err
	}

	answer, err := s.engine.Query(ctx, p, input.Collection, input.Query)
	if err != nil {
		return nil, err
	}
	return &ChatResult{Answer: answer.Text, Memory: answer.Memory}, nil
}

func (s *chatService) ResetMemory(collection string) {
	s.engine.ResetMemory(collection)
}

func (s *chatService) MemorySummary(collection string) domain.MemorySummary {
	return s.engine.MemorySummary(collection)
}
