package service

import (
	"context"
	"fmt"

	"pitchbot/internal/config"
	"pitchbot/internal/domain"
	"pitchbot/internal/port"
	"pitchbot/internal/provider"
	"pitchbot/internal/rag"
)

// ProviderChoice names an LLM backend plus its BYOK credential. Empty fields
// fall back to the configured defaults.
type ProviderChoice struct {
	Name   string
	APIKey string
}

// BuildBotInput is everything the build step needs. The enrichment map is
// read exactly as submitted: edits are applied synchronously upstream, so the
// snapshot is always current.
type BuildBotInput struct {
	Parsed      domain.ParsedResumeData
	Enrichments map[string]string
	Provider    ProviderChoice
}

// FinalizeInput promotes a temporary collection.
type FinalizeInput struct {
	TempCollection      string
	PermanentCollection string
	Provider            ProviderChoice
}

// BotService owns the knowledge-base lifecycle.
type BotService interface {
	Build(ctx context.Context, input *BuildBotInput) (string, error)
	Finalize(ctx context.Context, input *FinalizeInput) (string, error)
	AddText(ctx context.Context, collection, text string, choice ProviderChoice) (int, error)
}

type botService struct {
	engine *rag.Engine
	cfg    config.RAGConfig
}

// NewBotService creates a BotService over the RAG engine.
func NewBotService(engine *rag.Engine, cfg config.RAGConfig) BotService {
	return &botService{engine: engine, cfg: cfg}
}

// resolveProvider applies configured defaults when the caller did not bring
// their own provider/key.
func resolveProvider(choice ProviderChoice, cfg config.RAGConfig) (port.LLMProvider, error) {
	name := choice.Name
	if name == "" {
		name = cfg.DefaultProvider
	}
	key := choice.APIKey
	if key == "" {
		key = cfg.DefaultAPIKey
	}
	return provider.New(name, key)
}

func (s *botService) Build(ctx context.Context, input *BuildBotInput) (string, error) {
	if input.Parsed.Empty() {
		return "", domain.ErrParseFailure
	}
	p, err := resolveProvider(input.Provider, s.cfg)
	if err != nil {
		return "", err
	}

	knowledge := rag.FlattenKnowledge(input.Parsed, input.Enrichments)
	collection, err := s.engine.BuildTemporary(ctx, p, knowledge)
	if err != nil {
		return "", err
	}
	return collection, nil
}

func (s *botService) Finalize(ctx context.Context, input *FinalizeInput) (string, error) {
	if input.TempCollection == "" || input.PermanentCollection == "" {
		return "", fmt.Errorf("%w: missing source or target collection name", domain.ErrFinalizeFailure)
	}
	if err := s.engine.Finalize(ctx, input.TempCollection, input.PermanentCollection); err != nil {
		return "", err
	}
	return input.PermanentCollection, nil
}

func (s *botService) AddText(ctx context.Context, collection, text string, choice ProviderChoice) (int, error) {
	if collection == "" || text == "" {
		return 0, fmt.Errorf("%w: missing collection name or text", domain.ErrBuildFailure)
	}
	p, err := resolveProvider(choice, s.cfg)
	if err != nil {
		return 0, err
	}
	return s.engine.AddDocuments(ctx, p, collection, text)
}
