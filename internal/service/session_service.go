package service

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"pitchbot/internal/domain"
	"pitchbot/internal/enrichment"
	"pitchbot/internal/pipeline"
	"pitchbot/internal/port"
)

// SessionService drives the upload -> enrich -> preview -> dashboard
// pipeline. Live sessions are cached in process so the raw file bytes stay
// available for the build step; only binary-free snapshots reach the store.
type SessionService interface {
	Create(ctx context.Context) (*pipeline.Session, error)
	Get(ctx context.Context, id string) (*pipeline.Session, error)
	ApplyParse(ctx context.Context, id string, parsed domain.ParsedResumeData, fileBytes []byte, meta domain.ResumeFileMeta) error
	SetEnrichment(ctx context.Context, id, key, text string) (enrichment.Stats, error)
	Build(ctx context.Context, id string, choice ProviderChoice) (string, error)
	Finalize(ctx context.Context, id string, input *FinalizeBotInput) (*domain.Chatbot, error)
	Reset(ctx context.Context, id string) error
}

type sessionService struct {
	mu       sync.Mutex
	live     map[string]*pipeline.Session
	store    port.SessionStore
	botSvc   BotService
	registry RegistryService
}

// NewSessionService creates a SessionService backed by the given snapshot
// store.
func NewSessionService(store port.SessionStore, botSvc BotService, registry RegistryService) SessionService {
	return &sessionService{
		live:     make(map[string]*pipeline.Session),
		store:    store,
		botSvc:   botSvc,
		registry: registry,
	}
}

func (s *sessionService) Create(ctx context.Context) (*pipeline.Session, error) {
	sess := pipeline.NewSession(uuid.New().String())
	s.mu.Lock()
	s.live[sess.ID()] = sess
	s.mu.Unlock()
	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get returns the live session, falling back to a snapshot restore. A
// restored session has no file handle, so the build step requires a fresh
// upload.
func (s *sessionService) Get(ctx context.Context, id string) (*pipeline.Session, error) {
	s.mu.Lock()
	sess, ok := s.live[id]
	s.mu.Unlock()
	if ok {
		return sess, nil
	}

	rec, err := s.store.Restore(ctx, id)
	if err != nil {
		return nil, err
	}
	sess = pipeline.FromRecord(rec)
	s.mu.Lock()
	s.live[id] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *sessionService) ApplyParse(ctx context.Context, id string, parsed domain.ParsedResumeData, fileBytes []byte, meta domain.ResumeFileMeta) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := sess.ApplyParse(parsed, fileBytes, meta); err != nil {
		return err
	}
	return s.persist(ctx, sess)
}

func (s *sessionService) SetEnrichment(ctx context.Context, id, key, text string) (enrichment.Stats, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return enrichment.Stats{}, err
	}
	if err := sess.SetEnrichment(key, text); err != nil {
		return enrichment.Stats{}, err
	}
	if err := s.persist(ctx, sess); err != nil {
		return enrichment.Stats{}, err
	}
	return sess.CompletionStats(), nil
}

func (s *sessionService) Build(ctx context.Context, id string, choice ProviderChoice) (string, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	req, err := sess.BeginBuild()
	if err != nil {
		return "", err
	}

	collection, err := s.botSvc.Build(ctx, &BuildBotInput{
		Parsed:      req.Parsed,
		Enrichments: req.Enrichments,
		Provider:    choice,
	})
	if err != nil {
		sess.FailBuild()
		return "", err
	}
	if err := sess.CompleteBuild(collection); err != nil {
		return "", err
	}
	if err := s.persist(ctx, sess); err != nil {
		return "", err
	}
	return collection, nil
}

func (s *sessionService) Finalize(ctx context.Context, id string, input *FinalizeBotInput) (*domain.Chatbot, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.TempCollection == "" {
		input.TempCollection = sess.TempCollection()
	}

	bot, err := s.registry.FinalizeAndRegister(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := sess.Finalize(bot.ID.String()); err != nil {
		// The bot is registered; the session just failed to advance.
		log.Printf("sessionService: finalize transition failed for %s: %v", id, err)
	}
	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}
	return bot, nil
}

func (s *sessionService) Reset(ctx context.Context, id string) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	sess.Reset()
	return s.persist(ctx, sess)
}

func (s *sessionService) persist(ctx context.Context, sess *pipeline.Session) error {
	return s.store.Save(ctx, sess.Snapshot())
}
