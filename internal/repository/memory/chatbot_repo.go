// Package memory holds in-process repository implementations, used when the
// service runs without Postgres. Production uses repository/postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pitchbot/internal/domain"
	"pitchbot/internal/port"
)

type chatbotRepo struct {
	mu   sync.RWMutex
	bots map[uuid.UUID]domain.Chatbot
}

// NewChatbotRepo creates an in-process ChatbotRepository.
func NewChatbotRepo() port.ChatbotRepository {
	return &chatbotRepo{bots: map[uuid.UUID]domain.Chatbot{}}
}

func (r *chatbotRepo) Create(_ context.Context, bot *domain.Chatbot) error {
	now := time.Now().UTC()
	bot.CreatedAt = now
	bot.UpdatedAt = now
	if bot.Status == "" {
		bot.Status = domain.ChatbotActive
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.bots[bot.ID] = *bot
	return nil
}

func (r *chatbotRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Chatbot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bot, ok := r.bots[id]
	if !ok {
		return nil, domain.ErrChatbotNotFound
	}
	return &bot, nil
}

func (r *chatbotRepo) GetByCollection(_ context.Context, collectionName string) (*domain.Chatbot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, bot := range r.bots {
		if bot.CollectionName == collectionName {
			found := bot
			return &found, nil
		}
	}
	return nil, domain.ErrChatbotNotFound
}

func (r *chatbotRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Chatbot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var bots []domain.Chatbot
	for _, bot := range r.bots {
		if bot.UserID == userID && bot.Status == domain.ChatbotActive {
			bots = append(bots, bot)
		}
	}
	sort.Slice(bots, func(i, j int) bool { return bots[i].CreatedAt.After(bots[j].CreatedAt) })
	return bots, nil
}

// GetPrimary returns the user's earliest active bot.
func (r *chatbotRepo) GetPrimary(_ context.Context, userID uuid.UUID) (*domain.Chatbot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var primary *domain.Chatbot
	for _, bot := range r.bots {
		if bot.UserID != userID || bot.Status != domain.ChatbotActive {
			continue
		}
		if primary == nil || bot.CreatedAt.Before(primary.CreatedAt) {
			found := bot
			primary = &found
		}
	}
	if primary == nil {
		return nil, domain.ErrChatbotNotFound
	}
	return primary, nil
}

func (r *chatbotRepo) Update(_ context.Context, bot *domain.Chatbot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.bots[bot.ID]
	if !ok {
		return domain.ErrChatbotNotFound
	}
	bot.CreatedAt = existing.CreatedAt
	bot.UpdatedAt = time.Now().UTC()
	r.bots[bot.ID] = *bot
	return nil
}

func (r *chatbotRepo) Archive(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bot, ok := r.bots[id]
	if !ok {
		return domain.ErrChatbotNotFound
	}
	bot.Status = domain.ChatbotArchived
	bot.UpdatedAt = time.Now().UTC()
	r.bots[id] = bot
	return nil
}
