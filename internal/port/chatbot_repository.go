package port

import (
	"context"

	"github.com/google/uuid"

	"pitchbot/internal/domain"
)

// ChatbotRepository persists the chatbot registry.
type ChatbotRepository interface {
	Create(ctx context.Context, bot *domain.Chatbot) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Chatbot, error)
	GetByCollection(ctx context.Context, collectionName string) (*domain.Chatbot, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Chatbot, error)
	GetPrimary(ctx context.Context, userID uuid.UUID) (*domain.Chatbot, error)
	Update(ctx context.Context, bot *domain.Chatbot) error
	Archive(ctx context.Context, id uuid.UUID) error
}
