package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pitchbot/internal/domain"
	"pitchbot/internal/port"
)

type chatbotRepo struct {
	db *sqlx.DB
}

// NewChatbotRepo creates a new PostgreSQL-backed ChatbotRepository.
func NewChatbotRepo(db *sqlx.DB) port.ChatbotRepository {
	return &chatbotRepo{db: db}
}

func (r *chatbotRepo) Create(ctx context.Context, bot *domain.Chatbot) error {
	now := time.Now().UTC()
	bot.CreatedAt = now
	bot.UpdatedAt = now
	if bot.Status == "" {
		bot.Status = domain.ChatbotActive
	}

	query := `INSERT INTO chatbots (id, user_id, project_name, collection_name, llm_provider, encrypted_api_key, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		bot.ID, bot.UserID, bot.ProjectName, bot.CollectionName,
		bot.LLMProvider, bot.EncryptedAPIKey, bot.Status, bot.CreatedAt, bot.UpdatedAt)
	if err != nil {
		return fmt.Errorf("chatbotRepo.Create: %w", err)
	}
	return nil
}

func (r *chatbotRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Chatbot, error) {
	var bot domain.Chatbot
	err := r.db.GetContext(ctx, &bot, "SELECT * FROM chatbots WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChatbotNotFound
		}
		return nil, fmt.Errorf("chatbotRepo.GetByID: %w", err)
	}
	return &bot, nil
}

func (r *chatbotRepo) GetByCollection(ctx context.Context, collectionName string) (*domain.Chatbot, error) {
	var bot domain.Chatbot
	err := r.db.GetContext(ctx, &bot,
		"SELECT * FROM chatbots WHERE collection_name = $1", collectionName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChatbotNotFound
		}
		return nil, fmt.Errorf("chatbotRepo.GetByCollection: %w", err)
	}
	return &bot, nil
}

func (r *chatbotRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Chatbot, error) {
	var bots []domain.Chatbot
	err := r.db.SelectContext(ctx, &bots,
		`SELECT * FROM chatbots WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC`,
		userID, domain.ChatbotActive)
	if err != nil {
		return nil, fmt.Errorf("chatbotRepo.ListByUser: %w", err)
	}
	return bots, nil
}

// GetPrimary returns the user's earliest active bot.
func (r *chatbotRepo) GetPrimary(ctx context.Context, userID uuid.UUID) (*domain.Chatbot, error) {
	var bot domain.Chatbot
	err := r.db.GetContext(ctx, &bot,
		`SELECT * FROM chatbots WHERE user_id = $1 AND status = $2 ORDER BY created_at ASC LIMIT 1`,
		userID, domain.ChatbotActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChatbotNotFound
		}
		return nil, fmt.Errorf("chatbotRepo.GetPrimary: %w", err)
	}
	return &bot, nil
}

func (r *chatbotRepo) Update(ctx context.Context, bot *domain.Chatbot) error {
	bot.UpdatedAt = time.Now().UTC()

	query := `UPDATE chatbots
		SET project_name = $1, collection_name = $2, llm_provider = $3, encrypted_api_key = $4, status = $5, updated_at = $6
		WHERE id = $7`

	res, err := r.db.ExecContext(ctx, query,
		bot.ProjectName, bot.CollectionName, bot.LLMProvider,
		bot.EncryptedAPIKey, bot.Status, bot.UpdatedAt, bot.ID)
	if err != nil {
		return fmt.Errorf("chatbotRepo.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrChatbotNotFound
	}
	return nil
}

func (r *chatbotRepo) Archive(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE chatbots SET status = $1, updated_at = $2 WHERE id = $3`,
		domain.ChatbotArchived, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("chatbotRepo.Archive: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrChatbotNotFound
	}
	return nil
}
