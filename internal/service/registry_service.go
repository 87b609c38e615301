package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"pitchbot/internal/crypto"
	"pitchbot/internal/domain"
	"pitchbot/internal/port"
)

// FinalizeBotInput promotes a temporary collection into a registered,
// permanent chatbot owned by a user.
type FinalizeBotInput struct {
	UserID         uuid.UUID
	UserEmail      string
	TempCollection string
	ProjectName    string
	Provider       ProviderChoice
}

// UpdateBotInput carries registry row updates. Empty fields are left alone.
type UpdateBotInput struct {
	UserID      uuid.UUID
	BotID       uuid.UUID
	ProjectName string
	Provider    ProviderChoice
}

// RegistryService owns the chatbot registry: finalized bots, their provider
// choice, and their encrypted BYOK credentials.
type RegistryService interface {
	FinalizeAndRegister(ctx context.Context, input *FinalizeBotInput) (*domain.Chatbot, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Chatbot, error)
	GetPrimary(ctx context.Context, userID uuid.UUID) (*domain.Chatbot, error)
	Get(ctx context.Context, userID, botID uuid.UUID) (*domain.Chatbot, error)
	Update(ctx context.Context, input *UpdateBotInput) (*domain.Chatbot, error)
	Archive(ctx context.Context, userID, botID uuid.UUID) error
	ProviderFor(ctx context.Context, collection string) (ProviderChoice, error)
}

type registryService struct {
	repo   port.ChatbotRepository
	botSvc BotService
	cipher *crypto.Cipher
	email  port.EmailSender
}

// NewRegistryService creates a RegistryService.
func NewRegistryService(repo port.ChatbotRepository, botSvc BotService, cipher *crypto.Cipher, email port.EmailSender) RegistryService {
	return &registryService{repo: repo, botSvc: botSvc, cipher: cipher, email: email}
}

func (s *registryService) FinalizeAndRegister(ctx context.Context, input *FinalizeBotInput) (*domain.Chatbot, error) {
	botID := uuid.New()
	permanent := "bot-" + botID.String()

	if _, err := s.botSvc.Finalize(ctx, &FinalizeInput{
		TempCollection:      input.TempCollection,
		PermanentCollection: permanent,
		Provider:            input.Provider,
	}); err != nil {
		return nil, err
	}

	encrypted := ""
	if input.Provider.APIKey != "" {
		var err error
		encrypted, err = s.cipher.Encrypt(input.Provider.APIKey)
		if err != nil {
			return nil, err
		}
	}

	bot := &domain.Chatbot{
		ID:              botID,
		UserID:          input.UserID,
		ProjectName:     input.ProjectName,
		CollectionName:  permanent,
		LLMProvider:     input.Provider.Name,
		EncryptedAPIKey: encrypted,
		Status:          domain.ChatbotActive,
	}
	if err := s.repo.Create(ctx, bot); err != nil {
		return nil, err
	}

	if input.UserEmail != "" {
		// Best-effort notification; registration already succeeded.
		if err := s.email.SendBotReadyEmail(ctx, input.UserEmail, input.ProjectName, botID.String()); err != nil {
			log.Printf("registryService: bot-ready email failed: %v", err)
		}
	}
	return bot, nil
}

func (s *registryService) List(ctx context.Context, userID uuid.UUID) ([]domain.Chatbot, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *registryService) GetPrimary(ctx context.Context, userID uuid.UUID) (*domain.Chatbot, error) {
	return s.repo.GetPrimary(ctx, userID)
}

func (s *registryService) Get(ctx context.Context, userID, botID uuid.UUID) (*domain.Chatbot, error) {
	bot, err := s.repo.GetByID(ctx, botID)
	if err != nil {
		return nil, err
	}
	if bot.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return bot, nil
}

func (s *registryService) Update(ctx context.Context, input *UpdateBotInput) (*domain.Chatbot, error) {
	bot, err := s.Get(ctx, input.UserID, input.BotID)
	if err != nil {
		return nil, err
	}

	if input.ProjectName != "" {
		bot.ProjectName = input.ProjectName
	}
	if input.Provider.Name != "" {
		bot.LLMProvider = input.Provider.Name
	}
	if input.Provider.APIKey != "" {
		encrypted, err := s.cipher.Encrypt(input.Provider.APIKey)
		if err != nil {
			return nil, err
		}
		bot.EncryptedAPIKey = encrypted
	}

	if err := s.repo.Update(ctx, bot); err != nil {
		return nil, err
	}
	return bot, nil
}

func (s *registryService) Archive(ctx context.Context, userID, botID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, botID); err != nil {
		return err
	}
	return s.repo.Archive(ctx, botID)
}

// ProviderFor resolves the stored provider choice for a collection. A
// credential that fails to decrypt reads as missing configuration: the bot
// needs its key re-entered, not a crash.
func (s *registryService) ProviderFor(ctx context.Context, collection string) (ProviderChoice, error) {
	bot, err := s.repo.GetByCollection(ctx, collection)
	if err != nil {
		return ProviderChoice{}, err
	}
	choice := ProviderChoice{Name: bot.LLMProvider}
	if bot.EncryptedAPIKey == "" {
		return choice, nil
	}
	key, err := s.cipher.Decrypt(bot.EncryptedAPIKey)
	if err != nil {
		return choice, domain.ErrDecryptFailure
	}
	choice.APIKey = key
	return choice, nil
}
