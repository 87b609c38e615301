package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchbot/internal/domain"
	"pitchbot/internal/repository/memory"
)

func TestChatbotRepo_CreateAndGet(t *testing.T) {
	repo := memory.NewChatbotRepo()

	bot := &domain.Chatbot{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		ProjectName:    "My Pitch",
		CollectionName: "bot-1",
		LLMProvider:    domain.ProviderGoogle,
	}
	require.NoError(t, repo.Create(context.Background(), bot))
	assert.Equal(t, domain.ChatbotActive, bot.Status)
	assert.False(t, bot.CreatedAt.IsZero())

	byID, err := repo.GetByID(context.Background(), bot.ID)
	require.NoError(t, err)
	assert.Equal(t, "My Pitch", byID.ProjectName)

	byCollection, err := repo.GetByCollection(context.Background(), "bot-1")
	require.NoError(t, err)
	assert.Equal(t, bot.ID, byCollection.ID)
}

func TestChatbotRepo_GetByID_NotFound(t *testing.T) {
	repo := memory.NewChatbotRepo()

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrChatbotNotFound)

	_, err = repo.GetByCollection(context.Background(), "bot-gone")
	assert.ErrorIs(t, err, domain.ErrChatbotNotFound)
}

func TestChatbotRepo_ListByUser_ActiveOnly(t *testing.T) {
	repo := memory.NewChatbotRepo()
	userID := uuid.New()

	first := &domain.Chatbot{ID: uuid.New(), UserID: userID, CollectionName: "bot-1"}
	second := &domain.Chatbot{ID: uuid.New(), UserID: userID, CollectionName: "bot-2"}
	other := &domain.Chatbot{ID: uuid.New(), UserID: uuid.New(), CollectionName: "bot-3"}
	require.NoError(t, repo.Create(context.Background(), first))
	require.NoError(t, repo.Create(context.Background(), second))
	require.NoError(t, repo.Create(context.Background(), other))
	require.NoError(t, repo.Archive(context.Background(), second.ID))

	bots, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, bots, 1)
	assert.Equal(t, "bot-1", bots[0].CollectionName)
}

func TestChatbotRepo_GetPrimary_EarliestActive(t *testing.T) {
	repo := memory.NewChatbotRepo()
	userID := uuid.New()

	first := &domain.Chatbot{ID: uuid.New(), UserID: userID, CollectionName: "bot-1"}
	require.NoError(t, repo.Create(context.Background(), first))
	time.Sleep(2 * time.Millisecond)
	second := &domain.Chatbot{ID: uuid.New(), UserID: userID, CollectionName: "bot-2"}
	require.NoError(t, repo.Create(context.Background(), second))

	primary, err := repo.GetPrimary(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, primary.ID)

	require.NoError(t, repo.Archive(context.Background(), first.ID))
	primary, err = repo.GetPrimary(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, primary.ID)
}

func TestChatbotRepo_Update(t *testing.T) {
	repo := memory.NewChatbotRepo()

	bot := &domain.Chatbot{ID: uuid.New(), UserID: uuid.New(), ProjectName: "Old", CollectionName: "bot-1"}
	require.NoError(t, repo.Create(context.Background(), bot))

	bot.ProjectName = "New"
	require.NoError(t, repo.Update(context.Background(), bot))

	stored, err := repo.GetByID(context.Background(), bot.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", stored.ProjectName)

	missing := &domain.Chatbot{ID: uuid.New()}
	assert.ErrorIs(t, repo.Update(context.Background(), missing), domain.ErrChatbotNotFound)
}

func TestChatbotRepo_Archive_NotFound(t *testing.T) {
	repo := memory.NewChatbotRepo()

	assert.ErrorIs(t, repo.Archive(context.Background(), uuid.New()), domain.ErrChatbotNotFound)
}
