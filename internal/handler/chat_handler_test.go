package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pitchbot/internal/domain"
	"pitchbot/internal/handler"
	"pitchbot/internal/service"
	"pitchbot/mocks"
)

func newChatHandler() (*handler.ChatHandler, *mocks.MockChatService) {
	mockSvc := new(mocks.MockChatService)
	h := handler.NewChatHandler(mockSvc)
	return h, mockSvc
}

func TestChatHandler_Chat_Success(t *testing.T) {
	h, mockSvc := newChatHandler()

	mockSvc.On("Query", mock.Anything, mock.MatchedBy(func(input *service.ChatInput) bool {
		return input.Collection == "bot-123" && input.Query == "Why hire them?"
	})).Return(&service.ChatResult{
		Answer: "Because they ship.",
		Memory: domain.MemorySummary{Exchanges: 1, TotalMessages: 2},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/v1/chat", map[string]string{
		"collection_name": "bot-123",
		"query":           "Why hire them?",
	})

	h.Chat(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Because they ship.", data["answer"])
	mockSvc.AssertExpectations(t)
}

func TestChatHandler_Chat_MissingQuery(t *testing.T) {
	h, mockSvc := newChatHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/v1/chat", map[string]string{
		"collection_name": "bot-123",
	})

	h.Chat(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Query", mock.Anything, mock.Anything)
}

func TestChatHandler_Chat_UnknownCollection(t *testing.T) {
	h, mockSvc := newChatHandler()

	mockSvc.On("Query", mock.Anything, mock.Anything).Return(nil, domain.ErrCollectionNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/v1/chat", map[string]string{
		"collection_name": "bot-gone",
		"query":           "Why hire them?",
	})

	h.Chat(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "COLLECTION_NOT_FOUND", resp.Error.Code)
}

func TestChatHandler_Reset_Success(t *testing.T) {
	h, mockSvc := newChatHandler()

	mockSvc.On("ResetMemory", "bot-123").Return()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/v1/chat/reset", map[string]string{
		"collection_name": "bot-123",
	})

	h.Reset(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, true, data["reset"])
	mockSvc.AssertExpectations(t)
}

func TestChatHandler_Memory(t *testing.T) {
	h, mockSvc := newChatHandler()

	mockSvc.On("MemorySummary", "bot-123").Return(domain.MemorySummary{Exchanges: 2, TotalMessages: 4})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/chat/memory/bot-123", http.NoBody)
	c.Params = gin.Params{{Key: "collection", Value: "bot-123"}}

	h.Memory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, float64(2), data["exchanges"])
	assert.Equal(t, float64(4), data["total_messages"])
	mockSvc.AssertExpectations(t)
}
