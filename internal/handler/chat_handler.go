package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchbot/internal/service"
)

// ChatHandler handles chatbot conversation endpoints.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type chatRequest struct {
	CollectionName string `json:"collection_name" binding:"required"`
	Query          string `json:"query" binding:"required"`
	ProviderName   string `json:"provider_name"`
	APIKey         string `json:"api_key"`
}

// Chat handles POST /api/v1/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "collection_name and query are required")
		return
	}

	result, err := h.chatService.Query(c.Request.Context(), &service.ChatInput{
		Collection: req.CollectionName,
		Query:      req.Query,
		Provider:   service.ProviderChoice{Name: req.ProviderName, APIKey: req.APIKey},
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

type chatResetRequest struct {
	CollectionName string `json:"collection_name" binding:"required"`
}

// Reset handles POST /api/v1/chat/reset. Clears conversation memory for a
// collection; the knowledge base itself is untouched.
func (h *ChatHandler) Reset(c *gin.Context) {
	var req chatResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "collection_name is required")
		return
	}
	h.chatService.ResetMemory(req.CollectionName)
	RespondOK(c, gin.H{"collection_name": req.CollectionName, "reset": true})
}

// Memory handles GET /api/v1/chat/memory/:collection.
func (h *ChatHandler) Memory(c *gin.Context) {
	collection := c.Param("collection")
	RespondOK(c, h.chatService.MemorySummary(collection))
}
