package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pitchbot/internal/domain"
	"pitchbot/internal/middleware"
	"pitchbot/internal/service"
)

// ChatbotHandler handles the chatbot registry endpoints.
type ChatbotHandler struct {
	registry  service.RegistryService
	exportSvc service.ExportService
}

// NewChatbotHandler creates a new ChatbotHandler.
func NewChatbotHandler(registry service.RegistryService, exportSvc service.ExportService) *ChatbotHandler {
	return &ChatbotHandler{registry: registry, exportSvc: exportSvc}
}

type registerBotRequest struct {
	TempCollectionName string `json:"temp_collection_name" binding:"required"`
	ProjectName        string `json:"project_name" binding:"required"`
	ProviderName       string `json:"provider_name"`
	APIKey             string `json:"api_key"`
}

// Create handles POST /api/v1/chatbots. Finalizes the temporary collection
// and registers the chatbot; the BYOK credential is encrypted before it is
// stored.
func (h *ChatbotHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req registerBotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "temp_collection_name and project_name are required")
		return
	}

	bot, err := h.registry.FinalizeAndRegister(c.Request.Context(), &service.FinalizeBotInput{
		UserID:         userID,
		UserEmail:      middleware.GetEmail(c),
		TempCollection: req.TempCollectionName,
		ProjectName:    req.ProjectName,
		Provider:       service.ProviderChoice{Name: req.ProviderName, APIKey: req.APIKey},
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, bot)
}

// List handles GET /api/v1/chatbots.
func (h *ChatbotHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	bots, err := h.registry.List(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, bots)
}

// GetPrimary handles GET /api/v1/chatbots/primary.
func (h *ChatbotHandler) GetPrimary(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	bot, err := h.registry.GetPrimary(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, bot)
}

// GetByID handles GET /api/v1/chatbots/:id.
func (h *ChatbotHandler) GetByID(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	botID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid chatbot id")
		return
	}
	bot, err := h.registry.Get(c.Request.Context(), userID, botID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, bot)
}

type updateBotRequest struct {
	ProjectName  string `json:"project_name"`
	ProviderName string `json:"provider_name"`
	APIKey       string `json:"api_key"`
}

// Update handles PUT /api/v1/chatbots/:id.
func (h *ChatbotHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	botID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid chatbot id")
		return
	}

	var req updateBotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body is not valid JSON")
		return
	}

	bot, err := h.registry.Update(c.Request.Context(), &service.UpdateBotInput{
		UserID:      userID,
		BotID:       botID,
		ProjectName: req.ProjectName,
		Provider:    service.ProviderChoice{Name: req.ProviderName, APIKey: req.APIKey},
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, bot)
}

// Archive handles DELETE /api/v1/chatbots/:id. Rows are archived, not
// removed.
func (h *ChatbotHandler) Archive(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	botID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid chatbot id")
		return
	}
	if err := h.registry.Archive(c.Request.Context(), userID, botID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": botID, "status": domain.ChatbotArchived})
}

// Embed handles GET /api/v1/chatbots/:id/embed.
func (h *ChatbotHandler) Embed(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	botID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid chatbot id")
		return
	}
	snippets, err := h.exportSvc.EmbedSnippets(c.Request.Context(), userID, botID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, snippets)
}

type reportRequest struct {
	ParsedData  domain.ParsedResumeData `json:"parsed_data"`
	Enrichments map[string]string       `json:"enrichments"`
}

// Report handles POST /api/v1/chatbots/:id/report. Renders the knowledge
// base as an xlsx workbook and returns a presigned download URL.
func (h *ChatbotHandler) Report(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	botID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid chatbot id")
		return
	}

	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body is not valid JSON")
		return
	}

	url, err := h.exportSvc.KnowledgeReport(c.Request.Context(), &service.ReportInput{
		UserID:      userID,
		BotID:       botID,
		Parsed:      req.ParsedData,
		Enrichments: req.Enrichments,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"download_url": url})
}
