package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchbot/internal/domain"
	"pitchbot/internal/service"
)

// BotHandler handles knowledge-base build and finalize endpoints.
type BotHandler struct {
	botService service.BotService
}

// NewBotHandler creates a new BotHandler.
func NewBotHandler(botService service.BotService) *BotHandler {
	return &BotHandler{botService: botService}
}

// Build handles POST /api/v1/bots/build. Takes the multipart form the
// enrichment UI submits: the resume file plus parsedData and enrichments
// JSON fields. The file is required but the knowledge base is built from
// the reviewed parsedData, not by re-parsing the upload.
func (h *BotHandler) Build(c *gin.Context) {
	file, _, err := c.Request.FormFile("resumeFile")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "resumeFile field is required")
		return
	}
	file.Close()

	parsedJSON := c.PostForm("parsedData")
	if parsedJSON == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_PARSED_DATA", "parsedData field is required")
		return
	}

	var parsed domain.ParsedResumeData
	if err := json.Unmarshal([]byte(parsedJSON), &parsed); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PARSED_DATA", "parsedData is not valid JSON")
		return
	}

	enrichments := map[string]string{}
	if enrichJSON := c.PostForm("enrichments"); enrichJSON != "" {
		if err := json.Unmarshal([]byte(enrichJSON), &enrichments); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ENRICHMENTS", "enrichments is not valid JSON")
			return
		}
	}

	collection, err := h.botService.Build(c.Request.Context(), &service.BuildBotInput{
		Parsed:      parsed,
		Enrichments: enrichments,
		Provider: service.ProviderChoice{
			Name:   c.PostForm("provider_name"),
			APIKey: c.PostForm("api_key"),
		},
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, gin.H{"collection_name": collection})
}

type finalizeRequest struct {
	TempCollectionName      string `json:"temp_collection_name" binding:"required"`
	PermanentCollectionName string `json:"permanent_collection_name" binding:"required"`
	ProviderName            string `json:"provider_name"`
	APIKey                  string `json:"api_key"`
}

// Finalize handles POST /api/v1/collections/finalize.
func (h *BotHandler) Finalize(c *gin.Context) {
	var req finalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "temp_collection_name and permanent_collection_name are required")
		return
	}

	name, err := h.botService.Finalize(c.Request.Context(), &service.FinalizeInput{
		TempCollection:      req.TempCollectionName,
		PermanentCollection: req.PermanentCollectionName,
		Provider:            service.ProviderChoice{Name: req.ProviderName, APIKey: req.APIKey},
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"new_collection_name": name})
}

type addTextRequest struct {
	CollectionName string `json:"collection_name" binding:"required"`
	Text           string `json:"text" binding:"required"`
	ProviderName   string `json:"provider_name"`
	APIKey         string `json:"api_key"`
}

// AddText handles POST /api/v1/bots/add. Indexes extra free text into an
// existing collection.
func (h *BotHandler) AddText(c *gin.Context) {
	var req addTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "collection_name and text are required")
		return
	}

	added, err := h.botService.AddText(c.Request.Context(), req.CollectionName, req.Text,
		service.ProviderChoice{Name: req.ProviderName, APIKey: req.APIKey})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"documents_added": added})
}
