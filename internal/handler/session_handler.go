package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchbot/internal/middleware"
	"pitchbot/internal/pipeline"
	"pitchbot/internal/service"
)

// SessionHandler drives the resume pipeline server-side for thin clients.
type SessionHandler struct {
	sessions service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func sessionView(sess *pipeline.Session) gin.H {
	return gin.H{
		"id":               sess.ID(),
		"phase":            sess.Phase(),
		"parsed_data":      sess.ParsedData(),
		"completion":       sess.CompletionStats(),
		"file_meta":        sess.FileMeta(),
		"temp_collection":  sess.TempCollection(),
		"permanent_bot_id": sess.PermanentBotID(),
		"can_build":        sess.CanBuild(),
	}
}

// Create handles POST /api/v1/sessions.
func (h *SessionHandler) Create(c *gin.Context) {
	sess, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, sessionView(sess))
}

// Get handles GET /api/v1/sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	sess, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, sessionView(sess))
}

type enrichmentRequest struct {
	Key  string `json:"key" binding:"required"`
	Text string `json:"text"`
}

// SetEnrichment handles PUT /api/v1/sessions/:id/enrichments.
func (h *SessionHandler) SetEnrichment(c *gin.Context) {
	var req enrichmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "key is required")
		return
	}

	stats, err := h.sessions.SetEnrichment(c.Request.Context(), c.Param("id"), req.Key, req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"completion": stats})
}

type sessionBuildRequest struct {
	ProviderName string `json:"provider_name"`
	APIKey       string `json:"api_key"`
}

// Build handles POST /api/v1/sessions/:id/build.
func (h *SessionHandler) Build(c *gin.Context) {
	var req sessionBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body is not valid JSON")
		return
	}

	collection, err := h.sessions.Build(c.Request.Context(), c.Param("id"),
		service.ProviderChoice{Name: req.ProviderName, APIKey: req.APIKey})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"collection_name": collection})
}

type sessionFinalizeRequest struct {
	ProjectName  string `json:"project_name" binding:"required"`
	ProviderName string `json:"provider_name"`
	APIKey       string `json:"api_key"`
}

// Finalize handles POST /api/v1/sessions/:id/finalize. Promotes the session's
// temporary collection into a registered chatbot owned by the caller.
func (h *SessionHandler) Finalize(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req sessionFinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "project_name is required")
		return
	}

	bot, err := h.sessions.Finalize(c.Request.Context(), c.Param("id"), &service.FinalizeBotInput{
		UserID:      userID,
		UserEmail:   middleware.GetEmail(c),
		ProjectName: req.ProjectName,
		Provider:    service.ProviderChoice{Name: req.ProviderName, APIKey: req.APIKey},
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, bot)
}

// Reset handles POST /api/v1/sessions/:id/reset.
func (h *SessionHandler) Reset(c *gin.Context) {
	if err := h.sessions.Reset(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"id": c.Param("id"), "reset": true})
}
