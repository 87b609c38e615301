package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchbot/internal/domain"
	"pitchbot/internal/service"
)

// ResumeHandler handles resume parsing endpoints.
type ResumeHandler struct {
	resumeService  service.ResumeService
	sessionService service.SessionService
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(resumeService service.ResumeService, sessionService service.SessionService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService, sessionService: sessionService}
}

// Parse handles POST /api/v1/resume/parse. Accepts a multipart "resume" PDF
// and returns its structured sections. When a session id accompanies the
// upload, the parse result is applied to that pipeline session.
func (h *ResumeHandler) Parse(c *gin.Context) {
	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "resume field is required")
		return
	}
	defer func() { _ = file.Close() }()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	parsed, err := h.resumeService.Parse(c.Request.Context(), &service.ParseResumeInput{
		FileBytes:   fileBytes,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	sessionID := c.PostForm("session_id")
	if sessionID == "" {
		sessionID = c.GetHeader("X-Session-ID")
	}
	if sessionID != "" {
		meta := domain.ResumeFileMeta{
			Name: header.Filename,
			Size: header.Size,
			MIME: header.Header.Get("Content-Type"),
		}
		if err := h.sessionService.ApplyParse(c.Request.Context(), sessionID, parsed, fileBytes, meta); err != nil {
			HandleError(c, err)
			return
		}
	}

	RespondOK(c, gin.H{"parsed_data": parsed, "session_id": sessionID})
}
