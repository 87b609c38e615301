package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pitchbot/internal/domain"
	"pitchbot/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrUnsupportedFile):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; only PDF resumes are accepted"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrNoExtractableText):
		return http.StatusUnprocessableEntity, "NO_EXTRACTABLE_TEXT", "no text could be extracted from the file"
	case errors.Is(err, domain.ErrParseFailure):
		return http.StatusUnprocessableEntity, "PARSE_FAILURE", "could not find any standard sections in the resume"
	case errors.Is(err, domain.ErrBuildFailure):
		return http.StatusBadGateway, "BUILD_FAILURE", "knowledge base build failed"
	case errors.Is(err, domain.ErrFinalizeFailure):
		return http.StatusBadGateway, "FINALIZE_FAILURE", "collection finalization failed"
	case errors.Is(err, domain.ErrDecryptFailure):
		return http.StatusUnprocessableEntity, "DECRYPT_FAILURE", "credential could not be decrypted; please re-enter the key"
	case errors.Is(err, domain.ErrCollectionNotFound):
		return http.StatusNotFound, "COLLECTION_NOT_FOUND", "collection not found"
	case errors.Is(err, domain.ErrChatbotNotFound):
		return http.StatusNotFound, "CHATBOT_NOT_FOUND", "chatbot not found"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "session not found"
	case errors.Is(err, domain.ErrUnknownProvider):
		return http.StatusBadRequest, "UNKNOWN_PROVIDER", "unknown LLM provider"
	case errors.Is(err, domain.ErrMissingAPIKey):
		return http.StatusBadRequest, "MISSING_API_KEY", "an API key is required for this provider"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, "INVALID_TRANSITION", "operation not allowed in the current pipeline phase"
	case errors.Is(err, domain.ErrBuildInFlight):
		return http.StatusConflict, "BUILD_IN_FLIGHT", "a build is already in progress for this session"
	case errors.Is(err, domain.ErrFileUnavailable):
		return http.StatusConflict, "FILE_UNAVAILABLE", "the resume file is no longer available; please re-upload"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		log.Printf("[%s] internal error: %v", middleware.GetRequestID(c), err)
	}
	RespondError(c, status, code, msg)
}

// requireUser extracts the authenticated user ID from the request context.
// Returns false if auth context is missing (error response already written).
func requireUser(c *gin.Context) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return uuid.Nil, false
	}
	return userID, true
}
