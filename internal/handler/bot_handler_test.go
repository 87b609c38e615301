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

func newBotHandler() (*handler.BotHandler, *mocks.MockBotService) {
	mockSvc := new(mocks.MockBotService)
	h := handler.NewBotHandler(mockSvc)
	return h, mockSvc
}

func TestBotHandler_Build_Success(t *testing.T) {
	h, mockSvc := newBotHandler()

	mockSvc.On("Build", mock.Anything, mock.MatchedBy(func(input *service.BuildBotInput) bool {
		return len(input.Parsed.Sections["PROJECTS"]) == 1 &&
			input.Enrichments["PROJECTS-0"] == "weekend build" &&
			input.Provider.Name == domain.ProviderMock
	})).Return("temp-abc123", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/api/v1/bots/build", map[string]string{
		"parsedData":    `{"PROJECTS":[{"title":"Game Solver"}]}`,
		"enrichments":   `{"PROJECTS-0":"weekend build"}`,
		"provider_name": domain.ProviderMock,
	}, "resumeFile", "resume.pdf", []byte("%PDF-1.4 fake"))

	h.Build(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "temp-abc123", data["collection_name"])
	mockSvc.AssertExpectations(t)
}

func TestBotHandler_Build_MissingFile(t *testing.T) {
	h, mockSvc := newBotHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/api/v1/bots/build", map[string]string{
		"parsedData": `{"PROJECTS":[{"title":"Game Solver"}]}`,
	}, "", "", nil)

	h.Build(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "MISSING_FILE", resp.Error.Code)
	mockSvc.AssertNotCalled(t, "Build", mock.Anything, mock.Anything)
}

func TestBotHandler_Build_MissingParsedData(t *testing.T) {
	h, mockSvc := newBotHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/api/v1/bots/build", map[string]string{},
		"resumeFile", "resume.pdf", []byte("%PDF-1.4 fake"))

	h.Build(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "MISSING_PARSED_DATA", resp.Error.Code)
	mockSvc.AssertNotCalled(t, "Build", mock.Anything, mock.Anything)
}

func TestBotHandler_Build_InvalidParsedData(t *testing.T) {
	h, _ := newBotHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/api/v1/bots/build", map[string]string{
		"parsedData": "{not json",
	}, "resumeFile", "resume.pdf", []byte("%PDF-1.4 fake"))

	h.Build(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "INVALID_PARSED_DATA", resp.Error.Code)
}

func TestBotHandler_Build_UnknownProvider(t *testing.T) {
	h, mockSvc := newBotHandler()

	mockSvc.On("Build", mock.Anything, mock.Anything).Return("", domain.ErrUnknownProvider)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = multipartRequest(t, "/api/v1/bots/build", map[string]string{
		"parsedData":    `{"PROJECTS":[{"title":"Game Solver"}]}`,
		"provider_name": "unknown",
	}, "resumeFile", "resume.pdf", []byte("%PDF-1.4 fake"))

	h.Build(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "UNKNOWN_PROVIDER", resp.Error.Code)
}

func TestBotHandler_Finalize_Success(t *testing.T) {
	h, mockSvc := newBotHandler()

	mockSvc.On("Finalize", mock.Anything, mock.MatchedBy(func(input *service.FinalizeInput) bool {
		return input.TempCollection == "temp-abc123" && input.PermanentCollection == "pitch-bot"
	})).Return("pitch-bot", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/v1/collections/finalize", map[string]string{
		"temp_collection_name":      "temp-abc123",
		"permanent_collection_name": "pitch-bot",
	})

	h.Finalize(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, "pitch-bot", data["new_collection_name"])
	mockSvc.AssertExpectations(t)
}

func TestBotHandler_Finalize_MissingFields(t *testing.T) {
	h, mockSvc := newBotHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/v1/collections/finalize", map[string]string{
		"temp_collection_name": "temp-abc123",
	})

	h.Finalize(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything)
}

func TestBotHandler_Finalize_UnknownTemp(t *testing.T) {
	h, mockSvc := newBotHandler()

	mockSvc.On("Finalize", mock.Anything, mock.Anything).Return("", domain.ErrFinalizeFailure)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/v1/collections/finalize", map[string]string{
		"temp_collection_name":      "temp-gone",
		"permanent_collection_name": "pitch-bot",
	})

	h.Finalize(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestBotHandler_AddText_Success(t *testing.T) {
	h, mockSvc := newBotHandler()

	mockSvc.On("AddText", mock.Anything, "bot-123", "I also mentor juniors.", mock.Anything).Return(1, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/v1/bots/add", map[string]string{
		"collection_name": "bot-123",
		"text":            "I also mentor juniors.",
	})

	h.AddText(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["documents_added"])
	mockSvc.AssertExpectations(t)
}
