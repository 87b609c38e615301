package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pitchbot/internal/crypto"
)

// CryptoHandler exposes the credential cipher for clients that encrypt keys
// before embedding them in widget snippets.
type CryptoHandler struct {
	cipher *crypto.Cipher
}

// NewCryptoHandler creates a new CryptoHandler.
func NewCryptoHandler(cipher *crypto.Cipher) *CryptoHandler {
	return &CryptoHandler{cipher: cipher}
}

type cryptoRequest struct {
	Action string `json:"action" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// Transform handles POST /api/v1/crypto.
func (h *CryptoHandler) Transform(c *gin.Context) {
	var req cryptoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "action and text are required")
		return
	}

	var result string
	var err error
	switch req.Action {
	case "encrypt":
		result, err = h.cipher.Encrypt(req.Text)
	case "decrypt":
		result, err = h.cipher.Decrypt(req.Text)
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_ACTION", "action must be encrypt or decrypt")
		return
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"result": result})
}
