package handler

import (
	"net/http"
	"strconv"
	"time"

	"or-control-backend/internal/service"
	"or-control-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DisplayKeyHandler struct {
	keyService *service.DisplayKeyService
}

func NewDisplayKeyHandler(keyService *service.DisplayKeyService) *DisplayKeyHandler {
	return &DisplayKeyHandler{
		keyService: keyService,
	}
}

type GenerateKeyRequest struct {
	Label     string     `json:"label" binding:"required"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// GenerateKey creates a new panel key. The plain-text key is returned
// exactly once; only its hash is stored.
func (h *DisplayKeyHandler) GenerateKey(c *gin.Context) {
	var req GenerateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request. Label is required")
		return
	}

	resp, err := h.keyService.GenerateKey(req.Label, req.ExpiresAt, currentUserID(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to generate display key")
		return
	}
	utils.SuccessResponse(c, resp)
}

// ListKeys returns all display keys without plain-text material
func (h *DisplayKeyHandler) ListKeys(c *gin.Context) {
	keys, err := h.keyService.ListKeys()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list display keys")
		return
	}
	utils.SuccessResponse(c, keys)
}

// RevokeKey deactivates a display key
func (h *DisplayKeyHandler) RevokeKey(c *gin.Context) {
	keyID, err := strconv.ParseUint(c.Param("key_id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid key ID")
		return
	}

	if err := h.keyService.RevokeKey(uint(keyID), currentUserID(c)); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to revoke display key")
		return
	}
	utils.MessageResponse(c, "Display key revoked")
}
