package middleware

import (
	"net/http"
	"strings"

	"or-control-backend/internal/service"
	"or-control-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DisplayKeyAuth validates the X-API-Key header carried by wall panels
func DisplayKeyAuth(keyService *service.DisplayKeyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "API key is required in X-API-Key header")
			c.Abort()
			return
		}

		apiKey = strings.TrimSpace(apiKey)

		if err := keyService.ValidateKey(apiKey); err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired API key")
			c.Abort()
			return
		}

		c.Next()
	}
}
