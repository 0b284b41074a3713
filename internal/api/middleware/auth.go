package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/ytscout/ytscout/internal/config"
	"github.com/ytscout/ytscout/internal/models"
	"github.com/ytscout/ytscout/internal/utils"
)

// APIKeyMiddleware guards endpoints with a static X-API-Key header. When
// no key is configured the check is disabled, which is the default for
// internal deployments.
func APIKeyMiddleware(cfg *config.APIConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APIKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.APIKey)) != 1 {
			appErr := utils.NewUnauthorizedError()
			c.AbortWithStatusJSON(appErr.StatusCode, models.VideoResponse{
				Success: false,
				Error:   appErr.Message,
			})
			return
		}

		c.Next()
	}
}
