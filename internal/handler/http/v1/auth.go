package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/blgguy/safetransport/internal/config"
	"github.com/blgguy/safetransport/internal/models"
)

const actorContextKey = "admin_actor"

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		keyIndex := -1
		for i, key := range cfg.APIKeys {
			if key == apiKey {
				keyIndex = i
				break
			}
		}

		if keyIndex < 0 {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		// Порядковый номер ключа служит идентификатором актора в аудите
		c.Set(actorContextKey, models.AdminActor{ID: keyIndex + 1, Role: "Admin"})
		c.Next()
	}
}

// actorFromContext достает актора, проставленного middleware аутентификации
func actorFromContext(c *gin.Context) models.AdminActor {
	if v, ok := c.Get(actorContextKey); ok {
		if actor, ok := v.(models.AdminActor); ok {
			return actor
		}
	}
	return models.AdminActor{Role: "Admin"}
}
