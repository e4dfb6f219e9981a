package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/blgguy/safetransport/internal/config"
)

const rateLimitMessage = "Too many reports submitted from this address. Please wait an hour."

// RateLimitMiddleware ограничивает подачу отчетов с одного IP скользящим окном
// в Redis. При недоступности Redis пропускает запрос: лимит - защита от спама,
// а не условие доступности сервиса
func RateLimitMiddleware(redisClient *redis.Client, cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rate_limit_report:" + c.ClientIP()
		ctx := c.Request.Context()

		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			log.WithError(err).Warn("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if count == 1 {
			if err := redisClient.Expire(ctx, key, cfg.RateLimitWindow).Err(); err != nil {
				log.WithError(err).Warn("Failed to set rate limit window")
			}
		}

		if count > int64(cfg.RateLimitReports) {
			log.WithField("client_ip", c.ClientIP()).Warn("Report rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Success: false,
				Error:   rateLimitMessage,
			})
			return
		}

		c.Next()
	}
}
