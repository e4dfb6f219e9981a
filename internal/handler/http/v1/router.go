package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1. submitLimiter - rate limit
// на подачу отчетов, nil отключает ограничение (используется в тестах)
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, submitLimiter gin.HandlerFunc) {
	// Публичные маршруты: анонимная подача и геозапросы
	if submitLimiter != nil {
		api.POST("/reports", submitLimiter, h.submitReport)
	} else {
		api.POST("/reports", h.submitReport)
	}
	api.GET("/incidents/nearby", h.nearbyIncidents)
	api.GET("/alerts", h.activeAlerts)
	api.GET("/csrf-token", h.csrfToken)

	// Административные маршруты за API-ключом
	admin := api.Group("/admin", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.POST("/incidents/verify", h.verifyIncident)
		admin.POST("/alerts", h.createAlert)
		admin.DELETE("/reports/:id", h.deleteReport)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
