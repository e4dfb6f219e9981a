package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blgguy/safetransport/internal/config"
	"github.com/blgguy/safetransport/internal/crypto"
	"github.com/blgguy/safetransport/internal/models"
	"github.com/blgguy/safetransport/internal/service"
)

const (
	csrfHeader    = "X-CSRF-Token"
	sessionHeader = "X-Session-ID"

	csrfFailedMessage = "Security check failed. Please refresh the page and try again."
)

type Handler struct {
	reportService    service.ReportService
	proximityService service.ProximityService
	lifecycleService service.LifecycleService
	csrf             *crypto.CSRFManager
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	reportService service.ReportService,
	proximityService service.ProximityService,
	lifecycleService service.LifecycleService,
	csrf *crypto.CSRFManager,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		reportService:    reportService,
		proximityService: proximityService,
		lifecycleService: lifecycleService,
		csrf:             csrf,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Submit an anonymous incident report
// @Description Submit an anonymous transit safety incident report. A Critical severity report immediately triggers an emergency broadcast alert.
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body map[string]interface{} true "Incident report payload"
// @Success 200 {object} SubmitReportResponse
// @Failure 400 {object} SubmitReportResponse "Validation error"
// @Failure 403 {object} SubmitReportResponse "CSRF check failed"
// @Failure 429 {object} SubmitReportResponse "Rate limit exceeded"
// @Failure 500 {object} SubmitReportResponse "Internal server error"
// @Router /reports [post]
func (h *Handler) submitReport(c *gin.Context) {
	log := h.logger.WithField("method", "submitReport")

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, SubmitReportResponse{Success: false, Error: "invalid request body"})
		return
	}

	// CSRF проверяется только если клиент прислал токен: анонимная подача
	// без сессии остается возможной
	token := c.GetHeader(csrfHeader)
	if token == "" {
		if t, ok := payload["csrf_token"].(string); ok {
			token = t
		}
	}
	if token != "" {
		sessionID := c.GetHeader(sessionHeader)
		ok, err := h.csrf.Validate(c.Request.Context(), sessionID, token)
		if err != nil {
			log.WithError(err).Error("CSRF validation failed")
			c.JSON(http.StatusInternalServerError, SubmitReportResponse{Success: false, Error: "internal server error"})
			return
		}
		if !ok {
			log.Warn("CSRF token mismatch")
			c.JSON(http.StatusForbidden, SubmitReportResponse{Success: false, Error: csrfFailedMessage})
			return
		}
	}
	delete(payload, "csrf_token")

	receipt, err := h.reportService.SubmitReport(c.Request.Context(), payload)
	if err != nil {
		status, msg := errorStatus(err)
		if status == http.StatusInternalServerError {
			log.WithError(err).Error("Failed to submit report")
		} else {
			log.WithError(err).Warn("Report submission rejected")
		}
		c.JSON(status, SubmitReportResponse{Success: false, Error: msg})
		return
	}

	c.JSON(http.StatusOK, SubmitReportResponse{
		Success:  true,
		ReportID: receipt.ReportID.String(),
		Message:  receipt.Message,
	})
}

// @Summary Find incidents near a point
// @Description Get anonymized visible incidents within a radius of the given coordinates, closest first.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_km query number false "Search radius in km" default(5)
// @Param days_back query int false "How many days back to look" default(7)
// @Success 200 {object} NearbyIncidentsResponse
// @Failure 400 {object} ErrorResponse "Invalid coordinates"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/nearby [get]
func (h *Handler) nearbyIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyIncidents")

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: "lat and lng must be valid coordinates"})
		return
	}

	radius := parseFloatQuery(c, "radius_km")
	days := parseIntQuery(c, "days_back")

	incidents, err := h.proximityService.NearbyIncidents(c.Request.Context(), lat, lng, radius, days)
	if err != nil {
		status, msg := errorStatus(err)
		if status == http.StatusInternalServerError {
			log.WithError(err).Error("Failed to find nearby incidents")
		}
		c.JSON(status, ErrorResponse{Success: false, Error: msg})
		return
	}
	if incidents == nil {
		incidents = []models.IncidentSummary{}
	}

	c.JSON(http.StatusOK, NearbyIncidentsResponse{
		Success:   true,
		Incidents: incidents,
		Count:     len(incidents),
	})
}

// @Summary Get active safety alerts
// @Description Get unexpired safety alerts. With lat/lng the list is filtered to alerts covering the point plus global alerts, closest first.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Param radius_km query number false "Search radius in km" default(5)
// @Success 200 {object} ActiveAlertsResponse
// @Failure 400 {object} ErrorResponse "Invalid coordinates"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /alerts [get]
func (h *Handler) activeAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "activeAlerts")

	// Непарсящиеся необязательные координаты считаются отсутствующими
	var lat, lng *float64
	if v, err := strconv.ParseFloat(c.Query("lat"), 64); err == nil {
		lat = &v
	}
	if v, err := strconv.ParseFloat(c.Query("lng"), 64); err == nil {
		lng = &v
	}
	if lat == nil || lng == nil {
		lat, lng = nil, nil
	}
	radius := parseFloatQuery(c, "radius_km")

	alerts, err := h.proximityService.ActiveAlerts(c.Request.Context(), lat, lng, radius)
	if err != nil {
		status, msg := errorStatus(err)
		if status == http.StatusInternalServerError {
			log.WithError(err).Error("Failed to get active alerts")
		}
		c.JSON(status, ErrorResponse{Success: false, Error: msg})
		return
	}

	c.JSON(http.StatusOK, ActiveAlertsResponse{
		Success: true,
		Alerts:  alerts,
		Count:   len(alerts),
	})
}

// @Summary Verify, reject or resolve an incident report
// @Description Apply an administrative action to a report. Verify triggers a safety alert, Resolve expires active alerts. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body VerifyIncidentRequest true "Action request"
// @Success 200 {object} VerifyIncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid request or illegal transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/incidents/verify [post]
func (h *Handler) verifyIncident(c *gin.Context) {
	var input VerifyIncidentRequest
	log := h.logger.WithField("method", "verifyIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	reportID, err := uuid.Parse(input.ReportID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: "invalid report ID"})
		return
	}

	newStatus, err := h.lifecycleService.ProcessAction(
		c.Request.Context(),
		actorFromContext(c),
		reportID,
		models.AdminAction(input.Action),
		crypto.SanitizeString(input.AdminNotes),
	)
	if err != nil {
		status, msg := errorStatus(err)
		if status == http.StatusInternalServerError {
			log.WithError(err).Error("Failed to process admin action")
		} else {
			log.WithError(err).Warn("Admin action rejected")
		}
		c.JSON(status, ErrorResponse{Success: false, Error: msg})
		return
	}

	c.JSON(http.StatusOK, VerifyIncidentResponse{
		Success:   true,
		Message:   "Incident report " + input.Action + " processed.",
		NewStatus: string(newStatus),
	})
}

// @Summary Create a manual safety alert
// @Description Create a safety alert not tied to any report. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.logger.WithField("method", "createAlert")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	alert := DTOToAlertModel(input)
	alert.Message = crypto.SanitizeString(alert.Message)

	if err := h.lifecycleService.CreateManualAlert(c.Request.Context(), actorFromContext(c), alert); err != nil {
		status, msg := errorStatus(err)
		if status == http.StatusInternalServerError {
			log.WithError(err).Error("Failed to create manual alert")
		}
		c.JSON(status, ErrorResponse{Success: false, Error: msg})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"alert_id": alert.AlertID.String()})
}

// @Summary Delete an incident report
// @Description Permanently delete a report together with its location and alerts. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/reports/{id} [delete]
func (h *Handler) deleteReport(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "deleteReport").WithField("report_id", reportID)

	if err := h.lifecycleService.DeleteReport(c.Request.Context(), actorFromContext(c), reportID); err != nil {
		status, msg := errorStatus(err)
		if status == http.StatusInternalServerError {
			log.WithError(err).Error("Failed to delete report")
		}
		c.JSON(status, ErrorResponse{Success: false, Error: msg})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get a CSRF token
// @Description Issue or return the current CSRF token for the session identified by X-Session-ID.
// @Tags System
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Success 200 {object} CSRFTokenResponse
// @Failure 400 {object} ErrorResponse "Missing session"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /csrf-token [get]
func (h *Handler) csrfToken(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: "X-Session-ID header is required"})
		return
	}

	token, err := h.csrf.Issue(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to issue CSRF token")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, CSRFTokenResponse{CSRFToken: token})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseFloatQuery возвращает 0 при отсутствии или мусоре в параметре,
// сервис подставит значение по умолчанию
func parseFloatQuery(c *gin.Context, name string) float64 {
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseIntQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
