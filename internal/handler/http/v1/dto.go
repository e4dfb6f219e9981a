package v1

import (
	"time"

	"github.com/blgguy/safetransport/internal/models"
)

// VerifyIncidentRequest DTO административного действия над отчетом
// @Description DTO административного действия над отчетом
type VerifyIncidentRequest struct {
	ReportID   string `json:"report_id" validate:"required,uuid"`
	Action     string `json:"action" validate:"required,oneof=Verify Reject Resolve"`
	AdminNotes string `json:"admin_notes" validate:"max=1000"`
}

// CreateAlertRequest DTO ручного создания оповещения
// @Description DTO ручного создания оповещения
type CreateAlertRequest struct {
	AlertType        string    `json:"alert_type" validate:"omitempty,oneof=IMMEDIATE_DANGER SEVERE_WARNING SAFETY_ADVISORY INFORMATIONAL"`
	Severity         string    `json:"severity" validate:"required,oneof=Critical Warning Informational"`
	Message          string    `json:"message" validate:"required,min=10,max=500"`
	LocationRadiusKm float64   `json:"location_radius_km" validate:"omitempty,gte=0"`
	ExpiresAt        time.Time `json:"expires_at" validate:"required"`
}

// SubmitReportResponse DTO ответа на подачу отчета
// @Description DTO ответа на подачу отчета
type SubmitReportResponse struct {
	Success  bool   `json:"success"`
	ReportID string `json:"report_id,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// NearbyIncidentsResponse DTO выдачи поиска инцидентов поблизости
// @Description DTO выдачи поиска инцидентов поблизости
type NearbyIncidentsResponse struct {
	Success   bool                     `json:"success"`
	Incidents []models.IncidentSummary `json:"incidents"`
	Count     int                      `json:"count"`
}

// ActiveAlertsResponse DTO выдачи активных оповещений
// @Description DTO выдачи активных оповещений
type ActiveAlertsResponse struct {
	Success bool                  `json:"success"`
	Alerts  []models.AlertSummary `json:"alerts"`
	Count   int                   `json:"count"`
}

// VerifyIncidentResponse DTO результата административного действия
// @Description DTO результата административного действия
type VerifyIncidentResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	NewStatus string `json:"new_status"`
}

// CSRFTokenResponse DTO выдачи CSRF-токена
// @Description DTO выдачи CSRF-токена
type CSRFTokenResponse struct {
	CSRFToken string `json:"csrf_token"`
}

// ErrorResponse DTO унифицированного ответа об ошибке
// @Description DTO унифицированного ответа об ошибке
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
