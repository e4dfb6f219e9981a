package service

//go:generate mockgen -source=contracts.go -destination=mocks/mock_contracts.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blgguy/safetransport/internal/models"
	"github.com/blgguy/safetransport/pkg/geo"
)

// ReportRepository - хранилище отчетов об инцидентах
type ReportRepository interface {
	// CreateReport атомарно сохраняет локацию, отчет и (опционально) оповещение
	CreateReport(ctx context.Context, report *models.IncidentReport, loc *models.Location, alert *models.SafetyAlert) error
	GetReportByID(ctx context.Context, reportID uuid.UUID) (*models.IncidentReport, error)
	UpdateReportStatus(ctx context.Context, reportID uuid.UUID, status models.ReportStatus, note string) error
	DeleteReport(ctx context.Context, reportID uuid.UUID) error
	// FindRecentCandidates - грубый префильтр по ограничивающему прямоугольнику,
	// точная фильтрация расстояния остается за вызывающим
	FindRecentCandidates(ctx context.Context, box geo.BoundingBox, since time.Time) ([]models.IncidentCandidate, error)
	GetNearbyCache(ctx context.Context, key string) ([]models.IncidentSummary, error)
	SetNearbyCache(ctx context.Context, key string, incidents []models.IncidentSummary, ttl time.Duration) error
}

// AlertRepository - хранилище оповещений безопасности
type AlertRepository interface {
	CreateAlert(ctx context.Context, alert *models.SafetyAlert) error
	FindActiveAlerts(ctx context.Context) ([]models.SafetyAlert, error)
	// ExpireAlertsForReport мягко гасит активные оповещения отчета: expires_at
	// уходит в прошлое, к сообщению дописывается marker. Возвращает число затронутых
	ExpireAlertsForReport(ctx context.Context, reportID uuid.UUID, marker string) (int64, error)
	// GetLocationRadius возвращает радиус локации отчета; nil - радиус не задан
	GetLocationRadius(ctx context.Context, locationID int64) (*float64, error)
	GetAlertsCache(ctx context.Context, key string) ([]models.AlertSummary, error)
	SetAlertsCache(ctx context.Context, key string, alerts []models.AlertSummary, ttl time.Duration) error
}

// AuditRepository - журнал административных действий
type AuditRepository interface {
	RecordAction(ctx context.Context, entry *models.AuditEntry) error
}

// ReportService - публичный путь подачи анонимных отчетов
type ReportService interface {
	SubmitReport(ctx context.Context, payload map[string]any) (*models.SubmissionReceipt, error)
}

// ProximityService - публичные геозапросы: инциденты поблизости и активные оповещения
type ProximityService interface {
	NearbyIncidents(ctx context.Context, lat, lng, radiusKm float64, daysBack int) ([]models.IncidentSummary, error)
	ActiveAlerts(ctx context.Context, lat, lng *float64, radiusKm float64) ([]models.AlertSummary, error)
}

// LifecycleService - административные операции над отчетами и оповещениями
type LifecycleService interface {
	ProcessAction(ctx context.Context, actor models.AdminActor, reportID uuid.UUID, action models.AdminAction, notes string) (models.ReportStatus, error)
	CreateManualAlert(ctx context.Context, actor models.AdminActor, alert *models.SafetyAlert) error
	DeleteReport(ctx context.Context, actor models.AdminActor, reportID uuid.UUID) error
}
