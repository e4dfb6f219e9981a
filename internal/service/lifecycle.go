package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blgguy/safetransport/internal/apperrors"
	"github.com/blgguy/safetransport/internal/models"
	"github.com/blgguy/safetransport/internal/webhook"
)

const (
	verificationAlertTTL         = 4 * time.Hour
	defaultVerifiedAlertRadiusKm = 2.0

	resolvedMarker = " (RESOLVED)"

	noteTimeLayout = "2006-01-02 15:04"
)

type lifecycleService struct {
	reports   ReportRepository
	alerts    AlertRepository
	audit     AuditRepository
	logger    *logrus.Logger
	publisher webhook.AlertPublisher
	now       func() time.Time
}

func NewLifecycleService(reports ReportRepository, alerts AlertRepository, audit AuditRepository, logger *logrus.Logger, publisher webhook.AlertPublisher) LifecycleService {
	return &lifecycleService{
		reports:   reports,
		alerts:    alerts,
		audit:     audit,
		logger:    logger,
		publisher: publisher,
		now:       time.Now,
	}
}

// ProcessAction выполняет административное действие над отчетом: проверяет
// допустимость перехода, меняет статус, пишет аудит и запускает побочные
// эффекты (оповещение при верификации, гашение оповещений при разрешении)
func (s *lifecycleService) ProcessAction(ctx context.Context, actor models.AdminActor, reportID uuid.UUID, action models.AdminAction, notes string) (models.ReportStatus, error) {
	if !action.Valid() {
		return "", &apperrors.ValidationError{Field: "action", Reason: "must be one of Verify, Reject, Resolve"}
	}

	report, err := s.reports.GetReportByID(ctx, reportID)
	if err != nil {
		return "", err
	}

	target := action.TargetStatus()
	// Повторная верификация уже верифицированного отчета допускается, но
	// второе оповещение не создается
	alreadyVerified := action == models.ActionVerify && report.Status == models.StatusVerified
	if !alreadyVerified && !report.Status.CanTransitionTo(target) {
		return "", &apperrors.ValidationError{
			Field:  "action",
			Reason: fmt.Sprintf("cannot %s a report in status %s", action, report.Status),
		}
	}

	note := fmt.Sprintf("[%s - %d] %s: %s", s.now().Format(noteTimeLayout), actor.ID, action, notes)
	if err := s.reports.UpdateReportStatus(ctx, reportID, target, note); err != nil {
		return "", &apperrors.PersistenceError{Op: "update report status", Err: err}
	}

	s.recordAudit(ctx, actor, "INCIDENT_STATUS_CHANGE_"+string(action), reportID.String(),
		fmt.Sprintf("Status changed from %s to %s.", report.Status, target))

	switch action {
	case models.ActionVerify:
		if !alreadyVerified {
			s.triggerVerifiedAlert(ctx, actor, report)
		}
	case models.ActionResolve:
		s.expireAlerts(ctx, actor, reportID)
	}

	s.logger.WithFields(logrus.Fields{
		"report_id": reportID,
		"action":    action,
		"actor_id":  actor.ID,
	}).Info("Report status changed")

	return target, nil
}

// triggerVerifiedAlert создает оповещение безопасности для верифицированного
// отчета. Провал создания не откатывает верификацию, он фиксируется как
// событие безопасности в логах
func (s *lifecycleService) triggerVerifiedAlert(ctx context.Context, actor models.AdminActor, report *models.IncidentReport) {
	now := s.now()

	radius := defaultVerifiedAlertRadiusKm
	locRadius, err := s.alerts.GetLocationRadius(ctx, report.LocationID)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load location radius, using default")
	} else if locRadius != nil {
		radius = *locRadius
	}

	reportID := report.ReportID
	alert := &models.SafetyAlert{
		AlertID:          uuid.New(),
		ReportID:         &reportID,
		AlertType:        models.AlertTypeForSeverity(report.Severity),
		Severity:         string(report.Severity),
		Message:          fmt.Sprintf("Verified report of a **%s** incident in the area.", report.Severity),
		LocationRadiusKm: radius,
		SentAt:           now,
		ExpiresAt:        now.Add(verificationAlertTTL),
	}

	if err := s.alerts.CreateAlert(ctx, alert); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"report_id":      report.ReportID,
			"security_event": "ALERT_CREATION_FAILED",
		}).Error("Report verified but safety alert was not created")
		return
	}

	s.recordAudit(ctx, actor, "SAFETY_ALERT_CREATED", report.ReportID.String(), "Alert triggered for 4 hours.")
	publishAlertEvent(ctx, s.publisher, s.logger, alert, nil, nil)
}

// expireAlerts гасит активные оповещения разрешенного отчета
func (s *lifecycleService) expireAlerts(ctx context.Context, actor models.AdminActor, reportID uuid.UUID) {
	n, err := s.alerts.ExpireAlertsForReport(ctx, reportID, resolvedMarker)
	if err != nil {
		s.logger.WithError(err).WithField("report_id", reportID).Error("Failed to expire alerts for resolved report")
		return
	}
	if n > 0 {
		s.recordAudit(ctx, actor, "SAFETY_ALERT_EXPIRED", reportID.String(), "Active alert expired due to resolution.")
	}
}

// CreateManualAlert создает оповещение, не привязанное к отчету
func (s *lifecycleService) CreateManualAlert(ctx context.Context, actor models.AdminActor, alert *models.SafetyAlert) error {
	now := s.now()

	if alert.Message == "" {
		return &apperrors.ValidationError{Field: "message", Reason: "is required"}
	}
	if alert.ExpiresAt.IsZero() || !alert.ExpiresAt.After(now) {
		return &apperrors.ValidationError{Field: "expires_at", Reason: "must be in the future"}
	}
	if alert.AlertType == "" {
		alert.AlertType = models.AlertTypeInformational
	}
	alert.LocationRadiusKm = clampFloat(alert.LocationRadiusKm, minRadiusKm, maxRadiusKm, defaultVerifiedAlertRadiusKm)

	alert.AlertID = uuid.New()
	alert.ReportID = nil
	alert.SentAt = now

	if err := s.alerts.CreateAlert(ctx, alert); err != nil {
		return &apperrors.PersistenceError{Op: "create manual alert", Err: err}
	}

	s.recordAudit(ctx, actor, "SAFETY_ALERT_CREATED_MANUAL", "",
		fmt.Sprintf("Manual %s alert, radius %.1f km.", alert.AlertType, alert.LocationRadiusKm))
	publishAlertEvent(ctx, s.publisher, s.logger, alert, nil, nil)

	s.logger.WithFields(logrus.Fields{
		"alert_id": alert.AlertID,
		"actor_id": actor.ID,
	}).Info("Manual safety alert created")
	return nil
}

// DeleteReport безвозвратно удаляет отчет с локацией и оповещениями
func (s *lifecycleService) DeleteReport(ctx context.Context, actor models.AdminActor, reportID uuid.UUID) error {
	if err := s.reports.DeleteReport(ctx, reportID); err != nil {
		return err
	}

	s.recordAudit(ctx, actor, "INCIDENT_DELETED", reportID.String(), "Report and associated data removed.")
	s.logger.WithFields(logrus.Fields{
		"report_id": reportID,
		"actor_id":  actor.ID,
	}).Info("Incident report deleted")
	return nil
}

// recordAudit пишет запись аудита. Провал записи не прерывает операцию
func (s *lifecycleService) recordAudit(ctx context.Context, actor models.AdminActor, action, reportID, details string) {
	entry := &models.AuditEntry{
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Action:    action,
		ReportID:  reportID,
		Details:   details,
	}
	if err := s.audit.RecordAction(ctx, entry); err != nil {
		s.logger.WithError(err).WithField("action", action).Warn("Failed to record audit entry")
	}
}
