package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blgguy/safetransport/internal/apperrors"
	"github.com/blgguy/safetransport/internal/crypto"
	"github.com/blgguy/safetransport/internal/models"
	"github.com/blgguy/safetransport/internal/webhook"
)

const (
	minDescriptionLen = 10
	maxDescriptionLen = 500

	criticalAlertRadiusKm = 1.0
	criticalAlertTTL      = 2 * time.Hour
	criticalAlertMessage  = "CRITICAL SAFETY INCIDENT: Authorities are dispatched to the area."

	submissionThanks = "Incident reported successfully. Thank you for making transport safer."
)

type reportService struct {
	repo      ReportRepository
	crypto    *crypto.Service
	logger    *logrus.Logger
	publisher webhook.AlertPublisher
	now       func() time.Time
}

func NewReportService(repo ReportRepository, cryptoSvc *crypto.Service, logger *logrus.Logger, publisher webhook.AlertPublisher) ReportService {
	return &reportService{
		repo:      repo,
		crypto:    cryptoSvc,
		logger:    logger,
		publisher: publisher,
		now:       time.Now,
	}
}

// SubmitReport валидирует сырые данные подачи, шифрует описание и сохраняет
// отчет. Критический инцидент дополнительно создает экстренное оповещение в той
// же транзакции
func (s *reportService) SubmitReport(ctx context.Context, payload map[string]any) (*models.SubmissionReceipt, error) {
	sub, err := s.validateSubmission(payload)
	if err != nil {
		return nil, err
	}

	now := s.now()
	reportID := uuid.New()

	// Seed не содержит никаких данных отправителя, хэш не обратим к личности
	seed := fmt.Sprintf("%s%d%d", reportID, now.Unix(), rand.IntN(100000))
	anonymousHash := s.crypto.AnonymousHash(seed)

	encrypted, err := s.crypto.Encrypt(sub.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt description: %w", err)
	}

	loc := &models.Location{
		Latitude:           sub.Latitude,
		Longitude:          sub.Longitude,
		TransportationMode: sub.TransportationMode,
		RouteIdentifier:    sub.RouteIdentifier,
		AddressDescription: sub.AddressDescription,
	}
	report := &models.IncidentReport{
		ReportID:             reportID,
		IncidentTypeID:       sub.IncidentTypeID,
		Severity:             sub.Severity,
		DescriptionEncrypted: encrypted,
		EventAt:              sub.EventAt,
		VerificationScore:    0,
		Status:               models.StatusPending,
		AnonymousHash:        anonymousHash,
	}

	var alert *models.SafetyAlert
	if sub.Severity == models.SeverityCritical {
		alert = &models.SafetyAlert{
			AlertID:          uuid.New(),
			ReportID:         &reportID,
			AlertType:        models.AlertTypeEmergencyBroadcast,
			Severity:         string(models.SeverityCritical),
			Message:          criticalAlertMessage,
			LocationRadiusKm: criticalAlertRadiusKm,
			SentAt:           now,
			ExpiresAt:        now.Add(criticalAlertTTL),
		}
	}

	if err := s.repo.CreateReport(ctx, report, loc, alert); err != nil {
		s.logger.WithError(err).Error("Failed to persist incident report")
		return nil, &apperrors.PersistenceError{Op: "submit report", Err: err}
	}

	if alert != nil {
		publishAlertEvent(ctx, s.publisher, s.logger, alert, &loc.Latitude, &loc.Longitude)
	}

	s.logger.WithFields(logrus.Fields{
		"report_id": reportID,
		"severity":  sub.Severity,
	}).Info("Incident report submitted")

	return &models.SubmissionReceipt{
		ReportID: reportID,
		Message:  submissionThanks,
	}, nil
}

// requiredFields - порядок проверки обязательных полей подачи
var requiredFields = []string{
	"incident_type_id",
	"latitude",
	"longitude",
	"description",
	"severity",
	"transportation_mode",
	"timestamp",
}

// validateSubmission проверяет поля в фиксированном порядке и возвращает первую
// найденную ошибку. Значение считается присутствующим, если ключ есть, не null
// и не пустая строка
func (s *reportService) validateSubmission(payload map[string]any) (*models.ReportSubmission, error) {
	for _, field := range requiredFields {
		if isEmpty(payload[field]) {
			return nil, &apperrors.ValidationError{Field: field, Reason: "is required"}
		}
	}

	sub := &models.ReportSubmission{}

	sub.IncidentTypeID = crypto.EnsureInt(payload["incident_type_id"])
	if sub.IncidentTypeID <= 0 {
		return nil, &apperrors.ValidationError{Field: "incident_type_id", Reason: "must be a positive integer"}
	}

	sub.Latitude = crypto.EnsureFloat(payload["latitude"])
	if sub.Latitude < -90 || sub.Latitude > 90 {
		return nil, &apperrors.ValidationError{Field: "latitude", Reason: "must be between -90 and 90"}
	}
	sub.Longitude = crypto.EnsureFloat(payload["longitude"])
	if sub.Longitude < -180 || sub.Longitude > 180 {
		return nil, &apperrors.ValidationError{Field: "longitude", Reason: "must be between -180 and 180"}
	}

	sub.Severity = models.Severity(asString(payload["severity"]))
	if !sub.Severity.Valid() {
		return nil, &apperrors.ValidationError{Field: "severity", Reason: "must be one of Low, Medium, High, Critical"}
	}

	sub.TransportationMode = models.TransportMode(asString(payload["transportation_mode"]))
	if !sub.TransportationMode.Valid() {
		return nil, &apperrors.ValidationError{Field: "transportation_mode", Reason: "is not a recognized transportation mode"}
	}

	sub.Description = crypto.SanitizeString(asString(payload["description"]))
	if n := len(sub.Description); n < minDescriptionLen || n > maxDescriptionLen {
		return nil, &apperrors.ValidationError{
			Field:  "description",
			Reason: fmt.Sprintf("must be between %d and %d characters", minDescriptionLen, maxDescriptionLen),
		}
	}

	// Строгая проверка: повторное форматирование обязано воспроизвести исходную
	// строку, иначе '2024-02-30' тихо превратился бы в марта
	raw := asString(payload["timestamp"])
	eventAt, err := time.Parse(models.TimestampLayout, raw)
	if err != nil || eventAt.Format(models.TimestampLayout) != raw {
		return nil, &apperrors.ValidationError{Field: "timestamp", Reason: "must be a valid 'YYYY-MM-DD HH:MM:SS' datetime"}
	}
	sub.EventAt = eventAt

	sub.RouteIdentifier = crypto.SanitizeString(asString(payload["route_identifier"]))
	sub.AddressDescription = crypto.SanitizeString(asString(payload["address_description"]))

	return sub, nil
}

// isEmpty: ключ отсутствует, null или пустая строка. Ноль - допустимое значение
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// publishAlertEvent ставит событие оповещения в очередь. Ошибка публикации
// не откатывает уже сохраненные данные, только логируется
func publishAlertEvent(ctx context.Context, publisher webhook.AlertPublisher, logger *logrus.Logger, alert *models.SafetyAlert, lat, lng *float64) {
	if publisher == nil {
		return
	}
	event := webhook.AlertEvent{
		AlertID:          alert.AlertID,
		ReportID:         alert.ReportID,
		AlertType:        alert.AlertType,
		Severity:         alert.Severity,
		Message:          alert.Message,
		LocationRadiusKm: alert.LocationRadiusKm,
		Latitude:         lat,
		Longitude:        lng,
		ExpiresAt:        alert.ExpiresAt,
		Timestamp:        alert.SentAt,
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WithError(err).WithField("alert_id", alert.AlertID).Warn("Failed to publish alert event")
	}
}
