package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/blgguy/safetransport/internal/apperrors"
	"github.com/blgguy/safetransport/internal/crypto"
	"github.com/blgguy/safetransport/internal/models"
	"github.com/blgguy/safetransport/internal/service/mocks"
	webhook_mocks "github.com/blgguy/safetransport/internal/webhook/mocks"
)

// newTestReportService — вспомогательная функция для создания сервиса с моками
func newTestReportService(t *testing.T) (*reportService, *mocks.MockReportRepository, *webhook_mocks.MockAlertPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockReportRepository(ctrl)
	publisherMock := webhook_mocks.NewMockAlertPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cryptoSvc, err := crypto.NewService(bytes.Repeat([]byte{0x42}, 32), "test-salt")
	require.NoError(t, err)

	svc := NewReportService(repoMock, cryptoSvc, logger, publisherMock)
	return svc.(*reportService), repoMock, publisherMock
}

func validPayload() map[string]any {
	return map[string]any{
		"incident_type_id":    float64(2),
		"latitude":            40.7128,
		"longitude":           -74.006,
		"description":         "A passenger was harassed near the rear door of the bus.",
		"severity":            "Medium",
		"transportation_mode": "Bus",
		"timestamp":           "2026-08-30 18:45:00",
	}
}

func TestSubmitReport_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestReportService(t)
	ctx := context.Background()

	var captured *models.IncidentReport
	var capturedLoc *models.Location

	// Ожидания
	repoMock.EXPECT().
		CreateReport(ctx, gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, report *models.IncidentReport, loc *models.Location, _ *models.SafetyAlert) error {
			captured = report
			capturedLoc = loc
			return nil
		}).
		Times(1)

	// Действие
	receipt, err := service.SubmitReport(ctx, validPayload())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Incident reported successfully. Thank you for making transport safer.", receipt.Message)
	assert.Equal(t, captured.ReportID, receipt.ReportID)

	assert.Equal(t, models.StatusPending, captured.Status)
	assert.Equal(t, models.SeverityMedium, captured.Severity)
	assert.Zero(t, captured.VerificationScore)
	assert.Len(t, captured.AnonymousHash, 64)
	// Описание хранится только в зашифрованном виде
	assert.NotContains(t, captured.DescriptionEncrypted, "harassed")
	assert.Len(t, strings.Split(captured.DescriptionEncrypted, "."), 3)

	assert.Equal(t, 40.7128, capturedLoc.Latitude)
	assert.Equal(t, models.ModeBus, capturedLoc.TransportationMode)
}

func TestSubmitReport_CriticalTriggersEmergencyAlert(t *testing.T) {
	// Подготовка
	service, repoMock, publisherMock := newTestReportService(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 19, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	payload := validPayload()
	payload["severity"] = "Critical"

	var capturedAlert *models.SafetyAlert

	// Ожидания
	repoMock.EXPECT().
		CreateReport(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *models.IncidentReport, _ *models.Location, alert *models.SafetyAlert) error {
			require.NotNil(t, alert)
			capturedAlert = alert
			assert.Equal(t, report.ReportID, *alert.ReportID)
			return nil
		}).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	_, err := service.SubmitReport(ctx, payload)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AlertTypeEmergencyBroadcast, capturedAlert.AlertType)
	assert.Equal(t, "CRITICAL SAFETY INCIDENT: Authorities are dispatched to the area.", capturedAlert.Message)
	assert.Equal(t, 1.0, capturedAlert.LocationRadiusKm)
	assert.Equal(t, now, capturedAlert.SentAt)
	assert.Equal(t, now.Add(2*time.Hour), capturedAlert.ExpiresAt)
}

func TestSubmitReport_NonCriticalCreatesNoAlert(t *testing.T) {
	service, repoMock, _ := newTestReportService(t)
	ctx := context.Background()

	for _, severity := range []string{"Low", "Medium", "High"} {
		payload := validPayload()
		payload["severity"] = severity

		repoMock.EXPECT().
			CreateReport(ctx, gomock.Any(), gomock.Any(), nil).
			Return(nil).
			Times(1)

		_, err := service.SubmitReport(ctx, payload)
		require.NoError(t, err, "severity %s", severity)
	}
}

func TestSubmitReport_MissingFields(t *testing.T) {
	service, _, _ := newTestReportService(t)
	ctx := context.Background()

	for _, field := range []string{
		"incident_type_id", "latitude", "longitude", "description",
		"severity", "transportation_mode", "timestamp",
	} {
		payload := validPayload()
		delete(payload, field)

		_, err := service.SubmitReport(ctx, payload)

		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr, "field %s", field)
		assert.Equal(t, field, validationErr.Field)
	}
}

func TestSubmitReport_EmptyStringField(t *testing.T) {
	service, _, _ := newTestReportService(t)
	ctx := context.Background()

	payload := validPayload()
	payload["description"] = "   "

	_, err := service.SubmitReport(ctx, payload)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "description", validationErr.Field)
}

func TestSubmitReport_InvalidValues(t *testing.T) {
	service, _, _ := newTestReportService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		field string
		value any
	}{
		{"zero incident type", "incident_type_id", float64(0)},
		{"negative incident type", "incident_type_id", float64(-1)},
		{"latitude too big", "latitude", 91.0},
		{"latitude too small", "latitude", -90.5},
		{"longitude too big", "longitude", 180.1},
		{"short description", "description", "too short"},
		{"long description", "description", strings.Repeat("a", 501)},
		{"unknown severity", "severity", "Catastrophic"},
		{"unknown transport mode", "transportation_mode", "Helicopter"},
		{"bad timestamp format", "timestamp", "30-08-2026 18:45"},
		{"nonexistent date", "timestamp", "2024-02-30 10:00:00"},
		{"month out of range", "timestamp", "2024-13-01 00:00:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPayload()
			payload[tc.field] = tc.value

			_, err := service.SubmitReport(ctx, payload)

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestSubmitReport_ValidationOrder(t *testing.T) {
	service, _, _ := newTestReportService(t)
	ctx := context.Background()

	// При нескольких ошибках клиент видит первое поле по порядку проверки:
	// severity и transportation_mode идут раньше длины описания
	payload := validPayload()
	payload["severity"] = "Catastrophic"
	payload["description"] = "short"

	_, err := service.SubmitReport(ctx, payload)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "severity", validationErr.Field)

	payload = validPayload()
	payload["transportation_mode"] = "Helicopter"
	payload["description"] = "short"

	_, err = service.SubmitReport(ctx, payload)

	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "transportation_mode", validationErr.Field)
}

func TestSubmitReport_DescriptionIsSanitized(t *testing.T) {
	service, repoMock, _ := newTestReportService(t)
	ctx := context.Background()

	payload := validPayload()
	payload["description"] = "  <b>Aggressive</b> driver almost hit a cyclist  "

	repoMock.EXPECT().
		CreateReport(ctx, gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, report *models.IncidentReport, _ *models.Location, _ *models.SafetyAlert) error {
			cryptoSvc, _ := crypto.NewService(bytes.Repeat([]byte{0x42}, 32), "test-salt")
			plaintext, err := cryptoSvc.Decrypt(report.DescriptionEncrypted)
			require.NoError(t, err)
			assert.Equal(t, "&lt;b&gt;Aggressive&lt;/b&gt; driver almost hit a cyclist", plaintext)
			return nil
		}).
		Times(1)

	_, err := service.SubmitReport(ctx, payload)
	require.NoError(t, err)
}

func TestSubmitReport_PersistenceFailure(t *testing.T) {
	service, repoMock, _ := newTestReportService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		CreateReport(ctx, gomock.Any(), gomock.Any(), nil).
		Return(errors.New("connection refused")).
		Times(1)

	_, err := service.SubmitReport(ctx, validPayload())

	var persistenceErr *apperrors.PersistenceError
	assert.ErrorAs(t, err, &persistenceErr)
}

func TestSubmitReport_AnonymousHashUnique(t *testing.T) {
	service, repoMock, _ := newTestReportService(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	repoMock.EXPECT().
		CreateReport(ctx, gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, report *models.IncidentReport, _ *models.Location, _ *models.SafetyAlert) error {
			assert.False(t, seen[report.AnonymousHash], "anonymous hash collision")
			seen[report.AnonymousHash] = true
			return nil
		}).
		Times(25)

	for i := 0; i < 25; i++ {
		_, err := service.SubmitReport(ctx, validPayload())
		require.NoError(t, err)
	}
}
