package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/blgguy/safetransport/internal/apperrors"
	"github.com/blgguy/safetransport/internal/models"
	"github.com/blgguy/safetransport/internal/service/mocks"
	webhook_mocks "github.com/blgguy/safetransport/internal/webhook/mocks"
)

type lifecycleMocks struct {
	reports   *mocks.MockReportRepository
	alerts    *mocks.MockAlertRepository
	audit     *mocks.MockAuditRepository
	publisher *webhook_mocks.MockAlertPublisher
}

// newTestLifecycleService — вспомогательная функция для создания сервиса с моками
func newTestLifecycleService(t *testing.T) (*lifecycleService, lifecycleMocks) {
	ctrl := gomock.NewController(t)
	m := lifecycleMocks{
		reports:   mocks.NewMockReportRepository(ctrl),
		alerts:    mocks.NewMockAlertRepository(ctrl),
		audit:     mocks.NewMockAuditRepository(ctrl),
		publisher: webhook_mocks.NewMockAlertPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	svc := NewLifecycleService(m.reports, m.alerts, m.audit, logger, m.publisher)
	return svc.(*lifecycleService), m
}

func pendingReport(reportID uuid.UUID, severity models.Severity) *models.IncidentReport {
	return &models.IncidentReport{
		ReportID:   reportID,
		LocationID: 7,
		Severity:   severity,
		Status:     models.StatusPending,
	}
}

var testActor = models.AdminActor{ID: 3, Role: "Admin"}

func TestProcessAction_VerifyTriggersAlert(t *testing.T) {
	// Подготовка
	service, m := newTestLifecycleService(t)
	ctx := context.Background()
	reportID := uuid.New()
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	var capturedAlert *models.SafetyAlert

	// Ожидания
	m.reports.EXPECT().GetReportByID(ctx, reportID).Return(pendingReport(reportID, models.SeverityHigh), nil).Times(1)
	m.reports.EXPECT().
		UpdateReportStatus(ctx, reportID, models.StatusVerified, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.ReportStatus, note string) error {
			assert.Contains(t, note, "[2026-08-30 14:00 - 3] Verify:")
			assert.Contains(t, note, "checked camera footage")
			return nil
		}).
		Times(1)
	m.alerts.EXPECT().GetLocationRadius(ctx, int64(7)).Return(nil, nil).Times(1)
	m.alerts.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.SafetyAlert) error {
			capturedAlert = alert
			return nil
		}).
		Times(1)
	m.audit.EXPECT().RecordAction(ctx, gomock.Any()).Return(nil).Times(2)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	newStatus, err := service.ProcessAction(ctx, testActor, reportID, models.ActionVerify, "checked camera footage")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, newStatus)
	assert.Equal(t, models.AlertTypeSevereWarning, capturedAlert.AlertType)
	assert.Equal(t, "High", capturedAlert.Severity)
	assert.Equal(t, "Verified report of a **High** incident in the area.", capturedAlert.Message)
	assert.Equal(t, 2.0, capturedAlert.LocationRadiusKm)
	assert.Equal(t, now.Add(4*time.Hour), capturedAlert.ExpiresAt)
	assert.Equal(t, reportID, *capturedAlert.ReportID)
}

func TestProcessAction_VerifyUsesLocationRadius(t *testing.T) {
	service, m := newTestLifecycleService(t)
	ctx := context.Background()
	reportID := uuid.New()
	radius := 7.5

	m.reports.EXPECT().GetReportByID(ctx, reportID).Return(pendingReport(reportID, models.SeverityCritical), nil).Times(1)
	m.reports.EXPECT().UpdateReportStatus(ctx, reportID, models.StatusVerified, gomock.Any()).Return(nil).Times(1)
	m.alerts.EXPECT().GetLocationRadius(ctx, int64(7)).Return(&radius, nil).Times(1)
	m.alerts.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.SafetyAlert) error {
			assert.Equal(t, models.AlertTypeImmediateDanger, alert.AlertType)
			assert.Equal(t, 7.5, alert.LocationRadiusKm)
			return nil
		}).
		Times(1)
	m.audit.EXPECT().RecordAction(ctx, gomock.Any()).Return(nil).Times(2)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	_, err := service.ProcessAction(ctx, testActor, reportID, models.ActionVerify, "")
	require.NoError(t, err)
}

func TestProcessAction_AlertTypeMatrix(t *testing.T) {
	cases := []struct {
		severity models.Severity
		expected models.AlertType
	}{
		{models.SeverityCritical, models.AlertTypeImmediateDanger},
		{models.SeverityHigh, models.AlertTypeSevereWarning},
		{models.SeverityMedium, models.AlertTypeSafetyAdvisory},
		{models.SeverityLow, models.AlertTypeInformational},
	}
	for _, tc := range cases {
		t.Run(string(tc.severity), func(t *testing.T) {
			service, m := newTestLifecycleService(t)
			ctx := context.Background()
			reportID := uuid.New()

			m.reports.EXPECT().GetReportByID(ctx, reportID).Return(pendingReport(reportID, tc.severity), nil).Times(1)
			m.reports.EXPECT().UpdateReportStatus(ctx, reportID, models.StatusVerified, gomock.Any()).Return(nil).Times(1)
			m.alerts.EXPECT().GetLocationRadius(ctx, int64(7)).Return(nil, nil).Times(1)
			m.alerts.EXPECT().
				CreateAlert(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, alert *models.SafetyAlert) error {
					assert.Equal(t, tc.expected, alert.AlertType)
					return nil
				}).
				Times(1)
			m.audit.EXPECT().RecordAction(ctx, gomock.Any()).Return(nil).Times(2)
			m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

			_, err := service.ProcessAction(ctx, testActor, reportID, models.ActionVerify, "")
			require.NoError(t, err)
		})
	}
}

func TestProcessAction_ReVerifyCreatesNoSecondAlert(t *testing.T) {
	service, m := newTestLifecycleService(t)
	ctx := context.Background()
	reportID := uuid.New()

	verified := pendingReport(reportID, models.SeverityHigh)
	verified.Status = models.StatusVerified

	m.reports.EXPECT().GetReportByID(ctx, reportID).Return(verified, nil).Times(1)
	m.reports.EXPECT().UpdateReportStatus(ctx, reportID, models.StatusVerified, gomock.Any()).Return(nil).Times(1)
	// Одна запись аудита о смене статуса, CreateAlert не вызывается
	m.audit.EXPECT().RecordAction(ctx, gomock.Any()).Return(nil).Times(1)

	newStatus, err := service.ProcessAction(ctx, testActor, reportID, models.ActionVerify, "double check")

	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, newStatus)
}

func TestProcessAction_RejectHasNoSideEffects(t *testing.T) {
	service, m := newTestLifecycleService(t)
	ctx := context.Background()
	reportID := uuid.New()

	m.reports.EXPECT().GetReportByID(ctx, reportID).Return(pendingReport(reportID, models.SeverityCritical), nil).Times(1)
	m.reports.EXPECT().UpdateReportStatus(ctx, reportID, models.StatusRejected, gomock.Any()).Return(nil).Times(1)
	m.audit.EXPECT().RecordAction(ctx, gomock.Any()).Return(nil).Times(1)

	newStatus, err := service.ProcessAction(ctx, testActor, reportID, models.ActionReject, "duplicate")

	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, newStatus)
}

func TestProcessAction_ResolveExpiresAlerts(t *testing.T) {
	service, m := newTestLifecycleService(t)
	ctx := context.Background()
	reportID := uuid.New()

	verified := pendingReport(reportID, models.SeverityHigh)
	verified.Status = models.StatusVerified

	m.reports.EXPECT().GetReportByID(ctx, reportID).Return(verified, nil).Times(1)
	m.reports.EXPECT().UpdateReportStatus(ctx, reportID, models.StatusResolved, gomock.Any()).Return(nil).Times(1)
	m.alerts.EXPECT().ExpireAlertsForReport(ctx, reportID, " (RESOLVED)").Return(int64(1), nil).Times(1)
	// Смена статуса + гашение оповещения
	m.audit.EXPECT().RecordAction(ctx, gomock.Any()).Return(nil).Times(2)

	newStatus, err := service.ProcessAction(ctx, testActor, reportID, models.ActionResolve, "situation cleared")

	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, newStatus)
}

func TestProcessAction_ResolveWithoutActiveAlerts(t *testing.T) {
	service, m := newTestLifecycleService(t)
	ctx := context.Background()
	reportID := uuid.New()

	m.reports.EXPECT().GetReportByID(ctx, reportID).Return(pendingReport(reportID, models.SeverityLow), nil).Times(1)
	m.reports.EXPECT().UpdateReportStatus(ctx, reportID, models.StatusResolved, gomock.Any()).Return(nil).Times(1)
	m.alerts.EXPECT().ExpireAlertsForReport(ctx, reportID, " (RESOLVED)").Return(int64(0), nil).Times(1)
	// Нечего гасить - аудит только о смене статуса
	m.audit.EXPECT().RecordAction(ctx, gomock.Any()).Return(nil).Times(1)

	_, err := service.ProcessAction(ctx, testActor, reportID, models.ActionResolve, "")
	require.NoError(t, err)
}

func TestProcessAction_IllegalTransitions(t *testing.T) {
	cases := []struct {
		from   models.ReportStatus
		action models.AdminAction
	}{
		{models.StatusRejected, models.ActionVerify},
		{models.StatusRejected, models.ActionResolve},
		{models.StatusResolved, models.ActionVerify},
		{models.StatusResolved, models.ActionReject},
		{models.StatusVerified, models.ActionReject},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"_"+string(tc.action), func(t *testing.T) {
			service, m := newTestLifecycleService(t)
			ctx := context.Background()
			reportID := uuid.New()

			report := pendingReport(reportID, models.SeverityMedium)
			report.Status = tc.from

			m.reports.EXPECT().GetReportByID(ctx, reportID).Return(report, nil).Times(1)

			_, err := service.ProcessAction(ctx, testActor, reportID, tc.action, "")

			var validationErr *apperrors.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestProcessAction_UnknownAction(t *testing.T) {
	service, _ := newTestLifecycleService(t)
	ctx := context.Background()

	_, err := service.ProcessAction(ctx, testActor, uuid.New(), models.AdminAction("Escalate"), "")

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestProcessAction_ReportNotFound(t *testing.T) {
	service, m := newTestLifecycleService(t)
	ctx := context.Background()
	reportID := uuid.New()

	m.reports.EXPECT().
		GetReportByID(ctx, reportID).
		Return(nil, &apperrors.NotFoundError{Resource: "report", ID: reportID.String()}).
		Times(1)

	_, err := service.ProcessAction(ctx, testActor, reportID, models.ActionVerify, "")

	var notFoundErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestProcessAction_AlertFailureDoesNotFailVerify(t *testing.T) {
	service, m := newTestLifecycleService(t)
	ctx := context.Background()
	reportID := uuid.New()

	m.reports.EXPECT().GetReportByID(ctx, reportID).Return(pendingReport(reportID, models.SeverityHigh), nil).Times(1)
	m.reports.EXPECT().UpdateReportStatus(ctx, reportID, models.StatusVerified, gomock.Any()).Return(nil).Times(1)
	m.alerts.EXPECT().GetLocationRadius(ctx, int64(7)).Return(nil, nil).Times(1)
	m.alerts.EXPECT().CreateAlert(ctx, gomock.Any()).Return(errors.New("insert failed")).Times(1)
	// Аудит только о смене статуса, событие об оповещении не пишется
	m.audit.EXPECT().RecordAction(ctx, gomock.Any()).Return(nil).Times(1)

	newStatus, err := service.ProcessAction(ctx, testActor, reportID, models.ActionVerify, "")

	// Верификация состоялась несмотря на провал создания оповещения
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, newStatus)
}

func TestCreateManualAlert_Success(t *testing.T) {
	service, m := newTestLifecycleService(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	alert := &models.SafetyAlert{
		AlertType: models.AlertTypeSafetyAdvisory,
		Severity:  "Warning",
		Message:   "Planned maintenance reduces station lighting tonight.",
		ExpiresAt: now.Add(6 * time.Hour),
	}

	m.alerts.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.SafetyAlert) error {
			assert.NotEqual(t, uuid.Nil, a.AlertID)
			assert.Nil(t, a.ReportID)
			assert.Equal(t, now, a.SentAt)
			assert.Equal(t, 2.0, a.LocationRadiusKm)
			return nil
		}).
		Times(1)
	m.audit.EXPECT().RecordAction(ctx, gomock.Any()).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	err := service.CreateManualAlert(ctx, testActor, alert)
	require.NoError(t, err)
}

func TestCreateManualAlert_Validation(t *testing.T) {
	service, _ := newTestLifecycleService(t)
	ctx := context.Background()
	now := time.Now()

	cases := []struct {
		name  string
		alert *models.SafetyAlert
	}{
		{"empty message", &models.SafetyAlert{ExpiresAt: now.Add(time.Hour)}},
		{"expiry in the past", &models.SafetyAlert{Message: "msg text here", ExpiresAt: now.Add(-time.Hour)}},
		{"zero expiry", &models.SafetyAlert{Message: "msg text here"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.CreateManualAlert(ctx, testActor, tc.alert)

			var validationErr *apperrors.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestDeleteReport_Success(t *testing.T) {
	service, m := newTestLifecycleService(t)
	ctx := context.Background()
	reportID := uuid.New()

	m.reports.EXPECT().DeleteReport(ctx, reportID).Return(nil).Times(1)
	m.audit.EXPECT().
		RecordAction(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditEntry) error {
			assert.Equal(t, "INCIDENT_DELETED", entry.Action)
			assert.Equal(t, reportID.String(), entry.ReportID)
			assert.Equal(t, testActor.ID, entry.ActorID)
			return nil
		}).
		Times(1)

	err := service.DeleteReport(ctx, testActor, reportID)
	require.NoError(t, err)
}

func TestDeleteReport_NotFound(t *testing.T) {
	service, m := newTestLifecycleService(t)
	ctx := context.Background()
	reportID := uuid.New()

	m.reports.EXPECT().
		DeleteReport(ctx, reportID).
		Return(&apperrors.NotFoundError{Resource: "report", ID: reportID.String()}).
		Times(1)

	err := service.DeleteReport(ctx, testActor, reportID)

	var notFoundErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestAuditFailureDoesNotFailOperation(t *testing.T) {
	service, m := newTestLifecycleService(t)
	ctx := context.Background()
	reportID := uuid.New()

	m.reports.EXPECT().DeleteReport(ctx, reportID).Return(nil).Times(1)
	m.audit.EXPECT().RecordAction(ctx, gomock.Any()).Return(errors.New("audit db down")).Times(1)

	err := service.DeleteReport(ctx, testActor, reportID)
	assert.NoError(t, err)
}
