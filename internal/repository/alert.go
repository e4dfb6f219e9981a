package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/blgguy/safetransport/internal/models"
	"github.com/blgguy/safetransport/internal/service"
	"github.com/blgguy/safetransport/pkg/postgres"
)

// execer покрывает и пул, и открытую транзакцию, чтобы вставка оповещения
// работала в обоих контекстах
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// insertAlert - общая вставка оповещения, используется из транзакции подачи
// отчета и из репозитория оповещений
func insertAlert(ctx context.Context, db execer, alert *models.SafetyAlert) error {
	query := `
		INSERT INTO safety_alerts (alert_id, report_id, alert_type, severity, message, location_radius_km, sent_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := db.Exec(ctx, query,
		alert.AlertID,
		alert.ReportID,
		alert.AlertType,
		alert.Severity,
		alert.Message,
		alert.LocationRadiusKm,
		alert.SentAt,
		alert.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

type AlertRepository struct {
	db          *postgres.Store
	redisClient *redis.Client
}

func NewAlertRepository(db *postgres.Store, redisClient *redis.Client) service.AlertRepository {
	return &AlertRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateAlert сохраняет оповещение безопасности
func (r *AlertRepository) CreateAlert(ctx context.Context, alert *models.SafetyAlert) error {
	return insertAlert(ctx, r.db, alert)
}

// FindActiveAlerts возвращает неистекшие оповещения вместе с координатами
// локации породившего отчета. У ручных оповещений координат нет
func (r *AlertRepository) FindActiveAlerts(ctx context.Context) ([]models.SafetyAlert, error) {
	query := `
		SELECT a.alert_id, a.report_id, a.alert_type, a.severity, a.message,
			a.location_radius_km, a.sent_at, a.expires_at, l.latitude, l.longitude
		FROM safety_alerts a
		LEFT JOIN incident_reports r ON r.report_id = a.report_id
		LEFT JOIN locations l ON l.location_id = r.location_id
		WHERE a.expires_at > NOW();
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.SafetyAlert
	for rows.Next() {
		var a models.SafetyAlert
		err := rows.Scan(
			&a.AlertID,
			&a.ReportID,
			&a.AlertType,
			&a.Severity,
			&a.Message,
			&a.LocationRadiusKm,
			&a.SentAt,
			&a.ExpiresAt,
			&a.Latitude,
			&a.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate alerts: %w", err)
	}
	return alerts, nil
}

// ExpireAlertsForReport мягко гасит активные оповещения отчета: expires_at
// уходит в NOW(), сообщение помечается marker. История оповещений сохраняется
func (r *AlertRepository) ExpireAlertsForReport(ctx context.Context, reportID uuid.UUID, marker string) (int64, error) {
	query := `
		UPDATE safety_alerts
		SET expires_at = NOW(), message = message || $1
		WHERE report_id = $2 AND expires_at > NOW();
	`
	tag, err := r.db.Exec(ctx, query, marker, reportID)
	if err != nil {
		return 0, fmt.Errorf("failed to expire alerts: %w", err)
	}
	return tag.RowsAffected(), nil
}

// GetLocationRadius возвращает радиус локации; nil, если локация не найдена
// или радиус не задан
func (r *AlertRepository) GetLocationRadius(ctx context.Context, locationID int64) (*float64, error) {
	var radius *float64
	err := r.db.QueryRow(ctx, `SELECT radius_km FROM locations WHERE location_id = $1;`, locationID).Scan(&radius)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get location radius: %w", err)
	}
	return radius, nil
}

// GetAlertsCache возвращает закэшированную выдачу активных оповещений; nil при промахе
func (r *AlertRepository) GetAlertsCache(ctx context.Context, key string) ([]models.AlertSummary, error) {
	val, err := r.redisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alerts cache: %w", err)
	}

	var alerts []models.AlertSummary
	if err := json.Unmarshal([]byte(val), &alerts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alerts cache: %w", err)
	}
	return alerts, nil
}

// SetAlertsCache сохраняет выдачу активных оповещений с заданным TTL
func (r *AlertRepository) SetAlertsCache(ctx context.Context, key string, alerts []models.AlertSummary, ttl time.Duration) error {
	data, err := json.Marshal(alerts)
	if err != nil {
		return fmt.Errorf("failed to marshal alerts cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set alerts cache: %w", err)
	}
	return nil
}
