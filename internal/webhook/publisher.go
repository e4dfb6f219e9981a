package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/blgguy/safetransport/internal/models"
)

const (
	alertQueueKey = "alert_events"
)

// AlertEvent - событие создания оповещения безопасности для внешних потребителей
type AlertEvent struct {
	AlertID          uuid.UUID        `json:"alert_id"`
	ReportID         *uuid.UUID       `json:"report_id,omitempty"`
	AlertType        models.AlertType `json:"alert_type"`
	Severity         string           `json:"severity"`
	Message          string           `json:"message"`
	LocationRadiusKm float64          `json:"location_radius_km"`
	Latitude         *float64         `json:"latitude,omitempty"`
	Longitude        *float64         `json:"longitude,omitempty"`
	ExpiresAt        time.Time        `json:"expires_at"`
	Timestamp        time.Time        `json:"timestamp"`
}

// AlertPublisher - интерфейс для публикации событий оповещений
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish публикует событие оповещения в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер читает справа
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
