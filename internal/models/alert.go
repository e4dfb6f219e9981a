package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertType - тип оповещения безопасности
type AlertType string

const (
	// AlertTypeEmergencyBroadcast используется только автоматическим
	// триггером критических отчетов на пути подачи
	AlertTypeEmergencyBroadcast AlertType = "Emergency Broadcast"

	AlertTypeImmediateDanger AlertType = "IMMEDIATE_DANGER"
	AlertTypeSevereWarning   AlertType = "SEVERE_WARNING"
	AlertTypeSafetyAdvisory  AlertType = "SAFETY_ADVISORY"
	AlertTypeInformational   AlertType = "INFORMATIONAL"
)

// AlertTypeForSeverity - фиксированное отображение серьезности отчета в тип
// оповещения. Применяется на пути верификации, путь подачи использует
// AlertTypeEmergencyBroadcast независимо от этой таблицы
func AlertTypeForSeverity(s Severity) AlertType {
	switch s {
	case SeverityCritical:
		return AlertTypeImmediateDanger
	case SeverityHigh:
		return AlertTypeSevereWarning
	case SeverityMedium:
		return AlertTypeSafetyAdvisory
	default:
		return AlertTypeInformational
	}
}

// AlertSeverityRank - трехуровневый порядок сортировки оповещений
// (Critical, Warning, Informational). Намеренно не совпадает с
// четырехуровневой шкалой инцидентов; неизвестные значения идут последними
func AlertSeverityRank(severity string) int {
	switch severity {
	case "Critical":
		return 1
	case "Warning":
		return 2
	case "Informational":
		return 3
	}
	return 4
}

// SafetyAlert - оповещение безопасности. Severity копируется из отчета в момент
// создания и далее не пересчитывается. Оповещение активно, пока expires_at в будущем
type SafetyAlert struct {
	AlertID          uuid.UUID  `json:"alert_id"`
	ReportID         *uuid.UUID `json:"report_id,omitempty"` // nil у оповещений, созданных вручную
	AlertType        AlertType  `json:"alert_type"`
	Severity         string     `json:"severity"`
	Message          string     `json:"message"`
	LocationRadiusKm float64    `json:"location_radius_km"`
	SentAt           time.Time  `json:"sent_at"`
	ExpiresAt        time.Time  `json:"expires_at"`

	// Координаты подтягиваются join'ом с локацией отчета; nil - глобальное оповещение
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Active сообщает, действует ли оповещение в момент now
func (a *SafetyAlert) Active(now time.Time) bool {
	return a.ExpiresAt.After(now)
}

// AlertSummary - оповещение в выдаче публичного API. DistanceKm присутствует
// только когда вызывающий передал свои координаты
type AlertSummary struct {
	AlertID          uuid.UUID `json:"alert_id"`
	AlertType        AlertType `json:"alert_type"`
	Severity         string    `json:"severity"`
	Message          string    `json:"message"`
	LocationRadiusKm float64   `json:"location_radius_km"`
	SentAt           time.Time `json:"sent_at"`
	ExpiresAt        time.Time `json:"expires_at"`
	Location         *GeoPoint `json:"location"`
	DistanceKm       *float64  `json:"distance_km,omitempty"`
}
