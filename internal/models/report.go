package models

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout - формат времени события в отчете ('YYYY-MM-DD HH:MM:SS').
// Проверяется строго: повторное форматирование обязано воспроизвести исходную строку
const TimestampLayout = "2006-01-02 15:04:05"

// Severity - четырехуровневая шкала серьезности инцидента
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Rank - порядок для отображения: Critical > High > Medium > Low
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	}
	return 4
}

// TransportMode - вид транспорта, к которому относится инцидент
type TransportMode string

const (
	ModeBus     TransportMode = "Bus"
	ModeTrain   TransportMode = "Train"
	ModeSubway  TransportMode = "Subway"
	ModeTaxi    TransportMode = "Taxi/RideShare"
	ModeWalking TransportMode = "Walking"
	ModeCycling TransportMode = "Cycling"
	ModeOther   TransportMode = "Other"
)

func (m TransportMode) Valid() bool {
	switch m {
	case ModeBus, ModeTrain, ModeSubway, ModeTaxi, ModeWalking, ModeCycling, ModeOther:
		return true
	}
	return false
}

// ReportStatus - статус отчета в машине состояний верификации
type ReportStatus string

const (
	StatusPending  ReportStatus = "Pending"
	StatusVerified ReportStatus = "Verified"
	StatusRejected ReportStatus = "Rejected"
	StatusResolved ReportStatus = "Resolved"
)

// CanTransitionTo проверяет допустимость перехода:
// Pending -> {Verified, Rejected, Resolved}, Verified -> Resolved.
// Rejected и Resolved - терминальные состояния
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusVerified || next == StatusRejected || next == StatusResolved
	case StatusVerified:
		return next == StatusResolved
	}
	return false
}

// AdminAction - административное действие над отчетом
type AdminAction string

const (
	ActionVerify  AdminAction = "Verify"
	ActionReject  AdminAction = "Reject"
	ActionResolve AdminAction = "Resolve"
)

func (a AdminAction) Valid() bool {
	switch a {
	case ActionVerify, ActionReject, ActionResolve:
		return true
	}
	return false
}

// TargetStatus возвращает статус, в который переводит действие
func (a AdminAction) TargetStatus() ReportStatus {
	switch a {
	case ActionVerify:
		return StatusVerified
	case ActionReject:
		return StatusRejected
	case ActionResolve:
		return StatusResolved
	}
	return ""
}

// Location - место инцидента. Принадлежит ровно одному отчету и удаляется вместе с ним
type Location struct {
	ID                 int64         `json:"location_id"`
	Latitude           float64       `json:"latitude"`
	Longitude          float64       `json:"longitude"`
	TransportationMode TransportMode `json:"transportation_mode"`
	RouteIdentifier    string        `json:"route_identifier,omitempty"`
	AddressDescription string        `json:"address_description,omitempty"`
	RadiusKm           *float64      `json:"radius_km,omitempty"`
}

// IncidentReport - анонимный отчет об инциденте. Описание хранится только в
// зашифрованном виде, anonymous_hash не обратим к личности отправителя
type IncidentReport struct {
	ReportID             uuid.UUID    `json:"report_id"`
	IncidentTypeID       int          `json:"incident_type_id"`
	LocationID           int64        `json:"location_id"`
	Severity             Severity     `json:"severity"`
	DescriptionEncrypted string       `json:"-"`
	EventAt              time.Time    `json:"timestamp"`
	VerificationScore    float64      `json:"verification_score"`
	Status               ReportStatus `json:"status"`
	AnonymousHash        string       `json:"-"`
	AdminNotes           string       `json:"-"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

// ReportSubmission - провалидированные и санированные данные подачи отчета
type ReportSubmission struct {
	IncidentTypeID     int
	Latitude           float64
	Longitude          float64
	Description        string
	Severity           Severity
	TransportationMode TransportMode
	EventAt            time.Time
	RouteIdentifier    string
	AddressDescription string
}

// SubmissionReceipt - результат успешной подачи отчета
type SubmissionReceipt struct {
	ReportID uuid.UUID
	Message  string
}

// IncidentCandidate - строка-кандидат из грубого префильтра близости,
// точное расстояние считается в сервисе
type IncidentCandidate struct {
	ReportID     uuid.UUID
	IncidentType string
	Severity     Severity
	EventAt      time.Time
	Latitude     float64
	Longitude    float64
}

// GeoPoint - координаты в ответе API
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IncidentSummary - анонимизированный инцидент в выдаче поиска поблизости.
// Ни описания, ни заметок администратора, ни адреса
type IncidentSummary struct {
	ReportID     uuid.UUID `json:"report_id"`
	IncidentType string    `json:"incident_type"`
	Severity     Severity  `json:"severity"`
	DistanceKm   float64   `json:"distance_km"`
	Timestamp    string    `json:"timestamp"`
	Location     GeoPoint  `json:"location"`
}
