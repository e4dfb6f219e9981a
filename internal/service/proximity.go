package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/blgguy/safetransport/internal/apperrors"
	"github.com/blgguy/safetransport/internal/models"
	"github.com/blgguy/safetransport/pkg/geo"
)

const (
	defaultRadiusKm = 5.0
	minRadiusKm     = 0.1
	maxRadiusKm     = 100.0

	defaultDaysBack = 7
	minDaysBack     = 1
	maxDaysBack     = 365

	nearbyLimit = 50
	alertLimit  = 20

	nearbyCacheTTL = 5 * time.Minute
	alertsCacheTTL = 2 * time.Minute
)

type proximityService struct {
	reports ReportRepository
	alerts  AlertRepository
	logger  *logrus.Logger
	now     func() time.Time
}

func NewProximityService(reports ReportRepository, alerts AlertRepository, logger *logrus.Logger) ProximityService {
	return &proximityService{
		reports: reports,
		alerts:  alerts,
		logger:  logger,
		now:     time.Now,
	}
}

// NearbyIncidents возвращает видимые инциденты в радиусе от точки, ближайшие
// первыми. Префильтр по ограничивающему прямоугольнику делает БД, точное
// расстояние считается здесь по гаверсинусу
func (s *proximityService) NearbyIncidents(ctx context.Context, lat, lng, radiusKm float64, daysBack int) ([]models.IncidentSummary, error) {
	if lat < -90 || lat > 90 {
		return nil, &apperrors.ValidationError{Field: "latitude", Reason: "must be between -90 and 90"}
	}
	if lng < -180 || lng > 180 {
		return nil, &apperrors.ValidationError{Field: "longitude", Reason: "must be between -180 and 180"}
	}
	radiusKm = clampFloat(radiusKm, minRadiusKm, maxRadiusKm, defaultRadiusKm)
	daysBack = clampInt(daysBack, minDaysBack, maxDaysBack, defaultDaysBack)

	cacheKey := fmt.Sprintf("incidents:%g:%g:%g:%d", lat, lng, radiusKm, daysBack)
	if cached, err := s.reports.GetNearbyCache(ctx, cacheKey); err != nil {
		s.logger.WithError(err).Warn("Failed to read nearby cache")
	} else if cached != nil {
		return cached, nil
	}

	since := s.now().AddDate(0, 0, -daysBack)
	box := geo.BoxAround(lat, lng, radiusKm)
	candidates, err := s.reports.FindRecentCandidates(ctx, box, since)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby incidents: %w", err)
	}

	type scored struct {
		candidate models.IncidentCandidate
		distance  float64
	}
	var matched []scored
	for _, c := range candidates {
		d := geo.HaversineKm(lat, lng, c.Latitude, c.Longitude)
		if d <= radiusKm {
			matched = append(matched, scored{candidate: c, distance: d})
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].distance != matched[j].distance {
			return matched[i].distance < matched[j].distance
		}
		return matched[i].candidate.EventAt.After(matched[j].candidate.EventAt)
	})
	if len(matched) > nearbyLimit {
		matched = matched[:nearbyLimit]
	}

	incidents := make([]models.IncidentSummary, 0, len(matched))
	for _, m := range matched {
		incidents = append(incidents, models.IncidentSummary{
			ReportID:     m.candidate.ReportID,
			IncidentType: m.candidate.IncidentType,
			Severity:     m.candidate.Severity,
			DistanceKm:   roundKm(m.distance),
			Timestamp:    m.candidate.EventAt.Format(models.TimestampLayout),
			Location:     models.GeoPoint{Lat: m.candidate.Latitude, Lng: m.candidate.Longitude},
		})
	}

	if err := s.reports.SetNearbyCache(ctx, cacheKey, incidents, nearbyCacheTTL); err != nil {
		s.logger.WithError(err).Warn("Failed to write nearby cache")
	}
	return incidents, nil
}

// ActiveAlerts возвращает действующие оповещения. Без координат вызывающего -
// все активные, отсортированные по серьезности. С координатами - только те, чья
// зона покрывает точку и которые лежат в радиусе поиска, плюс глобальные,
// ближайшие первыми
func (s *proximityService) ActiveAlerts(ctx context.Context, lat, lng *float64, radiusKm float64) ([]models.AlertSummary, error) {
	radiusKm = clampFloat(radiusKm, minRadiusKm, maxRadiusKm, defaultRadiusKm)

	hasPoint := lat != nil && lng != nil
	if hasPoint {
		if *lat < -90 || *lat > 90 {
			return nil, &apperrors.ValidationError{Field: "latitude", Reason: "must be between -90 and 90"}
		}
		if *lng < -180 || *lng > 180 {
			return nil, &apperrors.ValidationError{Field: "longitude", Reason: "must be between -180 and 180"}
		}
	}
	cacheKey := "alerts:global"
	if hasPoint {
		cacheKey = fmt.Sprintf("alerts:%g:%g:%g", *lat, *lng, radiusKm)
	}

	if cached, err := s.alerts.GetAlertsCache(ctx, cacheKey); err != nil {
		s.logger.WithError(err).Warn("Failed to read alerts cache")
	} else if cached != nil {
		return cached, nil
	}

	active, err := s.alerts.FindActiveAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find active alerts: %w", err)
	}

	var summaries []models.AlertSummary
	for _, a := range active {
		summary := models.AlertSummary{
			AlertID:          a.AlertID,
			AlertType:        a.AlertType,
			Severity:         a.Severity,
			Message:          a.Message,
			LocationRadiusKm: a.LocationRadiusKm,
			SentAt:           a.SentAt,
			ExpiresAt:        a.ExpiresAt,
		}
		if a.Latitude != nil && a.Longitude != nil {
			summary.Location = &models.GeoPoint{Lat: *a.Latitude, Lng: *a.Longitude}
		}

		if hasPoint && summary.Location != nil {
			d := geo.HaversineKm(*lat, *lng, summary.Location.Lat, summary.Location.Lng)
			// Точка должна попасть и в зону оповещения, и в радиус поиска
			if d > a.LocationRadiusKm || d > radiusKm {
				continue
			}
			rounded := roundKm(d)
			summary.DistanceKm = &rounded
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if hasPoint {
			// Глобальные оповещения (без расстояния) идут первыми
			switch {
			case a.DistanceKm == nil && b.DistanceKm != nil:
				return true
			case a.DistanceKm != nil && b.DistanceKm == nil:
				return false
			case a.DistanceKm != nil && b.DistanceKm != nil && *a.DistanceKm != *b.DistanceKm:
				return *a.DistanceKm < *b.DistanceKm
			}
		}
		ra, rb := models.AlertSeverityRank(a.Severity), models.AlertSeverityRank(b.Severity)
		if ra != rb {
			return ra < rb
		}
		return a.SentAt.After(b.SentAt)
	})
	if len(summaries) > alertLimit {
		summaries = summaries[:alertLimit]
	}
	if summaries == nil {
		summaries = []models.AlertSummary{}
	}

	if err := s.alerts.SetAlertsCache(ctx, cacheKey, summaries, alertsCacheTTL); err != nil {
		s.logger.WithError(err).Warn("Failed to write alerts cache")
	}
	return summaries, nil
}

// clampFloat: ноль означает "не задано" и дает значение по умолчанию,
// остальное прижимается к границам
func clampFloat(v, min, max, def float64) float64 {
	if v == 0 {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max, def int) int {
	if v == 0 {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// roundKm округляет расстояние до двух знаков для выдачи
func roundKm(d float64) float64 {
	return math.Round(d*100) / 100
}
