package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/blgguy/safetransport/internal/apperrors"
	"github.com/blgguy/safetransport/internal/models"
	"github.com/blgguy/safetransport/internal/service"
	"github.com/blgguy/safetransport/pkg/geo"
	"github.com/blgguy/safetransport/pkg/postgres"
)

type ReportRepository struct {
	db          *postgres.Store
	redisClient *redis.Client
}

func NewReportRepository(db *postgres.Store, redisClient *redis.Client) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateReport сохраняет локацию, отчет и опциональное оповещение одной транзакцией.
// Локация вставляется первой, ее id прошивается в отчет
func (r *ReportRepository) CreateReport(ctx context.Context, report *models.IncidentReport, loc *models.Location, alert *models.SafetyAlert) error {
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		locQuery := `
			INSERT INTO locations (latitude, longitude, transportation_mode, route_identifier, address_description, radius_km)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING location_id;
		`
		err := tx.QueryRow(ctx, locQuery,
			loc.Latitude,
			loc.Longitude,
			loc.TransportationMode,
			loc.RouteIdentifier,
			loc.AddressDescription,
			loc.RadiusKm,
		).Scan(&loc.ID)
		if err != nil {
			return fmt.Errorf("failed to create location: %w", err)
		}
		report.LocationID = loc.ID

		reportQuery := `
			INSERT INTO incident_reports (report_id, incident_type_id, location_id, severity, description_encrypted, event_at, verification_score, status, anonymous_hash)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING created_at, updated_at;
		`
		err = tx.QueryRow(ctx, reportQuery,
			report.ReportID,
			report.IncidentTypeID,
			report.LocationID,
			report.Severity,
			report.DescriptionEncrypted,
			report.EventAt,
			report.VerificationScore,
			report.Status,
			report.AnonymousHash,
		).Scan(&report.CreatedAt, &report.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create report: %w", err)
		}

		if alert != nil {
			if err := insertAlert(ctx, tx, alert); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetReportByID возвращает отчет по его UUID
func (r *ReportRepository) GetReportByID(ctx context.Context, reportID uuid.UUID) (*models.IncidentReport, error) {
	report := &models.IncidentReport{}
	query := `
		SELECT report_id, incident_type_id, location_id, severity, description_encrypted,
			event_at, verification_score, status, anonymous_hash, COALESCE(admin_notes, ''),
			created_at, updated_at
		FROM incident_reports
		WHERE report_id = $1;
	`
	err := r.db.QueryRow(ctx, query, reportID).Scan(
		&report.ReportID,
		&report.IncidentTypeID,
		&report.LocationID,
		&report.Severity,
		&report.DescriptionEncrypted,
		&report.EventAt,
		&report.VerificationScore,
		&report.Status,
		&report.AnonymousHash,
		&report.AdminNotes,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &apperrors.NotFoundError{Resource: "report", ID: reportID.String()}
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

// UpdateReportStatus меняет статус отчета и дописывает заметку администратора
func (r *ReportRepository) UpdateReportStatus(ctx context.Context, reportID uuid.UUID, status models.ReportStatus, note string) error {
	query := `
		UPDATE incident_reports
		SET status = $1,
			admin_notes = COALESCE(admin_notes, '') || E'\n' || $2,
			updated_at = NOW()
		WHERE report_id = $3;
	`
	tag, err := r.db.Exec(ctx, query, status, note, reportID)
	if err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &apperrors.NotFoundError{Resource: "report", ID: reportID.String()}
	}
	return nil
}

// DeleteReport удаляет отчет вместе с его локацией. Оповещения отчета
// уходят каскадом по внешнему ключу
func (r *ReportRepository) DeleteReport(ctx context.Context, reportID uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		var locationID int64
		err := tx.QueryRow(ctx, `SELECT location_id FROM incident_reports WHERE report_id = $1;`, reportID).Scan(&locationID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &apperrors.NotFoundError{Resource: "report", ID: reportID.String()}
			}
			return fmt.Errorf("failed to find report: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM incident_reports WHERE report_id = $1;`, reportID); err != nil {
			return fmt.Errorf("failed to delete report: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM locations WHERE location_id = $1;`, locationID); err != nil {
			return fmt.Errorf("failed to delete location: %w", err)
		}
		return nil
	})
}

// FindRecentCandidates возвращает видимые отчеты внутри ограничивающего
// прямоугольника не старше since. Только параметризованные границы, никакой
// интерполяции значений в SQL
func (r *ReportRepository) FindRecentCandidates(ctx context.Context, box geo.BoundingBox, since time.Time) ([]models.IncidentCandidate, error) {
	query := `
		SELECT r.report_id, t.type_name, r.severity, r.event_at, l.latitude, l.longitude
		FROM incident_reports r
		JOIN locations l ON l.location_id = r.location_id
		JOIN incident_types t ON t.incident_type_id = r.incident_type_id
		WHERE r.status = ANY($1)
			AND r.event_at >= $2
			AND l.latitude BETWEEN $3 AND $4
			AND l.longitude BETWEEN $5 AND $6;
	`
	statuses := []string{string(models.StatusVerified), string(models.StatusPending)}
	rows, err := r.db.Query(ctx, query, statuses, since, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var candidates []models.IncidentCandidate
	for rows.Next() {
		var c models.IncidentCandidate
		if err := rows.Scan(&c.ReportID, &c.IncidentType, &c.Severity, &c.EventAt, &c.Latitude, &c.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return candidates, nil
}

// GetNearbyCache возвращает закэшированную выдачу поиска поблизости; nil при промахе
func (r *ReportRepository) GetNearbyCache(ctx context.Context, key string) ([]models.IncidentSummary, error) {
	val, err := r.redisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nearby cache: %w", err)
	}

	var incidents []models.IncidentSummary
	if err := json.Unmarshal([]byte(val), &incidents); err != nil {
		return nil, fmt.Errorf("failed to unmarshal nearby cache: %w", err)
	}
	return incidents, nil
}

// SetNearbyCache сохраняет выдачу поиска поблизости с заданным TTL
func (r *ReportRepository) SetNearbyCache(ctx context.Context, key string, incidents []models.IncidentSummary, ttl time.Duration) error {
	data, err := json.Marshal(incidents)
	if err != nil {
		return fmt.Errorf("failed to marshal nearby cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set nearby cache: %w", err)
	}
	return nil
}
