package repository

import (
	"context"
	"fmt"

	"github.com/blgguy/safetransport/internal/models"
	"github.com/blgguy/safetransport/internal/service"
	"github.com/blgguy/safetransport/pkg/postgres"
)

type AuditRepository struct {
	db *postgres.Store
}

func NewAuditRepository(db *postgres.Store) service.AuditRepository {
	return &AuditRepository{db: db}
}

// RecordAction добавляет запись в журнал административных действий
func (r *AuditRepository) RecordAction(ctx context.Context, entry *models.AuditEntry) error {
	query := `
		INSERT INTO audit_logs (actor_id, actor_role, action, report_id, details)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		entry.ActorID,
		entry.ActorRole,
		entry.Action,
		entry.ReportID,
		entry.Details,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record audit action: %w", err)
	}
	return nil
}
