package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"francadash/ports"
)

// UploadAuditRepository records every processed upload, committed or not.
type UploadAuditRepository struct {
	db *sqlx.DB
}

// NewUploadAuditRepository creates a new upload audit repository
func NewUploadAuditRepository(db *sqlx.DB) *UploadAuditRepository {
	return &UploadAuditRepository{db: db}
}

// Record inserts one audit entry.
func (r *UploadAuditRepository) Record(ctx context.Context, entry ports.AuditEntry) error {
	query := `
		INSERT INTO upload_audit (upload_id, tenant_id, file_name, row_count, committed)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		entry.UploadID,
		string(entry.TenantID),
		entry.FileName,
		entry.RowCount,
		entry.Committed,
	)
	if err != nil {
		return fmt.Errorf("failed to record upload audit: %w", err)
	}

	return nil
}
