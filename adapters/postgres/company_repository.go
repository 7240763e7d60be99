package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"francadash/domain/metrics"
	"francadash/domain/tenant"
)

// CompanyRepository persists the per-tenant dashboard record. Each save is a
// full replace of the previous record, guarded by a per-tenant advisory lock
// so two admin sessions cannot interleave writes for the same tenant.
type CompanyRepository struct {
	db *sqlx.DB
}

// NewCompanyRepository creates a new company data repository
func NewCompanyRepository(db *sqlx.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Save replaces the stored record for a tenant with the given upload's data.
func (r *CompanyRepository) Save(ctx context.Context, id tenant.ID, data metrics.CompanyData, uploadID uuid.UUID) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal company data: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Advisory lock keyed on the tenant id holds until commit, serializing
	// concurrent uploads for the same tenant at the persistence boundary.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, string(id)); err != nil {
		return fmt.Errorf("failed to acquire tenant lock: %w", err)
	}

	query := `
		INSERT INTO company_data (tenant_id, payload, upload_id, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (tenant_id) DO UPDATE SET
			payload = EXCLUDED.payload,
			upload_id = EXCLUDED.upload_id,
			updated_at = EXCLUDED.updated_at`

	if _, err := tx.ExecContext(ctx, query, string(id), payload, uploadID); err != nil {
		return fmt.Errorf("failed to save company data: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit company data: %w", err)
	}

	log.Printf("[CompanyRepository] Saved data for tenant %s (upload %s)", id, uploadID)
	return nil
}

// Get returns the stored record for a tenant, or nil when the tenant has no
// uploaded data yet.
func (r *CompanyRepository) Get(ctx context.Context, id tenant.ID) (*metrics.CompanyData, error) {
	var payload []byte
	query := `SELECT payload FROM company_data WHERE tenant_id = $1`

	err := r.db.QueryRowContext(ctx, query, string(id)).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company data: %w", err)
	}

	var data metrics.CompanyData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal company data: %w", err)
	}

	return &data, nil
}
