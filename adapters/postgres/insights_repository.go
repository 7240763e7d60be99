package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"francadash/domain/metrics"
	"francadash/domain/tenant"
)

// InsightsRepository persists the free-text commentary fields an admin
// maintains per tenant, independently of spreadsheet uploads.
type InsightsRepository struct {
	db *sqlx.DB
}

// NewInsightsRepository creates a new insights repository
func NewInsightsRepository(db *sqlx.DB) *InsightsRepository {
	return &InsightsRepository{db: db}
}

// Save upserts the insights for a tenant.
func (r *InsightsRepository) Save(ctx context.Context, id tenant.ID, insights metrics.Insights) error {
	query := `
		INSERT INTO insights (tenant_id, progress, positives, next_focus, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (tenant_id) DO UPDATE SET
			progress = EXCLUDED.progress,
			positives = EXCLUDED.positives,
			next_focus = EXCLUDED.next_focus,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query, string(id), insights.Progress, insights.Positives, insights.NextFocus)
	if err != nil {
		return fmt.Errorf("failed to save insights: %w", err)
	}

	return nil
}

// Get returns the insights for a tenant; empty insights when none are stored.
func (r *InsightsRepository) Get(ctx context.Context, id tenant.ID) (*metrics.Insights, error) {
	var insights metrics.Insights
	query := `SELECT progress, positives, next_focus FROM insights WHERE tenant_id = $1`

	err := r.db.QueryRowContext(ctx, query, string(id)).Scan(
		&insights.Progress,
		&insights.Positives,
		&insights.NextFocus,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return &metrics.Insights{}, nil
		}
		return nil, fmt.Errorf("failed to get insights: %w", err)
	}

	return &insights, nil
}
