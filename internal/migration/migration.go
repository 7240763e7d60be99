package migration

import (
	"context"

	"github.com/jmoiron/sqlx"

	"francadash/internal/errors"
)

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createCompanyDataTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create company_data table")
	}

	if err := r.createInsightsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create insights table")
	}

	if err := r.createUploadAuditTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create upload_audit table")
	}

	return nil
}

func (r *MigrationRunner) createCompanyDataTable(ctx context.Context, db *sqlx.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS company_data (
			tenant_id TEXT PRIMARY KEY,
			payload JSONB NOT NULL,
			upload_id UUID NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *MigrationRunner) createInsightsTable(ctx context.Context, db *sqlx.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS insights (
			tenant_id TEXT PRIMARY KEY,
			progress TEXT NOT NULL DEFAULT '',
			positives TEXT NOT NULL DEFAULT '',
			next_focus TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *MigrationRunner) createUploadAuditTable(ctx context.Context, db *sqlx.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS upload_audit (
			upload_id UUID PRIMARY KEY,
			tenant_id TEXT NOT NULL,
			file_name TEXT NOT NULL,
			row_count INTEGER NOT NULL,
			committed BOOLEAN NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	_, err := db.ExecContext(ctx, query)
	return err
}
