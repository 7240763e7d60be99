// Package ports defines the persistence interfaces the application services
// depend on. Adapters provide the concrete implementations.
package ports

import (
	"context"

	"github.com/google/uuid"

	"francadash/domain/metrics"
	"francadash/domain/tenant"
)

// CompanyStore persists the finalized dashboard record per tenant. Save is a
// full replace: one upload entirely overwrites the previous record.
type CompanyStore interface {
	Save(ctx context.Context, id tenant.ID, data metrics.CompanyData, uploadID uuid.UUID) error
	Get(ctx context.Context, id tenant.ID) (*metrics.CompanyData, error)
}

// InsightsStore persists the per-tenant free-text commentary fields.
type InsightsStore interface {
	Save(ctx context.Context, id tenant.ID, insights metrics.Insights) error
	Get(ctx context.Context, id tenant.ID) (*metrics.Insights, error)
}

// UploadAudit records one processed upload for traceability.
type UploadAudit interface {
	Record(ctx context.Context, entry AuditEntry) error
}

// AuditEntry describes one upload pass, committed or not.
type AuditEntry struct {
	UploadID  uuid.UUID
	TenantID  tenant.ID
	FileName  string
	RowCount  int
	Committed bool
}
