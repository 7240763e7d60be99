// Package app wires the domain pipeline to the stores: reading an uploaded
// spreadsheet, folding it into metrics, and persisting the result.
package app

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"francadash/adapters/excel"
	"francadash/domain/metrics"
	"francadash/domain/tenant"
	"francadash/internal/errors"
	"francadash/ports"
)

// UploadResult is everything one processed spreadsheet produced. When
// Committed is false the caller previewed the parse without persisting it.
type UploadResult struct {
	UploadID  uuid.UUID           `json:"uploadId"`
	TenantID  tenant.ID           `json:"tenantId"`
	Data      metrics.CompanyData `json:"data"`
	Summary   SpendSummary        `json:"summary"`
	RowCount  int                 `json:"rowCount"`
	Committed bool                `json:"committed"`
}

// UploadService runs the spreadsheet-to-dashboard pipeline for one tenant at
// a time. A weight-1 semaphore per tenant rejects a second upload while one
// is still being processed; the persistence layer additionally serializes
// writers with an advisory lock.
type UploadService struct {
	companies ports.CompanyStore
	audit     ports.UploadAudit

	mu       sync.Mutex
	inFlight map[tenant.ID]*semaphore.Weighted
}

// NewUploadService creates a new upload service
func NewUploadService(companies ports.CompanyStore, audit ports.UploadAudit) *UploadService {
	return &UploadService{
		companies: companies,
		audit:     audit,
		inFlight:  make(map[tenant.ID]*semaphore.Weighted),
	}
}

// ProcessFile reads a spreadsheet for a tenant, folds it into the metrics
// record, and (when commit is set) replaces the tenant's stored data. The
// returned result carries the parsed record either way so the caller can
// show a preview before committing.
func (s *UploadService) ProcessFile(ctx context.Context, tenantID, filePath, fileName string, commit bool) (*UploadResult, error) {
	t := tenant.Resolve(tenantID)
	if !tenant.Known(tenantID) {
		log.Printf("[UploadService] Unknown tenant id %q, using default mapping", tenantID)
	}

	sem := s.semaphoreFor(t.ID)
	if !sem.TryAcquire(1) {
		return nil, errors.UploadInFlight(string(t.ID))
	}
	defer sem.Release(1)

	reader := excel.NewDataReader(filePath)
	sheet, err := reader.ReadData()
	if err != nil {
		return nil, errors.FileParse(err)
	}

	acc := metrics.NewAccumulator(t, t.FollowersPolicy)
	for _, row := range sheet.Rows {
		acc.Fold(row)
	}
	data := acc.Finalize(t.Name)

	result := &UploadResult{
		UploadID:  uuid.New(),
		TenantID:  t.ID,
		Data:      data,
		Summary:   SummarizeSpend(sheet.Rows),
		RowCount:  len(sheet.Rows),
		Committed: commit,
	}

	if commit {
		if err := s.companies.Save(ctx, t.ID, data, result.UploadID); err != nil {
			return nil, errors.Wrap(err, "failed to persist company data")
		}
	}

	if err := s.audit.Record(ctx, ports.AuditEntry{
		UploadID:  result.UploadID,
		TenantID:  t.ID,
		FileName:  fileName,
		RowCount:  result.RowCount,
		Committed: commit,
	}); err != nil {
		// Audit is best effort; the upload itself already succeeded.
		log.Printf("[UploadService] Failed to record upload audit: %v", err)
	}

	log.Printf("[UploadService] Processed %s for tenant %s (%d rows, committed=%t)",
		fileName, t.ID, result.RowCount, commit)
	return result, nil
}

func (s *UploadService) semaphoreFor(id tenant.ID) *semaphore.Weighted {
	s.mu.Lock()
	defer s.mu.Unlock()
	sem, ok := s.inFlight[id]
	if !ok {
		sem = semaphore.NewWeighted(1)
		s.inFlight[id] = sem
	}
	return sem
}
