package persistence

import (
	"context"
	"sync"

	"github.com/innovation-consortium/billing-backend/internal/domain/billing"
	"github.com/innovation-consortium/billing-backend/internal/domain/shared"
)

// MemoryRecordRepository is an in-memory RecordRepository for development
// and tests.
type MemoryRecordRepository struct {
	mu      sync.RWMutex
	records map[billing.DocumentKind]map[string]*billing.BillingRecord
}

// NewMemoryRecordRepository creates an empty in-memory repository
func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{
		records: map[billing.DocumentKind]map[string]*billing.BillingRecord{
			billing.KindInvoice: {},
			billing.KindSummary: {},
		},
	}
}

// Seed stores a record under its kind and id, replacing any existing entry
func (r *MemoryRecordRepository) Seed(record *billing.BillingRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.Kind]; !ok {
		r.records[record.Kind] = map[string]*billing.BillingRecord{}
	}
	r.records[record.Kind][record.ID] = record
}

// FindByID implements billing.RecordRepository
func (r *MemoryRecordRepository) FindByID(_ context.Context, kind billing.DocumentKind, id string) (*billing.BillingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID, ok := r.records[kind]
	if !ok {
		return nil, shared.ErrNotFound
	}
	record, ok := byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return record, nil
}

// Ensure MemoryRecordRepository implements the repository interface
var _ billing.RecordRepository = (*MemoryRecordRepository)(nil)
