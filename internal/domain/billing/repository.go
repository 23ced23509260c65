package billing

import "context"

// RecordRepository loads billing records from the document store.
// Implementations return shared.ErrNotFound when no record matches.
type RecordRepository interface {
	// FindByID fetches the record with the given id from the collection
	// backing the document kind.
	FindByID(ctx context.Context, kind DocumentKind, id string) (*BillingRecord, error)
}
