package persistence

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/innovation-consortium/billing-backend/internal/domain/billing"
	"github.com/innovation-consortium/billing-backend/internal/domain/shared"
)

// FirestoreConfig contains connection settings for the record store
type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
	// Collection names; the store keeps invoices and summaries apart
	InvoiceCollection string
	SummaryCollection string
}

// NewFirestoreClient creates a Firestore client from config. The credentials
// file is optional; without it the client falls back to application default
// credentials.
func NewFirestoreClient(ctx context.Context, cfg FirestoreConfig) (*firestore.Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firestore project id is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return client, nil
}

// recordDoc is the Firestore document shape for a billing record. Line
// items stay schemaless maps because the field set varies by category.
type recordDoc struct {
	Category      string           `firestore:"category"`
	ClientName    string           `firestore:"clientName"`
	ClientAddress string           `firestore:"clientAddress"`
	ClientEmail   string           `firestore:"clientEmail"`
	Date          string           `firestore:"date"`
	Items         []map[string]any `firestore:"items"`
	TotalAmount   *float64         `firestore:"totalAmount"`
	GrandTotal    *float64         `firestore:"grandTotal"`
}

// FirestoreRecordRepository loads billing records from Firestore
type FirestoreRecordRepository struct {
	client      *firestore.Client
	collections map[billing.DocumentKind]string
	logger      *zap.Logger
}

// NewFirestoreRecordRepository creates a Firestore-backed RecordRepository
func NewFirestoreRecordRepository(client *firestore.Client, cfg FirestoreConfig, logger *zap.Logger) *FirestoreRecordRepository {
	if cfg.InvoiceCollection == "" {
		cfg.InvoiceCollection = "invoices"
	}
	if cfg.SummaryCollection == "" {
		cfg.SummaryCollection = "summary"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FirestoreRecordRepository{
		client: client,
		collections: map[billing.DocumentKind]string{
			billing.KindInvoice: cfg.InvoiceCollection,
			billing.KindSummary: cfg.SummaryCollection,
		},
		logger: logger,
	}
}

// FindByID implements billing.RecordRepository
func (r *FirestoreRecordRepository) FindByID(ctx context.Context, kind billing.DocumentKind, id string) (*billing.BillingRecord, error) {
	collection, ok := r.collections[kind]
	if !ok {
		return nil, shared.ErrInvalidInput
	}

	snap, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if snap != nil && !snap.Exists() {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s/%s: %w", collection, id, err)
	}

	var doc recordDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}

	r.logger.Debug("record fetched",
		zap.String("collection", collection),
		zap.String("id", id),
		zap.Int("items", len(doc.Items)))

	return toDomain(id, kind, doc), nil
}

// toDomain converts a stored document to the domain record
func toDomain(id string, kind billing.DocumentKind, doc recordDoc) *billing.BillingRecord {
	items := make([]billing.LineItem, len(doc.Items))
	for i, m := range doc.Items {
		items[i] = billing.LineItem(m)
	}
	return &billing.BillingRecord{
		ID:            id,
		Kind:          kind,
		Category:      billing.Category(doc.Category),
		ClientName:    doc.ClientName,
		ClientAddress: doc.ClientAddress,
		ClientEmail:   doc.ClientEmail,
		Date:          doc.Date,
		Items:         items,
		TotalAmount:   doc.TotalAmount,
		GrandTotal:    doc.GrandTotal,
	}
}

// Ensure FirestoreRecordRepository implements the repository interface
var _ billing.RecordRepository = (*FirestoreRecordRepository)(nil)
