package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovation-consortium/billing-backend/internal/domain/billing"
	"github.com/innovation-consortium/billing-backend/internal/domain/shared"
)

func TestMemoryRepositoryFindByID(t *testing.T) {
	repo := NewMemoryRecordRepository()
	repo.Seed(&billing.BillingRecord{
		ID:       "INV-001",
		Kind:     billing.KindInvoice,
		Category: billing.CategorySupply,
	})

	record, err := repo.FindByID(context.Background(), billing.KindInvoice, "INV-001")
	require.NoError(t, err)
	assert.Equal(t, "INV-001", record.ID)
}

func TestMemoryRepositoryNotFound(t *testing.T) {
	repo := NewMemoryRecordRepository()
	repo.Seed(&billing.BillingRecord{ID: "INV-001", Kind: billing.KindInvoice})

	tests := []struct {
		name string
		kind billing.DocumentKind
		id   string
	}{
		{"unknown id", billing.KindInvoice, "INV-999"},
		{"wrong kind", billing.KindSummary, "INV-001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.FindByID(context.Background(), tt.kind, tt.id)
			assert.ErrorIs(t, err, shared.ErrNotFound)
		})
	}
}

func TestMemoryRepositorySeedReplaces(t *testing.T) {
	repo := NewMemoryRecordRepository()
	repo.Seed(&billing.BillingRecord{ID: "A", Kind: billing.KindInvoice, ClientName: "first"})
	repo.Seed(&billing.BillingRecord{ID: "A", Kind: billing.KindInvoice, ClientName: "second"})

	record, err := repo.FindByID(context.Background(), billing.KindInvoice, "A")
	require.NoError(t, err)
	assert.Equal(t, "second", record.ClientName)
}
