package billing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/innovation-consortium/billing-backend/internal/domain/billing"
	"github.com/innovation-consortium/billing-backend/internal/domain/shared"
	"github.com/innovation-consortium/billing-backend/internal/infrastructure/persistence"
	"github.com/innovation-consortium/billing-backend/internal/infrastructure/render"
)

type failingAssets struct{}

func (failingAssets) Resolve(name string) (render.Asset, error) {
	return render.Asset{}, assert.AnError
}

func newTestService(t *testing.T, logo string) (*DocumentService, *persistence.MemoryRecordRepository) {
	t.Helper()
	repo := persistence.NewMemoryRecordRepository()
	assembler := render.NewAssembler(
		render.OrgIdentity{Name: "Innovation Consortium Ltd", Location: "Kampala"},
		failingAssets{},
		render.NewAggregator(decimal.NewFromFloat(0.18)),
		"Shillings", logo, "")
	svc := NewDocumentService(repo, assembler, render.NewFpdfEncoder(), nil, zap.NewNop())
	return svc, repo
}

func seedInvoice(repo *persistence.MemoryRecordRepository) {
	repo.Seed(&domain.BillingRecord{
		ID:         "INV-001",
		Kind:       domain.KindInvoice,
		Category:   domain.CategorySupply,
		ClientName: "Acme Works",
		Date:       "2 May 2026",
		Items: []domain.LineItem{
			{"name": "1", "description": "Steel plate", "quantity": 2.0, "rate": 500.0, "amount": 1000.0},
		},
	})
}

func TestRenderDocument(t *testing.T) {
	svc, repo := newTestService(t, "")
	seedInvoice(repo)

	resp, err := svc.RenderDocument(context.Background(), domain.KindInvoice, "INV-001")

	require.NoError(t, err)
	assert.Equal(t, "invoice_INV-001.pdf", resp.FileName)
	assert.Equal(t, "application/pdf", resp.ContentType)
	require.Greater(t, len(resp.Data), 4)
	assert.Equal(t, "%PDF", string(resp.Data[:4]))
}

func TestRenderDocumentNotFound(t *testing.T) {
	svc, _ := newTestService(t, "")

	_, err := svc.RenderDocument(context.Background(), domain.KindInvoice, "MISSING")

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestRenderDocumentInvalidInput(t *testing.T) {
	svc, _ := newTestService(t, "")

	_, err := svc.RenderDocument(context.Background(), domain.DocumentKind("RECEIPT"), "INV-001")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = svc.RenderDocument(context.Background(), domain.KindInvoice, "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestRenderDocumentAssembleFailureMapsToMalformedRecord(t *testing.T) {
	// A configured logo that cannot be resolved fails the header block.
	svc, repo := newTestService(t, "logo.png")
	seedInvoice(repo)

	_, err := svc.RenderDocument(context.Background(), domain.KindInvoice, "INV-001")

	assert.ErrorIs(t, err, shared.ErrMalformedRecord)
}

func TestRenderDocumentSummary(t *testing.T) {
	svc, repo := newTestService(t, "")
	repo.Seed(&domain.BillingRecord{
		ID:       "SUM-1",
		Kind:     domain.KindSummary,
		Category: domain.CategorySupply,
		Items: []domain.LineItem{
			{"name": "1", "totalInvestment": 800.0, "profit": 200.0, "amount": 1000.0},
		},
	})

	resp, err := svc.RenderDocument(context.Background(), domain.KindSummary, "SUM-1")

	require.NoError(t, err)
	assert.Equal(t, "summary_SUM-1.pdf", resp.FileName)
}
