package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/innovation-consortium/billing-backend/internal/domain/billing"
	"github.com/innovation-consortium/billing-backend/internal/domain/shared"
	"github.com/innovation-consortium/billing-backend/internal/infrastructure/render"
)

// DocumentResponse is a rendered document ready to send to the client
type DocumentResponse struct {
	FileName    string
	ContentType string
	Data        []byte
}

// DocumentService orchestrates a document render: fetch the record, lay it
// out, encode it and archive a copy.
type DocumentService struct {
	repo      billing.RecordRepository
	assembler *render.Assembler
	encoder   render.PDFEncoder
	archive   render.DocumentArchive // nil disables archiving
	logger    *zap.Logger
}

// NewDocumentService wires a DocumentService. archive may be nil.
func NewDocumentService(
	repo billing.RecordRepository,
	assembler *render.Assembler,
	encoder render.PDFEncoder,
	archive render.DocumentArchive,
	logger *zap.Logger,
) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{
		repo:      repo,
		assembler: assembler,
		encoder:   encoder,
		archive:   archive,
		logger:    logger,
	}
}

// RenderDocument fetches the record and renders it as the given kind.
// Unknown ids surface shared.ErrNotFound unchanged; render failures map to
// the malformed-record domain error with details kept to the logs.
func (s *DocumentService) RenderDocument(ctx context.Context, kind billing.DocumentKind, id string) (*DocumentResponse, error) {
	if !kind.IsValid() {
		return nil, shared.ErrInvalidInput
	}
	if id == "" {
		return nil, shared.ErrInvalidInput
	}

	record, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("fetch record %s: %w", id, err)
	}

	doc, err := s.assembler.Assemble(record, kind)
	if err != nil {
		return nil, s.renderFailure(kind, id, "assemble", err)
	}

	data, err := s.encoder.Encode(ctx, doc)
	if err != nil {
		return nil, s.renderFailure(kind, id, "encode", err)
	}

	if s.archive != nil {
		if path, err := s.archive.Store(ctx, kind, id, data); err != nil {
			// Archiving is best effort; the download must still succeed.
			s.logger.Warn("document archive failed",
				zap.String("kind", kind.String()),
				zap.String("id", id),
				zap.Error(err))
		} else {
			s.logger.Debug("document archived",
				zap.String("kind", kind.String()),
				zap.String("path", path))
		}
	}

	s.logger.Info("document rendered",
		zap.String("kind", kind.String()),
		zap.String("id", id),
		zap.Int("pages", len(doc.Pages)),
		zap.Int("bytes", len(data)))

	return &DocumentResponse{
		FileName:    fmt.Sprintf("%s_%s.pdf", strings.ToLower(kind.String()), id),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// renderFailure logs the underlying cause and returns the stable
// malformed-record error so internals never leak into responses.
func (s *DocumentService) renderFailure(kind billing.DocumentKind, id, stage string, err error) error {
	fields := []zap.Field{
		zap.String("kind", kind.String()),
		zap.String("id", id),
		zap.String("stage", stage),
		zap.Error(err),
	}
	var rerr *render.RenderError
	if errors.As(err, &rerr) {
		fields = append(fields, zap.String("render_code", rerr.Code))
	}
	s.logger.Error("document render failed", fields...)
	return shared.ErrMalformedRecord
}
