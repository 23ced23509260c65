package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	appbilling "github.com/innovation-consortium/billing-backend/internal/application/billing"
	"github.com/innovation-consortium/billing-backend/internal/domain/billing"
)

// DocumentHandler serves rendered billing documents for download
type DocumentHandler struct {
	BaseHandler
	service *appbilling.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(service *appbilling.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// DownloadInvoice handles GET /api/v1/documents/invoice/:id/download
func (h *DocumentHandler) DownloadInvoice(c *gin.Context) {
	h.download(c, billing.KindInvoice)
}

// DownloadSummary handles GET /api/v1/documents/summary/:id/download
func (h *DocumentHandler) DownloadSummary(c *gin.Context) {
	h.download(c, billing.KindSummary)
}

func (h *DocumentHandler) download(c *gin.Context, kind billing.DocumentKind) {
	id := c.Param("id")
	if id == "" {
		h.BadRequest(c, "document id is required")
		return
	}

	resp, err := h.service.RenderDocument(c.Request.Context(), kind, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resp.FileName))
	c.Data(http.StatusOK, resp.ContentType, resp.Data)
}
