package handler

import (
	"github.com/innovation-consortium/billing-backend/internal/interfaces/http/router"
)

// DocumentRoutes builds the route group for document downloads
// Routes:
//
//	GET /api/v1/documents/invoice/:id/download
//	GET /api/v1/documents/summary/:id/download
func DocumentRoutes(h *DocumentHandler) *router.DomainGroup {
	g := router.NewDomainGroup("documents", "/documents")
	g.GET("/invoice/:id/download", h.DownloadInvoice)
	g.GET("/summary/:id/download", h.DownloadSummary)
	return g
}
