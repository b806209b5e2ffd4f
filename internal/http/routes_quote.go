package http

import (
	"github.com/gin-gonic/gin"
)

// QuoteRoutes handles catalog, quote and export route registration.
type QuoteRoutes struct {
	handler *Handler
}

// NewQuoteRoutes creates a new QuoteRoutes instance.
func NewQuoteRoutes(handler *Handler) *QuoteRoutes {
	return &QuoteRoutes{handler: handler}
}

// RegisterPublicRoutes registers the quote API routes.
func (r *QuoteRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", r.handler.ListCatalog)
	rg.GET("/pricing/:code", r.handler.GetUnitPrice)

	quote := rg.Group("/quote")
	quote.GET("", r.handler.GetQuote)
	quote.GET("/totals", r.handler.GetTotals)
	quote.PUT("/items/:code/quantity", r.handler.SetQuantity)
	quote.POST("/items/:code/toggle", r.handler.ToggleActive)
	quote.DELETE("/items", r.handler.ClearAll)
	quote.POST("/select-all", r.handler.SelectAll)
	quote.PUT("/client", r.handler.UpdateClient)
	quote.PUT("/search", r.handler.SetSearch)
	quote.GET("/text", r.handler.GetQuoteText)
	quote.POST("/copy", r.handler.CopyQuote)
	quote.GET("/export.csv", r.handler.ExportCSV)
}

// GetHandler returns the underlying handler.
func (r *QuoteRoutes) GetHandler() *Handler {
	return r.handler
}
