package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quote-service/internal/domain/dto"
	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/i18n"
	"github.com/guttosm/quote-service/internal/middleware"
	"github.com/guttosm/quote-service/internal/service"
)

// Handler provides HTTP handlers for the catalog, quote and export routes.
type Handler struct {
	quotes service.QuoteService
	audit  middleware.AuditSink
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithAuditSink sends an audit entry for every mutation and export to sink.
func WithAuditSink(sink middleware.AuditSink) HandlerOption {
	return func(h *Handler) {
		h.audit = sink
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(quotes service.QuoteService, opts ...HandlerOption) *Handler {
	h := &Handler{quotes: quotes}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// quoteView assembles the full quote response.
func (h *Handler) quoteView() dto.QuoteResponse {
	return dto.QuoteResponse{
		State:  h.quotes.State(),
		Lines:  h.quotes.Lines(),
		Totals: h.quotes.Totals(),
	}
}

// GetQuote handles GET /api/quote requests.
//
// @Summary      Get the current quote
// @Description  Returns the stored selection, the priced lines of every included item and the totals for the current client tier.
// @Tags         Quote
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteResponse}
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /api/quote [get]
func (h *Handler) GetQuote(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.quoteView())
}

// GetTotals handles GET /api/quote/totals requests.
//
// @Summary      Get quote totals
// @Tags         Quote
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.Totals}
// @Router       /api/quote/totals [get]
func (h *Handler) GetTotals(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.quotes.Totals())
}

// SetQuantity handles PUT /api/quote/items/:code/quantity requests.
//
// @Summary      Set product quantity
// @Description  Sets the quantity of one product. A numeric quantity is floored and clamped to [0, 1000000]; free text input keeps only its digits. A positive quantity marks the item active.
// @Tags         Quote
// @Accept       json
// @Produce      json
// @Param        code path string true "Product code"
// @Param        request body dto.SetQuantityRequest true "Quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.ItemResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Router       /api/quote/items/{code}/quantity [put]
func (h *Handler) SetQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)
	code := c.Param("code")

	req, err := BuildRequestAndValidate[dto.SetQuantityRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuantity, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	var qty float64
	if req.Quantity != nil {
		qty = *req.Quantity
	} else {
		qty = float64(service.ParseQuantityInput(*req.Input))
	}

	item, err := h.quotes.SetQuantity(c.Request.Context(), code, qty)
	if err != nil {
		h.productError(c, builder, service.OpSetQuantity, err)
		return
	}

	middleware.AuditLogProduct(h.audit, c, service.OpSetQuantity, code, "Quantity updated", map[string]interface{}{
		"quantity": item.Quantity,
		"active":   item.Active,
	})
	builder.SuccessOK(dto.NewItemResponse(code, item))
}

// ToggleActive handles POST /api/quote/items/:code/toggle requests.
//
// @Summary      Toggle product inclusion
// @Description  Flips whether the product counts towards totals and exports. The quantity is kept.
// @Tags         Quote
// @Produce      json
// @Param        code path string true "Product code"
// @Success      200 {object} dto.SuccessResponse{data=dto.ItemResponse}
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Router       /api/quote/items/{code}/toggle [post]
func (h *Handler) ToggleActive(c *gin.Context) {
	builder := NewResponseBuilder(c)
	code := c.Param("code")

	item, err := h.quotes.ToggleActive(c.Request.Context(), code)
	if err != nil {
		h.productError(c, builder, service.OpToggleActive, err)
		return
	}

	middleware.AuditLogProduct(h.audit, c, service.OpToggleActive, code, "Item toggled", map[string]interface{}{
		"active": item.Active,
	})
	builder.SuccessOK(dto.NewItemResponse(code, item))
}

// productError maps a per-product mutation failure to a response.
func (h *Handler) productError(c *gin.Context, builder *ResponseBuilder, action string, err error) {
	if errors.Is(err, service.ErrProductNotFound) {
		builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
		return
	}
	middleware.AuditLogError(h.audit, c, action, "Quote mutation failed", err)
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}

// SelectAll handles POST /api/quote/select-all requests.
//
// @Summary      Select every product
// @Description  Activates every catalog product. Products without a quantity get one unit; existing quantities are kept.
// @Tags         Quote
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteResponse}
// @Router       /api/quote/select-all [post]
func (h *Handler) SelectAll(c *gin.Context) {
	state := h.quotes.SelectAll(c.Request.Context())
	middleware.AuditLog(h.audit, c, service.OpSelectAll, "All products selected", map[string]interface{}{
		"items": len(state.Items),
	})
	NewResponseBuilder(c).SuccessOK(h.quoteView())
}

// ClearAll handles DELETE /api/quote/items requests.
//
// @Summary      Clear the selection
// @Description  Removes every item. Client data and the search filter are kept.
// @Tags         Quote
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteResponse}
// @Router       /api/quote/items [delete]
func (h *Handler) ClearAll(c *gin.Context) {
	h.quotes.ClearAll(c.Request.Context())
	middleware.AuditLog(h.audit, c, service.OpClearAll, "Selection cleared", nil)
	NewResponseBuilder(c).SuccessOK(h.quoteView())
}

// UpdateClient handles PUT /api/quote/client requests.
//
// @Summary      Update client data
// @Description  Changes the client tier, the client name or both. Unknown tiers are stored and priced like the public tier.
// @Tags         Quote
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateClientRequest true "Client data"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/quote/client [put]
func (h *Handler) UpdateClient(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateClientRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationClient, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	ctx := c.Request.Context()
	if req.Tier != nil {
		tier := model.ClientTier(strings.TrimSpace(*req.Tier))
		h.quotes.SetClientTier(ctx, tier)
		middleware.AuditLog(h.audit, c, service.OpSetClientTier, "Client tier updated", map[string]interface{}{
			"tier": string(tier),
		})
	}
	if req.Name != nil {
		h.quotes.SetClientName(ctx, *req.Name)
		middleware.AuditLog(h.audit, c, service.OpSetClientName, "Client name updated", nil)
	}

	builder.SuccessOK(h.quoteView())
}

// SetSearch handles PUT /api/quote/search requests.
//
// @Summary      Set the catalog search filter
// @Tags         Quote
// @Accept       json
// @Produce      json
// @Param        request body dto.SearchRequest true "Search term"
// @Success      200 {object} dto.SuccessResponse{data=model.QuoteState}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/quote/search [put]
func (h *Handler) SetSearch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.SearchRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	state := h.quotes.SetSearchFilter(c.Request.Context(), req.Term)
	builder.SuccessOK(state)
}
