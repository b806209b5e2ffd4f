package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quote-service/internal/domain/dto"
	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/i18n"
	"github.com/guttosm/quote-service/internal/service"
)

// ListCatalog handles GET /api/catalog requests.
//
// @Summary      List catalog products
// @Description  Lists the products priced for the current client tier together with their selection. The search parameter overrides the stored search filter for this request only.
// @Tags         Catalog
// @Produce      json
// @Param        search query string false "Case-insensitive code or name filter"
// @Success      200 {object} dto.SuccessResponse{data=[]model.ProductRow}
// @Router       /api/catalog [get]
func (h *Handler) ListCatalog(c *gin.Context) {
	rows := h.quotes.ProductRows(strings.TrimSpace(c.Query("search")))
	NewResponseBuilder(c).SuccessOK(rows)
}

// GetUnitPrice handles GET /api/pricing/:code requests.
//
// @Summary      Get a unit price
// @Description  Returns the unit price of one product. Without a tier parameter the current client tier is used.
// @Tags         Catalog
// @Produce      json
// @Param        code path string true "Product code"
// @Param        tier query string false "Client tier" Enums(publico, consumidor, inversionista)
// @Success      200 {object} dto.SuccessResponse{data=dto.UnitPriceResponse}
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Router       /api/pricing/{code} [get]
func (h *Handler) GetUnitPrice(c *gin.Context) {
	builder := NewResponseBuilder(c)
	code := c.Param("code")

	tier := model.ClientTier(strings.TrimSpace(c.Query("tier")))
	if tier == "" {
		tier = h.quotes.State().ClientTier
	}

	price, err := h.quotes.UnitPrice(code, tier)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.UnitPriceResponse{
		Code:      code,
		Tier:      string(tier),
		UnitPrice: price,
	})
}
