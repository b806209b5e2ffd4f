package http

import (
	"mime"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quote-service/internal/domain/dto"
	"github.com/guttosm/quote-service/internal/i18n"
	"github.com/guttosm/quote-service/internal/middleware"
)

// Audit actions of the export routes.
const (
	actionCopyQuote = "copy_quote"
	actionExportCSV = "export_csv"
)

const csvContentType = "text/csv; charset=utf-8"

// GetQuoteText handles GET /api/quote/text requests.
//
// @Summary      Get the text summary
// @Description  Renders the quote as the plain text summary used for chat messages.
// @Tags         Export
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.TextResponse}
// @Router       /api/quote/text [get]
func (h *Handler) GetQuoteText(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.TextResponse{Text: h.quotes.QuoteText()})
}

// CopyQuote handles POST /api/quote/copy requests.
//
// @Summary      Copy the text summary
// @Description  Renders the text summary and writes it to the clipboard. A clipboard failure is reported through copied and is not an error.
// @Tags         Export
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CopyResponse}
// @Router       /api/quote/copy [post]
func (h *Handler) CopyQuote(c *gin.Context) {
	text, copied := h.quotes.CopyQuote(c.Request.Context())
	middleware.AuditLog(h.audit, c, actionCopyQuote, "Quote copied", map[string]interface{}{
		"copied": copied,
	})
	NewResponseBuilder(c).SuccessOK(dto.CopyResponse{Text: text, Copied: copied})
}

// ExportCSV handles GET /api/quote/export.csv requests.
//
// @Summary      Download the quote as CSV
// @Description  Returns the quote as a CSV attachment named after the client and the export time.
// @Tags         Export
// @Produce      text/csv
// @Success      200 {file} file "CSV document"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/quote/export.csv [get]
func (h *Handler) ExportCSV(c *gin.Context) {
	filename, data, err := h.quotes.ExportCSV(time.Now())
	if err != nil {
		middleware.AuditLogError(h.audit, c, actionExportCSV, "CSV export failed", err)
		NewResponseBuilder(c).Error(http.StatusInternalServerError, i18n.ErrKeyExportFailed, err)
		return
	}

	middleware.AuditLog(h.audit, c, actionExportCSV, "Quote exported", map[string]interface{}{
		"filename": filename,
		"bytes":    len(data),
	})
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, csvContentType, data)
}
