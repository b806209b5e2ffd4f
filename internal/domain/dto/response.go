package dto

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/quote-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	Data      interface{} `json:"data" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"invalid_request"`
	Message   string            `json:"message,omitempty" example:"quantity: quantity or input is required"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// QuoteResponse is the full view of the current quote.
//
// @Description Quote state with priced lines and totals
type QuoteResponse struct {
	State  model.QuoteState  `json:"state"`
	Lines  []model.QuoteLine `json:"lines"`
	Totals model.Totals      `json:"totals"`
} // @name QuoteResponse

// ItemResponse is the result of a per-product mutation.
type ItemResponse struct {
	Code     string `json:"code" example:"OP"`
	Quantity int    `json:"quantity" example:"3"`
	Active   bool   `json:"active" example:"true"`
} // @name ItemResponse

// NewItemResponse builds an ItemResponse for code.
func NewItemResponse(code string, item model.QuoteItem) ItemResponse {
	return ItemResponse{Code: code, Quantity: item.Quantity, Active: item.Active}
}

// TextResponse carries the plain text summary.
type TextResponse struct {
	Text string `json:"text"`
} // @name TextResponse

// CopyResponse reports whether the summary reached the clipboard.
type CopyResponse struct {
	Text   string `json:"text"`
	Copied bool   `json:"copied" example:"true"`
} // @name CopyResponse

// UnitPriceResponse is the price of one product for a tier.
type UnitPriceResponse struct {
	Code      string          `json:"code" example:"NS"`
	Tier      string          `json:"tier" example:"consumidor"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"1253"`
} // @name UnitPriceResponse
