package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyTimeout            = "error.timeout"

	// ErrKeyProductNotFound indicates a product code outside the catalog.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyValidationQuantity indicates a quantity update without quantity or input.
	ErrKeyValidationQuantity = "error.validation.quantity"
	// ErrKeyValidationClient indicates a client update without tier or name, or a blank tier.
	ErrKeyValidationClient = "error.validation.client"
	// ErrKeyExportFailed indicates the CSV document could not be rendered.
	ErrKeyExportFailed = "error.export_failed"
)
