// Package dto defines the request and response bodies of the HTTP API.
package dto

import "strings"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrQuantityRequired is returned when neither quantity nor input is set.
	ErrQuantityRequired = &ValidationError{
		Field:   "quantity",
		Message: "quantity or input is required",
	}
	// ErrClientFieldsRequired is returned when a client update carries no field.
	ErrClientFieldsRequired = &ValidationError{
		Field:   "tier",
		Message: "tier or name is required",
	}
	// ErrEmptyTier is returned when tier is present but blank.
	ErrEmptyTier = &ValidationError{
		Field:   "tier",
		Message: "must not be empty",
	}
)

// SetQuantityRequest sets the quantity of one product. Quantity is a number
// that is floored and clamped at zero. Input is free text from which the
// digits are kept. When both are set, Quantity wins.
//
// @Description Quantity update for one product
type SetQuantityRequest struct {
	Quantity *float64 `json:"quantity,omitempty" example:"3"`
	Input    *string  `json:"input,omitempty" example:"12 pzas"`
} // @name SetQuantityRequest

// Validate performs custom validation on the request.
func (r *SetQuantityRequest) Validate() error {
	if r.Quantity == nil && r.Input == nil {
		return ErrQuantityRequired
	}
	return nil
}

// UpdateClientRequest changes the client tier, the client name or both.
//
// @Description Client data update
type UpdateClientRequest struct {
	Tier *string `json:"tier,omitempty" example:"consumidor"`
	Name *string `json:"name,omitempty" example:"Ana López"`
} // @name UpdateClientRequest

// Validate performs custom validation on the request.
func (r *UpdateClientRequest) Validate() error {
	if r.Tier == nil && r.Name == nil {
		return ErrClientFieldsRequired
	}
	if r.Tier != nil && strings.TrimSpace(*r.Tier) == "" {
		return ErrEmptyTier
	}
	return nil
}

// SearchRequest replaces the catalog search filter. An empty term clears it.
//
// @Description Catalog search filter
type SearchRequest struct {
	Term string `json:"term" example:"aloe"`
} // @name SearchRequest
