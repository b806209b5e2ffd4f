package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// QuoteItem is the user's selection for one product.
type QuoteItem struct {
	Quantity int  `json:"quantity" bson:"quantity" example:"2"`
	Active   bool `json:"active" bson:"active" example:"true"`
}

// Included reports whether the item counts towards totals and exports.
func (i QuoteItem) Included() bool {
	return i.Active && i.Quantity > 0
}

// QuoteState is the whole persisted session. Items is keyed by product code.
//
// @Description Current quote session
type QuoteState struct {
	Items      map[string]QuoteItem `json:"items"`
	ClientTier ClientTier           `json:"clientType" swaggertype:"string" example:"inversionista"`
	ClientName string               `json:"clientName" example:"Ana López"`
	SearchTerm string               `json:"searchTerm" example:""`
}

// NewQuoteState returns the state of a fresh session.
func NewQuoteState() QuoteState {
	return QuoteState{
		Items:      make(map[string]QuoteItem),
		ClientTier: DefaultClientTier,
	}
}

// Clone returns a deep copy.
func (s QuoteState) Clone() QuoteState {
	out := s
	out.Items = make(map[string]QuoteItem, len(s.Items))
	for code, item := range s.Items {
		out.Items[code] = item
	}
	return out
}

// EncodeQuoteState serializes the state into the persisted blob format.
func EncodeQuoteState(s QuoteState) ([]byte, error) {
	if s.Items == nil {
		s.Items = map[string]QuoteItem{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode quote state: %w", err)
	}
	return data, nil
}

// DecodeQuoteState parses a persisted blob. Missing items become an empty
// mapping and a missing tier becomes DefaultClientTier.
func DecodeQuoteState(data []byte) (QuoteState, error) {
	var s QuoteState
	if err := json.Unmarshal(data, &s); err != nil {
		return QuoteState{}, fmt.Errorf("decode quote state: %w", err)
	}
	s.Normalize()
	return s, nil
}

// Normalize fills the defaults of a partially restored state.
func (s *QuoteState) Normalize() {
	if s.Items == nil {
		s.Items = make(map[string]QuoteItem)
	}
	if s.ClientTier == "" {
		s.ClientTier = DefaultClientTier
	}
}

// Totals is the aggregate of all included items. It is derived, never stored.
//
// @Description Quote totals
type Totals struct {
	Total          decimal.Decimal `json:"total" swaggertype:"string" example:"588"`
	Points         decimal.Decimal `json:"points" swaggertype:"string" example:"38.8"`
	ActiveProducts int             `json:"active_products" example:"1"`
	TotalPieces    int             `json:"total_pieces" example:"2"`
}

// QuoteLine is one included item priced for the current tier.
type QuoteLine struct {
	Code      string          `json:"code" example:"OP"`
	Name      string          `json:"name" example:"OPC 95 PLUS"`
	Quantity  int             `json:"quantity" example:"2"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"294"`
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"string" example:"588"`
	Points    decimal.Decimal `json:"points" swaggertype:"string" example:"38.8"`
}

// ProductRow is a catalog listing entry for the current tier and selection.
type ProductRow struct {
	Code            string          `json:"code" example:"OP"`
	Name            string          `json:"name" example:"OPC 95 PLUS"`
	PricePublic     decimal.Decimal `json:"price_public" swaggertype:"string" example:"490"`
	UnitPrice       decimal.Decimal `json:"unit_price" swaggertype:"string" example:"294"`
	DiscountPercent int             `json:"discount_percent" example:"40"`
	Quantity        int             `json:"quantity" example:"2"`
	Active          bool            `json:"active" example:"true"`
	Subtotal        decimal.Decimal `json:"subtotal" swaggertype:"string" example:"588"`
	PointsTotal     decimal.Decimal `json:"points_total" swaggertype:"string" example:"38.8"`
}
