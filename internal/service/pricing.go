// Package service contains the quote engine: pricing, the session store,
// totals and exports.
package service

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// ErrProductNotFound is returned when a product code is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

var one = decimal.NewFromInt(1)

// UnitPrice returns the per-unit price of p for tier, rounded half-up to two
// decimals and never negative. Unknown tiers are priced like TierPublico.
func UnitPrice(p model.Product, tier model.ClientTier) decimal.Decimal {
	price := p.PricePublic.Mul(one.Sub(tier.DiscountFraction()))
	if surcharge, ok := tier.Surcharge(p.Code); ok {
		price = price.Add(surcharge)
	}

	price = price.Round(2)
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// UnitPriceFor looks up code in catalog and prices it for tier.
func UnitPriceFor(catalog model.Catalog, code string, tier model.ClientTier) (decimal.Decimal, error) {
	p, ok := catalog.Lookup(code)
	if !ok {
		return decimal.Zero, ErrProductNotFound
	}
	return UnitPrice(p, tier), nil
}
