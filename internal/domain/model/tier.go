package model

import "github.com/shopspring/decimal"

// ClientTier selects the discount rule applied to every product.
// Values outside the known set are kept as-is and priced like TierPublico.
type ClientTier string

const (
	TierPublico       ClientTier = "publico"
	TierConsumidor    ClientTier = "consumidor"
	TierInversionista ClientTier = "inversionista"

	// DefaultClientTier is used for a fresh session or a restored state without a tier.
	DefaultClientTier = TierInversionista
)

// Consumidor surcharge per unit, added after the discount.
const (
	surchargeCodeNS = "NS"
)

var (
	tierDiscount          = decimal.RequireFromString("0.4")
	consumidorSurcharge   = decimal.NewFromInt(50)
	consumidorSurchargeNS = decimal.NewFromInt(179)
)

// Known reports whether t is one of the defined tiers.
func (t ClientTier) Known() bool {
	switch t {
	case TierPublico, TierConsumidor, TierInversionista:
		return true
	default:
		return false
	}
}

// DiscountFraction returns the fraction taken off the public price.
func (t ClientTier) DiscountFraction() decimal.Decimal {
	switch t {
	case TierConsumidor, TierInversionista:
		return tierDiscount
	default:
		return decimal.Zero
	}
}

// Surcharge returns the per-unit amount added after the discount for the given
// product code. The second result is false when the tier adds nothing.
func (t ClientTier) Surcharge(code string) (decimal.Decimal, bool) {
	switch t {
	case TierConsumidor:
		if code == surchargeCodeNS {
			return consumidorSurchargeNS, true
		}
		return consumidorSurcharge, true
	default:
		return decimal.Zero, false
	}
}

// Label is the human readable tier description used in exports.
func (t ClientTier) Label() string {
	switch t {
	case TierInversionista:
		return "Inversionista (-40%)"
	case TierConsumidor:
		return "Consumidor (-40% y +$50 al precio; NS: +$179)"
	default:
		return "Público"
	}
}

// DisplayDiscountPercent is the discount badge shown next to a product row.
// Only the inversionista tier shows one.
func (t ClientTier) DisplayDiscountPercent() int {
	if t == TierInversionista {
		return 40
	}
	return 0
}
