package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidDiscount = errors.New("discount percent must be between 0 and 100")

type PricingKind string

const (
	// PricingComputed: discounted price follows from base price and discount
	PricingComputed PricingKind = "computed"
	// PricingManual: discounted price was overridden by hand in the admin
	PricingManual PricingKind = "manual"
)

// Pricing makes the price/discount/discounted_price relationship explicit.
// The legacy data model stores three independently mutable fields that can
// silently disagree; classifyPricing names the state instead of hiding it.
type Pricing struct {
	Kind     PricingKind
	Base     float64
	Discount int      // percent, computed variant only
	Override *float64 // manual variant only
}

// Final returns the effective price for the variant
func (p Pricing) Final() float64 {
	switch p.Kind {
	case PricingManual:
		if p.Override != nil {
			return *p.Override
		}
		return p.Base
	default:
		if p.Discount > 0 {
			return applyDiscount(p.Base, p.Discount)
		}
		return p.Base
	}
}

// Drifted reports whether a computed record's stored override disagrees
// with the recomputed discounted price. Always false for manual pricing.
func (p Pricing) Drifted() bool {
	if p.Kind != PricingComputed || p.Override == nil {
		return false
	}
	return *p.Override != applyDiscount(p.Base, p.Discount)
}

// classifyPricing maps a raw record onto a pricing variant. A stored
// discounted price that matches the recomputation is computed pricing;
// one that disagrees, or exists without a discount, is a manual override.
func classifyPricing(base float64, discount *int, discounted *float64) Pricing {
	if discount != nil && *discount > 0 {
		p := Pricing{Kind: PricingComputed, Base: base, Discount: *discount, Override: discounted}
		if discounted != nil && *discounted != applyDiscount(base, *discount) {
			p.Kind = PricingManual
		}
		return p
	}
	if discounted != nil {
		return Pricing{Kind: PricingManual, Base: base, Override: discounted}
	}
	return Pricing{Kind: PricingComputed, Base: base}
}

// applyDiscount computes price × (1 − percent/100) rounded to 2 decimal
// places. Decimal arithmetic avoids float artifacts like 1499.9999999.
func applyDiscount(price float64, percent int) float64 {
	base := decimal.NewFromFloat(price)
	factor := decimal.NewFromInt(100 - int64(percent)).Div(decimal.NewFromInt(100))
	result, _ := base.Mul(factor).Round(2).Float64()
	return result
}
