package types

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
)

// Params hold the module's policy parameters. The price-guard windows, the
// anomaly bound and the curve bound multiplier are deliberately parameters
// rather than constants so governance can retune them without an upgrade.
type Params struct {
	// MinLiquidity is the minimum initial asset reserve for a new pool.
	MinLiquidity math.Int `json:"min_liquidity"`
	// MinPurchase is the minimum base-currency payment accepted by Buy.
	MinPurchase math.Int `json:"min_purchase"`
	// PriceValidityWindow is the maximum age of a price sample before
	// liquidity operations reject it as stale.
	PriceValidityWindow time.Duration `json:"price_validity_window"`
	// MaxPriceChangePercent is the anomaly bound on consecutive samples,
	// expressed in percent.
	MaxPriceChangePercent math.LegacyDec `json:"max_price_change_percent"`
	// PriceBoundMultiplier k derives curve bounds: [base/k, base*k].
	PriceBoundMultiplier math.LegacyDec `json:"price_bound_multiplier"`
}

// DefaultParams returns the default liquidity parameters.
func DefaultParams() Params {
	return Params{
		MinLiquidity:          math.NewInt(1000),
		MinPurchase:           math.NewInt(1000),
		PriceValidityWindow:   5 * time.Minute,
		MaxPriceChangePercent: math.LegacyNewDec(50), // 50%
		PriceBoundMultiplier:  math.LegacyNewDec(10),
	}
}

// Validate validates the set of params.
func (p Params) Validate() error {
	if p.MinLiquidity.IsNil() || !p.MinLiquidity.IsPositive() {
		return fmt.Errorf("min liquidity must be positive: %s", p.MinLiquidity)
	}
	if p.MinPurchase.IsNil() || !p.MinPurchase.IsPositive() {
		return fmt.Errorf("min purchase must be positive: %s", p.MinPurchase)
	}
	if p.PriceValidityWindow <= 0 {
		return fmt.Errorf("price validity window must be positive: %s", p.PriceValidityWindow)
	}
	if p.MaxPriceChangePercent.IsNil() || !p.MaxPriceChangePercent.IsPositive() {
		return fmt.Errorf("max price change percent must be positive: %s", p.MaxPriceChangePercent)
	}
	if p.PriceBoundMultiplier.IsNil() || p.PriceBoundMultiplier.LTE(math.LegacyOneDec()) {
		return fmt.Errorf("price bound multiplier must exceed 1: %s", p.PriceBoundMultiplier)
	}
	return nil
}
