package types

import (
	"cosmossdk.io/math"
)

// PriceScale is the fixed-point denominator for curve math: trade amounts
// are integer base units and one whole unit is 10^18 of them, matching the
// 18-decimal precision of math.LegacyDec.
var PriceScale = math.NewIntWithDecimal(1, 18)

// CurveParams define a linear bonding curve. Prices are quoted in base
// currency per whole asset unit. The bounds are derived once at pool
// creation (MaxPrice = BasePrice * k, MinPrice = BasePrice / k) and are
// immutable afterwards.
type CurveParams struct {
	BasePrice math.LegacyDec `json:"base_price"`
	Slope     math.LegacyDec `json:"slope"`
	MinPrice  math.LegacyDec `json:"min_price"`
	MaxPrice  math.LegacyDec `json:"max_price"`
}

// NewCurveParams derives curve parameters from a base price, slope and
// price-bound multiplier.
func NewCurveParams(basePrice, slope, boundMultiplier math.LegacyDec) CurveParams {
	return CurveParams{
		BasePrice: basePrice,
		Slope:     slope,
		MinPrice:  basePrice.Quo(boundMultiplier),
		MaxPrice:  basePrice.Mul(boundMultiplier),
	}
}

// Validate checks that the curve is well-formed: positive base price and
// slope, and bounds that bracket the base price.
func (c CurveParams) Validate() error {
	if c.BasePrice.IsNil() || !c.BasePrice.IsPositive() {
		return ErrInvalidPrice.Wrapf("base price must be positive: %s", c.BasePrice)
	}
	if c.Slope.IsNil() || !c.Slope.IsPositive() {
		return ErrInvalidPrice.Wrapf("slope must be positive: %s", c.Slope)
	}
	if c.MinPrice.IsNil() || !c.MinPrice.IsPositive() {
		return ErrInvalidPrice.Wrapf("min price must be positive: %s", c.MinPrice)
	}
	if c.MaxPrice.IsNil() || c.MaxPrice.LT(c.MinPrice) {
		return ErrInvalidPrice.Wrapf("max price %s below min price %s", c.MaxPrice, c.MinPrice)
	}
	if c.BasePrice.LT(c.MinPrice) || c.BasePrice.GT(c.MaxPrice) {
		return ErrInvalidPrice.Wrapf(
			"base price %s outside [%s, %s]", c.BasePrice, c.MinPrice, c.MaxPrice,
		)
	}
	return nil
}

// BuyPrice returns the execution price for buying with inputAmount of base
// currency: BasePrice + Slope * inputAmount / PriceScale. Slope is positive,
// so the price is strictly increasing in trade size; a result outside the
// configured bounds is rejected rather than clamped.
func (c CurveParams) BuyPrice(inputAmount math.Int) (math.LegacyDec, error) {
	if inputAmount.IsNil() || !inputAmount.IsPositive() {
		return math.LegacyDec{}, ErrInvalidAmount.Wrap("buy amount must be positive")
	}

	price := c.BasePrice.Add(c.Slope.MulInt(inputAmount).QuoInt(PriceScale))
	if price.GT(c.MaxPrice) || price.LT(c.MinPrice) {
		return math.LegacyDec{}, ErrPriceOutOfBounds.Wrapf(
			"buy price %s outside [%s, %s]", price, c.MinPrice, c.MaxPrice,
		)
	}
	return price, nil
}

// SellPrice returns the execution price for selling outputAmount of the
// asset: BasePrice - Slope * outputAmount / PriceScale. For large trades the
// subtraction legitimately crosses MinPrice (or zero); that case fails with
// ErrPriceOutOfBounds explicitly instead of relying on arithmetic underflow.
func (c CurveParams) SellPrice(outputAmount math.Int) (math.LegacyDec, error) {
	if outputAmount.IsNil() || !outputAmount.IsPositive() {
		return math.LegacyDec{}, ErrInvalidAmount.Wrap("sell amount must be positive")
	}

	price := c.BasePrice.Sub(c.Slope.MulInt(outputAmount).QuoInt(PriceScale))
	if price.LT(c.MinPrice) || price.GT(c.MaxPrice) {
		return math.LegacyDec{}, ErrPriceOutOfBounds.Wrapf(
			"sell price %s outside [%s, %s]", price, c.MinPrice, c.MaxPrice,
		)
	}
	return price, nil
}
