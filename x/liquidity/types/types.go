package types

import (
	"time"

	"cosmossdk.io/math"
)

// Pool is a two-asset liquidity pool priced by a linear bonding curve.
// AssetReserve and BaseReserve are held by the module account; TotalShares
// tracks proportional ownership of the asset reserve. LastPrice and
// LastPriceUpdate form the price sample validated by the price guard.
type Pool struct {
	Id              uint64         `json:"id"`
	AssetDenom      string         `json:"asset_denom"`
	BaseDenom       string         `json:"base_denom"`
	AssetReserve    math.Int       `json:"asset_reserve"`
	BaseReserve     math.Int       `json:"base_reserve"`
	TotalShares     math.Int       `json:"total_shares"`
	LastPrice       math.LegacyDec `json:"last_price"`
	LastPriceUpdate time.Time      `json:"last_price_update"`
	Active          bool           `json:"active"`
	Creator         string         `json:"creator"`
	Curve           CurveParams    `json:"curve"`
}

// Validate checks the structural invariants a stored pool must satisfy:
// non-negative reserves and shares, an active pool has shares and a
// non-empty asset reserve, and the recorded price sits inside the curve
// bounds.
func (p Pool) Validate() error {
	if p.Id == 0 {
		return ErrInvalidPoolState.Wrap("pool id cannot be zero")
	}
	if p.AssetDenom == "" || p.BaseDenom == "" {
		return ErrInvalidDenom.Wrap("pool denoms cannot be empty")
	}
	if p.AssetDenom == p.BaseDenom {
		return ErrInvalidDenom.Wrap("asset and base denom must differ")
	}
	if p.AssetReserve.IsNil() || p.AssetReserve.IsNegative() {
		return ErrInvalidPoolState.Wrapf("negative asset reserve: %s", p.AssetReserve)
	}
	if p.BaseReserve.IsNil() || p.BaseReserve.IsNegative() {
		return ErrInvalidPoolState.Wrapf("negative base reserve: %s", p.BaseReserve)
	}
	if p.TotalShares.IsNil() || p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrapf("negative total shares: %s", p.TotalShares)
	}
	if p.Active {
		if !p.TotalShares.IsPositive() {
			return ErrInvalidPoolState.Wrap("active pool must have positive total shares")
		}
		if !p.AssetReserve.IsPositive() {
			return ErrInvalidPoolState.Wrap("active pool must have a positive asset reserve")
		}
	}
	// A pool with shares but no reserve is a divide-by-zero trap for the
	// next share computation.
	if p.TotalShares.IsPositive() && p.AssetReserve.IsZero() {
		return ErrInvalidPoolState.Wrap("pool has shares but zero asset reserve")
	}
	if err := p.Curve.Validate(); err != nil {
		return err
	}
	if p.LastPrice.IsNil() || !p.LastPrice.IsPositive() {
		return ErrInvalidPrice.Wrapf("last price must be positive: %s", p.LastPrice)
	}
	if p.LastPrice.LT(p.Curve.MinPrice) || p.LastPrice.GT(p.Curve.MaxPrice) {
		return ErrPriceOutOfBounds.Wrapf(
			"last price %s outside [%s, %s]",
			p.LastPrice, p.Curve.MinPrice, p.Curve.MaxPrice,
		)
	}
	return nil
}

// ShareRecord is a provider's ownership position in a pool, used for
// genesis import/export.
type ShareRecord struct {
	PoolId   uint64   `json:"pool_id"`
	Provider string   `json:"provider"`
	Shares   math.Int `json:"shares"`
}
