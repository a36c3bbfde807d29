package types

import (
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LiquidityHooks is the event interface other modules implement to react
// to pool lifecycle and trading activity.
type LiquidityHooks interface {
	// AfterPoolCreated is called after a new pool is persisted.
	AfterPoolCreated(ctx sdk.Context, poolID uint64, creator sdk.AccAddress)

	// AfterLiquidityChanged is called after a deposit or withdrawal
	// settles. delta is positive for deposits, negative for withdrawals.
	AfterLiquidityChanged(ctx sdk.Context, poolID uint64, provider sdk.AccAddress, delta math.Int)

	// AfterTrade is called after a buy or sell settles at the given
	// execution price.
	AfterTrade(ctx sdk.Context, poolID uint64, trader sdk.AccAddress, price math.LegacyDec)

	// OnAnomalyDetected is called when a submitted price falls outside
	// the allowed deviation from the pool's recorded price.
	OnAnomalyDetected(ctx sdk.Context, poolID uint64, oldPrice, newPrice math.LegacyDec, observedAt time.Time)
}

// MultiLiquidityHooks combines multiple hooks; each call fans out to all
// of them in order.
type MultiLiquidityHooks []LiquidityHooks

var _ LiquidityHooks = MultiLiquidityHooks{}

// NewMultiLiquidityHooks creates a combined hook from the given hooks
func NewMultiLiquidityHooks(hooks ...LiquidityHooks) MultiLiquidityHooks {
	return hooks
}

func (h MultiLiquidityHooks) AfterPoolCreated(ctx sdk.Context, poolID uint64, creator sdk.AccAddress) {
	for i := range h {
		h[i].AfterPoolCreated(ctx, poolID, creator)
	}
}

func (h MultiLiquidityHooks) AfterLiquidityChanged(ctx sdk.Context, poolID uint64, provider sdk.AccAddress, delta math.Int) {
	for i := range h {
		h[i].AfterLiquidityChanged(ctx, poolID, provider, delta)
	}
}

func (h MultiLiquidityHooks) AfterTrade(ctx sdk.Context, poolID uint64, trader sdk.AccAddress, price math.LegacyDec) {
	for i := range h {
		h[i].AfterTrade(ctx, poolID, trader, price)
	}
}

func (h MultiLiquidityHooks) OnAnomalyDetected(ctx sdk.Context, poolID uint64, oldPrice, newPrice math.LegacyDec, observedAt time.Time) {
	for i := range h {
		h[i].OnAnomalyDetected(ctx, poolID, oldPrice, newPrice, observedAt)
	}
}
