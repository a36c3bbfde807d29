package keeper

import (
	"context"
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prism-markets/prism/x/liquidity/types"
)

// validateObservedPrice checks a submitted price against the pool's
// recorded sample. The pool's first sample is exempt from both checks.
//
// Two gates apply, staleness first:
//   - the recorded sample must be younger than the validity window
//   - the submitted price must stay within the allowed deviation of the
//     recorded price
func (k Keeper) validateObservedPrice(ctx context.Context, pool types.Pool, observed math.LegacyDec) error {
	if pool.LastPrice.IsNil() || pool.LastPrice.IsZero() {
		return nil
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	params := k.GetParams(ctx)

	age := sdkCtx.BlockTime().Sub(pool.LastPriceUpdate)
	if age > params.PriceValidityWindow {
		k.metrics.StaleRejections.WithLabelValues(fmt.Sprintf("%d", pool.Id)).Inc()
		return types.ErrStalePrice.Wrapf(
			"pool %d price recorded %s ago exceeds validity window %s",
			pool.Id, age, params.PriceValidityWindow,
		)
	}

	var deviation math.LegacyDec
	if observed.GT(pool.LastPrice) {
		deviation = observed.Sub(pool.LastPrice).Quo(pool.LastPrice)
	} else {
		deviation = pool.LastPrice.Sub(observed).Quo(pool.LastPrice)
	}
	deviationPercent := deviation.Mul(math.LegacyNewDec(100))

	if deviationPercent.GT(params.MaxPriceChangePercent) {
		k.recordPriceAnomaly(ctx, pool.Id, pool.LastPrice, observed, sdkCtx.BlockTime())
		return types.ErrPriceChangeTooBig.Wrapf(
			"pool %d price moved %s%%, maximum allowed is %s%%",
			pool.Id, deviationPercent, params.MaxPriceChangePercent,
		)
	}

	return nil
}

// recordPriceAnomaly emits the anomaly event, notifies hooks, and bumps
// the anomaly counter. The rejected operation still fails; this is the
// signal path for external monitors.
func (k Keeper) recordPriceAnomaly(ctx context.Context, poolID uint64, oldPrice, newPrice math.LegacyDec, observedAt time.Time) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAnomalyDetected,
			sdk.NewAttribute(types.AttributeKeyPoolId, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyOldPrice, oldPrice.String()),
			sdk.NewAttribute(types.AttributeKeyNewPrice, newPrice.String()),
			sdk.NewAttribute(types.AttributeKeyTimestamp, observedAt.Format(time.RFC3339)),
		),
	)

	if k.hooks != nil {
		k.hooks.OnAnomalyDetected(sdkCtx, poolID, oldPrice, newPrice, observedAt)
	}

	k.metrics.PriceAnomalies.WithLabelValues(fmt.Sprintf("%d", poolID)).Inc()

	k.Logger(ctx).Warn("price anomaly detected",
		"pool_id", poolID,
		"old_price", oldPrice.String(),
		"new_price", newPrice.String(),
	)
}

// recordPrice updates the pool's price sample and emits the price
// update event. Callers persist the pool afterwards.
func (k Keeper) recordPrice(ctx context.Context, pool *types.Pool, price math.LegacyDec) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	pool.LastPrice = price
	pool.LastPriceUpdate = sdkCtx.BlockTime()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePriceUpdated,
			sdk.NewAttribute(types.AttributeKeyPoolId, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(types.AttributeKeyPrice, price.String()),
			sdk.NewAttribute(types.AttributeKeyTimestamp, pool.LastPriceUpdate.Format(time.RFC3339)),
		),
	)

	priceFloat, err := price.Float64()
	if err == nil {
		k.metrics.PoolPrice.WithLabelValues(fmt.Sprintf("%d", pool.Id)).Set(priceFloat)
	}
}
