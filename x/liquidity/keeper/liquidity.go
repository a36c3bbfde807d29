package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prism-markets/prism/x/liquidity/types"
)

// AddLiquidity deposits asset into an active pool in exchange for
// proportional ownership shares. The submitted observedPrice must pass
// the price guard before any state changes.
//
// newShares = floor(amount * totalShares / assetReserve). A deposit that
// rounds to zero shares is rejected rather than silently absorbed.
func (k Keeper) AddLiquidity(
	ctx context.Context,
	provider sdk.AccAddress,
	poolID uint64,
	amount math.Int,
	observedPrice math.LegacyDec,
) (math.Int, error) {
	var newShares math.Int

	err := k.withPoolLock(ctx, poolID, func() error {
		pool, err := k.GetPool(ctx, poolID)
		if err != nil {
			return err
		}
		if !pool.Active {
			return types.ErrPoolInactive.Wrapf("pool %d is not accepting deposits", poolID)
		}
		if !amount.IsPositive() {
			return types.ErrInvalidAmount.Wrap("deposit amount must be positive")
		}

		if err := k.validateObservedPrice(ctx, pool, observedPrice); err != nil {
			return err
		}

		newShares = amount.Mul(pool.TotalShares).Quo(pool.AssetReserve)
		if newShares.IsZero() {
			return types.ErrInvalidAmount.Wrapf(
				"deposit of %s rounds to zero shares against reserve %s", amount, pool.AssetReserve)
		}

		deposit := sdk.NewCoins(sdk.NewCoin(pool.AssetDenom, amount))
		if err := k.bankKeeper.SendCoins(ctx, provider, k.moduleAddress, deposit); err != nil {
			return err
		}

		pool.AssetReserve = pool.AssetReserve.Add(amount)
		pool.TotalShares = pool.TotalShares.Add(newShares)
		k.recordPrice(ctx, &pool, observedPrice)
		k.SetPool(ctx, pool)

		k.setShares(ctx, poolID, provider, k.GetShares(ctx, poolID, provider).Add(newShares))

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeLiquidityAdded,
				sdk.NewAttribute(types.AttributeKeyPoolId, fmt.Sprintf("%d", poolID)),
				sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
				sdk.NewAttribute(types.AttributeKeyShares, newShares.String()),
			),
		)

		if k.hooks != nil {
			k.hooks.AfterLiquidityChanged(sdkCtx, poolID, provider, amount)
		}

		if amountFloat, err := amount.ToLegacyDec().Float64(); err == nil {
			k.metrics.LiquidityAdded.WithLabelValues(fmt.Sprintf("%d", poolID), pool.AssetDenom).Add(amountFloat)
		}
		k.updatePoolGauges(pool)

		return nil
	})
	if err != nil {
		return math.Int{}, err
	}

	return newShares, nil
}

// RemoveLiquidity burns the caller's shares in exchange for the
// proportional slice of the pool's asset reserve. Permitted on inactive
// pools so providers can always exit.
//
// amount = floor(shares * assetReserve / totalShares). State is mutated
// before the outbound transfer. Withdrawing the final share deactivates
// the pool instead of leaving a zero-reserve divide-by-zero trap.
func (k Keeper) RemoveLiquidity(
	ctx context.Context,
	provider sdk.AccAddress,
	poolID uint64,
	shares math.Int,
) (math.Int, error) {
	var amount math.Int

	err := k.withPoolLock(ctx, poolID, func() error {
		pool, err := k.GetPool(ctx, poolID)
		if err != nil {
			return err
		}
		if !shares.IsPositive() {
			return types.ErrInsufficientShares.Wrap("shares must be positive")
		}

		held := k.GetShares(ctx, poolID, provider)
		if shares.GT(held) {
			return types.ErrInsufficientShares.Wrapf(
				"requested %s shares, holding %s", shares, held)
		}

		amount = shares.Mul(pool.AssetReserve).Quo(pool.TotalShares)
		if amount.IsZero() {
			return types.ErrInvalidAmount.Wrapf(
				"%s shares redeem to zero against reserve %s", shares, pool.AssetReserve)
		}

		pool.AssetReserve = pool.AssetReserve.Sub(amount)
		pool.TotalShares = pool.TotalShares.Sub(shares)
		if pool.TotalShares.IsZero() {
			pool.Active = false
		}
		k.SetPool(ctx, pool)
		k.setShares(ctx, poolID, provider, held.Sub(shares))

		withdrawal := sdk.NewCoins(sdk.NewCoin(pool.AssetDenom, amount))
		if err := k.bankKeeper.SendCoins(ctx, k.moduleAddress, provider, withdrawal); err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeLiquidityRemoved,
				sdk.NewAttribute(types.AttributeKeyPoolId, fmt.Sprintf("%d", poolID)),
				sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
				sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
			),
		)

		if k.hooks != nil {
			k.hooks.AfterLiquidityChanged(sdkCtx, poolID, provider, amount.Neg())
		}

		if amountFloat, err := amount.ToLegacyDec().Float64(); err == nil {
			k.metrics.LiquidityRemoved.WithLabelValues(fmt.Sprintf("%d", poolID), pool.AssetDenom).Add(amountFloat)
		}
		k.updatePoolGauges(pool)

		return nil
	})
	if err != nil {
		return math.Int{}, err
	}

	return amount, nil
}

// GetShares returns a provider's share balance in a pool, zero when no
// position exists.
func (k Keeper) GetShares(ctx context.Context, poolID uint64, provider sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(ShareKey(poolID, provider))
	if bz == nil {
		return math.ZeroInt()
	}

	var shares math.Int
	k.cdc.MustUnmarshal(bz, &shares)
	return shares
}

// setShares stores a provider's share balance, deleting the record when
// the balance drops to zero.
func (k Keeper) setShares(ctx context.Context, poolID uint64, provider sdk.AccAddress, shares math.Int) {
	store := k.getStore(ctx)
	key := ShareKey(poolID, provider)

	if shares.IsZero() {
		store.Delete(key)
		return
	}
	store.Set(key, k.cdc.MustMarshal(&shares))
}

// IterateShares walks every share position in a pool. The callback
// returns true to stop early.
func (k Keeper) IterateShares(ctx context.Context, poolID uint64, cb func(provider sdk.AccAddress, shares math.Int) bool) {
	store := k.getStore(ctx)
	prefix := ShareKeyByPoolPrefix(poolID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		provider := sdk.AccAddress(iterator.Key()[len(prefix):])

		var shares math.Int
		k.cdc.MustUnmarshal(iterator.Value(), &shares)

		if cb(provider, shares) {
			return
		}
	}
}
