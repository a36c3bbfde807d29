package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prism-markets/prism/x/liquidity/types"
)

// CreatePool opens a new bonding-curve pool seeded with the creator's
// asset deposit. Operator-gated. Initial shares are minted 1:1 with the
// deposit and the initial price becomes the pool's first price sample,
// exempt from guard checks.
func (k Keeper) CreatePool(
	ctx context.Context,
	creator sdk.AccAddress,
	assetDenom, baseDenom string,
	assetAmount math.Int,
	initialPrice, slope math.LegacyDec,
) (uint64, error) {
	if err := k.requireOperator(ctx, creator); err != nil {
		return 0, err
	}

	params := k.GetParams(ctx)
	if assetAmount.LT(params.MinLiquidity) {
		return 0, types.ErrInvalidAmount.Wrapf(
			"initial reserve %s below minimum liquidity %s", assetAmount, params.MinLiquidity)
	}

	curve := types.NewCurveParams(initialPrice, slope, params.PriceBoundMultiplier)
	if err := curve.Validate(); err != nil {
		return 0, err
	}

	// Creation serializes under the lock of the ID it is about to claim,
	// so a reentrant create cannot race the duplicate check or the
	// counter bump.
	poolID := k.GetNextPoolID(ctx)

	err := k.withPoolLock(ctx, poolID, func() error {
		store := k.getStore(ctx)
		if store.Has(PoolByDenomsKey(assetDenom, baseDenom)) {
			return types.ErrPoolAlreadyExists.Wrapf("pool for %s/%s already exists", assetDenom, baseDenom)
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		pool := types.Pool{
			Id:              poolID,
			AssetDenom:      assetDenom,
			BaseDenom:       baseDenom,
			AssetReserve:    assetAmount,
			BaseReserve:     math.ZeroInt(),
			TotalShares:     assetAmount,
			LastPrice:       initialPrice,
			LastPriceUpdate: sdkCtx.BlockTime(),
			Active:          true,
			Creator:         creator.String(),
			Curve:           curve,
		}
		if err := pool.Validate(); err != nil {
			return err
		}

		// Pull the seed reserve in before persisting anything
		deposit := sdk.NewCoins(sdk.NewCoin(assetDenom, assetAmount))
		if err := k.bankKeeper.SendCoins(ctx, creator, k.moduleAddress, deposit); err != nil {
			return err
		}

		k.SetPool(ctx, pool)
		k.setNextPoolID(ctx, poolID+1)
		store.Set(PoolByDenomsKey(assetDenom, baseDenom), PoolKey(poolID))
		k.setShares(ctx, poolID, creator, assetAmount)

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypePoolCreated,
				sdk.NewAttribute(types.AttributeKeyPoolId, fmt.Sprintf("%d", poolID)),
				sdk.NewAttribute(types.AttributeKeyProvider, creator.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, assetAmount.String()),
				sdk.NewAttribute(types.AttributeKeyPrice, initialPrice.String()),
			),
		)

		if k.hooks != nil {
			k.hooks.AfterPoolCreated(sdkCtx, poolID, creator)
		}

		k.metrics.PoolCreations.Inc()
		k.metrics.PoolsTotal.Inc()
		k.updatePoolGauges(pool)

		k.Logger(ctx).Info("pool created",
			"pool_id", poolID,
			"asset_denom", assetDenom,
			"base_denom", baseDenom,
			"initial_reserve", assetAmount.String(),
		)

		return nil
	})
	if err != nil {
		return 0, err
	}

	return poolID, nil
}

// GetPool retrieves a pool by ID
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(poolID))
	if bz == nil {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	k.cdc.MustUnmarshal(bz, &pool)
	return pool, nil
}

// SetPool persists a pool
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) {
	store := k.getStore(ctx)
	bz := k.cdc.MustMarshal(&pool)
	store.Set(PoolKey(pool.Id), bz)
}

// GetAllPools returns every pool in ascending ID order
func (k Keeper) GetAllPools(ctx context.Context) []types.Pool {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	var pools []types.Pool
	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		k.cdc.MustUnmarshal(iterator.Value(), &pool)
		pools = append(pools, pool)
	}
	return pools
}

// GetNextPoolID returns the next pool ID to assign
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(NextPoolIdKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setNextPoolID(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(NextPoolIdKey, bz)
}

// SetPoolStatus enables or disables trading on a pool. Operator-gated.
// Reserves, shares, and the price sample persist across the transition.
func (k Keeper) SetPoolStatus(ctx context.Context, operator sdk.AccAddress, poolID uint64, active bool) error {
	if err := k.requireOperator(ctx, operator); err != nil {
		return err
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return err
	}

	if active && pool.TotalShares.IsZero() {
		return types.ErrInvalidPoolState.Wrapf("pool %d has no shares, cannot activate", poolID)
	}

	pool.Active = active
	k.SetPool(ctx, pool)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolStatusChanged,
			sdk.NewAttribute(types.AttributeKeyPoolId, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyActive, fmt.Sprintf("%t", active)),
			sdk.NewAttribute(types.AttributeKeyOperator, operator.String()),
		),
	)

	return nil
}

// GetCurrentPrice returns a pool's last recorded price. Read-only
// accessor for collaborating modules.
func (k Keeper) GetCurrentPrice(ctx context.Context, poolID uint64) (math.LegacyDec, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.LegacyDec{}, err
	}
	return pool.LastPrice, nil
}

// GetReserves returns a pool's asset and base reserves. Read-only
// accessor for collaborating modules.
func (k Keeper) GetReserves(ctx context.Context, poolID uint64) (asset, base math.Int, err error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return pool.AssetReserve, pool.BaseReserve, nil
}

// SimulateBuy quotes a buy without mutating state
func (k Keeper) SimulateBuy(ctx context.Context, poolID uint64, payment math.Int) (tokensOut math.Int, price math.LegacyDec, err error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, math.LegacyDec{}, err
	}

	price, err = pool.Curve.BuyPrice(payment)
	if err != nil {
		return math.Int{}, math.LegacyDec{}, err
	}

	tokensOut = math.LegacyNewDecFromInt(payment).Quo(price).TruncateInt()
	return tokensOut, price, nil
}

// SimulateSell quotes a sell without mutating state
func (k Keeper) SimulateSell(ctx context.Context, poolID uint64, tokensIn math.Int) (paymentOut math.Int, price math.LegacyDec, err error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, math.LegacyDec{}, err
	}

	price, err = pool.Curve.SellPrice(tokensIn)
	if err != nil {
		return math.Int{}, math.LegacyDec{}, err
	}

	paymentOut = price.MulInt(tokensIn).TruncateInt()
	return paymentOut, price, nil
}

// updatePoolGauges refreshes the per-pool reserve and share gauges
func (k Keeper) updatePoolGauges(pool types.Pool) {
	poolLabel := fmt.Sprintf("%d", pool.Id)

	if assetFloat, err := pool.AssetReserve.ToLegacyDec().Float64(); err == nil {
		k.metrics.PoolReserve.WithLabelValues(poolLabel, pool.AssetDenom).Set(assetFloat)
	}
	if baseFloat, err := pool.BaseReserve.ToLegacyDec().Float64(); err == nil {
		k.metrics.PoolReserve.WithLabelValues(poolLabel, pool.BaseDenom).Set(baseFloat)
	}
	if sharesFloat, err := pool.TotalShares.ToLegacyDec().Float64(); err == nil {
		k.metrics.PoolShares.WithLabelValues(poolLabel).Set(sharesFloat)
	}
}
