package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prism-markets/prism/x/liquidity/types"
)

// Buy purchases the pool asset with base currency at the curve price.
//
// price = curve.BuyPrice(payment), tokensOut = floor(payment / price).
// Truncation always rounds in the pool's favor. Reserves and the price
// sample are mutated before the asset leaves the module account.
func (k Keeper) Buy(
	ctx context.Context,
	buyer sdk.AccAddress,
	poolID uint64,
	payment, minTokensOut math.Int,
) (tokensOut math.Int, price math.LegacyDec, err error) {
	err = k.withPoolLock(ctx, poolID, func() error {
		pool, err := k.GetPool(ctx, poolID)
		if err != nil {
			return err
		}
		if !pool.Active {
			return types.ErrPoolInactive.Wrapf("pool %d is not trading", poolID)
		}

		params := k.GetParams(ctx)
		if payment.LT(params.MinPurchase) {
			return types.ErrInvalidAmount.Wrapf(
				"payment %s below minimum purchase %s", payment, params.MinPurchase)
		}

		price, err = pool.Curve.BuyPrice(payment)
		if err != nil {
			return err
		}

		tokensOut = math.LegacyNewDecFromInt(payment).Quo(price).TruncateInt()
		if tokensOut.IsZero() {
			return types.ErrInvalidAmount.Wrapf(
				"payment %s buys zero tokens at price %s", payment, price)
		}
		if tokensOut.LT(minTokensOut) {
			return types.ErrSlippageExceeded.Wrapf(
				"output %s below minimum %s", tokensOut, minTokensOut)
		}
		// A buy may not empty the asset reserve: shares must always have
		// reserve behind them.
		if tokensOut.GTE(pool.AssetReserve) {
			return types.ErrInsufficientLiquidity.Wrapf(
				"output %s would drain asset reserve %s", tokensOut, pool.AssetReserve)
		}

		paymentCoins := sdk.NewCoins(sdk.NewCoin(pool.BaseDenom, payment))
		if err := k.bankKeeper.SendCoins(ctx, buyer, k.moduleAddress, paymentCoins); err != nil {
			return err
		}

		pool.BaseReserve = pool.BaseReserve.Add(payment)
		pool.AssetReserve = pool.AssetReserve.Sub(tokensOut)
		k.recordPrice(ctx, &pool, price)
		k.SetPool(ctx, pool)

		assetCoins := sdk.NewCoins(sdk.NewCoin(pool.AssetDenom, tokensOut))
		if err := k.bankKeeper.SendCoins(ctx, k.moduleAddress, buyer, assetCoins); err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeTokensPurchased,
				sdk.NewAttribute(types.AttributeKeyPoolId, fmt.Sprintf("%d", poolID)),
				sdk.NewAttribute(types.AttributeKeyBuyer, buyer.String()),
				sdk.NewAttribute(types.AttributeKeyPaymentIn, payment.String()),
				sdk.NewAttribute(types.AttributeKeyTokensOut, tokensOut.String()),
				sdk.NewAttribute(types.AttributeKeyPrice, price.String()),
			),
		)

		if k.hooks != nil {
			k.hooks.AfterTrade(sdkCtx, poolID, buyer, price)
		}

		k.recordTradeMetrics(pool, "buy", payment)

		return nil
	})
	if err != nil {
		k.metrics.TradesTotal.WithLabelValues(fmt.Sprintf("%d", poolID), "buy", "failed").Inc()
		return math.Int{}, math.LegacyDec{}, err
	}

	return tokensOut, price, nil
}

// Sell sells the pool asset back for base currency at the curve price.
//
// price = curve.SellPrice(tokensIn), paymentOut = floor(tokensIn * price).
// A sell large enough to push the curve below its floor fails with an
// explicit out-of-bounds error rather than wrapping around.
func (k Keeper) Sell(
	ctx context.Context,
	seller sdk.AccAddress,
	poolID uint64,
	tokensIn, minPaymentOut math.Int,
) (paymentOut math.Int, price math.LegacyDec, err error) {
	err = k.withPoolLock(ctx, poolID, func() error {
		pool, err := k.GetPool(ctx, poolID)
		if err != nil {
			return err
		}
		if !pool.Active {
			return types.ErrPoolInactive.Wrapf("pool %d is not trading", poolID)
		}
		if !tokensIn.IsPositive() {
			return types.ErrInvalidAmount.Wrap("tokens in must be positive")
		}
		if tokensIn.GT(pool.AssetReserve) {
			return types.ErrInvalidAmount.Wrapf(
				"sell of %s exceeds asset reserve %s", tokensIn, pool.AssetReserve)
		}

		price, err = pool.Curve.SellPrice(tokensIn)
		if err != nil {
			return err
		}

		paymentOut = price.MulInt(tokensIn).TruncateInt()
		if paymentOut.IsZero() {
			return types.ErrInvalidAmount.Wrapf(
				"sell of %s pays out zero at price %s", tokensIn, price)
		}
		if paymentOut.LT(minPaymentOut) {
			return types.ErrSlippageExceeded.Wrapf(
				"payout %s below minimum %s", paymentOut, minPaymentOut)
		}
		if paymentOut.GT(pool.BaseReserve) {
			return types.ErrInsufficientLiquidity.Wrapf(
				"payout %s exceeds base reserve %s", paymentOut, pool.BaseReserve)
		}

		assetCoins := sdk.NewCoins(sdk.NewCoin(pool.AssetDenom, tokensIn))
		if err := k.bankKeeper.SendCoins(ctx, seller, k.moduleAddress, assetCoins); err != nil {
			return err
		}

		pool.AssetReserve = pool.AssetReserve.Add(tokensIn)
		pool.BaseReserve = pool.BaseReserve.Sub(paymentOut)
		k.recordPrice(ctx, &pool, price)
		k.SetPool(ctx, pool)

		paymentCoins := sdk.NewCoins(sdk.NewCoin(pool.BaseDenom, paymentOut))
		if err := k.bankKeeper.SendCoins(ctx, k.moduleAddress, seller, paymentCoins); err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeTokensSold,
				sdk.NewAttribute(types.AttributeKeyPoolId, fmt.Sprintf("%d", poolID)),
				sdk.NewAttribute(types.AttributeKeySeller, seller.String()),
				sdk.NewAttribute(types.AttributeKeyTokensIn, tokensIn.String()),
				sdk.NewAttribute(types.AttributeKeyPaymentOut, paymentOut.String()),
				sdk.NewAttribute(types.AttributeKeyPrice, price.String()),
			),
		)

		if k.hooks != nil {
			k.hooks.AfterTrade(sdkCtx, poolID, seller, price)
		}

		k.recordTradeMetrics(pool, "sell", paymentOut)

		return nil
	})
	if err != nil {
		k.metrics.TradesTotal.WithLabelValues(fmt.Sprintf("%d", poolID), "sell", "failed").Inc()
		return math.Int{}, math.LegacyDec{}, err
	}

	return paymentOut, price, nil
}

// recordTradeMetrics bumps the trade counters and refreshes pool gauges
func (k Keeper) recordTradeMetrics(pool types.Pool, side string, baseVolume math.Int) {
	poolLabel := fmt.Sprintf("%d", pool.Id)

	k.metrics.TradesTotal.WithLabelValues(poolLabel, side, "success").Inc()
	if volumeFloat, err := baseVolume.ToLegacyDec().Float64(); err == nil {
		k.metrics.TradeVolume.WithLabelValues(poolLabel, pool.BaseDenom).Add(volumeFloat)
	}
	k.updatePoolGauges(pool)
}
