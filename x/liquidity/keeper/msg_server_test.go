package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/prism-markets/prism/testutil/keeper"
	"github.com/prism-markets/prism/x/liquidity/keeper"
	"github.com/prism-markets/prism/x/liquidity/types"
)

func TestMsgServerFullFlow(t *testing.T) {
	k, _, ctx := testkeeper.LiquidityKeeper(t)
	srv := keeper.NewMsgServerImpl(*k)

	// authority grants the operator capability
	_, err := srv.AddOperator(ctx, &types.MsgAddOperator{
		Authority: testkeeper.Authority(),
		Operator:  operator.String(),
	})
	require.NoError(t, err)

	createResp, err := srv.CreatePool(ctx, types.NewMsgCreatePool(
		operator.String(), "uasset", "ubase",
		math.NewInt(100000), math.LegacyOneDec(), math.LegacyOneDec(),
	))
	require.NoError(t, err)
	require.Equal(t, uint64(1), createResp.PoolId)

	addResp, err := srv.AddLiquidity(ctx, types.NewMsgAddLiquidity(
		provider.String(), createResp.PoolId, math.NewInt(2500), math.LegacyOneDec(),
	))
	require.NoError(t, err)
	require.True(t, addResp.Shares.Equal(math.NewInt(2500)))

	buyResp, err := srv.Buy(ctx, types.NewMsgBuy(
		trader.String(), createResp.PoolId, math.NewInt(5000), math.ZeroInt(),
	))
	require.NoError(t, err)
	require.True(t, buyResp.TokensOut.IsPositive())
	require.True(t, buyResp.Price.GT(math.LegacyOneDec()))

	sellResp, err := srv.Sell(ctx, types.NewMsgSell(
		trader.String(), createResp.PoolId, math.NewInt(1000), math.ZeroInt(),
	))
	require.NoError(t, err)
	require.True(t, sellResp.PaymentOut.IsPositive())

	removeResp, err := srv.RemoveLiquidity(ctx, types.NewMsgRemoveLiquidity(
		provider.String(), createResp.PoolId, addResp.Shares,
	))
	require.NoError(t, err)
	require.True(t, removeResp.Amount.IsPositive())

	_, err = srv.SetPoolStatus(ctx, &types.MsgSetPoolStatus{
		Operator: operator.String(),
		PoolId:   createResp.PoolId,
		Active:   false,
	})
	require.NoError(t, err)

	pool, err := k.GetPool(ctx, createResp.PoolId)
	require.NoError(t, err)
	require.False(t, pool.Active)
}

func TestMsgServerAuthorityGating(t *testing.T) {
	k, _, ctx := testkeeper.LiquidityKeeper(t)
	srv := keeper.NewMsgServerImpl(*k)

	_, err := srv.AddOperator(ctx, &types.MsgAddOperator{
		Authority: provider.String(),
		Operator:  operator.String(),
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = srv.RemoveOperator(ctx, &types.MsgRemoveOperator{
		Authority: provider.String(),
		Operator:  operator.String(),
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = srv.UpdateParams(ctx, &types.MsgUpdateParams{
		Authority: provider.String(),
		Params:    types.DefaultParams(),
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestMsgServerUpdateParams(t *testing.T) {
	k, _, ctx := testkeeper.LiquidityKeeper(t)
	srv := keeper.NewMsgServerImpl(*k)

	params := types.DefaultParams()
	params.MinPurchase = math.NewInt(50)

	_, err := srv.UpdateParams(ctx, &types.MsgUpdateParams{
		Authority: testkeeper.Authority(),
		Params:    params,
	})
	require.NoError(t, err)
	require.True(t, k.GetParams(ctx).MinPurchase.Equal(math.NewInt(50)))

	// invalid params are rejected before storage
	params.PriceBoundMultiplier = math.LegacyOneDec()
	_, err = srv.UpdateParams(ctx, &types.MsgUpdateParams{
		Authority: testkeeper.Authority(),
		Params:    params,
	})
	require.Error(t, err)
	require.True(t, k.GetParams(ctx).PriceBoundMultiplier.GT(math.LegacyOneDec()))
}

func TestMsgServerRejectsInvalidMessages(t *testing.T) {
	k, _, ctx := testkeeper.LiquidityKeeper(t)
	srv := keeper.NewMsgServerImpl(*k)

	_, err := srv.Buy(ctx, &types.MsgBuy{
		Buyer:        "not-bech32",
		PoolId:       1,
		Payment:      math.NewInt(1000),
		MinTokensOut: math.ZeroInt(),
	})
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = srv.AddLiquidity(ctx, &types.MsgAddLiquidity{
		Provider:      provider.String(),
		PoolId:        0,
		Amount:        math.NewInt(10),
		ObservedPrice: math.LegacyOneDec(),
	})
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}
