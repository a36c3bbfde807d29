package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/prism-markets/prism/x/liquidity/types"
)

func testAddress(seed byte) string {
	addr := make([]byte, 20)
	for i := range addr {
		addr[i] = seed
	}
	return sdk.AccAddress(addr).String()
}

func TestMsgCreatePoolValidateBasic(t *testing.T) {
	valid := types.NewMsgCreatePool(
		testAddress(1), "uasset", "ubase",
		math.NewInt(1000), math.LegacyOneDec(), math.LegacyOneDec(),
	)

	tests := []struct {
		name   string
		mutate func(msg *types.MsgCreatePool)
		errIs  error
	}{
		{name: "valid", mutate: func(msg *types.MsgCreatePool) {}},
		{
			name:   "bad creator",
			mutate: func(msg *types.MsgCreatePool) { msg.Creator = "not-an-address" },
			errIs:  types.ErrInvalidAddress,
		},
		{
			name:   "same denoms",
			mutate: func(msg *types.MsgCreatePool) { msg.BaseDenom = msg.AssetDenom },
			errIs:  types.ErrInvalidDenom,
		},
		{
			name:   "zero amount",
			mutate: func(msg *types.MsgCreatePool) { msg.AssetAmount = math.ZeroInt() },
			errIs:  types.ErrInvalidAmount,
		},
		{
			name:   "zero price",
			mutate: func(msg *types.MsgCreatePool) { msg.InitialPrice = math.LegacyZeroDec() },
			errIs:  types.ErrInvalidPrice,
		},
		{
			name:   "negative slope",
			mutate: func(msg *types.MsgCreatePool) { msg.Slope = math.LegacyNewDec(-1) },
			errIs:  types.ErrInvalidPrice,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := *valid
			tc.mutate(&msg)
			err := msg.ValidateBasic()
			if tc.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestMsgAddLiquidityValidateBasic(t *testing.T) {
	valid := types.NewMsgAddLiquidity(testAddress(2), 1, math.NewInt(500), math.LegacyOneDec())
	require.NoError(t, valid.ValidateBasic())

	bad := *valid
	bad.PoolId = 0
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrPoolNotFound)

	bad = *valid
	bad.Amount = math.ZeroInt()
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidAmount)

	bad = *valid
	bad.ObservedPrice = math.LegacyZeroDec()
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidPrice)
}

func TestMsgRemoveLiquidityValidateBasic(t *testing.T) {
	valid := types.NewMsgRemoveLiquidity(testAddress(3), 1, math.NewInt(10))
	require.NoError(t, valid.ValidateBasic())

	bad := *valid
	bad.Shares = math.NewInt(-1)
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInsufficientShares)
}

func TestMsgBuyValidateBasic(t *testing.T) {
	valid := types.NewMsgBuy(testAddress(4), 1, math.NewInt(1000), math.ZeroInt())
	require.NoError(t, valid.ValidateBasic())

	bad := *valid
	bad.Payment = math.ZeroInt()
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidAmount)

	bad = *valid
	bad.MinTokensOut = math.NewInt(-1)
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidAmount)
}

func TestMsgSellValidateBasic(t *testing.T) {
	valid := types.NewMsgSell(testAddress(5), 1, math.NewInt(100), math.ZeroInt())
	require.NoError(t, valid.ValidateBasic())

	bad := *valid
	bad.TokensIn = math.ZeroInt()
	require.ErrorIs(t, bad.ValidateBasic(), types.ErrInvalidAmount)
}

func TestMsgUpdateParamsValidateBasic(t *testing.T) {
	msg := types.MsgUpdateParams{
		Authority: testAddress(6),
		Params:    types.DefaultParams(),
	}
	require.NoError(t, msg.ValidateBasic())

	msg.Params.PriceBoundMultiplier = math.LegacyOneDec()
	require.Error(t, msg.ValidateBasic())

	msg = types.MsgUpdateParams{Authority: "bogus", Params: types.DefaultParams()}
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)
}

func TestMsgSigners(t *testing.T) {
	creator := testAddress(7)
	msg := types.NewMsgCreatePool(creator, "uasset", "ubase",
		math.NewInt(1000), math.LegacyOneDec(), math.LegacyOneDec())

	signers := msg.GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, creator, signers[0].String())
}
