package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prism-markets/prism/x/liquidity/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the liquidity MsgServer
// interface for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (m msgServer) CreatePool(ctx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	poolID, err := m.Keeper.CreatePool(ctx, creator, msg.AssetDenom, msg.BaseDenom, msg.AssetAmount, msg.InitialPrice, msg.Slope)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreatePoolResponse{PoolId: poolID}, nil
}

func (m msgServer) AddLiquidity(ctx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	shares, err := m.Keeper.AddLiquidity(ctx, provider, msg.PoolId, msg.Amount, msg.ObservedPrice)
	if err != nil {
		return nil, err
	}

	return &types.MsgAddLiquidityResponse{Shares: shares}, nil
}

func (m msgServer) RemoveLiquidity(ctx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	amount, err := m.Keeper.RemoveLiquidity(ctx, provider, msg.PoolId, msg.Shares)
	if err != nil {
		return nil, err
	}

	return &types.MsgRemoveLiquidityResponse{Amount: amount}, nil
}

func (m msgServer) Buy(ctx context.Context, msg *types.MsgBuy) (*types.MsgBuyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	tokensOut, price, err := m.Keeper.Buy(ctx, buyer, msg.PoolId, msg.Payment, msg.MinTokensOut)
	if err != nil {
		return nil, err
	}

	return &types.MsgBuyResponse{TokensOut: tokensOut, Price: price}, nil
}

func (m msgServer) Sell(ctx context.Context, msg *types.MsgSell) (*types.MsgSellResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	paymentOut, price, err := m.Keeper.Sell(ctx, seller, msg.PoolId, msg.TokensIn, msg.MinPaymentOut)
	if err != nil {
		return nil, err
	}

	return &types.MsgSellResponse{PaymentOut: paymentOut, Price: price}, nil
}

func (m msgServer) SetPoolStatus(ctx context.Context, msg *types.MsgSetPoolStatus) (*types.MsgSetPoolStatusResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	operator, err := sdk.AccAddressFromBech32(msg.Operator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	if err := m.Keeper.SetPoolStatus(ctx, operator, msg.PoolId, msg.Active); err != nil {
		return nil, err
	}

	return &types.MsgSetPoolStatusResponse{}, nil
}

func (m msgServer) AddOperator(ctx context.Context, msg *types.MsgAddOperator) (*types.MsgAddOperatorResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Authority != m.authority {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", m.authority, msg.Authority)
	}

	operator, err := sdk.AccAddressFromBech32(msg.Operator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	m.Keeper.AddOperator(ctx, operator)
	return &types.MsgAddOperatorResponse{}, nil
}

func (m msgServer) RemoveOperator(ctx context.Context, msg *types.MsgRemoveOperator) (*types.MsgRemoveOperatorResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Authority != m.authority {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", m.authority, msg.Authority)
	}

	operator, err := sdk.AccAddressFromBech32(msg.Operator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	m.Keeper.RemoveOperator(ctx, operator)
	return &types.MsgRemoveOperatorResponse{}, nil
}

func (m msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Authority != m.authority {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", m.authority, msg.Authority)
	}

	if err := m.Keeper.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
