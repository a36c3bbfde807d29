package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the server API for the liquidity module's Msg service.
type MsgServer interface {
	// CreatePool opens a new bonding-curve pool seeded with asset reserve.
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	// AddLiquidity deposits asset into a pool for proportional shares.
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	// RemoveLiquidity burns shares for a proportional slice of the reserve.
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	// Buy purchases the pool asset with base currency at the curve price.
	Buy(context.Context, *MsgBuy) (*MsgBuyResponse, error)
	// Sell sells the pool asset for base currency at the curve price.
	Sell(context.Context, *MsgSell) (*MsgSellResponse, error)
	// SetPoolStatus enables or disables trading on a pool.
	SetPoolStatus(context.Context, *MsgSetPoolStatus) (*MsgSetPoolStatusResponse, error)
	// AddOperator grants the operator capability.
	AddOperator(context.Context, *MsgAddOperator) (*MsgAddOperatorResponse, error)
	// RemoveOperator revokes the operator capability.
	RemoveOperator(context.Context, *MsgRemoveOperator) (*MsgRemoveOperatorResponse, error)
	// UpdateParams replaces the module parameters.
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgCreatePoolResponse is the response for MsgCreatePool.
type MsgCreatePoolResponse struct {
	PoolId uint64 `json:"pool_id"`
}

// MsgAddLiquidityResponse is the response for MsgAddLiquidity.
type MsgAddLiquidityResponse struct {
	Shares math.Int `json:"shares"`
}

// MsgRemoveLiquidityResponse is the response for MsgRemoveLiquidity.
type MsgRemoveLiquidityResponse struct {
	Amount math.Int `json:"amount"`
}

// MsgBuyResponse is the response for MsgBuy.
type MsgBuyResponse struct {
	TokensOut math.Int       `json:"tokens_out"`
	Price     math.LegacyDec `json:"price"`
}

// MsgSellResponse is the response for MsgSell.
type MsgSellResponse struct {
	PaymentOut math.Int       `json:"payment_out"`
	Price      math.LegacyDec `json:"price"`
}

// MsgSetPoolStatusResponse is the response for MsgSetPoolStatus.
type MsgSetPoolStatusResponse struct{}

// MsgAddOperatorResponse is the response for MsgAddOperator.
type MsgAddOperatorResponse struct{}

// MsgRemoveOperatorResponse is the response for MsgRemoveOperator.
type MsgRemoveOperatorResponse struct{}

// MsgUpdateParamsResponse is the response for MsgUpdateParams.
type MsgUpdateParamsResponse struct{}
