package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the module's message types on the
// given amino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePool{}, "liquidity/MsgCreatePool", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "liquidity/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "liquidity/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgBuy{}, "liquidity/MsgBuy", nil)
	cdc.RegisterConcrete(&MsgSell{}, "liquidity/MsgSell", nil)
	cdc.RegisterConcrete(&MsgSetPoolStatus{}, "liquidity/MsgSetPoolStatus", nil)
	cdc.RegisterConcrete(&MsgAddOperator{}, "liquidity/MsgAddOperator", nil)
	cdc.RegisterConcrete(&MsgRemoveOperator{}, "liquidity/MsgRemoveOperator", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "liquidity/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the module's message implementations with
// the interface registry.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreatePool{},
		&MsgAddLiquidity{},
		&MsgRemoveLiquidity{},
		&MsgBuy{},
		&MsgSell{},
		&MsgSetPoolStatus{},
		&MsgAddOperator{},
		&MsgRemoveOperator{},
		&MsgUpdateParams{},
	)
}

// ModuleCdc is the module-wide amino codec. It marshals both message sign
// bytes and the module's store values.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	sdk.RegisterLegacyAminoCodec(ModuleCdc)
}
