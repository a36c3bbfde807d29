package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePool{}

// MsgCreatePool defines a message to create a new bonding-curve pool.
// Pool creation is an operator-gated operation.
type MsgCreatePool struct {
	Creator      string         `json:"creator"`
	AssetDenom   string         `json:"asset_denom"`
	BaseDenom    string         `json:"base_denom"`
	AssetAmount  math.Int       `json:"asset_amount"`
	InitialPrice math.LegacyDec `json:"initial_price"`
	Slope        math.LegacyDec `json:"slope"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance
func NewMsgCreatePool(creator, assetDenom, baseDenom string, assetAmount math.Int, initialPrice, slope math.LegacyDec) *MsgCreatePool {
	return &MsgCreatePool{
		Creator:      creator,
		AssetDenom:   assetDenom,
		BaseDenom:    baseDenom,
		AssetAmount:  assetAmount,
		InitialPrice: initialPrice,
		Slope:        slope,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgCreatePool) Reset() { *msg = MsgCreatePool{} }

// String implements the proto.Message interface
func (msg *MsgCreatePool) String() string {
	return fmt.Sprintf("MsgCreatePool{creator: %s, asset: %s, base: %s, amount: %s}",
		msg.Creator, msg.AssetDenom, msg.BaseDenom, msg.AssetAmount)
}

// ProtoMessage implements the proto.Message interface
func (*MsgCreatePool) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgCreatePool) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgCreatePool) Type() string { return "create_pool" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgCreatePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the legacy sdk.Msg interface
func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.AssetDenom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidDenom, "invalid asset denom: %s", err)
	}
	if err := sdk.ValidateDenom(msg.BaseDenom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidDenom, "invalid base denom: %s", err)
	}
	if msg.AssetDenom == msg.BaseDenom {
		return sdkerrors.Wrap(ErrInvalidDenom, "asset and base denom must differ")
	}
	if msg.AssetAmount.IsNil() || !msg.AssetAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "asset amount must be positive")
	}
	if msg.InitialPrice.IsNil() || !msg.InitialPrice.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidPrice, "initial price must be positive")
	}
	if msg.Slope.IsNil() || !msg.Slope.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidPrice, "slope must be positive")
	}
	return nil
}
