package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAddLiquidity{}

// MsgAddLiquidity defines a message to deposit asset into a pool in
// exchange for proportional ownership shares. ObservedPrice is the
// caller's view of the current price, validated by the price guard.
type MsgAddLiquidity struct {
	Provider      string         `json:"provider"`
	PoolId        uint64         `json:"pool_id"`
	Amount        math.Int       `json:"amount"`
	ObservedPrice math.LegacyDec `json:"observed_price"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider string, poolID uint64, amount math.Int, observedPrice math.LegacyDec) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider:      provider,
		PoolId:        poolID,
		Amount:        amount,
		ObservedPrice: observedPrice,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgAddLiquidity) Reset() { *msg = MsgAddLiquidity{} }

// String implements the proto.Message interface
func (msg *MsgAddLiquidity) String() string {
	return fmt.Sprintf("MsgAddLiquidity{provider: %s, pool: %d, amount: %s}",
		msg.Provider, msg.PoolId, msg.Amount)
}

// ProtoMessage implements the proto.Message interface
func (*MsgAddLiquidity) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgAddLiquidity) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgAddLiquidity) Type() string { return "add_liquidity" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the legacy sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrPoolNotFound, "pool id cannot be zero")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "deposit amount must be positive")
	}
	if msg.ObservedPrice.IsNil() || !msg.ObservedPrice.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidPrice, "observed price must be positive")
	}
	return nil
}
