package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgBuy{}

// MsgBuy defines a message to buy the pool asset with base currency at the
// curve price. MinTokensOut is the caller's slippage floor.
type MsgBuy struct {
	Buyer        string   `json:"buyer"`
	PoolId       uint64   `json:"pool_id"`
	Payment      math.Int `json:"payment"`
	MinTokensOut math.Int `json:"min_tokens_out"`
}

// NewMsgBuy creates a new MsgBuy instance
func NewMsgBuy(buyer string, poolID uint64, payment, minTokensOut math.Int) *MsgBuy {
	return &MsgBuy{
		Buyer:        buyer,
		PoolId:       poolID,
		Payment:      payment,
		MinTokensOut: minTokensOut,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgBuy) Reset() { *msg = MsgBuy{} }

// String implements the proto.Message interface
func (msg *MsgBuy) String() string {
	return fmt.Sprintf("MsgBuy{buyer: %s, pool: %d, payment: %s}",
		msg.Buyer, msg.PoolId, msg.Payment)
}

// ProtoMessage implements the proto.Message interface
func (*MsgBuy) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgBuy) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgBuy) Type() string { return "buy" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgBuy) GetSigners() []sdk.AccAddress {
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{buyer}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgBuy) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the legacy sdk.Msg interface
func (msg MsgBuy) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid buyer address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrPoolNotFound, "pool id cannot be zero")
	}
	if msg.Payment.IsNil() || !msg.Payment.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "payment must be positive")
	}
	if msg.MinTokensOut.IsNil() || msg.MinTokensOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min tokens out cannot be negative")
	}
	return nil
}
