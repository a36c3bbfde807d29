package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSell{}

// MsgSell defines a message to sell the pool asset for base currency at
// the curve price. MinPaymentOut is the caller's slippage floor.
type MsgSell struct {
	Seller        string   `json:"seller"`
	PoolId        uint64   `json:"pool_id"`
	TokensIn      math.Int `json:"tokens_in"`
	MinPaymentOut math.Int `json:"min_payment_out"`
}

// NewMsgSell creates a new MsgSell instance
func NewMsgSell(seller string, poolID uint64, tokensIn, minPaymentOut math.Int) *MsgSell {
	return &MsgSell{
		Seller:        seller,
		PoolId:        poolID,
		TokensIn:      tokensIn,
		MinPaymentOut: minPaymentOut,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgSell) Reset() { *msg = MsgSell{} }

// String implements the proto.Message interface
func (msg *MsgSell) String() string {
	return fmt.Sprintf("MsgSell{seller: %s, pool: %d, tokens_in: %s}",
		msg.Seller, msg.PoolId, msg.TokensIn)
}

// ProtoMessage implements the proto.Message interface
func (*MsgSell) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgSell) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgSell) Type() string { return "sell" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgSell) GetSigners() []sdk.AccAddress {
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{seller}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgSell) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the legacy sdk.Msg interface
func (msg MsgSell) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid seller address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrPoolNotFound, "pool id cannot be zero")
	}
	if msg.TokensIn.IsNil() || !msg.TokensIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "tokens in must be positive")
	}
	if msg.MinPaymentOut.IsNil() || msg.MinPaymentOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min payment out cannot be negative")
	}
	return nil
}
