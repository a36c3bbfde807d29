package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgRemoveLiquidity{}

// MsgRemoveLiquidity defines a message to burn ownership shares in
// exchange for the proportional slice of the pool's asset reserve.
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	Shares   math.Int `json:"shares"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider string, poolID uint64, shares math.Int) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider: provider,
		PoolId:   poolID,
		Shares:   shares,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgRemoveLiquidity) Reset() { *msg = MsgRemoveLiquidity{} }

// String implements the proto.Message interface
func (msg *MsgRemoveLiquidity) String() string {
	return fmt.Sprintf("MsgRemoveLiquidity{provider: %s, pool: %d, shares: %s}",
		msg.Provider, msg.PoolId, msg.Shares)
}

// ProtoMessage implements the proto.Message interface
func (*MsgRemoveLiquidity) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string { return "remove_liquidity" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the legacy sdk.Msg interface
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrPoolNotFound, "pool id cannot be zero")
	}
	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrInsufficientShares, "shares must be positive")
	}
	return nil
}
