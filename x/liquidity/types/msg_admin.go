package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSetPoolStatus{}
	_ sdk.Msg = &MsgAddOperator{}
	_ sdk.Msg = &MsgRemoveOperator{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgSetPoolStatus enables or disables trading on a pool. Reserves and
// share accounting persist across the transition. Operator-gated.
type MsgSetPoolStatus struct {
	Operator string `json:"operator"`
	PoolId   uint64 `json:"pool_id"`
	Active   bool   `json:"active"`
}

// Reset implements the proto.Message interface
func (msg *MsgSetPoolStatus) Reset() { *msg = MsgSetPoolStatus{} }

// String implements the proto.Message interface
func (msg *MsgSetPoolStatus) String() string {
	return fmt.Sprintf("MsgSetPoolStatus{operator: %s, pool: %d, active: %t}",
		msg.Operator, msg.PoolId, msg.Active)
}

// ProtoMessage implements the proto.Message interface
func (*MsgSetPoolStatus) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgSetPoolStatus) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgSetPoolStatus) Type() string { return "set_pool_status" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgSetPoolStatus) GetSigners() []sdk.AccAddress {
	operator, err := sdk.AccAddressFromBech32(msg.Operator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{operator}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgSetPoolStatus) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the legacy sdk.Msg interface
func (msg MsgSetPoolStatus) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Operator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid operator address: %s", err)
	}
	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrPoolNotFound, "pool id cannot be zero")
	}
	return nil
}

// MsgAddOperator grants the operator capability to an address.
// Authority-gated (governance).
type MsgAddOperator struct {
	Authority string `json:"authority"`
	Operator  string `json:"operator"`
}

// Reset implements the proto.Message interface
func (msg *MsgAddOperator) Reset() { *msg = MsgAddOperator{} }

// String implements the proto.Message interface
func (msg *MsgAddOperator) String() string {
	return fmt.Sprintf("MsgAddOperator{authority: %s, operator: %s}", msg.Authority, msg.Operator)
}

// ProtoMessage implements the proto.Message interface
func (*MsgAddOperator) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgAddOperator) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgAddOperator) Type() string { return "add_operator" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgAddOperator) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgAddOperator) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the legacy sdk.Msg interface
func (msg MsgAddOperator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Operator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid operator address: %s", err)
	}
	return nil
}

// MsgRemoveOperator revokes the operator capability from an address.
// Authority-gated (governance).
type MsgRemoveOperator struct {
	Authority string `json:"authority"`
	Operator  string `json:"operator"`
}

// Reset implements the proto.Message interface
func (msg *MsgRemoveOperator) Reset() { *msg = MsgRemoveOperator{} }

// String implements the proto.Message interface
func (msg *MsgRemoveOperator) String() string {
	return fmt.Sprintf("MsgRemoveOperator{authority: %s, operator: %s}", msg.Authority, msg.Operator)
}

// ProtoMessage implements the proto.Message interface
func (*MsgRemoveOperator) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgRemoveOperator) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgRemoveOperator) Type() string { return "remove_operator" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgRemoveOperator) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgRemoveOperator) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the legacy sdk.Msg interface
func (msg MsgRemoveOperator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Operator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid operator address: %s", err)
	}
	return nil
}

// MsgUpdateParams replaces the module parameters. Authority-gated
// (governance).
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// Reset implements the proto.Message interface
func (msg *MsgUpdateParams) Reset() { *msg = MsgUpdateParams{} }

// String implements the proto.Message interface
func (msg *MsgUpdateParams) String() string {
	return fmt.Sprintf("MsgUpdateParams{authority: %s}", msg.Authority)
}

// ProtoMessage implements the proto.Message interface
func (*MsgUpdateParams) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgUpdateParams) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgUpdateParams) Type() string { return "update_params" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the legacy sdk.Msg interface
func (msg MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return msg.Params.Validate()
}
