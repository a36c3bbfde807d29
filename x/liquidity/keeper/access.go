package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prism-markets/prism/x/liquidity/types"
)

// IsOperator reports whether the address holds the operator capability
func (k Keeper) IsOperator(ctx context.Context, addr sdk.AccAddress) bool {
	store := k.getStore(ctx)
	return store.Has(OperatorKey(addr))
}

// AddOperator grants the operator capability. Granting an existing
// operator again is a no-op.
func (k Keeper) AddOperator(ctx context.Context, operator sdk.AccAddress) {
	store := k.getStore(ctx)
	store.Set(OperatorKey(operator), []byte{0x01})

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOperatorAdded,
			sdk.NewAttribute(types.AttributeKeyOperator, operator.String()),
		),
	)
}

// RemoveOperator revokes the operator capability. Revoking an address
// that never held it is a no-op.
func (k Keeper) RemoveOperator(ctx context.Context, operator sdk.AccAddress) {
	store := k.getStore(ctx)
	store.Delete(OperatorKey(operator))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOperatorRemoved,
			sdk.NewAttribute(types.AttributeKeyOperator, operator.String()),
		),
	)
}

// GetOperators returns all addresses holding the operator capability
func (k Keeper) GetOperators(ctx context.Context) []string {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, OperatorKeyPrefix)
	defer iterator.Close()

	var operators []string
	for ; iterator.Valid(); iterator.Next() {
		addr := sdk.AccAddress(iterator.Key()[len(OperatorKeyPrefix):])
		operators = append(operators, addr.String())
	}
	return operators
}

// requireOperator returns ErrUnauthorized unless the address holds the
// operator capability.
func (k Keeper) requireOperator(ctx context.Context, addr sdk.AccAddress) error {
	if !k.IsOperator(ctx, addr) {
		return types.ErrUnauthorized.Wrapf("address %s is not an operator", addr)
	}
	return nil
}
