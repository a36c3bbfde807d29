package keeper

import (
	"context"

	"github.com/prism-markets/prism/x/liquidity/types"
)

// GetParams returns the current module parameters. Falls back to
// defaults when nothing has been stored yet.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	k.cdc.MustUnmarshal(bz, &params)
	return params
}

// SetParams validates and stores the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&params)
	if err != nil {
		return err
	}
	store.Set(ParamsKey, bz)
	return nil
}
