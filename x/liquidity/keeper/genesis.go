package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prism-markets/prism/x/liquidity/types"
)

// InitGenesis initializes the liquidity module state from genesis
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	for _, pool := range genState.Pools {
		k.SetPool(ctx, pool)

		store := k.getStore(ctx)
		store.Set(PoolByDenomsKey(pool.AssetDenom, pool.BaseDenom), PoolKey(pool.Id))
	}

	for _, record := range genState.Shares {
		provider := sdk.MustAccAddressFromBech32(record.Provider)
		k.setShares(ctx, record.PoolId, provider, record.Shares)
	}

	for _, operator := range genState.Operators {
		addr := sdk.MustAccAddressFromBech32(operator)
		store := k.getStore(ctx)
		store.Set(OperatorKey(addr), []byte{0x01})
	}

	k.setNextPoolID(ctx, genState.NextPoolId)
}

// ExportGenesis exports the liquidity module state for genesis
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	pools := k.GetAllPools(ctx)
	if pools == nil {
		pools = []types.Pool{}
	}

	shares := []types.ShareRecord{}
	for _, pool := range pools {
		k.IterateShares(ctx, pool.Id, func(provider sdk.AccAddress, amount math.Int) bool {
			shares = append(shares, types.ShareRecord{
				PoolId:   pool.Id,
				Provider: provider.String(),
				Shares:   amount,
			})
			return false
		})
	}

	operators := k.GetOperators(ctx)
	if operators == nil {
		operators = []string{}
	}

	return &types.GenesisState{
		Params:     k.GetParams(ctx),
		Pools:      pools,
		Shares:     shares,
		Operators:  operators,
		NextPoolId: k.GetNextPoolID(ctx),
	}
}
