package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prism-markets/prism/x/liquidity/types"
)

// RegisterInvariants registers the liquidity module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "price-bounds", PriceBoundsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-state", PoolStateInvariant(k))
}

// AllInvariants runs all invariants of the liquidity module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if msg, broken := ShareSupplyInvariant(k)(ctx); broken {
			return msg, broken
		}
		if msg, broken := PriceBoundsInvariant(k)(ctx); broken {
			return msg, broken
		}
		return PoolStateInvariant(k)(ctx)
	}
}

// ShareSupplyInvariant checks that each pool's share records sum exactly
// to its total shares.
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, pool := range k.GetAllPools(ctx) {
			sum := math.ZeroInt()
			k.IterateShares(ctx, pool.Id, func(_ sdk.AccAddress, shares math.Int) bool {
				sum = sum.Add(shares)
				return false
			})

			if !sum.Equal(pool.TotalShares) {
				return sdk.FormatInvariant(types.ModuleName, "share-supply",
					fmt.Sprintf("pool %d share records sum to %s, total shares are %s",
						pool.Id, sum, pool.TotalShares)), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "share-supply",
			"all pool share records sum to total shares"), false
	}
}

// PriceBoundsInvariant checks that each pool's recorded price stays
// within its curve bounds.
func PriceBoundsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, pool := range k.GetAllPools(ctx) {
			if pool.LastPrice.LT(pool.Curve.MinPrice) || pool.LastPrice.GT(pool.Curve.MaxPrice) {
				return sdk.FormatInvariant(types.ModuleName, "price-bounds",
					fmt.Sprintf("pool %d price %s outside bounds [%s, %s]",
						pool.Id, pool.LastPrice, pool.Curve.MinPrice, pool.Curve.MaxPrice)), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "price-bounds",
			"all pool prices within curve bounds"), false
	}
}

// PoolStateInvariant checks reserve and share consistency: reserves are
// never negative, active pools hold positive shares and reserve, and no
// pool carries shares against a zero reserve.
func PoolStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, pool := range k.GetAllPools(ctx) {
			if err := pool.Validate(); err != nil {
				return sdk.FormatInvariant(types.ModuleName, "pool-state",
					fmt.Sprintf("pool %d state invalid: %s", pool.Id, err)), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "pool-state",
			"all pool states valid"), false
	}
}
