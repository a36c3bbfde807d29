package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/prism-markets/prism/x/liquidity/types"
)

// Keeper of the liquidity store
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        *codec.LegacyAmino
	bankKeeper types.BankKeeper

	// authority is the address allowed to manage operators and params,
	// typically the gov module account.
	authority string

	// moduleAddress holds pool reserves on the bank ledger.
	moduleAddress sdk.AccAddress

	hooks   types.LiquidityHooks
	metrics *Metrics
}

// NewKeeper creates a new liquidity Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:      key,
		cdc:           cdc,
		bankKeeper:    bankKeeper,
		authority:     authority,
		moduleAddress: authtypes.NewModuleAddress(types.ModuleName),
		metrics:       NewMetrics(),
	}
}

// GetAuthority returns the module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the module account address holding pool reserves
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddress
}

// SetHooks sets the module hooks. Panics if called more than once.
func (k *Keeper) SetHooks(h types.LiquidityHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set liquidity hooks twice")
	}
	k.hooks = h
	return k
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the liquidity module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
