package keeper

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/prism-markets/prism/x/liquidity/keeper"
	"github.com/prism-markets/prism/x/liquidity/types"
)

// GenesisTime is the fixed block time test contexts start at
var GenesisTime = time.Unix(1700000000, 0).UTC()

// Transfer records a single SendCoins call observed by the mock bank
type Transfer struct {
	From   sdk.AccAddress
	To     sdk.AccAddress
	Amount sdk.Coins
}

// MockBankKeeper is a programmable in-memory bank used by keeper tests.
// It records every transfer, can be told to fail, and can run a
// callback mid-transfer to model a hostile reentrant counterparty.
type MockBankKeeper struct {
	Transfers []Transfer

	// SendError, when set, fails every SendCoins call
	SendError error

	// OnSend, when set, runs inside SendCoins before it returns. Used to
	// model asset transfers that call back into the module.
	OnSend func(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error
}

var _ types.BankKeeper = (*MockBankKeeper)(nil)

func (m *MockBankKeeper) SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	if m.SendError != nil {
		return m.SendError
	}
	if m.OnSend != nil {
		if err := m.OnSend(ctx, from, to, amt); err != nil {
			return err
		}
	}
	m.Transfers = append(m.Transfers, Transfer{From: from, To: to, Amount: amt})
	return nil
}

func (m *MockBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	balance := sdk.NewCoin(denom, math.ZeroInt())
	for _, transfer := range m.Transfers {
		if transfer.To.Equals(addr) {
			balance = balance.Add(sdk.NewCoin(denom, transfer.Amount.AmountOf(denom)))
		}
		if transfer.From.Equals(addr) {
			out := transfer.Amount.AmountOf(denom)
			if out.LTE(balance.Amount) {
				balance.Amount = balance.Amount.Sub(out)
			} else {
				balance.Amount = math.ZeroInt()
			}
		}
	}
	return balance
}

// Authority returns the governance module address used as the test
// keeper's authority.
func Authority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

// LiquidityKeeper creates a test keeper backed by an in-memory store
// and a mock bank.
func LiquidityKeeper(t testing.TB) (*keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := &MockBankKeeper{}
	k := keeper.NewKeeper(
		types.ModuleCdc,
		storeKey,
		bank,
		Authority(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: GenesisTime}, false, log.NewNopLogger())

	k.InitGenesis(ctx, *types.DefaultGenesis())

	return k, bank, ctx
}

// TestAddr returns a deterministic bech32 test address from a seed byte
func TestAddr(seed byte) sdk.AccAddress {
	addr := make([]byte, 20)
	for i := range addr {
		addr[i] = seed
	}
	return sdk.AccAddress(addr)
}
