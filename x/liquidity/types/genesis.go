package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the liquidity module's genesis state.
type GenesisState struct {
	Params     Params        `json:"params"`
	Pools      []Pool        `json:"pools"`
	Shares     []ShareRecord `json:"shares"`
	Operators  []string      `json:"operators"`
	NextPoolId uint64        `json:"next_pool_id"`
}

// DefaultGenesis returns the default genesis state: no pools, no
// operators, default parameters.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Pools:      []Pool{},
		Shares:     []ShareRecord{},
		Operators:  []string{},
		NextPoolId: 1,
	}
}

// Validate performs basic validation of the genesis state. Share records
// must reference existing pools and sum to each pool's total shares.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	poolIDs := make(map[uint64]bool, len(gs.Pools))
	for _, pool := range gs.Pools {
		if poolIDs[pool.Id] {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		poolIDs[pool.Id] = true
		if pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool id %d not below next pool id %d", pool.Id, gs.NextPoolId)
		}
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("invalid pool %d: %w", pool.Id, err)
		}
	}

	shareSums := make(map[uint64]math.Int, len(gs.Pools))
	seenShares := make(map[string]bool, len(gs.Shares))
	for _, record := range gs.Shares {
		if !poolIDs[record.PoolId] {
			return fmt.Errorf("share record references unknown pool %d", record.PoolId)
		}
		if _, err := sdk.AccAddressFromBech32(record.Provider); err != nil {
			return fmt.Errorf("invalid provider address %q: %w", record.Provider, err)
		}
		if record.Shares.IsNil() || !record.Shares.IsPositive() {
			return fmt.Errorf("share record for pool %d must hold positive shares", record.PoolId)
		}
		dedupe := fmt.Sprintf("%d/%s", record.PoolId, record.Provider)
		if seenShares[dedupe] {
			return fmt.Errorf("duplicate share record for provider %s in pool %d", record.Provider, record.PoolId)
		}
		seenShares[dedupe] = true

		sum, ok := shareSums[record.PoolId]
		if !ok {
			sum = math.ZeroInt()
		}
		shareSums[record.PoolId] = sum.Add(record.Shares)
	}

	for _, pool := range gs.Pools {
		sum, ok := shareSums[pool.Id]
		if !ok {
			sum = math.ZeroInt()
		}
		if !sum.Equal(pool.TotalShares) {
			return fmt.Errorf("pool %d share records sum to %s, total shares are %s",
				pool.Id, sum, pool.TotalShares)
		}
	}

	seenOperators := make(map[string]bool, len(gs.Operators))
	for _, operator := range gs.Operators {
		if _, err := sdk.AccAddressFromBech32(operator); err != nil {
			return fmt.Errorf("invalid operator address %q: %w", operator, err)
		}
		if seenOperators[operator] {
			return fmt.Errorf("duplicate operator %s", operator)
		}
		seenOperators[operator] = true
	}

	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id cannot be zero")
	}

	return nil
}
