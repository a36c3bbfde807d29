package keeper

import (
	"context"
	"fmt"

	"github.com/prism-markets/prism/x/liquidity/types"
)

// withPoolLock executes fn while holding the pool's operation lock.
// Locks live in the KVStore so they persist across context boundaries;
// a failed transaction rolls the lock back with the rest of the state.
func (k Keeper) withPoolLock(ctx context.Context, poolID uint64, fn func() error) error {
	if err := k.acquirePoolLock(ctx, poolID); err != nil {
		return err
	}

	// Release even if fn panics
	defer k.releasePoolLock(ctx, poolID)

	return fn()
}

// acquirePoolLock attempts to acquire a pool's operation lock
func (k Keeper) acquirePoolLock(ctx context.Context, poolID uint64) error {
	store := k.getStore(ctx)
	key := OperationLockKey(poolID)

	if store.Has(key) {
		k.metrics.LockContentions.WithLabelValues(fmt.Sprintf("%d", poolID)).Inc()
		return types.ErrOperationInProgress.Wrapf("pool %d has an operation in progress", poolID)
	}

	store.Set(key, []byte{0x01})
	return nil
}

// releasePoolLock releases a pool's operation lock
func (k Keeper) releasePoolLock(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	store.Delete(OperationLockKey(poolID))
}
