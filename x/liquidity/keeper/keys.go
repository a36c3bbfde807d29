package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// PoolKeyPrefix is the prefix for pool store keys
	PoolKeyPrefix = []byte{0x01}

	// NextPoolIdKey is the key for the next pool ID counter
	NextPoolIdKey = []byte{0x02}

	// ShareKeyPrefix is the prefix for provider share position keys
	ShareKeyPrefix = []byte{0x03}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x04}

	// OperatorKeyPrefix is the prefix for operator capability grants
	OperatorKeyPrefix = []byte{0x05}

	// OperationLockKeyPrefix is the prefix for per-pool operation locks
	OperationLockKeyPrefix = []byte{0x06}

	// PoolByDenomsKeyPrefix is the prefix for indexing pools by denom pair
	PoolByDenomsKeyPrefix = []byte{0x07}
)

// PoolKey returns the store key for a pool by ID
func PoolKey(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(PoolKeyPrefix, poolIDBytes...)
}

// ShareKey returns the store key for a provider's share position
func ShareKey(poolID uint64, provider sdk.AccAddress) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	key := append(ShareKeyPrefix, poolIDBytes...)
	key = append(key, provider.Bytes()...)
	return key
}

// ShareKeyByPoolPrefix returns the prefix for all share positions in a pool
func ShareKeyByPoolPrefix(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(ShareKeyPrefix, poolIDBytes...)
}

// OperatorKey returns the store key for an operator grant
func OperatorKey(operator sdk.AccAddress) []byte {
	return append(OperatorKeyPrefix, operator.Bytes()...)
}

// OperationLockKey returns the store key for a pool's operation lock
func OperationLockKey(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(OperationLockKeyPrefix, poolIDBytes...)
}

// PoolByDenomsKey returns the index key for a pool by its denom pair.
// The asset denom is length-prefixed: denoms may themselves contain "/"
// (IBC vouchers), so a separator byte would let distinct pairs collide.
func PoolByDenomsKey(assetDenom, baseDenom string) []byte {
	key := append(PoolByDenomsKeyPrefix, byte(len(assetDenom)))
	key = append(key, assetDenom...)
	key = append(key, baseDenom...)
	return key
}
