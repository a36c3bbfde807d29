package types

import (
	"cosmossdk.io/errors"
)

// Liquidity module sentinel errors
var (
	ErrInvalidAmount         = errors.Register(ModuleName, 1, "invalid amount")
	ErrPriceOutOfBounds      = errors.Register(ModuleName, 2, "price outside curve bounds")
	ErrSlippageExceeded      = errors.Register(ModuleName, 3, "output below slippage floor")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 4, "insufficient liquidity in pool")
	ErrStalePrice            = errors.Register(ModuleName, 5, "price sample older than validity window")
	ErrPriceChangeTooBig     = errors.Register(ModuleName, 6, "price change exceeds anomaly bound")
	ErrUnauthorized          = errors.Register(ModuleName, 7, "operator capability required")
	ErrPoolNotFound          = errors.Register(ModuleName, 8, "pool not found")
	ErrPoolAlreadyExists     = errors.Register(ModuleName, 9, "pool already exists")
	ErrPoolInactive          = errors.Register(ModuleName, 10, "pool is not active")
	ErrOperationInProgress   = errors.Register(ModuleName, 11, "pool operation already in progress")
	ErrInvalidPoolState      = errors.Register(ModuleName, 12, "invalid pool state")
	ErrInvalidAddress        = errors.Register(ModuleName, 13, "invalid address")
	ErrInvalidDenom          = errors.Register(ModuleName, 14, "invalid denomination")
	ErrInvalidPrice          = errors.Register(ModuleName, 15, "invalid price")
	ErrInsufficientShares    = errors.Register(ModuleName, 16, "insufficient liquidity shares")
)
