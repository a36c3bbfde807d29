package types

// Event types emitted by the liquidity module, consumed by off-chain
// indexers and dashboards.
const (
	EventTypePoolCreated       = "pool_created"
	EventTypeLiquidityAdded    = "liquidity_added"
	EventTypeLiquidityRemoved  = "liquidity_removed"
	EventTypePriceUpdated      = "price_updated"
	EventTypeAnomalyDetected   = "anomaly_detected"
	EventTypeTokensPurchased   = "tokens_purchased"
	EventTypeTokensSold        = "tokens_sold"
	EventTypePoolStatusChanged = "pool_status_changed"
	EventTypeOperatorAdded     = "operator_added"
	EventTypeOperatorRemoved   = "operator_removed"
)

// Event attribute keys
const (
	AttributeKeyPoolId     = "pool_id"
	AttributeKeyProvider   = "provider"
	AttributeKeyAmount     = "amount"
	AttributeKeyShares     = "shares"
	AttributeKeyPrice      = "price"
	AttributeKeyTimestamp  = "timestamp"
	AttributeKeyOldPrice   = "old_price"
	AttributeKeyNewPrice   = "new_price"
	AttributeKeyBuyer      = "buyer"
	AttributeKeySeller     = "seller"
	AttributeKeyPaymentIn  = "payment_in"
	AttributeKeyTokensOut  = "tokens_out"
	AttributeKeyTokensIn   = "tokens_in"
	AttributeKeyPaymentOut = "payment_out"
	AttributeKeyActive     = "active"
	AttributeKeyOperator   = "operator"
	AttributeKeyAuthority  = "authority"
)
