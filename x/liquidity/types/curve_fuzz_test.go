package types_test

import (
	"testing"

	"cosmossdk.io/math"

	"github.com/prism-markets/prism/x/liquidity/types"
)

// FuzzBuyPrice checks that any accepted buy price stays within the curve
// bounds and that truncated output never overpays the buyer.
func FuzzBuyPrice(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(1000))
	f.Add(int64(1_000_000_000_000))
	f.Add(int64(-1))
	f.Add(int64(0))

	curve := types.NewCurveParams(
		math.LegacyOneDec(),
		math.LegacyOneDec(),
		math.LegacyNewDec(10),
	)

	f.Fuzz(func(t *testing.T, payment int64) {
		price, err := curve.BuyPrice(math.NewInt(payment))
		if err != nil {
			return
		}

		if price.LT(curve.MinPrice) || price.GT(curve.MaxPrice) {
			t.Fatalf("accepted price %s outside bounds [%s, %s]", price, curve.MinPrice, curve.MaxPrice)
		}

		// tokensOut * price <= payment: truncation favors the pool
		paymentInt := math.NewInt(payment)
		tokensOut := math.LegacyNewDecFromInt(paymentInt).Quo(price).TruncateInt()
		cost := price.MulInt(tokensOut)
		if cost.GT(math.LegacyNewDecFromInt(paymentInt)) {
			t.Fatalf("tokens out %s at price %s cost %s, exceeds payment %s",
				tokensOut, price, cost, paymentInt)
		}
	})
}

// FuzzSellPrice checks that oversized sells are rejected explicitly and
// accepted prices stay within bounds.
func FuzzSellPrice(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(900_000_000_000_000_000))
	f.Add(int64(-7))

	curve := types.NewCurveParams(
		math.LegacyOneDec(),
		math.LegacyOneDec(),
		math.LegacyNewDec(10),
	)

	f.Fuzz(func(t *testing.T, tokens int64) {
		price, err := curve.SellPrice(math.NewInt(tokens))
		if err != nil {
			return
		}

		if price.LT(curve.MinPrice) || price.GT(curve.MaxPrice) {
			t.Fatalf("accepted sell price %s outside bounds [%s, %s]", price, curve.MinPrice, curve.MaxPrice)
		}
		if price.IsNegative() {
			t.Fatalf("sell price went negative: %s", price)
		}
	})
}
