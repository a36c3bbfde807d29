package types_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/prism-markets/prism/x/liquidity/types"
)

func TestDefaultParamsAreValid(t *testing.T) {
	params := types.DefaultParams()
	require.NoError(t, params.Validate())

	require.True(t, params.MinLiquidity.Equal(math.NewInt(1000)))
	require.True(t, params.MinPurchase.Equal(math.NewInt(1000)))
	require.Equal(t, 5*time.Minute, params.PriceValidityWindow)
	require.True(t, params.MaxPriceChangePercent.Equal(math.LegacyNewDec(50)))
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *types.Params)
		valid  bool
	}{
		{name: "default", mutate: func(p *types.Params) {}, valid: true},
		{name: "zero min liquidity", mutate: func(p *types.Params) { p.MinLiquidity = math.ZeroInt() }, valid: false},
		{name: "negative min purchase", mutate: func(p *types.Params) { p.MinPurchase = math.NewInt(-1) }, valid: false},
		{name: "zero validity window", mutate: func(p *types.Params) { p.PriceValidityWindow = 0 }, valid: false},
		{name: "zero change bound", mutate: func(p *types.Params) { p.MaxPriceChangePercent = math.LegacyZeroDec() }, valid: false},
		{name: "multiplier at one", mutate: func(p *types.Params) { p.PriceBoundMultiplier = math.LegacyOneDec() }, valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := types.DefaultParams()
			tc.mutate(&params)
			err := params.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
