package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/prism-markets/prism/x/liquidity/types"
)

func testCurve(t *testing.T) types.CurveParams {
	t.Helper()
	curve := types.NewCurveParams(
		math.LegacyOneDec(),
		math.LegacyOneDec(),
		math.LegacyNewDec(10),
	)
	require.NoError(t, curve.Validate())
	return curve
}

func TestCurveBounds(t *testing.T) {
	curve := testCurve(t)

	require.True(t, curve.MinPrice.Equal(math.LegacyMustNewDecFromStr("0.1")))
	require.True(t, curve.MaxPrice.Equal(math.LegacyNewDec(10)))
}

func TestBuyPrice(t *testing.T) {
	curve := testCurve(t)

	// slope contribution is input/1e18 on top of base price 1
	price, err := curve.BuyPrice(math.NewIntWithDecimal(1, 18))
	require.NoError(t, err)
	require.True(t, price.Equal(math.LegacyNewDec(2)))

	price, err = curve.BuyPrice(math.NewInt(1))
	require.NoError(t, err)
	require.True(t, price.Equal(math.LegacyMustNewDecFromStr("1.000000000000000001")))
}

func TestBuyPriceRejectsNonPositiveInput(t *testing.T) {
	curve := testCurve(t)

	_, err := curve.BuyPrice(math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = curve.BuyPrice(math.NewInt(-5))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestBuyPriceOutOfBounds(t *testing.T) {
	curve := testCurve(t)

	// input of 10e18 pushes price to 11, above the max of 10
	_, err := curve.BuyPrice(math.NewIntWithDecimal(10, 18))
	require.ErrorIs(t, err, types.ErrPriceOutOfBounds)
}

func TestSellPrice(t *testing.T) {
	curve := testCurve(t)

	price, err := curve.SellPrice(math.NewIntWithDecimal(5, 17))
	require.NoError(t, err)
	require.True(t, price.Equal(math.LegacyMustNewDecFromStr("0.5")))
}

func TestSellPriceBelowFloorRejected(t *testing.T) {
	curve := testCurve(t)

	// large enough to push the curve below MinPrice, and even negative;
	// must fail explicitly instead of wrapping around
	_, err := curve.SellPrice(math.NewIntWithDecimal(2, 18))
	require.ErrorIs(t, err, types.ErrPriceOutOfBounds)

	_, err = curve.SellPrice(math.NewIntWithDecimal(95, 16))
	require.ErrorIs(t, err, types.ErrPriceOutOfBounds)
}

func TestCurveMonotonic(t *testing.T) {
	curve := testCurve(t)

	prev := math.LegacyZeroDec()
	for _, input := range []int64{1, 1000, 1_000_000, 1_000_000_000} {
		price, err := curve.BuyPrice(math.NewInt(input))
		require.NoError(t, err)
		require.True(t, price.GT(prev), "buy price must increase with input")
		prev = price
	}
}

func TestCurveValidate(t *testing.T) {
	tests := []struct {
		name  string
		curve types.CurveParams
		valid bool
	}{
		{
			name:  "valid",
			curve: types.NewCurveParams(math.LegacyOneDec(), math.LegacyOneDec(), math.LegacyNewDec(10)),
			valid: true,
		},
		{
			name:  "zero base price",
			curve: types.NewCurveParams(math.LegacyZeroDec(), math.LegacyOneDec(), math.LegacyNewDec(10)),
			valid: false,
		},
		{
			name:  "negative slope",
			curve: types.NewCurveParams(math.LegacyOneDec(), math.LegacyNewDec(-1), math.LegacyNewDec(10)),
			valid: false,
		},
		{
			name:  "inverted bounds",
			curve: types.NewCurveParams(math.LegacyOneDec(), math.LegacyOneDec(), math.LegacyMustNewDecFromStr("0.5")),
			valid: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.curve.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
