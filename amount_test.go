package worldpay_hpp_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	worldpay "github.com/ecommkit/worldpay_hpp_sdk"
	"github.com/ecommkit/worldpay_hpp_sdk/models"
)

func TestEncodeAmountGBP(t *testing.T) {
	amount, err := worldpay.EncodeAmount(decimal.RequireFromString("19.3"), "GBP")
	require.NoError(t, err)

	assert.Equal(t, "1930", amount.Value)
	assert.Equal(t, "GBP", amount.CurrencyCode)
	assert.Equal(t, "2", amount.Exponent)
	assert.Equal(t, models.IndicatorCredit, amount.DebitCreditIndicator)
}

func TestEncodeAmountZeroExponentCurrency(t *testing.T) {
	amount, err := worldpay.EncodeAmount(decimal.NewFromInt(8500), "JPY")
	require.NoError(t, err)

	assert.Equal(t, "8500", amount.Value)
	assert.Equal(t, "0", amount.Exponent)
}

func TestEncodeAmountRoundsToMinorUnits(t *testing.T) {
	amount, err := worldpay.EncodeAmount(decimal.RequireFromString("10.005"), "USD")
	require.NoError(t, err)

	assert.Equal(t, "1001", amount.Value)
}

func TestEncodeAmountNegativeUsesDebitIndicator(t *testing.T) {
	amount, err := worldpay.EncodeAmount(decimal.RequireFromString("-5.25"), "EUR")
	require.NoError(t, err)

	assert.Equal(t, "525", amount.Value)
	assert.Equal(t, models.IndicatorDebit, amount.DebitCreditIndicator)
}

func TestEncodeAmountUnknownCurrency(t *testing.T) {
	_, err := worldpay.EncodeAmount(decimal.NewFromInt(1), "XXX")

	var currencyErr *worldpay.InvalidCurrencyError
	require.ErrorAs(t, err, &currencyErr)
	assert.Equal(t, "XXX", currencyErr.CurrencyCode)
}

func TestAmountRoundTrip(t *testing.T) {
	tests := []struct {
		value    string
		currency string
		want     string
	}{
		{"19.3", "GBP", "19.3"},
		{"8500", "JPY", "8500"},
		{"0", "USD", "0"},
		{"1234.567", "KWD", "1234.567"},
		{"-42.42", "EUR", "-42.42"},
		{"10.005", "USD", "10.01"},
	}

	for _, tc := range tests {
		t.Run(tc.currency+"/"+tc.value, func(t *testing.T) {
			encoded, err := worldpay.EncodeAmount(decimal.RequireFromString(tc.value), tc.currency)
			require.NoError(t, err)

			decoded, err := worldpay.DecodeAmount(encoded)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(decoded),
				"want %s, got %s", tc.want, decoded)
		})
	}
}

func TestDecodeAmountFallsBackToCurrencyExponent(t *testing.T) {
	decoded, err := worldpay.DecodeAmount(&models.Amount{Value: "1930", CurrencyCode: "GBP"})
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("19.30").Equal(decoded))
}

func TestDecodeAmountDebit(t *testing.T) {
	decoded, err := worldpay.DecodeAmount(&models.Amount{
		Value:                "525",
		CurrencyCode:         "EUR",
		Exponent:             "2",
		DebitCreditIndicator: models.IndicatorDebit,
	})
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("-5.25").Equal(decoded))
}
