package worldpay_hpp

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ecommkit/worldpay_hpp_sdk/models"
)

// currencyExponents maps ISO 4217 alphabetic codes to their canonical
// minor-unit digit count. Codes absent from the table are rejected with
// InvalidCurrencyError.
var currencyExponents = map[string]int32{
	"AED": 2, "AUD": 2, "BRL": 2, "CAD": 2, "CHF": 2, "CNY": 2,
	"CZK": 2, "DKK": 2, "EUR": 2, "GBP": 2, "HKD": 2, "HUF": 2,
	"IDR": 2, "ILS": 2, "INR": 2, "JPY": 0, "KRW": 0, "KWD": 3,
	"MXN": 2, "MYR": 2, "NOK": 2, "NZD": 2, "PHP": 2, "PLN": 2,
	"SAR": 2, "SEK": 2, "SGD": 2, "THB": 2, "TRY": 2, "TWD": 2,
	"USD": 2, "VND": 0, "ZAR": 2,
}

// CurrencyExponent returns the minor-unit digit count for an ISO 4217
// currency code.
func CurrencyExponent(currencyCode string) (int32, error) {
	exp, ok := currencyExponents[strings.ToUpper(currencyCode)]
	if !ok {
		return 0, &InvalidCurrencyError{CurrencyCode: currencyCode}
	}
	return exp, nil
}

// EncodeAmount converts a decimal monetary value into the gateway's
// (value, exponent, currency) triple. The value is scaled by the
// currency's minor-unit count and rounded half-up; zero-exponent
// currencies (e.g. JPY) round straight to whole units. The wire value is
// always a non-negative integer string; sign is carried by the
// debit/credit indicator.
func EncodeAmount(value decimal.Decimal, currencyCode string) (*models.Amount, error) {
	exp, err := CurrencyExponent(currencyCode)
	if err != nil {
		return nil, err
	}

	indicator := models.IndicatorCredit
	if value.IsNegative() {
		indicator = models.IndicatorDebit
		value = value.Neg()
	}

	minor := value.Shift(exp).Round(0)

	return &models.Amount{
		Value:                minor.String(),
		CurrencyCode:         strings.ToUpper(currencyCode),
		Exponent:             fmt.Sprintf("%d", exp),
		DebitCreditIndicator: indicator,
	}, nil
}

// DecodeAmount converts a wire amount back into a decimal value. The
// inverse of EncodeAmount: the minor-unit string is unscaled by the wire
// exponent and negated for debit indicators.
func DecodeAmount(amount *models.Amount) (decimal.Decimal, error) {
	minor, err := decimal.NewFromString(amount.Value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("worldpay_hpp: parse amount value %q: %w", amount.Value, err)
	}

	var exp int32
	if amount.Exponent != "" {
		parsed, err := decimal.NewFromString(amount.Exponent)
		if err != nil {
			return decimal.Zero, fmt.Errorf("worldpay_hpp: parse amount exponent %q: %w", amount.Exponent, err)
		}
		exp = int32(parsed.IntPart())
	} else if exp, err = CurrencyExponent(amount.CurrencyCode); err != nil {
		return decimal.Zero, err
	}

	value := minor.Shift(-exp)
	if amount.DebitCreditIndicator == models.IndicatorDebit {
		value = value.Neg()
	}
	return value, nil
}
