package models

// DebitCreditIndicator marks the direction of a monetary amount on the wire.
type DebitCreditIndicator string

const (
	IndicatorCredit DebitCreditIndicator = "credit"
	IndicatorDebit  DebitCreditIndicator = "debit"
)

// Amount is the gateway's wire representation of a monetary value:
// an integer minor-unit string scaled by Exponent.
type Amount struct {
	// Value is the amount in minor units as an integer string, e.g. "1930"
	// for 19.30 GBP.
	Value string

	// CurrencyCode is the ISO 4217 alphabetic currency code.
	CurrencyCode string

	// Exponent is the number of minor-unit digits as a string, e.g. "2"
	// for GBP, "0" for JPY.
	Exponent string

	// DebitCreditIndicator is "credit" for non-negative amounts and
	// "debit" for negative ones.
	DebitCreditIndicator DebitCreditIndicator
}
