package models

import "github.com/shopspring/decimal"

// PaymentData is what the merchant's page-rendering layer needs to send
// the shopper to the gateway-hosted payment page.
type PaymentData struct {
	// PostURL is the gateway redirect URL.
	PostURL string

	// Parameters carries country, language, and the merchant result-page
	// URLs, plus any query parameters the gateway put on the redirect URL.
	Parameters map[string]string
}

// RedirectAuthoriseResult is the validated outcome of a redirect callback.
// It is consumed once to finalize a transaction and is not persisted here.
type RedirectAuthoriseResult struct {
	OrderCode       string
	OrderKey        string
	PaymentStatus   AuthorisedStatus
	Pending         bool
	PaymentAmount   decimal.Decimal
	PaymentCurrency string
	SaveCard        bool
}

// AuthorisationRecord is handed to the caller's transaction recorder when
// a redirect authorization completes.
type AuthorisationRecord struct {
	OrderCode     string
	MerchantCode  string
	Amount        decimal.Decimal
	Currency      string
	Pending       bool
	SaveCard      bool
	PaymentStatus AuthorisedStatus
}
