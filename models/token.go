package models

// TokenRequest asks the gateway to store the payment method used on an
// order as a reusable token.
type TokenRequest struct {
	TokenEventReference string
	TokenReason         string

	// MerchantToken scopes the token to the merchant instead of the
	// authenticated shopper.
	MerchantToken bool
}

// TokenScope returns the wire scope attribute for the request.
func (t *TokenRequest) TokenScope() string {
	if t.MerchantToken {
		return "merchant"
	}
	return "shopper"
}

// TokenDetails is the stored-token metadata inside a token reply.
type TokenDetails struct {
	TokenReason          string
	TokenEventReference  string
	TokenEvent           string
	PaymentTokenID       string
	PaymentTokenExpiry   *Date
	ReportingTokenID     string
	ReportingTokenExpiry *Date
}

// TokenReply is the parsed token element of a reply envelope. Several
// information kinds may co-occur on one token and all are applied.
type TokenReply struct {
	AuthenticatedShopperID string
	TokenEventReference    string
	TokenReason            string
	TokenDetails           *TokenDetails
	PaymentInstrument      *CardPayment
	PaypalDetails          string
	Error                  *ErrorDetail
}

// UpdateTokenReply acknowledges a token update.
type UpdateTokenReply struct {
	PaymentTokenID string
}

// DeleteTokenReply acknowledges a token deletion.
type DeleteTokenReply struct {
	PaymentTokenID string
}
