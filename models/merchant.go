package models

// MerchantInfo identifies the merchant on a single gateway interaction.
// Values are supplied by the caller per call and never mutated.
type MerchantInfo struct {
	// MerchantCode is the gateway merchant identifier.
	MerchantCode string

	// SharedSecret is the per-merchant key used to verify redirect
	// callback MACs.
	SharedSecret string

	// UsingMacValidation enables cryptographic validation of redirect
	// callbacks. When false, callbacks are accepted unconditionally.
	UsingMacValidation bool
}

// BasicOrderInfo is the order-level data carried on an authorization
// request.
type BasicOrderInfo struct {
	OrderCode   string
	Description string
	Amount      *Amount
}

// Shopper describes the purchasing customer on an authorization request.
type Shopper struct {
	ShopperEmailAddress string
	// AuthenticatedShopperID is set only for shopper-scoped token flows.
	AuthenticatedShopperID string
	Session                *Session
	Browser                *Browser
}

// Session carries the shopper's session identifiers for risk checks.
type Session struct {
	ID               string
	ShopperIPAddress string
}

// Browser carries shopper browser details for risk checks.
type Browser struct {
	DeviceType      string
	AcceptHeader    string
	UserAgentHeader string
}
