package worldpay_hpp

import (
	"github.com/shopspring/decimal"

	"github.com/ecommkit/worldpay_hpp_sdk/models"
)

// NewBasicOrderInfo bundles the order-level data for an authorization
// request.
func NewBasicOrderInfo(orderCode, description string, amount *models.Amount) models.BasicOrderInfo {
	return models.BasicOrderInfo{OrderCode: orderCode, Description: description, Amount: amount}
}

// NewOrderAmount encodes a cart total for an order.
func NewOrderAmount(value decimal.Decimal, currencyCode string) (*models.Amount, error) {
	return EncodeAmount(value, currencyCode)
}

// NewShopper creates a shopper without an authenticated shopper id.
func NewShopper(email string, session *models.Session, browser *models.Browser) *models.Shopper {
	return &models.Shopper{ShopperEmailAddress: email, Session: session, Browser: browser}
}

// NewAuthenticatedShopper creates a shopper for a tokenizing flow. When
// tokens are merchant-scoped the authenticated shopper id is suppressed:
// merchant tokens must not be tied to a shopper identity.
func NewAuthenticatedShopper(email, authenticatedShopperID string, session *models.Session, browser *models.Browser, merchantTokenEnabled bool) *models.Shopper {
	shopper := &models.Shopper{ShopperEmailAddress: email, Session: session, Browser: browser}
	if !merchantTokenEnabled {
		shopper.AuthenticatedShopperID = authenticatedShopperID
	}
	return shopper
}

// NewTokenRequest creates a tokenization request, choosing merchant or
// shopper scope from the site-level flag.
func NewTokenRequest(tokenEventReference, tokenReason string, merchantTokenEnabled bool) *models.TokenRequest {
	return &models.TokenRequest{
		TokenEventReference: tokenEventReference,
		TokenReason:         tokenReason,
		MerchantToken:       merchantTokenEnabled,
	}
}

// NewKlarnaPayment creates a Klarna payment with the merchant's checkout
// and confirmation pages.
func NewKlarnaPayment(purchaseCountry, shopperLocale, extraMerchantData, checkoutURL, confirmationURL string) *models.KlarnaPayment {
	return &models.KlarnaPayment{
		PurchaseCountry: purchaseCountry,
		ShopperLocale:   shopperLocale,
		MerchantURLs: models.KlarnaMerchantURLs{
			CheckoutURL:     checkoutURL,
			ConfirmationURL: confirmationURL,
		},
		ExtraMerchantData: extraMerchantData,
	}
}
