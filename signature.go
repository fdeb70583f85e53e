package worldpay_hpp

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/ecommkit/worldpay_hpp_sdk/models"
)

// Callback parameter keys delivered to the merchant's redirect-return
// endpoint.
const (
	ParamOrderKey        = "orderKey"
	ParamPaymentStatus   = "paymentStatus"
	ParamPaymentAmount   = "paymentAmount"
	ParamPaymentCurrency = "paymentCurrency"
	ParamMac             = "mac"
	ParamMac2            = "mac2"

	ParamCountry    = "country"
	ParamLanguage   = "language"
	ParamSuccessURL = "successURL"
	ParamPendingURL = "pendingURL"
	ParamFailureURL = "failureURL"
	ParamCancelURL  = "cancelURL"
	ParamErrorURL   = "errorURL"
)

// ValidateRedirectResponse decides whether a redirect callback can be
// trusted. Three outcomes:
//
//  1. MAC validation disabled for the merchant: valid unconditionally.
//  2. The callback carries only an order key and no signature: valid.
//     This is the gateway's "order still open" notification, which has no
//     payment outcome to verify.
//  3. Anything else requires a signature (mac2 preferred over the legacy
//     mac) that matches the value recomputed from the order key, amount,
//     currency, and status under the merchant's shared secret.
//
// A callback with no order key and no signature is never valid. Trust is
// re-derived from merchant configuration on every call, never from which
// parameters happen to be present.
func ValidateRedirectResponse(merchant models.MerchantInfo, params map[string]string) bool {
	if !merchant.UsingMacValidation {
		return true
	}

	orderKey := params[ParamOrderKey]
	mac := params[ParamMac]
	mac2 := params[ParamMac2]

	if mac == "" && mac2 == "" {
		// Open-notification carve-out: an order key with nothing else.
		return orderKey != "" && len(params) == 1
	}
	if orderKey == "" {
		return false
	}

	status := params[ParamPaymentStatus]
	amount := params[ParamPaymentAmount]
	currency := params[ParamPaymentCurrency]

	if mac2 != "" {
		expected := ComputeMac2(merchant.SharedSecret, orderKey, amount, currency, status)
		return hmac.Equal([]byte(expected), []byte(strings.ToLower(mac2)))
	}
	expected := ComputeLegacyMac(merchant.SharedSecret, orderKey, amount, currency, status)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(mac)))
}

// ComputeMac2 returns the current signature format: lowercase hex
// HMAC-SHA256 keyed by the shared secret over the colon-joined callback
// fields.
func ComputeMac2(secret, orderKey, paymentAmount, paymentCurrency, paymentStatus string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(strings.Join([]string{orderKey, paymentAmount, paymentCurrency, paymentStatus}, ":")))
	return hex.EncodeToString(h.Sum(nil))
}

// ComputeLegacyMac returns the historical signature format: lowercase hex
// MD5 over the concatenated callback fields followed by the shared secret.
func ComputeLegacyMac(secret, orderKey, paymentAmount, paymentCurrency, paymentStatus string) string {
	sum := md5.Sum([]byte(orderKey + paymentAmount + paymentCurrency + paymentStatus + secret))
	return hex.EncodeToString(sum[:])
}
