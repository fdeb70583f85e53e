package worldpay_hpp

import (
	"fmt"
	"net/http"

	"github.com/ecommkit/worldpay_hpp_sdk/models"
)

// HTTPError is returned when the gateway responds with a non-2xx HTTP status.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
	Headers    http.Header
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("worldpay_hpp http error %d (%s): %s", e.StatusCode, e.Status, e.Body)
}

// GatewayError wraps a structured error the gateway reported inside a
// reply envelope.
type GatewayError struct {
	Detail models.ErrorDetail
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("worldpay_hpp gateway error [%s]: %s", e.Detail.Code, e.Detail.Message)
}

// ConfigurationError indicates missing or invalid merchant configuration.
// It is fatal and never worth retrying.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("worldpay_hpp configuration error: %s is required", e.Field)
}

// InvalidCurrencyError is returned when a currency code is not in the
// ISO 4217 table.
type InvalidCurrencyError struct {
	CurrencyCode string
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("worldpay_hpp: unrecognized currency code %q", e.CurrencyCode)
}

// UnknownStatusError is returned when the gateway reports a payment status
// outside the known enumeration.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("worldpay_hpp: unknown payment status %q", e.Status)
}

// RedirectURLMissingError is returned when the gateway accepted a redirect
// authorization but supplied no usable redirect target.
type RedirectURLMissingError struct {
	OrderCode string
}

func (e *RedirectURLMissingError) Error() string {
	return fmt.Sprintf("worldpay_hpp: gateway reply for order %q carries no redirect URL", e.OrderCode)
}
