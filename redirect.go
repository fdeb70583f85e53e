package worldpay_hpp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ecommkit/worldpay_hpp_sdk/models"
)

// URLService supplies the merchant result-page URLs placed on the hosted
// payment page. Implementations report a ConfigurationError for URLs they
// cannot supply.
type URLService interface {
	FullSuccessURL() (string, error)
	FullPendingURL() (string, error)
	FullFailureURL() (string, error)
	FullCancelURL() (string, error)
	FullErrorURL() (string, error)
}

// StaticURLService is a URLService backed by fixed configuration values.
type StaticURLService struct {
	SuccessURL string
	PendingURL string
	FailureURL string
	CancelURL  string
	ErrorURL   string
}

func (s StaticURLService) FullSuccessURL() (string, error) { return s.urlOrErr(s.SuccessURL, "SuccessURL") }
func (s StaticURLService) FullPendingURL() (string, error) { return s.urlOrErr(s.PendingURL, "PendingURL") }
func (s StaticURLService) FullFailureURL() (string, error) { return s.urlOrErr(s.FailureURL, "FailureURL") }
func (s StaticURLService) FullCancelURL() (string, error)  { return s.urlOrErr(s.CancelURL, "CancelURL") }
func (s StaticURLService) FullErrorURL() (string, error)   { return s.urlOrErr(s.ErrorURL, "ErrorURL") }

func (s StaticURLService) urlOrErr(value, field string) (string, error) {
	if value == "" {
		return "", &ConfigurationError{Field: field}
	}
	return value, nil
}

// TransactionRecorder is the caller-owned sink for finalized redirect
// authorizations.
type TransactionRecorder interface {
	RecordAuthorisation(ctx context.Context, record models.AuthorisationRecord) error
}

// CartInfo is the cart-derived input for a redirect authorization.
type CartInfo struct {
	// OrderCode identifies the order towards the gateway. Generated when
	// empty; callers needing idempotency across retries supply their own.
	OrderCode    string
	Description  string
	Amount       decimal.Decimal
	CurrencyCode string

	ShopperEmail           string
	AuthenticatedShopperID string
	LanguageCode           string

	BillingAddress  *models.Address
	DeliveryAddress *models.Address

	Session *models.Session
	Browser *models.Browser
}

// AdditionalAuthInfo carries the checkout-level flags for a redirect
// authorization.
type AdditionalAuthInfo struct {
	// UsingShippingAsBilling routes the delivery address into the
	// billing slot when a delivery address exists.
	UsingShippingAsBilling bool

	// SaveCard requests tokenization of the payment method used on the
	// hosted page.
	SaveCard bool

	IncludedPaymentTypes []models.PaymentType
	ExcludedPaymentTypes []models.PaymentType
}

// RedirectOrchestrator drives the hosted-page authorization handshake: it
// builds and sends the outbound request, hands the merchant the redirect
// parameters, and finalizes the transaction when the shopper returns. It
// keeps no state between the two phases; correlation lives entirely in the
// caller-supplied order code, order key, and merchant code.
type RedirectOrchestrator struct {
	gateway              Sender
	urls                 URLService
	transactions         TransactionRecorder
	merchantTokenEnabled bool
	logger               *zap.Logger

	newOrderCode           func() string
	newTokenEventReference func() string
}

// OrchestratorOption customizes a RedirectOrchestrator.
type OrchestratorOption func(*RedirectOrchestrator)

// WithOrchestratorLogger attaches a structured logger.
func WithOrchestratorLogger(logger *zap.Logger) OrchestratorOption {
	return func(o *RedirectOrchestrator) { o.logger = logger }
}

// WithOrderCodeGenerator overrides how order codes are generated for carts
// that do not supply one.
func WithOrderCodeGenerator(generate func() string) OrchestratorOption {
	return func(o *RedirectOrchestrator) { o.newOrderCode = generate }
}

// WithTokenEventReferenceGenerator overrides how token event references
// are generated.
func WithTokenEventReferenceGenerator(generate func() string) OrchestratorOption {
	return func(o *RedirectOrchestrator) { o.newTokenEventReference = generate }
}

// NewRedirectOrchestrator wires an orchestrator with its collaborators.
// merchantTokenEnabled selects merchant-scoped tokens for save-card flows.
func NewRedirectOrchestrator(gateway Sender, urls URLService, transactions TransactionRecorder, merchantTokenEnabled bool, opts ...OrchestratorOption) *RedirectOrchestrator {
	o := &RedirectOrchestrator{
		gateway:              gateway,
		urls:                 urls,
		transactions:         transactions,
		merchantTokenEnabled: merchantTokenEnabled,
		logger:               zap.NewNop(),
		newOrderCode:         func() string { return uuid.NewString() },
		newTokenEventReference: func() string {
			return "token-" + uuid.NewString()
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// RedirectAuthorise performs the initiate phase: it resolves addresses,
// optionally attaches a tokenization request, sends the authorization, and
// returns the redirect URL plus the parameter map for the merchant's
// redirect page. The gateway call is made at most once per invocation.
func (o *RedirectOrchestrator) RedirectAuthorise(ctx context.Context, merchant models.MerchantInfo, cart CartInfo, auth AdditionalAuthInfo) (*models.PaymentData, error) {
	orderCode := cart.OrderCode
	if orderCode == "" {
		orderCode = o.newOrderCode()
	}

	amount, err := EncodeAmount(cart.Amount, cart.CurrencyCode)
	if err != nil {
		return nil, err
	}

	billing := cart.BillingAddress
	if auth.UsingShippingAsBilling && cart.DeliveryAddress != nil {
		billing = cart.DeliveryAddress
	}

	req := RedirectAuthoriseRequest{
		Merchant:             merchant,
		Order:                NewBasicOrderInfo(orderCode, orderCode, amount),
		IncludedPaymentTypes: auth.IncludedPaymentTypes,
		ExcludedPaymentTypes: auth.ExcludedPaymentTypes,
		BillingAddress:       billing,
		ShippingAddress:      cart.DeliveryAddress,
	}

	if auth.SaveCard {
		req.Shopper = NewAuthenticatedShopper(cart.ShopperEmail, cart.AuthenticatedShopperID, cart.Session, cart.Browser, o.merchantTokenEnabled)
		req.TokenRequest = NewTokenRequest(o.newTokenEventReference(), "", o.merchantTokenEnabled)
	} else {
		req.Shopper = NewShopper(cart.ShopperEmail, cart.Session, cart.Browser)
	}

	reply, err := o.gateway.Send(ctx, BuildRedirectAuthoriseRequest(req))
	if err != nil {
		return nil, err
	}
	resp, err := ParseResponse(reply)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		o.logger.Warn("redirect authorise refused",
			zap.String("orderCode", orderCode),
			zap.String("errorCode", resp.Error.Code))
		return nil, &GatewayError{Detail: *resp.Error}
	}

	redirectURL := resp.RedirectReference
	if redirectURL == "" {
		// A success reply with no redirect target is fatal for this flow.
		return nil, &RedirectURLMissingError{OrderCode: orderCode}
	}

	params, err := o.buildRedirectParameters(billing, cart.LanguageCode, redirectURL)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("redirect authorise accepted", zap.String("orderCode", orderCode))

	return &models.PaymentData{PostURL: redirectURL, Parameters: params}, nil
}

func (o *RedirectOrchestrator) buildRedirectParameters(billing *models.Address, language, redirectURL string) (map[string]string, error) {
	params := make(map[string]string)
	if err := extractURLParams(redirectURL, params); err != nil {
		return nil, err
	}

	if billing != nil {
		params[ParamCountry] = billing.CountryCode
	}
	params[ParamLanguage] = language

	type urlParam struct {
		key   string
		fetch func() (string, error)
	}
	for _, p := range []urlParam{
		{ParamSuccessURL, o.urls.FullSuccessURL},
		{ParamPendingURL, o.urls.FullPendingURL},
		{ParamFailureURL, o.urls.FullFailureURL},
		{ParamCancelURL, o.urls.FullCancelURL},
		{ParamErrorURL, o.urls.FullErrorURL},
	} {
		value, err := p.fetch()
		if err != nil {
			return nil, err
		}
		params[p.key] = value
	}
	return params, nil
}

// ValidateRedirectResponse checks a redirect callback's MAC against the
// merchant configuration. See ValidateRedirectResponse (package level) for
// the decision rules.
func (o *RedirectOrchestrator) ValidateRedirectResponse(merchant models.MerchantInfo, params map[string]string) bool {
	valid := ValidateRedirectResponse(merchant, params)
	if !valid {
		o.logger.Warn("redirect callback failed MAC validation",
			zap.String("orderKey", params[ParamOrderKey]))
	}
	return valid
}

// BuildAuthoriseResult turns validated callback parameters into a
// RedirectAuthoriseResult. The order code is recovered from the last
// caret-separated segment of the order key.
func BuildAuthoriseResult(params map[string]string, saveCard bool) (*models.RedirectAuthoriseResult, error) {
	orderKey := params[ParamOrderKey]
	if orderKey == "" {
		return nil, fmt.Errorf("worldpay_hpp: callback carries no order key")
	}

	result := &models.RedirectAuthoriseResult{
		OrderKey:  orderKey,
		OrderCode: orderCodeFromKey(orderKey),
		SaveCard:  saveCard,
	}

	if statusParam := params[ParamPaymentStatus]; statusParam != "" {
		status, err := parseAuthorisedStatus(statusParam)
		if err != nil {
			return nil, err
		}
		result.PaymentStatus = status
		result.Pending = status == models.StatusSentForAuthorisation
	}

	if amountParam := params[ParamPaymentAmount]; amountParam != "" {
		currency := params[ParamPaymentCurrency]
		value, err := DecodeAmount(&models.Amount{Value: amountParam, CurrencyCode: currency})
		if err != nil {
			return nil, err
		}
		result.PaymentAmount = value
		result.PaymentCurrency = currency
	}

	return result, nil
}

// CompleteRedirectAuthorise performs the complete phase: it checks the
// authorization outcome and hands the transaction record to the caller's
// recorder, including whether the card should be saved.
func (o *RedirectOrchestrator) CompleteRedirectAuthorise(ctx context.Context, result *models.RedirectAuthoriseResult, merchantCode string) error {
	if result.PaymentStatus != models.StatusAuthorised && !result.Pending {
		return fmt.Errorf("worldpay_hpp: cannot complete order %q in status %q", result.OrderCode, result.PaymentStatus)
	}

	record := models.AuthorisationRecord{
		OrderCode:     result.OrderCode,
		MerchantCode:  merchantCode,
		Amount:        result.PaymentAmount,
		Currency:      result.PaymentCurrency,
		Pending:       result.Pending,
		SaveCard:      result.SaveCard,
		PaymentStatus: result.PaymentStatus,
	}
	if err := o.transactions.RecordAuthorisation(ctx, record); err != nil {
		return fmt.Errorf("worldpay_hpp: record authorisation for order %q: %w", result.OrderCode, err)
	}

	o.logger.Debug("redirect authorise completed",
		zap.String("orderCode", result.OrderCode),
		zap.Bool("pending", result.Pending))
	return nil
}

func orderCodeFromKey(orderKey string) string {
	segments := strings.Split(orderKey, "^")
	return segments[len(segments)-1]
}

func extractURLParams(rawURL string, into map[string]string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("worldpay_hpp: parse redirect URL: %w", err)
	}
	for key, values := range parsed.Query() {
		if len(values) > 0 {
			into[key] = values[0]
		}
	}
	return nil
}
