package models

// AuthorisedStatus is the closed set of payment states reported by the
// gateway as an order's last event.
type AuthorisedStatus string

const (
	StatusSentForAuthorisation AuthorisedStatus = "SENT_FOR_AUTHORISATION"
	StatusAuthorised           AuthorisedStatus = "AUTHORISED"
	StatusCancelled            AuthorisedStatus = "CANCELLED"
	StatusCaptured             AuthorisedStatus = "CAPTURED"
	StatusExpired              AuthorisedStatus = "EXPIRED"
	StatusRefused              AuthorisedStatus = "REFUSED"
	StatusRefunded             AuthorisedStatus = "REFUNDED"
	StatusSentForRefund        AuthorisedStatus = "SENT_FOR_REFUND"
	StatusSettled              AuthorisedStatus = "SETTLED"
	StatusSettledByMerchant    AuthorisedStatus = "SETTLED_BY_MERCHANT"
	StatusChargedBack          AuthorisedStatus = "CHARGED_BACK"
	StatusChargebackReversed   AuthorisedStatus = "CHARGEBACK_REVERSED"
	StatusOpen                 AuthorisedStatus = "OPEN"
	StatusError                AuthorisedStatus = "ERROR"
)

// ErrorDetail is a structured error reported inside a gateway reply
// envelope.
type ErrorDetail struct {
	Code    string
	Message string
}

// RiskScore is the fraud-screening outcome optionally attached to a
// payment reply.
type RiskScore struct {
	ID               string
	Value            string
	FinalScore       string
	ExtendedResponse string
	Provider         string
	Message          string
	RGID             string
	TRisk            string
	TScore           string
}

// Balance is an account balance sub-record on a payment reply.
type Balance struct {
	AccountType string
	Amount      *Amount
}

// PaymentReply is the parsed outcome of a payment element inside a
// successful reply envelope.
type PaymentReply struct {
	MethodCode  string
	CardDetails *CardPayment
	Amount      *Amount
	AuthStatus  AuthorisedStatus

	CVCResultDescription string
	BalanceAccountType   string
	BalanceAmount        *Amount

	// ReturnCode is the ISO 8583 return code when the acquirer supplied one.
	ReturnCode string

	RiskScore *RiskScore

	// AAV (address/cardholder verification) result descriptions. Each is
	// independently optional.
	AAVCardholderNameResult string
	AAVAddressResult        string
	AAVEmailResult          string
	AAVPostcodeResult       string
	AAVTelephoneResult      string

	RefundReference string
	AuthorisationID string
	AuthorisedBy    string
}

// JournalReply describes a settlement journal entry from an order status.
type JournalReply struct {
	JournalType         AuthorisedStatus
	BookingDate         *Date
	AccountTransactions []AccountTransaction
}

// AccountTransaction is a single ledger line within a journal.
type AccountTransaction struct {
	AccountType string
	BatchID     string
	Amount      *Amount
}

// WebformRefundReply describes a shopper webform refund notification.
type WebformRefundReply struct {
	WebformURL    string
	WebformID     string
	WebformStatus string
	PaymentID     string
	Reason        string
	Amount        *Amount
	RefundID      string
}

// ServiceResponse is the parsed form of a reply envelope: either a gateway
// error or typed reply content, never both.
type ServiceResponse struct {
	OrderCode string
	Error     *ErrorDetail

	PaymentReply     *PaymentReply
	TokenReply       *TokenReply
	JournalReply     *JournalReply
	WebformRefund    *WebformRefundReply
	UpdateTokenReply *UpdateTokenReply
	DeleteTokenReply *DeleteTokenReply

	// RedirectReference is the gateway-hosted page a shopper must be sent
	// to for a redirect authorization.
	RedirectReference string
}

// IsError reports whether the envelope carried a gateway error.
func (r *ServiceResponse) IsError() bool { return r.Error != nil }
