package models

// PaymentType is the gateway method code for a payment variant, e.g.
// "VISA-SSL" or "ACH-SSL".
type PaymentType string

const (
	PaymentTypeCard          PaymentType = "CARD-SSL"
	PaymentTypeVisa          PaymentType = "VISA-SSL"
	PaymentTypeMastercard    PaymentType = "ECMC-SSL"
	PaymentTypeAmex          PaymentType = "AMEX-SSL"
	PaymentTypeAirplus       PaymentType = "AIRPLUS-SSL"
	PaymentTypeDankort       PaymentType = "DANKORT-SSL"
	PaymentTypeDiners        PaymentType = "DINERS-SSL"
	PaymentTypeDiscover      PaymentType = "DISCOVER-SSL"
	PaymentTypeJCB           PaymentType = "JCB-SSL"
	PaymentTypeMaestro       PaymentType = "MAESTRO-SSL"
	PaymentTypeUATP          PaymentType = "UATP-SSL"
	PaymentTypeCarteBleue    PaymentType = "CARTEBLEUE-SSL"
	PaymentTypeCarteBancaire PaymentType = "CB-SSL"
	PaymentTypeAch           PaymentType = "ACH-SSL"
	PaymentTypeIdeal         PaymentType = "IDEAL-SSL"
	PaymentTypeKlarna        PaymentType = "KLARNA-SSL"
	PaymentTypeToken         PaymentType = "TOKEN-SSL"
)

// Payment is the closed set of payment-method variants that can be encoded
// into an authorization request. Exactly one concrete type is used per
// request.
type Payment interface {
	// Type returns the gateway method code for the variant.
	Type() PaymentType
}

// Date is the gateway's exploded date representation.
type Date struct {
	DayOfMonth string
	Month      string
	Year       string
	Hour       string
	Minute     string
	Second     string
}

// CardPayment carries card details for a direct card payment, or the card
// details echoed back inside a reply.
type CardPayment struct {
	PaymentType    PaymentType
	Number         string
	CVC            string
	ExpiryDate     *Date
	CardHolderName string
	CardAddress    *Address
}

func (p *CardPayment) Type() PaymentType { return p.PaymentType }

// AchType is the sub-kind of an ACH payment. Each kind carries a different
// required field set.
type AchType string

const (
	AchAuthentication AchType = "authentication"
	AchDeposit        AchType = "deposit"
	AchValidation     AchType = "validation"
	AchVerification   AchType = "verification"
)

// AchPayment is an ACH bank payment. Which fields are populated depends on
// AchType: Authentication carries name and address, Deposit and Validation
// carry name and bank fields, Verification carries bank fields only.
type AchPayment struct {
	AchType         AchType
	FirstName       string
	LastName        string
	Address         *Address
	BankAccountType string
	RoutingNumber   string
	AccountNumber   string
}

func (p *AchPayment) Type() PaymentType { return PaymentTypeAch }

// NewAuthenticationAchPayment creates an Authentication ACH payment.
func NewAuthenticationAchPayment(firstName, lastName string, address *Address) *AchPayment {
	return &AchPayment{AchType: AchAuthentication, FirstName: firstName, LastName: lastName, Address: address}
}

// NewDepositAchPayment creates a Deposit ACH payment.
func NewDepositAchPayment(firstName, lastName, bankAccountType, routingNumber, accountNumber string) *AchPayment {
	return &AchPayment{AchType: AchDeposit, FirstName: firstName, LastName: lastName, BankAccountType: bankAccountType, RoutingNumber: routingNumber, AccountNumber: accountNumber}
}

// NewValidationAchPayment creates a Validation ACH payment.
func NewValidationAchPayment(firstName, lastName, bankAccountType, routingNumber, accountNumber string) *AchPayment {
	return &AchPayment{AchType: AchValidation, FirstName: firstName, LastName: lastName, BankAccountType: bankAccountType, RoutingNumber: routingNumber, AccountNumber: accountNumber}
}

// NewVerificationAchPayment creates a Verification ACH payment. Verification
// requests never carry name or address fields.
func NewVerificationAchPayment(bankAccountType, routingNumber, accountNumber string) *AchPayment {
	return &AchPayment{AchType: AchVerification, BankAccountType: bankAccountType, RoutingNumber: routingNumber, AccountNumber: accountNumber}
}

// AlternativeBankRedirectPayment is a bank-redirect payment (e.g. iDEAL)
// selected by the shopper's bank code.
type AlternativeBankRedirectPayment struct {
	PaymentType     PaymentType
	ShopperBankCode string
	SuccessURL      string
}

func (p *AlternativeBankRedirectPayment) Type() PaymentType { return p.PaymentType }

// KlarnaPayment is a Klarna invoice payment.
type KlarnaPayment struct {
	PurchaseCountry   string
	ShopperLocale     string
	MerchantURLs      KlarnaMerchantURLs
	ExtraMerchantData string
}

// KlarnaMerchantURLs are the merchant pages Klarna links back to.
type KlarnaMerchantURLs struct {
	CheckoutURL     string
	ConfirmationURL string
}

func (p *KlarnaPayment) Type() PaymentType { return PaymentTypeKlarna }

// TokenPayment pays with a previously stored payment token.
type TokenPayment struct {
	PaymentTokenID string
	// AuthenticatedShopperID scopes the token to a shopper; empty for
	// merchant-scoped tokens.
	AuthenticatedShopperID string
}

func (p *TokenPayment) Type() PaymentType { return PaymentTypeToken }
