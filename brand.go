package worldpay_hpp

import "github.com/ecommkit/worldpay_hpp_sdk/models"

// Card-brand normalization. Co-branded cards are rewritten first through an
// ordered rule table, then the primary brand code maps through a fixed
// table. Unlisted brand codes fall back to the generic card type; that
// defaulting is part of the protocol contract, not an error.

type coBrandRule struct {
	brand   string
	coBrand string
	mapped  models.PaymentType
}

var coBrandRules = []coBrandRule{
	{brand: "VISA", coBrand: "CARTEBLEUE", mapped: models.PaymentTypeCarteBleue},
	{brand: "ECMC", coBrand: "CB", mapped: models.PaymentTypeCarteBancaire},
}

var cardBrandTypes = map[string]models.PaymentType{
	"VISA":     models.PaymentTypeVisa,
	"ECMC":     models.PaymentTypeMastercard,
	"AIRPLUS":  models.PaymentTypeAirplus,
	"AMEX":     models.PaymentTypeAmex,
	"DANKORT":  models.PaymentTypeDankort,
	"DINERS":   models.PaymentTypeDiners,
	"DISCOVER": models.PaymentTypeDiscover,
	"JCB":      models.PaymentTypeJCB,
	"MAESTRO":  models.PaymentTypeMaestro,
	"UATP":     models.PaymentTypeUATP,
}

// NormalizeCardBrand maps a wire (brand, coBrand) pair onto a domain
// payment type.
func NormalizeCardBrand(cardBrand, cardCoBrand string) models.PaymentType {
	if cardCoBrand != "" {
		for _, rule := range coBrandRules {
			if rule.brand == cardBrand && rule.coBrand == cardCoBrand {
				return rule.mapped
			}
		}
	}
	if mapped, ok := cardBrandTypes[cardBrand]; ok {
		return mapped
	}
	return models.PaymentTypeCard
}

// bankRedirectTypes are the alternative bank-redirect methods addressable
// by wire method code.
var bankRedirectTypes = map[string]models.PaymentType{
	"IDEAL-SSL": models.PaymentTypeIdeal,
}

// NewBankPayment creates an alternative bank-redirect payment for the
// given wire method code. It returns nil when the method code is not a
// known bank-redirect type.
func NewBankPayment(methodCode, shopperBankCode, successURL string) *models.AlternativeBankRedirectPayment {
	paymentType, ok := bankRedirectTypes[methodCode]
	if !ok {
		return nil
	}
	return &models.AlternativeBankRedirectPayment{
		PaymentType:     paymentType,
		ShopperBankCode: shopperBankCode,
		SuccessURL:      successURL,
	}
}
