package worldpay_hpp

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/ecommkit/worldpay_hpp_sdk/models"
)

// encodePayment appends the wire node for a payment variant to parent,
// dispatching on the concrete type. Exactly one variant node is produced
// per payment.
func encodePayment(parent *etree.Element, payment models.Payment) error {
	switch p := payment.(type) {
	case *models.CardPayment:
		encodeCardPayment(parent, p)
	case *models.AchPayment:
		encodeAchPayment(parent, p)
	case *models.AlternativeBankRedirectPayment:
		el := parent.CreateElement(string(p.PaymentType))
		el.CreateAttr("shopperBankCode", p.ShopperBankCode)
		addTextIfSet(el, "successURL", p.SuccessURL)
	case *models.KlarnaPayment:
		encodeKlarnaPayment(parent, p)
	case *models.TokenPayment:
		el := parent.CreateElement(string(models.PaymentTypeToken))
		addTextIfSet(el, "paymentTokenID", p.PaymentTokenID)
	default:
		return fmt.Errorf("worldpay_hpp: unsupported payment variant %T", payment)
	}
	return nil
}

func encodeCardPayment(parent *etree.Element, p *models.CardPayment) {
	paymentType := p.PaymentType
	if paymentType == "" {
		paymentType = models.PaymentTypeCard
	}
	el := parent.CreateElement(string(paymentType))
	addTextIfSet(el, "cardNumber", p.Number)
	if p.ExpiryDate != nil {
		encodeDate(el.CreateElement("expiryDate"), p.ExpiryDate)
	}
	addTextIfSet(el, "cardHolderName", p.CardHolderName)
	addTextIfSet(el, "cvc", p.CVC)
	if p.CardAddress != nil {
		encodeAddress(el.CreateElement("cardAddress"), p.CardAddress)
	}
}

// encodeAchPayment dispatches on AchType. Verification deliberately omits
// the name and address fields even when set on the domain object;
// Authentication carries name and address but no bank fields.
func encodeAchPayment(parent *etree.Element, p *models.AchPayment) {
	el := parent.CreateElement(string(models.PaymentTypeAch))
	sub := el.CreateElement(string(p.AchType))

	switch p.AchType {
	case models.AchAuthentication:
		addTextIfSet(sub, "firstName", p.FirstName)
		addTextIfSet(sub, "lastName", p.LastName)
		if p.Address != nil {
			encodeAddress(sub, p.Address)
		}
	case models.AchDeposit, models.AchValidation:
		addTextIfSet(sub, "firstName", p.FirstName)
		addTextIfSet(sub, "lastName", p.LastName)
		addTextIfSet(sub, "bankAccountType", p.BankAccountType)
		addTextIfSet(sub, "routingNumber", p.RoutingNumber)
		addTextIfSet(sub, "accountNumber", p.AccountNumber)
	case models.AchVerification:
		addTextIfSet(sub, "bankAccountType", p.BankAccountType)
		addTextIfSet(sub, "routingNumber", p.RoutingNumber)
		addTextIfSet(sub, "accountNumber", p.AccountNumber)
	}
}

func encodeKlarnaPayment(parent *etree.Element, p *models.KlarnaPayment) {
	el := parent.CreateElement(string(models.PaymentTypeKlarna))
	el.CreateAttr("purchaseCountry", p.PurchaseCountry)
	el.CreateAttr("shopperLocale", p.ShopperLocale)
	urls := el.CreateElement("merchantUrls")
	addTextIfSet(urls, "checkoutURL", p.MerchantURLs.CheckoutURL)
	addTextIfSet(urls, "confirmationURL", p.MerchantURLs.ConfirmationURL)
	addTextIfSet(el, "extraMerchantData", p.ExtraMerchantData)
}

func encodeDate(el *etree.Element, date *models.Date) {
	inner := el.CreateElement("date")
	setAttrIfSet(inner, "dayOfMonth", date.DayOfMonth)
	setAttrIfSet(inner, "month", date.Month)
	setAttrIfSet(inner, "year", date.Year)
	setAttrIfSet(inner, "hour", date.Hour)
	setAttrIfSet(inner, "minute", date.Minute)
	setAttrIfSet(inner, "second", date.Second)
}

func decodeDate(el *etree.Element) *models.Date {
	if el == nil {
		return nil
	}
	inner := el.SelectElement("date")
	if inner == nil {
		return nil
	}
	return &models.Date{
		DayOfMonth: inner.SelectAttrValue("dayOfMonth", ""),
		Month:      inner.SelectAttrValue("month", ""),
		Year:       inner.SelectAttrValue("year", ""),
		Hour:       inner.SelectAttrValue("hour", ""),
		Minute:     inner.SelectAttrValue("minute", ""),
		Second:     inner.SelectAttrValue("second", ""),
	}
}

func setAttrIfSet(el *etree.Element, name, value string) {
	if value == "" {
		return
	}
	el.CreateAttr(name, value)
}

// parseAuthorisedStatus maps a wire status code through the closed status
// enumeration.
func parseAuthorisedStatus(status string) (models.AuthorisedStatus, error) {
	switch s := models.AuthorisedStatus(status); s {
	case models.StatusSentForAuthorisation, models.StatusAuthorised,
		models.StatusCancelled, models.StatusCaptured, models.StatusExpired,
		models.StatusRefused, models.StatusRefunded, models.StatusSentForRefund,
		models.StatusSettled, models.StatusSettledByMerchant,
		models.StatusChargedBack, models.StatusChargebackReversed,
		models.StatusOpen, models.StatusError:
		return s, nil
	default:
		return "", &UnknownStatusError{Status: status}
	}
}
