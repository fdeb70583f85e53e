package worldpay_hpp

import (
	"github.com/beevik/etree"

	"github.com/ecommkit/worldpay_hpp_sdk/models"
)

const paymentServiceVersion = "1.4"

// AuthoriseRequest is a direct authorization submitting full payment
// details over the XML channel.
type AuthoriseRequest struct {
	Merchant        models.MerchantInfo
	Order           models.BasicOrderInfo
	Payment         models.Payment
	Shopper         *models.Shopper
	BillingAddress  *models.Address
	ShippingAddress *models.Address
}

// RedirectAuthoriseRequest asks the gateway for a hosted-page redirect
// reference instead of submitting payment details directly.
type RedirectAuthoriseRequest struct {
	Merchant             models.MerchantInfo
	Order                models.BasicOrderInfo
	OrderContent         string
	IncludedPaymentTypes []models.PaymentType
	ExcludedPaymentTypes []models.PaymentType
	Shopper              *models.Shopper
	BillingAddress       *models.Address
	ShippingAddress      *models.Address

	// TokenRequest asks the gateway to tokenize the payment method used
	// on the hosted page. Nil when the card is not being saved.
	TokenRequest *models.TokenRequest
}

// BuildAuthoriseRequest renders a direct authorization into a wire
// document.
func BuildAuthoriseRequest(req AuthoriseRequest) (*etree.Document, error) {
	doc, order := newOrderDocument(req.Merchant, req.Order)

	details := order.CreateElement("paymentDetails")
	if err := encodePayment(details, req.Payment); err != nil {
		return nil, err
	}
	if req.Shopper != nil {
		encodeShopper(order, req.Shopper)
	}
	encodeOrderAddresses(order, req.BillingAddress, req.ShippingAddress)

	return doc, nil
}

// BuildRedirectAuthoriseRequest renders a redirect authorization into a
// wire document.
func BuildRedirectAuthoriseRequest(req RedirectAuthoriseRequest) *etree.Document {
	doc, order := newOrderDocument(req.Merchant, req.Order)

	addTextIfSet(order, "orderContent", req.OrderContent)

	mask := order.CreateElement("paymentMethodMask")
	if len(req.IncludedPaymentTypes) == 0 {
		mask.CreateElement("include").CreateAttr("code", "ALL")
	}
	for _, pt := range req.IncludedPaymentTypes {
		mask.CreateElement("include").CreateAttr("code", string(pt))
	}
	for _, pt := range req.ExcludedPaymentTypes {
		mask.CreateElement("exclude").CreateAttr("code", string(pt))
	}

	if req.Shopper != nil {
		encodeShopper(order, req.Shopper)
	}
	encodeOrderAddresses(order, req.BillingAddress, req.ShippingAddress)

	if req.TokenRequest != nil {
		encodeCreateToken(order, req.TokenRequest)
	}

	return doc
}

// BuildUpdateTokenRequest renders a stored-token update into a wire
// document.
func BuildUpdateTokenRequest(merchant models.MerchantInfo, token *models.TokenRequest, paymentTokenID string, card *models.CardPayment) *etree.Document {
	doc, modify := newModifyDocument(merchant)

	update := modify.CreateElement("paymentTokenUpdate")
	update.CreateAttr("tokenScope", token.TokenScope())
	addTextIfSet(update, "paymentTokenID", paymentTokenID)
	addTextIfSet(update, "tokenEventReference", token.TokenEventReference)
	addTextIfSet(update, "tokenReason", token.TokenReason)
	if card != nil {
		details := update.CreateElement("paymentInstrument").CreateElement("cardDetails")
		if card.ExpiryDate != nil {
			encodeDate(details.CreateElement("expiryDate"), card.ExpiryDate)
		}
		addTextIfSet(details, "cardHolderName", card.CardHolderName)
		if card.CardAddress != nil {
			encodeAddress(details.CreateElement("cardAddress"), card.CardAddress)
		}
	}

	return doc
}

// BuildDeleteTokenRequest renders a stored-token deletion into a wire
// document.
func BuildDeleteTokenRequest(merchant models.MerchantInfo, token *models.TokenRequest, paymentTokenID, authenticatedShopperID string) *etree.Document {
	doc, modify := newModifyDocument(merchant)

	del := modify.CreateElement("paymentTokenDelete")
	del.CreateAttr("tokenScope", token.TokenScope())
	addTextIfSet(del, "paymentTokenID", paymentTokenID)
	addTextIfSet(del, "authenticatedShopperID", authenticatedShopperID)
	addTextIfSet(del, "tokenEventReference", token.TokenEventReference)
	addTextIfSet(del, "tokenReason", token.TokenReason)

	return doc
}

func newPaymentServiceDocument(merchant models.MerchantInfo) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	service := doc.CreateElement("paymentService")
	service.CreateAttr("version", paymentServiceVersion)
	service.CreateAttr("merchantCode", merchant.MerchantCode)
	return doc, service
}

func newOrderDocument(merchant models.MerchantInfo, orderInfo models.BasicOrderInfo) (*etree.Document, *etree.Element) {
	doc, service := newPaymentServiceDocument(merchant)
	order := service.CreateElement("submit").CreateElement("order")
	order.CreateAttr("orderCode", orderInfo.OrderCode)
	addTextIfSet(order, "description", orderInfo.Description)
	if orderInfo.Amount != nil {
		encodeWireAmount(order, orderInfo.Amount)
	}
	return doc, order
}

func newModifyDocument(merchant models.MerchantInfo) (*etree.Document, *etree.Element) {
	doc, service := newPaymentServiceDocument(merchant)
	return doc, service.CreateElement("modify")
}

func encodeWireAmount(parent *etree.Element, amount *models.Amount) {
	el := parent.CreateElement("amount")
	el.CreateAttr("value", amount.Value)
	el.CreateAttr("currencyCode", amount.CurrencyCode)
	el.CreateAttr("exponent", amount.Exponent)
	if amount.DebitCreditIndicator != "" {
		el.CreateAttr("debitCreditIndicator", string(amount.DebitCreditIndicator))
	}
}

func decodeWireAmount(el *etree.Element) *models.Amount {
	if el == nil {
		return nil
	}
	indicator := models.DebitCreditIndicator(el.SelectAttrValue("debitCreditIndicator", ""))
	return &models.Amount{
		Value:                el.SelectAttrValue("value", ""),
		CurrencyCode:         el.SelectAttrValue("currencyCode", ""),
		Exponent:             el.SelectAttrValue("exponent", ""),
		DebitCreditIndicator: indicator,
	}
}

func encodeShopper(parent *etree.Element, shopper *models.Shopper) {
	el := parent.CreateElement("shopper")
	addTextIfSet(el, "shopperEmailAddress", shopper.ShopperEmailAddress)
	addTextIfSet(el, "authenticatedShopperID", shopper.AuthenticatedShopperID)
	if shopper.Browser != nil {
		browser := el.CreateElement("browser")
		addTextIfSet(browser, "deviceType", shopper.Browser.DeviceType)
		addTextIfSet(browser, "acceptHeader", shopper.Browser.AcceptHeader)
		addTextIfSet(browser, "userAgentHeader", shopper.Browser.UserAgentHeader)
	}
	if shopper.Session != nil {
		session := el.CreateElement("session")
		setAttrIfSet(session, "id", shopper.Session.ID)
		setAttrIfSet(session, "shopperIPAddress", shopper.Session.ShopperIPAddress)
	}
}

func encodeOrderAddresses(order *etree.Element, billing, shipping *models.Address) {
	if shipping != nil {
		encodeAddress(order.CreateElement("shippingAddress"), shipping)
	}
	if billing != nil {
		encodeAddress(order.CreateElement("billingAddress"), billing)
	}
}

func encodeCreateToken(order *etree.Element, token *models.TokenRequest) {
	el := order.CreateElement("createToken")
	el.CreateAttr("tokenScope", token.TokenScope())
	el.CreateAttr("tokenEventReference", token.TokenEventReference)
	addTextIfSet(el, "tokenReason", token.TokenReason)
}
