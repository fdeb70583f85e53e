package worldpay_hpp

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/ecommkit/worldpay_hpp_sdk/models"
)

// ParseResponse parses a reply envelope into a ServiceResponse. The error
// check always runs before any typed extraction: a response is either a
// gateway error or typed reply content, never both.
func ParseResponse(doc *etree.Document) (*models.ServiceResponse, error) {
	root := doc.Root()
	if root == nil || root.Tag != "paymentService" {
		return nil, fmt.Errorf("worldpay_hpp: reply document is not a paymentService envelope")
	}
	reply := root.SelectElement("reply")
	if reply == nil {
		return nil, fmt.Errorf("worldpay_hpp: paymentService envelope carries no reply")
	}

	resp := &models.ServiceResponse{}
	if detail := CheckForError(reply); detail != nil {
		resp.Error = detail
		return resp, nil
	}

	for _, child := range reply.ChildElements() {
		switch child.Tag {
		case "orderStatus":
			if err := parseOrderStatus(child, resp); err != nil {
				return nil, err
			}
		case "token":
			resp.TokenReply = buildTokenReply(child)
		case "shopperWebformRefundDetails":
			resp.WebformRefund = buildWebformRefundReply(child)
		case "updateTokenReceived":
			resp.UpdateTokenReply = BuildUpdateTokenReply(child)
		case "deleteTokenReceived":
			resp.DeleteTokenReply = BuildDeleteTokenReply(child)
		}
	}
	return resp, nil
}

// CheckForError applies the envelope's error convention: only the first
// element of the reply decides. An error node there, or an order-status
// node whose own first sub-element is an error node, makes the envelope an
// error; errors anywhere else are not inspected. This mirrors the wire
// protocol exactly and must not be generalized.
func CheckForError(reply *etree.Element) *models.ErrorDetail {
	children := reply.ChildElements()
	if len(children) == 0 {
		return nil
	}

	first := children[0]
	if first.Tag == "error" {
		return buildErrorDetail(first)
	}
	if first.Tag == "orderStatus" {
		statusChildren := first.ChildElements()
		if len(statusChildren) > 0 && statusChildren[0].Tag == "error" {
			return buildErrorDetail(statusChildren[0])
		}
	}
	return nil
}

func buildErrorDetail(el *etree.Element) *models.ErrorDetail {
	if el == nil {
		return nil
	}
	return &models.ErrorDetail{
		Code:    el.SelectAttrValue("code", ""),
		Message: el.Text(),
	}
}

func parseOrderStatus(el *etree.Element, resp *models.ServiceResponse) error {
	resp.OrderCode = el.SelectAttrValue("orderCode", "")

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "reference":
			resp.RedirectReference = child.Text()
		case "payment":
			paymentReply, err := buildPaymentReply(child)
			if err != nil {
				return err
			}
			resp.PaymentReply = paymentReply
		case "journal":
			journalReply, err := buildJournalReply(child)
			if err != nil {
				return err
			}
			resp.JournalReply = journalReply
		case "token":
			resp.TokenReply = buildTokenReply(child)
		}
	}
	return nil
}

// buildPaymentReply extracts the typed payment outcome from a payment
// element. Absent optional fields never cause an error; only an
// out-of-enumeration status does.
func buildPaymentReply(el *etree.Element) (*models.PaymentReply, error) {
	reply := &models.PaymentReply{}

	reply.MethodCode = childText(el, "paymentMethod")

	if detail := el.SelectElement("paymentMethodDetail"); detail != nil {
		reply.CardDetails = transformReplyCard(detail.SelectElement("card"), childText(el, "cardHolderName"))
	}

	reply.Amount = decodeWireAmount(el.SelectElement("amount"))

	status, err := parseAuthorisedStatus(childText(el, "lastEvent"))
	if err != nil {
		return nil, err
	}
	reply.AuthStatus = status

	reply.CVCResultDescription = firstDescription(el.SelectElement("CVCResultCode"))

	if balance := el.SelectElement("balance"); balance != nil {
		reply.BalanceAccountType = balance.SelectAttrValue("accountType", "")
		reply.BalanceAmount = decodeWireAmount(balance.SelectElement("amount"))
	}

	if iso := el.SelectElement("ISO8583ReturnCode"); iso != nil {
		reply.ReturnCode = iso.SelectAttrValue("code", "")
	}

	if risk := el.SelectElement("riskScore"); risk != nil {
		reply.RiskScore = buildRiskScore(risk)
	}

	reply.AAVCardholderNameResult = firstDescription(el.SelectElement("AAVCardholderNameResultCode"))
	reply.AAVAddressResult = firstDescription(el.SelectElement("AAVAddressResultCode"))
	reply.AAVEmailResult = firstDescription(el.SelectElement("AAVEmailResultCode"))
	reply.AAVPostcodeResult = firstDescription(el.SelectElement("AAVPostcodeResultCode"))
	reply.AAVTelephoneResult = firstDescription(el.SelectElement("AAVTelephoneResultCode"))

	reply.RefundReference = childText(el, "refundReference")

	if auth := el.SelectElement("AuthorisationId"); auth != nil {
		reply.AuthorisationID = auth.SelectAttrValue("id", "")
		reply.AuthorisedBy = auth.SelectAttrValue("by", "")
	}

	return reply, nil
}

func buildRiskScore(el *etree.Element) *models.RiskScore {
	return &models.RiskScore{
		ID:               el.SelectAttrValue("id", ""),
		Value:            el.SelectAttrValue("value", ""),
		FinalScore:       el.SelectAttrValue("finalScore", ""),
		ExtendedResponse: el.SelectAttrValue("extendedResponse", ""),
		Provider:         el.SelectAttrValue("provider", ""),
		Message:          el.SelectAttrValue("message", ""),
		RGID:             el.SelectAttrValue("RGID", ""),
		TRisk:            el.SelectAttrValue("tRisk", ""),
		TScore:           el.SelectAttrValue("tScore", ""),
	}
}

// buildTokenReply accumulates the unordered token-information fields onto
// one reply. Multiple kinds may co-occur and all are applied; unrecognized
// kinds are skipped.
func buildTokenReply(el *etree.Element) *models.TokenReply {
	reply := &models.TokenReply{
		AuthenticatedShopperID: childText(el, "authenticatedShopperID"),
		TokenEventReference:    childText(el, "tokenEventReference"),
	}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "tokenReason":
			reply.TokenReason = child.Text()
		case "tokenDetails":
			reply.TokenDetails = transformTokenDetails(child)
		case "paymentInstrument":
			instruments := child.ChildElements()
			if len(instruments) == 0 {
				continue
			}
			switch instrument := instruments[0]; instrument.Tag {
			case "cardDetails":
				reply.PaymentInstrument = transformTokenCard(instrument)
			case "paypal":
				reply.PaypalDetails = instrument.Text()
			}
		case "error":
			reply.Error = buildErrorDetail(child)
		}
	}
	return reply
}

func transformTokenDetails(el *etree.Element) *models.TokenDetails {
	details := &models.TokenDetails{
		TokenEventReference: childText(el, "tokenEventReference"),
		TokenEvent:          el.SelectAttrValue("tokenEvent", ""),
		PaymentTokenID:      childText(el, "paymentTokenID"),
		ReportingTokenID:    childText(el, "reportingTokenID"),
	}
	if reason := el.SelectElement("tokenReason"); reason != nil {
		details.TokenReason = reason.Text()
	}
	details.PaymentTokenExpiry = decodeDate(el.SelectElement("paymentTokenExpiry"))
	details.ReportingTokenExpiry = decodeDate(el.SelectElement("reportingTokenExpiry"))
	return details
}

// transformTokenCard builds the stored-card instrument from tokenized card
// details. The derived block decides the brand; without it there is no
// usable card.
func transformTokenCard(el *etree.Element) *models.CardPayment {
	derived := el.SelectElement("derived")
	if derived == nil {
		return nil
	}

	card := &models.CardPayment{
		PaymentType: NormalizeCardBrand(
			derived.SelectAttrValue("cardBrand", ""),
			derived.SelectAttrValue("cardCoBrand", ""),
		),
		Number:         derived.SelectAttrValue("obfuscatedPAN", ""),
		CardHolderName: childText(el, "cardHolderName"),
		ExpiryDate:     decodeDate(el.SelectElement("expiryDate")),
	}
	if cvc := el.SelectElement("cvc"); cvc != nil {
		card.CVC = cvc.Text()
	}
	if cardAddress := el.SelectElement("cardAddress"); cardAddress != nil {
		card.CardAddress = decodeAddress(cardAddress.SelectElement("address"))
	}
	return card
}

func transformReplyCard(el *etree.Element, cardHolderName string) *models.CardPayment {
	if el == nil {
		return nil
	}
	return &models.CardPayment{
		PaymentType:    models.PaymentType(el.SelectAttrValue("type", "")),
		Number:         el.SelectAttrValue("number", ""),
		CardHolderName: cardHolderName,
		ExpiryDate:     decodeDate(el.SelectElement("expiryDate")),
	}
}

// buildJournalReply converts a journal element, preserving transaction
// order. The booking date is attached only when both the wrapper and its
// inner date are present.
func buildJournalReply(el *etree.Element) (*models.JournalReply, error) {
	journalType, err := parseAuthorisedStatus(el.SelectAttrValue("journalType", ""))
	if err != nil {
		return nil, err
	}

	reply := &models.JournalReply{JournalType: journalType}
	reply.BookingDate = decodeDate(el.SelectElement("bookingDate"))

	for _, tx := range el.SelectElements("accountTx") {
		reply.AccountTransactions = append(reply.AccountTransactions, models.AccountTransaction{
			AccountType: tx.SelectAttrValue("accountType", ""),
			BatchID:     tx.SelectAttrValue("batchId", ""),
			Amount:      decodeWireAmount(tx.SelectElement("amount")),
		})
	}
	return reply, nil
}

func buildWebformRefundReply(el *etree.Element) *models.WebformRefundReply {
	return &models.WebformRefundReply{
		WebformURL:    childText(el, "webformURL"),
		WebformID:     childText(el, "webformId"),
		WebformStatus: childText(el, "webformStatus"),
		PaymentID:     childText(el, "paymentId"),
		Reason:        childText(el, "reason"),
		Amount:        decodeWireAmount(el.SelectElement("amount")),
		RefundID:      childText(el, "refundId"),
	}
}

// BuildUpdateTokenReply extracts the token id echoed by a token update.
func BuildUpdateTokenReply(el *etree.Element) *models.UpdateTokenReply {
	return &models.UpdateTokenReply{PaymentTokenID: childText(el, "paymentTokenID")}
}

// BuildDeleteTokenReply extracts the token id echoed by a token deletion.
func BuildDeleteTokenReply(el *etree.Element) *models.DeleteTokenReply {
	return &models.DeleteTokenReply{PaymentTokenID: childText(el, "paymentTokenID")}
}

func childText(el *etree.Element, tag string) string {
	if child := el.SelectElement(tag); child != nil {
		return child.Text()
	}
	return ""
}

// firstDescription returns the first description entry of a result-code
// element, or empty when the element or its list is absent.
func firstDescription(el *etree.Element) string {
	if el == nil {
		return ""
	}
	descriptions := el.SelectElements("description")
	if len(descriptions) == 0 {
		return ""
	}
	return descriptions[0].Text()
}
