package worldpay_hpp

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecommkit/worldpay_hpp_sdk/models"
)

func TestEncodeAchVerificationOmitsNameAndAddress(t *testing.T) {
	// Even a misbuilt domain object with name fields set must not leak
	// them into a verification request.
	payment := models.NewVerificationAchPayment("Checking", "011000015", "12345678")
	payment.FirstName = "Should"
	payment.LastName = "NotAppear"
	payment.Address = &models.Address{City: "Boston"}

	parent := etree.NewElement("paymentDetails")
	require.NoError(t, encodePayment(parent, payment))

	sub := parent.SelectElement("ACH-SSL").SelectElement("verification")
	require.NotNil(t, sub)
	assert.Nil(t, sub.SelectElement("firstName"))
	assert.Nil(t, sub.SelectElement("lastName"))
	assert.Nil(t, sub.SelectElement("address"))
	assert.Equal(t, "Checking", sub.SelectElement("bankAccountType").Text())
	assert.Equal(t, "011000015", sub.SelectElement("routingNumber").Text())
	assert.Equal(t, "12345678", sub.SelectElement("accountNumber").Text())
}

func TestEncodeAchAuthenticationCarriesNameAndAddress(t *testing.T) {
	payment := models.NewAuthenticationAchPayment("Ann", "Payer", &models.Address{
		Address1: "1 Bank Street",
		City:     "Boston",
	})

	parent := etree.NewElement("paymentDetails")
	require.NoError(t, encodePayment(parent, payment))

	sub := parent.SelectElement("ACH-SSL").SelectElement("authentication")
	require.NotNil(t, sub)
	assert.Equal(t, "Ann", sub.SelectElement("firstName").Text())
	assert.Equal(t, "Payer", sub.SelectElement("lastName").Text())
	require.NotNil(t, sub.SelectElement("address"))
	assert.Nil(t, sub.SelectElement("routingNumber"))
	assert.Nil(t, sub.SelectElement("accountNumber"))
}

func TestEncodeAchDepositCarriesNameAndBankFields(t *testing.T) {
	payment := models.NewDepositAchPayment("Ann", "Payer", "Savings", "011000015", "12345678")

	parent := etree.NewElement("paymentDetails")
	require.NoError(t, encodePayment(parent, payment))

	sub := parent.SelectElement("ACH-SSL").SelectElement("deposit")
	require.NotNil(t, sub)
	assert.Equal(t, "Ann", sub.SelectElement("firstName").Text())
	assert.Equal(t, "Savings", sub.SelectElement("bankAccountType").Text())
	assert.Nil(t, sub.SelectElement("address"))
}

func TestEncodeBankRedirectPayment(t *testing.T) {
	payment := NewBankPayment("IDEAL-SSL", "RABOBANK", "https://shop.example/success")
	require.NotNil(t, payment)

	parent := etree.NewElement("paymentDetails")
	require.NoError(t, encodePayment(parent, payment))

	el := parent.SelectElement("IDEAL-SSL")
	require.NotNil(t, el)
	assert.Equal(t, "RABOBANK", el.SelectAttrValue("shopperBankCode", ""))
	assert.Equal(t, "https://shop.example/success", el.SelectElement("successURL").Text())
}

func TestNewBankPaymentUnknownMethodCode(t *testing.T) {
	assert.Nil(t, NewBankPayment("notfound", "RABOBANK", "https://shop.example/success"))
}

func TestEncodeKlarnaPayment(t *testing.T) {
	payment := NewKlarnaPayment("SE", "sv-SE", "extra", "https://shop.example", "https://shop.example/confirm")

	parent := etree.NewElement("paymentDetails")
	require.NoError(t, encodePayment(parent, payment))

	el := parent.SelectElement("KLARNA-SSL")
	require.NotNil(t, el)
	assert.Equal(t, "SE", el.SelectAttrValue("purchaseCountry", ""))
	assert.Equal(t, "sv-SE", el.SelectAttrValue("shopperLocale", ""))
	urls := el.SelectElement("merchantUrls")
	require.NotNil(t, urls)
	assert.Equal(t, "https://shop.example", urls.SelectElement("checkoutURL").Text())
	assert.Equal(t, "https://shop.example/confirm", urls.SelectElement("confirmationURL").Text())
	assert.Equal(t, "extra", el.SelectElement("extraMerchantData").Text())
}

func TestEncodeTokenPayment(t *testing.T) {
	parent := etree.NewElement("paymentDetails")
	require.NoError(t, encodePayment(parent, &models.TokenPayment{PaymentTokenID: "tok-1"}))

	el := parent.SelectElement("TOKEN-SSL")
	require.NotNil(t, el)
	assert.Equal(t, "tok-1", el.SelectElement("paymentTokenID").Text())
}

func TestNormalizeCardBrand(t *testing.T) {
	tests := []struct {
		name    string
		brand   string
		coBrand string
		want    models.PaymentType
	}{
		{"visa carte bleue co-brand", "VISA", "CARTEBLEUE", models.PaymentTypeCarteBleue},
		{"ecmc cb co-brand", "ECMC", "CB", models.PaymentTypeCarteBancaire},
		{"visa alone", "VISA", "", models.PaymentTypeVisa},
		{"ecmc alone", "ECMC", "", models.PaymentTypeMastercard},
		{"amex", "AMEX", "", models.PaymentTypeAmex},
		{"dankort", "DANKORT", "", models.PaymentTypeDankort},
		{"unmatched co-brand falls through to table", "VISA", "SOMETHING", models.PaymentTypeVisa},
		{"unknown brand defaults to generic card", "FUTURECARD", "", models.PaymentTypeCard},
		{"unknown brand with co-brand defaults too", "FUTURECARD", "CB", models.PaymentTypeCard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeCardBrand(tc.brand, tc.coBrand))
		})
	}
}

func TestParseAuthorisedStatusUnknown(t *testing.T) {
	_, err := parseAuthorisedStatus("TELEPORTED")

	var statusErr *UnknownStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "TELEPORTED", statusErr.Status)
}
