package worldpay_hpp_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	worldpay "github.com/ecommkit/worldpay_hpp_sdk"
	"github.com/ecommkit/worldpay_hpp_sdk/models"
)

func testConfig(baseURL string) worldpay.Config {
	return worldpay.Config{
		MerchantCode:     "MERCHANT",
		MerchantPassword: "password",
		Env:              worldpay.EnvSandbox,
		BaseURL:          baseURL,
	}
}

func testAuthoriseRequest() worldpay.AuthoriseRequest {
	return worldpay.AuthoriseRequest{
		Merchant: models.MerchantInfo{MerchantCode: "MERCHANT"},
		Order: models.BasicOrderInfo{
			OrderCode: "order-1",
			Amount:    &models.Amount{Value: "1930", CurrencyCode: "GBP", Exponent: "2"},
		},
		Payment: &models.CardPayment{
			PaymentType:    models.PaymentTypeVisa,
			Number:         "4444333322221111",
			CardHolderName: "J. Shopper",
			ExpiryDate:     &models.Date{Month: "01", Year: "2030"},
		},
	}
}

const authorisedReplyXML = `<paymentService version="1.4"><reply><orderStatus orderCode="order-1"><payment><paymentMethod>VISA-SSL</paymentMethod><amount value="1930" currencyCode="GBP" exponent="2" debitCreditIndicator="credit"/><lastEvent>AUTHORISED</lastEvent></payment></orderStatus></reply></paymentService>`

func TestClientAuthorise(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, _ := r.BasicAuth()
		gotAuth = user + ":" + pass
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(authorisedReplyXML))
	}))
	defer server.Close()

	client, err := worldpay.NewClient(testConfig(server.URL))
	require.NoError(t, err)

	resp, err := client.Authorise(context.Background(), testAuthoriseRequest())
	require.NoError(t, err)

	assert.Equal(t, "MERCHANT:password", gotAuth)
	assert.Equal(t, "text/xml; charset=utf-8", gotContentType)

	sent := etree.NewDocument()
	require.NoError(t, sent.ReadFromBytes(gotBody))
	order := sent.FindElement("//submit/order")
	require.NotNil(t, order)
	assert.Equal(t, "order-1", order.SelectAttrValue("orderCode", ""))
	require.NotNil(t, order.FindElement("paymentDetails/VISA-SSL"))

	assert.Equal(t, "order-1", resp.OrderCode)
	require.NotNil(t, resp.PaymentReply)
	assert.Equal(t, models.StatusAuthorised, resp.PaymentReply.AuthStatus)
}

func TestClientAuthoriseGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<paymentService version="1.4"><reply><error code="2">Parse error</error></reply></paymentService>`))
	}))
	defer server.Close()

	client, err := worldpay.NewClient(testConfig(server.URL))
	require.NoError(t, err)

	resp, err := client.Authorise(context.Background(), testAuthoriseRequest())

	var gatewayErr *worldpay.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, "2", gatewayErr.Detail.Code)

	// The parsed response is still returned alongside the error.
	require.NotNil(t, resp)
	assert.True(t, resp.IsError())
}

func TestClientHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("gateway unavailable"))
	}))
	defer server.Close()

	client, err := worldpay.NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Authorise(context.Background(), testAuthoriseRequest())

	var httpErr *worldpay.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "gateway unavailable", string(httpErr.Body))
}

func TestClientMalformedReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<paymentService><reply>"))
	}))
	defer server.Close()

	client, err := worldpay.NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Authorise(context.Background(), testAuthoriseRequest())
	require.Error(t, err)
}

func TestClientDeleteToken(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`<paymentService version="1.4"><reply><deleteTokenReceived><paymentTokenID>token-1</paymentTokenID></deleteTokenReceived></reply></paymentService>`))
	}))
	defer server.Close()

	client, err := worldpay.NewClient(testConfig(server.URL))
	require.NoError(t, err)

	token := &models.TokenRequest{TokenEventReference: "evt-1"}
	resp, err := client.DeleteToken(context.Background(), models.MerchantInfo{MerchantCode: "MERCHANT"}, token, "token-1", "shopper-1")
	require.NoError(t, err)

	sent := etree.NewDocument()
	require.NoError(t, sent.ReadFromBytes(gotBody))
	del := sent.FindElement("//modify/paymentTokenDelete")
	require.NotNil(t, del)
	assert.Equal(t, "shopper", del.SelectAttrValue("tokenScope", ""))
	assert.Equal(t, "token-1", del.SelectElement("paymentTokenID").Text())
	assert.Equal(t, "shopper-1", del.SelectElement("authenticatedShopperID").Text())

	require.NotNil(t, resp.DeleteTokenReply)
	assert.Equal(t, "token-1", resp.DeleteTokenReply.PaymentTokenID)
}

func TestNewClientValidatesConfig(t *testing.T) {
	_, err := worldpay.NewClient(worldpay.Config{MerchantPassword: "password"})

	var cfgErr *worldpay.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "MerchantCode", cfgErr.Field)
}
