package worldpay_hpp

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/ecommkit/worldpay_hpp_sdk/models"
)

// Sender posts a wire request document to the gateway and returns the
// parsed reply envelope. The HTTP Client implements it; tests and callers
// with their own transport inject substitutes.
type Sender interface {
	Send(ctx context.Context, req *etree.Document) (*etree.Document, error)
}

// Client posts XML requests to the gateway over HTTPS with basic auth and,
// when configured, a client certificate.
type Client struct {
	cfg        Config
	httpClient *http.Client
	endpoint   string
	logger     *zap.Logger
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithLogger attaches a structured logger to the client. Without it the
// client is silent.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient creates a gateway client. It validates the configuration and,
// when a P12 path is configured, loads the client certificate and prepares
// a TLS-configured HTTP client.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	if cfg.P12Path != "" {
		tlsCert, err := loadP12Certificate(cfg.P12Path, cfg.P12Password)
		if err != nil {
			return nil, fmt.Errorf("worldpay_hpp: failed to load P12 certificate: %w", err)
		}
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{
				Certificates: []tls.Certificate{tlsCert},
			},
		}
	}

	c := &Client{
		cfg:        cfg,
		httpClient: httpClient,
		endpoint:   cfg.DefaultBaseURL(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Send posts the request document and parses the reply envelope. HTTP and
// transport failures are returned as errors; gateway-level errors inside a
// well-formed reply envelope are left for ParseResponse to surface.
func (c *Client) Send(ctx context.Context, req *etree.Document) (*etree.Document, error) {
	payload, err := req.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("worldpay_hpp: serialize request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("worldpay_hpp: create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "text/xml; charset=utf-8")
	httpReq.SetBasicAuth(c.cfg.MerchantCode, c.cfg.MerchantPassword)

	c.logger.Debug("sending gateway request", zap.String("endpoint", c.endpoint))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("worldpay_hpp: send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("worldpay_hpp: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("gateway returned HTTP error", zap.Int("status", resp.StatusCode))
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       respBody,
			Headers:    resp.Header,
		}
	}

	reply := etree.NewDocument()
	if err := reply.ReadFromBytes(respBody); err != nil {
		return nil, fmt.Errorf("worldpay_hpp: parse reply XML (HTTP %d): %w", resp.StatusCode, err)
	}
	return reply, nil
}

// Authorise submits a direct authorization and returns the parsed
// response. A gateway error envelope is returned as *GatewayError.
func (c *Client) Authorise(ctx context.Context, req AuthoriseRequest) (*models.ServiceResponse, error) {
	doc, err := BuildAuthoriseRequest(req)
	if err != nil {
		return nil, err
	}
	return c.roundTrip(ctx, doc)
}

// UpdateToken submits a stored-token update.
func (c *Client) UpdateToken(ctx context.Context, merchant models.MerchantInfo, token *models.TokenRequest, paymentTokenID string, card *models.CardPayment) (*models.ServiceResponse, error) {
	return c.roundTrip(ctx, BuildUpdateTokenRequest(merchant, token, paymentTokenID, card))
}

// DeleteToken submits a stored-token deletion.
func (c *Client) DeleteToken(ctx context.Context, merchant models.MerchantInfo, token *models.TokenRequest, paymentTokenID, authenticatedShopperID string) (*models.ServiceResponse, error) {
	return c.roundTrip(ctx, BuildDeleteTokenRequest(merchant, token, paymentTokenID, authenticatedShopperID))
}

func (c *Client) roundTrip(ctx context.Context, doc *etree.Document) (*models.ServiceResponse, error) {
	reply, err := c.Send(ctx, doc)
	if err != nil {
		return nil, err
	}
	resp, err := ParseResponse(reply)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		c.logger.Warn("gateway reported error",
			zap.String("code", resp.Error.Code),
			zap.String("message", resp.Error.Message))
		return resp, &GatewayError{Detail: *resp.Error}
	}
	return resp, nil
}
