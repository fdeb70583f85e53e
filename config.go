package worldpay_hpp

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ecommkit/worldpay_hpp_sdk/models"
)

// Environment selects the gateway endpoint set (sandbox or production).
type Environment string

const (
	EnvSandbox    Environment = "sandbox"
	EnvProduction Environment = "production"
)

// Config holds the credentials and settings needed to talk to the payment
// gateway.
type Config struct {
	// MerchantCode is the gateway merchant identifier.
	MerchantCode string

	// MerchantPassword authenticates the XML channel via HTTP basic auth.
	MerchantPassword string

	// MacSecret is the shared secret used to verify redirect callback MACs.
	MacSecret string

	// UseMacValidation enables MAC validation of redirect callbacks.
	UseMacValidation bool

	// MerchantTokenEnabled scopes stored payment tokens to the merchant
	// instead of the authenticated shopper.
	MerchantTokenEnabled bool

	// Env selects sandbox or production endpoints.
	Env Environment

	// BaseURL optionally overrides the XML endpoint URL.
	// When empty, the URL is derived from Env.
	BaseURL string

	// P12Path optionally points to a P12/PFX certificate file used for
	// client-certificate (mutual TLS) transport auth. Leave empty to use
	// basic auth only.
	P12Path string

	// P12Password is the password that protects the P12 file.
	P12Password string
}

// Validate checks that the required configuration fields are present.
func (c Config) Validate() error {
	if c.MerchantCode == "" {
		return &ConfigurationError{Field: "MerchantCode"}
	}
	if c.MerchantPassword == "" {
		return &ConfigurationError{Field: "MerchantPassword"}
	}
	if c.UseMacValidation && c.MacSecret == "" {
		return &ConfigurationError{Field: "MacSecret"}
	}
	return nil
}

// DefaultBaseURL returns the XML endpoint for the configured environment.
func (c Config) DefaultBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if c.Env == EnvProduction {
		return "https://secure.worldpay.com/jsp/merchant/xml/paymentService.jsp"
	}
	return "https://secure-test.worldpay.com/jsp/merchant/xml/paymentService.jsp"
}

// MerchantInfo derives the per-call merchant identity from the config.
func (c Config) MerchantInfo() models.MerchantInfo {
	return models.MerchantInfo{
		MerchantCode:       c.MerchantCode,
		SharedSecret:       c.MacSecret,
		UsingMacValidation: c.UseMacValidation,
	}
}

// LoadConfigFromEnv creates a Config from environment variables:
//
//	WORLDPAY_MERCHANT_CODE          – merchant identifier (required)
//	WORLDPAY_MERCHANT_PASSWORD      – XML channel password (required)
//	WORLDPAY_MAC_SECRET             – redirect MAC shared secret
//	WORLDPAY_USE_MAC_VALIDATION     – "true" to verify callback MACs
//	WORLDPAY_MERCHANT_TOKEN_ENABLED – "true" for merchant-scoped tokens
//	WORLDPAY_ENV                    – "sandbox" (default) or "production"
//	WORLDPAY_BASE_URL               – optional XML endpoint override
//	WORLDPAY_P12_PATH               – optional P12 certificate for mutual TLS
//	WORLDPAY_P12_PASSWORD           – P12 file password
func LoadConfigFromEnv() Config {
	return configFromEnv()
}

// LoadConfigFromDotEnv loads environment variables from a .env file and then
// reads the Config from them. If the file does not exist it silently falls
// back to the current process environment.
func LoadConfigFromDotEnv(filenames ...string) Config {
	// godotenv.Load does NOT override existing env vars.
	_ = godotenv.Load(filenames...)
	return configFromEnv()
}

func configFromEnv() Config {
	env := EnvSandbox
	if os.Getenv("WORLDPAY_ENV") == "production" {
		env = EnvProduction
	}

	return Config{
		MerchantCode:         os.Getenv("WORLDPAY_MERCHANT_CODE"),
		MerchantPassword:     os.Getenv("WORLDPAY_MERCHANT_PASSWORD"),
		MacSecret:            os.Getenv("WORLDPAY_MAC_SECRET"),
		UseMacValidation:     os.Getenv("WORLDPAY_USE_MAC_VALIDATION") == "true",
		MerchantTokenEnabled: os.Getenv("WORLDPAY_MERCHANT_TOKEN_ENABLED") == "true",
		Env:                  env,
		BaseURL:              os.Getenv("WORLDPAY_BASE_URL"),
		P12Path:              os.Getenv("WORLDPAY_P12_PATH"),
		P12Password:          os.Getenv("WORLDPAY_P12_PASSWORD"),
	}
}
