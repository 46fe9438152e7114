package payment

import (
	"errors"
	"strings"
	"time"
)

const defaultRazorpayBaseURL = "https://api.razorpay.com/v1"

// Errors for configuration validation
var (
	ErrRazorpayMissingKeyID     = errors.New("razorpay: missing key ID")
	ErrRazorpayMissingKeySecret = errors.New("razorpay: missing key secret")
	ErrRazorpayInvalidBaseURL   = errors.New("razorpay: base URL must start with http:// or https://")
)

// RazorpayConfig contains configuration for the Razorpay Orders API
type RazorpayConfig struct {
	// KeyID is the API key identifier, used as the basic auth username
	KeyID string
	// KeySecret is the API secret, used for basic auth and signature verification
	KeySecret string
	// BaseURL is the API endpoint root, overridable for testing
	BaseURL string
	// Currency is the ISO currency code for created orders
	Currency string
	// Timeout bounds each API call
	Timeout time.Duration
}

// Validate validates the configuration and fills in defaults
func (c *RazorpayConfig) Validate() error {
	if c.KeyID == "" {
		return ErrRazorpayMissingKeyID
	}
	if c.KeySecret == "" {
		return ErrRazorpayMissingKeySecret
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultRazorpayBaseURL
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return ErrRazorpayInvalidBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Currency == "" {
		c.Currency = "INR"
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return nil
}
