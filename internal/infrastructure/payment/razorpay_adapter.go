package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/happydigitalmarketings/priyam/internal/domain/order"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared/valueobject"
)

// Errors returned by the adapter
var (
	ErrRazorpaySignatureMismatch = shared.NewDomainError("PAYMENT_SIGNATURE_MISMATCH", "Payment signature verification failed")
	ErrRazorpayMissingSignature  = shared.NewDomainError("PAYMENT_SIGNATURE_MISSING", "Payment signature fields are required")
)

// RazorpayAdapter implements the order.PaymentGateway port against the
// Razorpay Orders API
type RazorpayAdapter struct {
	config     *RazorpayConfig
	httpClient *http.Client
}

var _ order.PaymentGateway = (*RazorpayAdapter)(nil)

// NewRazorpayAdapter creates a new Razorpay adapter
func NewRazorpayAdapter(config *RazorpayConfig) (*RazorpayAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &RazorpayAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// CreateSession creates a gateway order for the given amount. The amount is
// converted to paise, the smallest currency unit the API accepts.
func (a *RazorpayAdapter) CreateSession(ctx context.Context, amount valueobject.Money, receipt string) (*order.PaymentSession, error) {
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_AMOUNT", "Payment amount must be positive")
	}

	reqBody := razorpayCreateOrderRequest{
		Amount:   amount.Paise(),
		Currency: a.config.Currency,
		Receipt:  receipt,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("razorpay: marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.BaseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("razorpay: build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(a.config.KeyID, a.config.KeySecret)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("razorpay: create order: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("razorpay: read order response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr razorpayErrorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Description != "" {
			return nil, fmt.Errorf("razorpay: create order failed (%s): %s", apiErr.Error.Code, apiErr.Error.Description)
		}
		return nil, fmt.Errorf("razorpay: create order failed with status %d", resp.StatusCode)
	}

	var orderResp razorpayOrderResponse
	if err := json.Unmarshal(body, &orderResp); err != nil {
		return nil, fmt.Errorf("razorpay: decode order response: %w", err)
	}
	if orderResp.ID == "" {
		return nil, fmt.Errorf("razorpay: order response missing id")
	}

	return &order.PaymentSession{
		ID:       orderResp.ID,
		Amount:   orderResp.Amount,
		Currency: orderResp.Currency,
	}, nil
}

// VerifySignature checks the HMAC-SHA256 signature Razorpay computes over
// "<gateway order id>|<payment id>" with the key secret. The comparison is
// constant time.
func (a *RazorpayAdapter) VerifySignature(gatewayOrderID, paymentID, signature string) error {
	if gatewayOrderID == "" || paymentID == "" || signature == "" {
		return ErrRazorpayMissingSignature
	}

	mac := hmac.New(sha256.New, []byte(a.config.KeySecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrRazorpaySignatureMismatch
	}
	return nil
}
