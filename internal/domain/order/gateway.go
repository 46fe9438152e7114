package order

import (
	"context"

	"github.com/happydigitalmarketings/priyam/internal/domain/shared/valueobject"
)

// PaymentSession is one gateway checkout attempt: the provider's own order
// id plus the amount and currency the hosted widget will charge.
type PaymentSession struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units (paise)
	Currency string `json:"currency"`
}

// PaymentGateway is the port to the hosted payment provider
type PaymentGateway interface {
	// CreateSession creates a gateway order for the amount and returns the
	// session descriptor handed to the hosted widget.
	CreateSession(ctx context.Context, amount valueobject.Money, receipt string) (*PaymentSession, error)
	// VerifySignature checks the callback signature over the gateway order
	// id and payment id. Returns nil when the signature is authentic.
	VerifySignature(gatewayOrderID, paymentID, signature string) error
}
