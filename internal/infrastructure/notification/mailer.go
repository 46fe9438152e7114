package notification

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/happydigitalmarketings/priyam/internal/domain/order"
	"github.com/happydigitalmarketings/priyam/internal/infrastructure/config"
)

// Mailer sends customer-facing transactional email
type Mailer interface {
	// SendOrderConfirmation emails the order confirmation to the address on
	// the order. Callers treat failures as best effort.
	SendOrderConfirmation(ctx context.Context, o *order.Order) error
}

// SMTPMailer delivers mail through a configured SMTP relay
type SMTPMailer struct {
	client   *mail.Client
	from     string
	fromName string
	adminBCC string
	subject  string
	logger   *zap.Logger
}

var _ Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a mailer from SMTP configuration
func NewSMTPMailer(cfg config.SMTPConfig, storeName string, log *zap.Logger) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPMailer{
		client:   client,
		from:     cfg.From,
		fromName: cfg.FromName,
		adminBCC: cfg.AdminBCC,
		subject:  fmt.Sprintf("Order confirmation — %s", storeName),
		logger:   log,
	}, nil
}

// SendOrderConfirmation renders and sends the confirmation email. Orders
// without an email address are skipped silently.
func (m *SMTPMailer) SendOrderConfirmation(ctx context.Context, o *order.Order) error {
	to := o.ShippingAddress.Email
	if to == "" {
		return nil
	}

	html, err := renderOrderConfirmation(o)
	if err != nil {
		return fmt.Errorf("render confirmation for order %s: %w", o.Number, err)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	if m.adminBCC != "" {
		if err := msg.Bcc(m.adminBCC); err != nil {
			return fmt.Errorf("set bcc: %w", err)
		}
	}
	msg.Subject(m.subject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send confirmation for order %s: %w", o.Number, err)
	}

	m.logger.Info("order confirmation sent",
		zap.String("order_number", o.Number),
		zap.String("to", to))
	return nil
}

// NoopMailer is used when SMTP is disabled. It logs and drops every message.
type NoopMailer struct {
	logger *zap.Logger
}

var _ Mailer = (*NoopMailer)(nil)

// NewNoopMailer creates a mailer that discards all email
func NewNoopMailer(log *zap.Logger) *NoopMailer {
	return &NoopMailer{logger: log}
}

func (m *NoopMailer) SendOrderConfirmation(_ context.Context, o *order.Order) error {
	m.logger.Debug("smtp disabled, skipping order confirmation",
		zap.String("order_number", o.Number))
	return nil
}
