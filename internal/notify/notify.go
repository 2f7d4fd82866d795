// internal/notify/notify.go

// Package notify delivers supplier demand requests by email or SMS.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "inventory-assistant/internal/common/errors"
	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/common/metrics"
	"inventory-assistant/internal/models"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

const demandSubject = "Product Demand Request"

// Email is one plain text message.
type Email struct {
	From    string
	To      string
	Subject string
	Body    string
}

// EmailSender is implemented by the SMTP and SES transports.
type EmailSender interface {
	SendEmail(ctx context.Context, msg Email) (string, error)
}

// SMSSender is implemented by the SNS transport.
type SMSSender interface {
	SendSMS(ctx context.Context, phone, text string) (string, error)
}

// Channel is a resolved contact address.
type Channel struct {
	Kind    string
	Address string
}

// Reason explains a failed notification.
type Reason string

const (
	ReasonNotConfigured Reason = "not_configured"
	ReasonSendFailed    Reason = "send_failed"
)

type Result struct {
	OK        bool
	Reason    Reason
	Channel   string
	MessageID string
	Err       error
}

// Dispatcher picks a transport per channel. A nil transport means the
// channel is not configured.
type Dispatcher struct {
	email   EmailSender
	sms     SMSSender
	from    string
	timeout time.Duration
	log     logger.Logger
}

type Option func(*Dispatcher)

func WithEmail(sender EmailSender, from string) Option {
	return func(d *Dispatcher) {
		d.email = sender
		d.from = from
	}
}

func WithSMS(sender SMSSender) Option {
	return func(d *Dispatcher) {
		d.sms = sender
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		d.timeout = timeout
	}
}

func NewDispatcher(log logger.Logger, opts ...Option) *Dispatcher {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	d := &Dispatcher{log: log.With(map[string]interface{}{"component": "notify"})}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ChannelFor chooses how to reach s: email when both sides support it, then
// SMS, then whatever address s has so the send reports not configured.
func (d *Dispatcher) ChannelFor(s models.Supplier) Channel {
	switch {
	case s.Email != "" && d.email != nil:
		return Channel{Kind: ChannelEmail, Address: s.Email}
	case s.Phone != "" && d.sms != nil:
		return Channel{Kind: ChannelSMS, Address: s.Phone}
	case s.Email != "":
		return Channel{Kind: ChannelEmail, Address: s.Email}
	}
	return Channel{Kind: ChannelSMS, Address: s.Phone}
}

// NotifySupplierDemand asks supplier name for quantity of product. It never
// retries; a failure is reported in the Result.
func (d *Dispatcher) NotifySupplierDemand(ctx context.Context, channel Channel, name, product, quantity string) Result {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	log := logger.FromContext(ctx, d.log)

	var (
		id  string
		err error
	)
	switch channel.Kind {
	case ChannelEmail:
		if d.email == nil {
			return d.notConfigured(channel.Kind)
		}
		id, err = d.email.SendEmail(ctx, Email{
			From:    d.from,
			To:      channel.Address,
			Subject: demandSubject,
			Body:    demandBody(name, product, quantity),
		})
	case ChannelSMS:
		if d.sms == nil {
			return d.notConfigured(channel.Kind)
		}
		id, err = d.sms.SendSMS(ctx, channel.Address, demandSMS(name, product, quantity))
	default:
		return d.notConfigured(channel.Kind)
	}

	if err != nil {
		metrics.Notifications.WithLabelValues(channel.Kind, string(ReasonSendFailed)).Inc()
		log.Error("supplier notification failed", map[string]interface{}{
			"channel":  channel.Kind,
			"supplier": name,
			"error":    err.Error(),
		})
		return Result{
			Reason:  ReasonSendFailed,
			Channel: channel.Kind,
			Err:     apperrors.NewNotificationSendFailedError(channel.Kind, err),
		}
	}

	metrics.Notifications.WithLabelValues(channel.Kind, "sent").Inc()
	log.Info("supplier notified", map[string]interface{}{
		"channel":   channel.Kind,
		"supplier":  name,
		"messageId": id,
	})
	return Result{OK: true, Channel: channel.Kind, MessageID: id}
}

func (d *Dispatcher) notConfigured(kind string) Result {
	metrics.Notifications.WithLabelValues(kind, string(ReasonNotConfigured)).Inc()
	d.log.Warn("notification channel not configured", map[string]interface{}{"channel": kind})
	return Result{
		Reason:  ReasonNotConfigured,
		Channel: kind,
		Err:     apperrors.NewNotificationNotConfiguredError(kind),
	}
}

func demandBody(name, product, quantity string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", name)
	b.WriteString("We would like to place an order for:\n\n")
	fmt.Fprintf(&b, "Product: %s\n", product)
	fmt.Fprintf(&b, "Quantity: %s\n\n", quantity)
	b.WriteString("Please confirm availability.\n\n")
	b.WriteString("Regards,\nInventory Management System")
	return b.String()
}

func demandSMS(name, product, quantity string) string {
	return fmt.Sprintf("Hello %s, please supply %s of %s and confirm availability. - Inventory Management System",
		name, quantity, product)
}
