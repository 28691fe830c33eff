package notify

import (
	"context"
	"errors"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/plaquexpress/internal/db"
	"github.com/wellywell/plaquexpress/internal/sender"
	"github.com/wellywell/plaquexpress/internal/types"
)

const (
	maxSendAttempts = 3
	maxRetryAfter   = 10 * time.Second
)

type SettingsStore interface {
	GetSettings(ctx context.Context, scope types.Scope) (*types.NotificationSettings, error)
}

type Dispatcher struct {
	settings SettingsStore
	email    sender.Sender
	whatsapp sender.Sender
}

func NewDispatcher(settings SettingsStore, email sender.Sender, whatsapp sender.Sender) *Dispatcher {
	return &Dispatcher{
		settings: settings,
		email:    email,
		whatsapp: whatsapp,
	}
}

// Dispatch notifies every enabled channel about the order and reports what
// happened per channel. It never fails: a missing or unreadable settings
// record means no channel is enabled.
func (d *Dispatcher) Dispatch(ctx context.Context, summary types.OrderSummary) types.DispatchResult {

	log := logger.WithFields(logger.Fields{
		"order_id":     summary.OrderID,
		"order_number": summary.OrderNumber,
	})

	settings := d.loadSettings(ctx, summary.Scope, log)

	outcomes := []types.Outcome{}

	if settings.EmailEnabled && destination(settings.EmailAddress) != "" {
		outcomes = append(outcomes, d.deliver(ctx, types.EmailChannel, d.email,
			destination(settings.EmailAddress), EmailMessage(summary), log))
	}
	if settings.WhatsAppEnabled && destination(settings.WhatsAppNumber) != "" {
		outcomes = append(outcomes, d.deliver(ctx, types.WhatsAppChannel, d.whatsapp,
			destination(settings.WhatsAppNumber), WhatsAppMessage(summary), log))
	}

	return types.NewDispatchResult(outcomes)
}

func (d *Dispatcher) loadSettings(ctx context.Context, scope types.Scope, log *logger.Entry) types.NotificationSettings {
	settings, err := d.settings.GetSettings(ctx, scope)
	if err != nil {
		if errors.Is(err, db.ErrSettingsNotFound) {
			log.Info("No notification settings configured")
		} else {
			log.Errorf("Could not load notification settings, using defaults: %s", err.Error())
		}
		return types.NotificationSettings{}
	}
	return *settings
}

func (d *Dispatcher) deliver(ctx context.Context, channel types.Channel, s sender.Sender, to string, msg sender.Message, log *logger.Entry) types.Outcome {
	log = log.WithField("channel", channel)

	err := retryThrottle(ctx, s, to, msg)
	if err != nil {
		log.Warningf("Notification failed: %s", err.Error())
		return types.Outcome{Channel: channel, Status: types.DeliveryFailed, Error: err.Error()}
	}
	log.Info("Notification sent")
	return types.Outcome{Channel: channel, Status: types.DeliverySent}
}

// retryThrottle resends while the provider asks to slow down, waiting as
// long as it says but never more than maxRetryAfter.
func retryThrottle(ctx context.Context, s sender.Sender, to string, msg sender.Message) error {

	var err error
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		err = s.Send(ctx, to, msg)
		if err == nil {
			return nil
		}
		var errThrottle *sender.ErrThrottle
		if !errors.As(err, &errThrottle) || attempt == maxSendAttempts {
			return err
		}

		wait := errThrottle.RetryAfter
		if wait > maxRetryAfter {
			wait = maxRetryAfter
		}
		logger.Warningf("Provider too many requests, will retry in %s", wait)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}

func destination(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
