// Package notify implements the outbound notification channel. The channel
// is fire-and-forget: nothing in the core waits on it and its failures never
// fail the operation that triggered it.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tradepost/marketplace-system/internal/core/ports"
)

// EmailNotifier emits new-message notifications. The delivery itself is
// delegated to an external mail relay; this implementation records the
// outbound intent in the structured log, which is where a relay integration
// would hook in.
type EmailNotifier struct {
	log zerolog.Logger
}

func NewEmailNotifier(log zerolog.Logger) *EmailNotifier {
	return &EmailNotifier{log: log}
}

// NotifyNewMessage logs the outbound notification asynchronously. The
// request context is deliberately not propagated: a finished request must
// not cancel the notification.
func (n *EmailNotifier) NotifyNewMessage(_ context.Context, notification ports.NewMessageNotification) {
	go func() {
		n.log.Info().
			Str("recipient_email", notification.RecipientEmail).
			Str("sender_name", notification.SenderName).
			Str("product_name", notification.ProductName).
			Str("preview", notification.Preview).
			Msg("new message notification queued")
	}()
}
