package ports

import "context"

// NewMessageNotification carries what the outbound channel needs to tell a
// recipient about a message they just received.
type NewMessageNotification struct {
	RecipientEmail string
	SenderName     string
	ProductName    string
	Preview        string
}

// Notifier is the outbound notification channel. Fire-and-forget: no core
// invariant waits on it and its errors never fail the triggering operation.
type Notifier interface {
	NotifyNewMessage(ctx context.Context, n NewMessageNotification)
}
