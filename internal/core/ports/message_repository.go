package ports

import (
	"context"

	"github.com/tradepost/marketplace-system/internal/core/domain"
)

// MessageRepository defines persistence operations for messages. There is no
// delete: messages are append-only apart from the one-way read flag.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	// ListByParticipant returns every message sent or received by userID,
	// newest first (the inbox ordering).
	ListByParticipant(ctx context.Context, userID string) ([]*domain.Message, error)
	// ListByProductForUser returns userID's messages on the given product,
	// oldest first.
	ListByProductForUser(ctx context.Context, productID, userID string) ([]*domain.Message, error)
	// ListConversation returns all messages on productID exchanged between
	// userA and userB in either direction, oldest first.
	ListConversation(ctx context.Context, productID, userA, userB string) ([]*domain.Message, error)
	// MarkRead sets read=true. Already-read messages are left untouched.
	MarkRead(ctx context.Context, id string) error
	CountUnread(ctx context.Context, recipientID string) (int64, error)
}
