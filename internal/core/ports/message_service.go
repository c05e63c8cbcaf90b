package ports

import (
	"context"
	"time"

	"github.com/tradepost/marketplace-system/internal/core/domain"
)

// SendMessageInput carries a validated outgoing message. ProductID is
// optional; when present it must resolve to an existing listing.
type SendMessageInput struct {
	RecipientID string
	ProductID   string
	Content     string
}

// UserSummary is the read-side projection of a message participant.
// Nil in MessageView when the referenced user no longer exists.
type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// ProductSummary is the read-side projection of the listing a message is
// scoped to. Nil in MessageView when the listing was deleted or never set.
type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// MessageView is a message with its references resolved. Dangling references
// are tolerated: the message is always returned, the summary may be nil.
type MessageView struct {
	ID        string          `json:"id"`
	Sender    *UserSummary    `json:"sender"`
	Recipient *UserSummary    `json:"recipient"`
	Product   *ProductSummary `json:"product,omitempty"`
	Content   string          `json:"content"`
	Read      bool            `json:"read"`
	SentAt    time.Time       `json:"sent_at"`
}

// MessageService defines the messaging and conversation use cases.
type MessageService interface {
	Send(ctx context.Context, actor domain.Actor, input SendMessageInput) (*MessageView, error)
	// ListForUser returns the actor's inbox: every message they sent or
	// received, newest first.
	ListForUser(ctx context.Context, actor domain.Actor) ([]*MessageView, error)
	// ListForProduct returns the actor's own threads on a listing, oldest first.
	ListForProduct(ctx context.Context, actor domain.Actor, productID string) ([]*MessageView, error)
	// GetConversation returns the two-party thread on a listing, oldest
	// first. Either participant sees the identical sequence.
	GetConversation(ctx context.Context, actor domain.Actor, otherUserID, productID string) ([]*MessageView, error)
	// MarkRead flips the read flag. Recipient only; idempotent.
	MarkRead(ctx context.Context, actor domain.Actor, messageID string) error
	UnreadCount(ctx context.Context, actor domain.Actor) (int64, error)
}
