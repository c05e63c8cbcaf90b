package domain

import "time"

// Message is a single product-scoped message between two users. Messages are
// stored reference-only: sender, recipient and product are IDs, resolved into
// summaries at read time. Once created only the Read flag ever changes, and
// only from false to true.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	// ProductID scopes the message to a listing. Empty when the sender did
	// not reference one.
	ProductID string    `json:"product_id,omitempty"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	SentAt    time.Time `json:"sent_at"`
}

// Involves reports whether userID is the sender or the recipient.
func (m *Message) Involves(userID string) bool {
	return m.SenderID == userID || m.RecipientID == userID
}
