package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradepost/marketplace-system/internal/core/domain"
	"github.com/tradepost/marketplace-system/internal/core/ports"
)

// UnreadCache abstracts the per-user unread badge cache (Redis). A cache
// failure is never fatal: the count is recomputed from the store.
type UnreadCache interface {
	Get(ctx context.Context, userID string) (int64, bool, error)
	Set(ctx context.Context, userID string, count int64) error
	Invalidate(ctx context.Context, userID string) error
}

// MessageService implements the messaging and conversation engine. Messages
// are stored reference-only; every read path resolves sender, recipient and
// product into summaries, tolerating references whose target was deleted.
type MessageService struct {
	messages ports.MessageRepository
	users    ports.UserRepository
	products ports.ProductRepository
	unread   UnreadCache
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewMessageService(
	messages ports.MessageRepository,
	users ports.UserRepository,
	products ports.ProductRepository,
	unread UnreadCache,
	notifier ports.Notifier,
	log zerolog.Logger,
) *MessageService {
	return &MessageService{
		messages: messages,
		users:    users,
		products: products,
		unread:   unread,
		notifier: notifier,
		log:      log,
	}
}

// Send creates a new message. The recipient must exist; the product, when
// referenced, must exist. Every call creates a new message: there is no
// duplicate suppression and sender == recipient is not rejected.
func (s *MessageService) Send(ctx context.Context, actor domain.Actor, input ports.SendMessageInput) (*ports.MessageView, error) {
	if input.Content == "" {
		return nil, fmt.Errorf("%w: content must not be empty", domain.ErrValidation)
	}

	recipient, err := s.users.FindByID(ctx, input.RecipientID)
	if err != nil {
		return nil, err
	}

	var product *domain.Product
	if input.ProductID != "" {
		product, err = s.products.FindByID(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}
	}

	msg := &domain.Message{
		SenderID:    actor.ID,
		RecipientID: recipient.ID,
		ProductID:   input.ProductID,
		Content:     input.Content,
		Read:        false,
		SentAt:      time.Now().UTC(),
	}

	created, err := s.messages.Create(ctx, msg)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create message")
		return nil, err
	}

	if err := s.unread.Invalidate(ctx, recipient.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", recipient.ID).Msg("failed to invalidate unread cache")
	}

	sender, _ := s.users.FindByID(ctx, actor.ID)
	notification := ports.NewMessageNotification{
		RecipientEmail: recipient.Email,
		Preview:        preview(created.Content),
	}
	if sender != nil {
		notification.SenderName = sender.FirstName + " " + sender.LastName
	}
	if product != nil {
		notification.ProductName = product.Name
	}
	s.notifier.NotifyNewMessage(ctx, notification)

	s.log.Info().
		Str("message_id", created.ID).
		Str("sender_id", created.SenderID).
		Str("recipient_id", created.RecipientID).
		Str("product_id", created.ProductID).
		Msg("message sent")

	return s.resolve(ctx, created), nil
}

// ListForUser returns the actor's inbox, newest first.
func (s *MessageService) ListForUser(ctx context.Context, actor domain.Actor) ([]*ports.MessageView, error) {
	msgs, err := s.messages.ListByParticipant(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return s.resolveAll(ctx, msgs), nil
}

// ListForProduct returns the actor's own threads on a listing, oldest first.
func (s *MessageService) ListForProduct(ctx context.Context, actor domain.Actor, productID string) ([]*ports.MessageView, error) {
	msgs, err := s.messages.ListByProductForUser(ctx, productID, actor.ID)
	if err != nil {
		return nil, err
	}
	return s.resolveAll(ctx, msgs), nil
}

// GetConversation returns the two-party thread on a listing, oldest first.
// Symmetric: either participant gets the identical sequence.
func (s *MessageService) GetConversation(ctx context.Context, actor domain.Actor, otherUserID, productID string) ([]*ports.MessageView, error) {
	msgs, err := s.messages.ListConversation(ctx, productID, actor.ID, otherUserID)
	if err != nil {
		return nil, err
	}
	return s.resolveAll(ctx, msgs), nil
}

// MarkRead transitions a message from unread to read. Recipient only.
// Marking an already-read message again is a no-op success.
func (s *MessageService) MarkRead(ctx context.Context, actor domain.Actor, messageID string) error {
	msg, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		return err
	}
	if !domain.CanMarkMessageRead(actor, msg) {
		return domain.ErrForbidden
	}
	if msg.Read {
		return nil
	}

	if err := s.messages.MarkRead(ctx, messageID); err != nil {
		return err
	}

	if err := s.unread.Invalidate(ctx, actor.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", actor.ID).Msg("failed to invalidate unread cache")
	}
	return nil
}

// UnreadCount returns how many received messages the actor has not read yet,
// served from cache when possible.
func (s *MessageService) UnreadCount(ctx context.Context, actor domain.Actor) (int64, error) {
	if count, ok, err := s.unread.Get(ctx, actor.ID); err == nil && ok {
		return count, nil
	} else if err != nil {
		s.log.Warn().Err(err).Str("user_id", actor.ID).Msg("unread cache read failed, falling back to store")
	}

	count, err := s.messages.CountUnread(ctx, actor.ID)
	if err != nil {
		return 0, err
	}
	if err := s.unread.Set(ctx, actor.ID, count); err != nil {
		s.log.Warn().Err(err).Str("user_id", actor.ID).Msg("failed to set unread cache")
	}
	return count, nil
}

// resolve joins the message's references into a view. A reference whose
// target no longer exists yields a nil summary, never an error: dangling
// senders and listings are tolerated, not filtered.
func (s *MessageService) resolve(ctx context.Context, m *domain.Message) *ports.MessageView {
	view := &ports.MessageView{
		ID:      m.ID,
		Content: m.Content,
		Read:    m.Read,
		SentAt:  m.SentAt,
	}

	view.Sender = s.userSummary(ctx, m.SenderID)
	view.Recipient = s.userSummary(ctx, m.RecipientID)

	if m.ProductID != "" {
		product, err := s.products.FindByID(ctx, m.ProductID)
		if err == nil {
			view.Product = &ports.ProductSummary{ID: product.ID, Name: product.Name, Price: product.Price}
		} else if !errors.Is(err, domain.ErrProductNotFound) {
			s.log.Warn().Err(err).Str("product_id", m.ProductID).Msg("failed to resolve product reference")
		}
	}

	return view
}

func (s *MessageService) resolveAll(ctx context.Context, msgs []*domain.Message) []*ports.MessageView {
	views := make([]*ports.MessageView, 0, len(msgs))
	for _, m := range msgs {
		views = append(views, s.resolve(ctx, m))
	}
	return views
}

func (s *MessageService) userSummary(ctx context.Context, userID string) *ports.UserSummary {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to resolve user reference")
		}
		return nil
	}
	return &ports.UserSummary{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

const previewLen = 80

func preview(content string) string {
	if len(content) <= previewLen {
		return content
	}
	return content[:previewLen] + "..."
}
