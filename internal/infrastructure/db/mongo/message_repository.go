package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tradepost/marketplace-system/internal/core/domain"
)

const messagesCollection = "messages"

// MessageRepository implements ports.MessageRepository using MongoDB.
// Messages are append-only; the only update is the one-way read flag.
type MessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{coll: db.Collection(messagesCollection)}
}

type mongoMessage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	SenderID    string             `bson:"sender_id"`
	RecipientID string             `bson:"recipient_id"`
	ProductID   string             `bson:"product_id,omitempty"`
	Content     string             `bson:"content"`
	Read        bool               `bson:"read"`
	SentAt      time.Time          `bson:"sent_at"`
}

func (mm *mongoMessage) toDomain() *domain.Message {
	return &domain.Message{
		ID:          mm.ID.Hex(),
		SenderID:    mm.SenderID,
		RecipientID: mm.RecipientID,
		ProductID:   mm.ProductID,
		Content:     mm.Content,
		Read:        mm.Read,
		SentAt:      mm.SentAt.UTC(),
	}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMessage{
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		ProductID:   m.ProductID,
		Content:     m.Content,
		Read:        m.Read,
		SentAt:      m.SentAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	created := *m
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id string) (*domain.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMessageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mm mongoMessage
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}
	return mm.toDomain(), nil
}

// ListByParticipant returns every message sent or received by userID,
// newest first.
func (r *MessageRepository) ListByParticipant(ctx context.Context, userID string) ([]*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": userID},
		bson.M{"recipient_id": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: -1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list messages for user: %w", err)
	}
	return decodeMessages(ctx, cur)
}

// ListByProductForUser returns userID's messages on a listing, oldest first.
func (r *MessageRepository) ListByProductForUser(ctx context.Context, productID, userID string) ([]*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"product_id": productID,
		"$or": bson.A{
			bson.M{"sender_id": userID},
			bson.M{"recipient_id": userID},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: 1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list messages for product: %w", err)
	}
	return decodeMessages(ctx, cur)
}

// ListConversation returns the thread between userA and userB on a listing
// in either direction, oldest first.
func (r *MessageRepository) ListConversation(ctx context.Context, productID, userA, userB string) ([]*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"product_id": productID,
		"$or": bson.A{
			bson.M{"sender_id": userA, "recipient_id": userB},
			bson.M{"sender_id": userB, "recipient_id": userA},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: 1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list conversation: %w", err)
	}
	return decodeMessages(ctx, cur)
}

func (r *MessageRepository) MarkRead(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMessageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"recipient_id": recipientID, "read": false})
}

// EnsureIndexes creates the participant and conversation indexes.
func (r *MessageRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "sent_at", Value: -1}}},
		{Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "read", Value: 1}}},
		{Keys: bson.D{{Key: "product_id", Value: 1}, {Key: "sent_at", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeMessages(ctx context.Context, cur *mongo.Cursor) ([]*domain.Message, error) {
	defer cur.Close(ctx)

	var messages []*domain.Message
	for cur.Next(ctx) {
		var mm mongoMessage
		if err := cur.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		messages = append(messages, mm.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return messages, nil
}
