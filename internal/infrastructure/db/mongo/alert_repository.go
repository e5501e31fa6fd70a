package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

const alertsCollection = "alerts"

type AlertRepository struct {
	coll *mongo.Collection
}

func NewAlertRepository(db *mongo.Database) *AlertRepository {
	return &AlertRepository{coll: db.Collection(alertsCollection)}
}

type mongoAlert struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Type      string             `bson:"type"`
	Title     string             `bson:"title"`
	Message   string             `bson:"message"`
	Priority  string             `bson:"priority"`
	Timestamp time.Time          `bson:"timestamp"`
	Read      bool               `bson:"read"`
}

func (r *AlertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	doc := mongoAlert{
		UserID:    alert.UserID,
		Type:      alert.Type,
		Title:     alert.Title,
		Message:   alert.Message,
		Priority:  alert.Priority,
		Timestamp: alert.Timestamp,
		Read:      alert.Read,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		alert.ID = oid.Hex()
	}
	return nil
}

func (r *AlertRepository) List(ctx context.Context, ownerID string) ([]*domain.Alert, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, ownerFilter(ownerID), opts)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Alert
	for cursor.Next(ctx) {
		var ma mongoAlert
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode alert: %w", err)
		}
		out = append(out, fromMongoAlert(ma))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate alerts: %w", err)
	}
	return out, nil
}

// MarkRead is idempotent: updating an already-read alert matches the filter
// and succeeds without modifying anything.
func (r *AlertRepository) MarkRead(ctx context.Context, id, ownerID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAlertNotFound
	}

	filter := ownerFilter(ownerID)
	filter["_id"] = oid

	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAlertNotFound
	}
	return nil
}

func (r *AlertRepository) CountUnread(ctx context.Context, ownerID string) (int64, error) {
	filter := ownerFilter(ownerID)
	filter["read"] = false
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count unread alerts: %w", err)
	}
	return count, nil
}

func fromMongoAlert(ma mongoAlert) *domain.Alert {
	return &domain.Alert{
		ID:        ma.ID.Hex(),
		UserID:    ma.UserID,
		Type:      ma.Type,
		Title:     ma.Title,
		Message:   ma.Message,
		Priority:  ma.Priority,
		Timestamp: ma.Timestamp.UTC(),
		Read:      ma.Read,
	}
}
