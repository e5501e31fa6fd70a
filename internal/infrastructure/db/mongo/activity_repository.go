package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

const activityCollection = "activity"

// ActivityRepository is the audit-trail sink fed by the activity dispatcher.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	UserID    string    `bson:"user_id"`
	Kind      string    `bson:"kind"`
	RefID     string    `bson:"ref_id,omitempty"`
	Detail    string    `bson:"detail,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *ActivityRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	doc := mongoActivity{
		UserID:    event.UserID,
		Kind:      event.Kind,
		RefID:     event.RefID,
		Detail:    event.Detail,
		Timestamp: event.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}
	return nil
}
