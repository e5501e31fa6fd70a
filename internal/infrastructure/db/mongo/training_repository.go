package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

const trainingCollection = "training"

// defaultTrainingItems is the catalog seeded when the collection is empty.
var defaultTrainingItems = []mongoTrainingItem{
	{
		Title:       "Animal Health Basics",
		Type:        "video",
		Description: "Learn the fundamentals of animal health monitoring",
		Content:     "Basic animal health principles and early disease detection.",
		Thumbnail:   "https://images.pexels.com/photos/422218/pexels-photo-422218.jpeg",
	},
	{
		Title:       "Preventive Care Guidelines",
		Type:        "article",
		Description: "Essential preventive care practices for livestock",
		Content:     "Comprehensive guide to vaccination schedules and nutrition.",
		Thumbnail:   "https://images.pexels.com/photos/1108099/pexels-photo-1108099.jpeg",
	},
}

// TrainingRepository serves the training catalog, seeding the default items
// whenever the collection is found empty.
type TrainingRepository struct {
	coll *mongo.Collection
}

func NewTrainingRepository(db *mongo.Database) *TrainingRepository {
	return &TrainingRepository{coll: db.Collection(trainingCollection)}
}

type mongoTrainingItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Type        string             `bson:"type"`
	Description string             `bson:"description"`
	Content     string             `bson:"content"`
	Thumbnail   string             `bson:"thumbnail,omitempty"`
}

func (r *TrainingRepository) List(ctx context.Context) ([]*domain.TrainingItem, error) {
	if err := r.seed(ctx); err != nil {
		return nil, err
	}

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list training items: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.TrainingItem
	for cursor.Next(ctx) {
		var mt mongoTrainingItem
		if err := cursor.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode training item: %w", err)
		}
		out = append(out, &domain.TrainingItem{
			ID:          mt.ID.Hex(),
			Title:       mt.Title,
			Type:        mt.Type,
			Description: mt.Description,
			Content:     mt.Content,
			Thumbnail:   mt.Thumbnail,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate training items: %w", err)
	}
	return out, nil
}

func (r *TrainingRepository) seed(ctx context.Context) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count training items: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(defaultTrainingItems))
	for i, item := range defaultTrainingItems {
		docs[i] = item
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed training items: %w", err)
	}
	return nil
}
