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

const scansCollection = "scans"

type ScanRepository struct {
	coll *mongo.Collection
}

func NewScanRepository(db *mongo.Database) *ScanRepository {
	return &ScanRepository{coll: db.Collection(scansCollection)}
}

type mongoRecommendations struct {
	Treatable        bool   `bson:"treatable"`
	Message          string `bson:"message"`
	MonitoringAdvice string `bson:"monitoring_advice"`
}

type mongoScan struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	UserID          string               `bson:"user_id"`
	AnimalID        string               `bson:"animal_id,omitempty"`
	Result          string               `bson:"result"`
	Confidence      float64              `bson:"confidence"`
	ImagePath       string               `bson:"image_path"`
	Notes           string               `bson:"notes,omitempty"`
	Timestamp       time.Time            `bson:"timestamp"`
	Reviewed        bool                 `bson:"reviewed"`
	AnimalType      string               `bson:"animal_type"`
	Observations    string               `bson:"observations,omitempty"`
	KeyIssues       []string             `bson:"key_issues,omitempty"`
	Recommendations mongoRecommendations `bson:"recommendations"`
}

func (r *ScanRepository) Create(ctx context.Context, scan *domain.Scan) error {
	doc := toMongoScan(scan)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		scan.ID = oid.Hex()
	}
	return nil
}

func (r *ScanRepository) List(ctx context.Context, ownerID string) ([]*domain.Scan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, ownerFilter(ownerID), opts)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeScans(ctx, cursor)
}

func (r *ScanRepository) ListRecent(ctx context.Context, ownerID string, n int) ([]*domain.Scan, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(n))
	cursor, err := r.coll.Find(ctx, ownerFilter(ownerID), opts)
	if err != nil {
		return nil, fmt.Errorf("list recent scans: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeScans(ctx, cursor)
}

func (r *ScanRepository) CountByResult(ctx context.Context, ownerID string, result domain.ScanResult) (int64, error) {
	filter := ownerFilter(ownerID)
	if result != "" {
		filter["result"] = string(result)
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count scans: %w", err)
	}
	return count, nil
}

// ownerFilter builds the visibility filter shared by all owner-scoped
// repositories: empty ownerID means no restriction (admin scope).
func ownerFilter(ownerID string) bson.M {
	if ownerID == "" {
		return bson.M{}
	}
	return bson.M{"user_id": ownerID}
}

func decodeScans(ctx context.Context, cursor *mongo.Cursor) ([]*domain.Scan, error) {
	var out []*domain.Scan
	for cursor.Next(ctx) {
		var ms mongoScan
		if err := cursor.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode scan: %w", err)
		}
		out = append(out, fromMongoScan(ms))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate scans: %w", err)
	}
	return out, nil
}

func toMongoScan(s *domain.Scan) mongoScan {
	return mongoScan{
		UserID:       s.UserID,
		AnimalID:     s.AnimalID,
		Result:       string(s.Result),
		Confidence:   s.Confidence,
		ImagePath:    s.ImagePath,
		Notes:        s.Notes,
		Timestamp:    s.Timestamp,
		Reviewed:     s.Reviewed,
		AnimalType:   s.AnimalType,
		Observations: s.Observations,
		KeyIssues:    s.KeyIssues,
		Recommendations: mongoRecommendations{
			Treatable:        s.Recommendations.Treatable,
			Message:          s.Recommendations.Message,
			MonitoringAdvice: s.Recommendations.MonitoringAdvice,
		},
	}
}

func fromMongoScan(ms mongoScan) *domain.Scan {
	return &domain.Scan{
		ID:           ms.ID.Hex(),
		UserID:       ms.UserID,
		AnimalID:     ms.AnimalID,
		Result:       domain.ScanResult(ms.Result),
		Confidence:   ms.Confidence,
		ImagePath:    ms.ImagePath,
		Notes:        ms.Notes,
		Timestamp:    ms.Timestamp.UTC(),
		Reviewed:     ms.Reviewed,
		AnimalType:   ms.AnimalType,
		Observations: ms.Observations,
		KeyIssues:    ms.KeyIssues,
		Recommendations: domain.Recommendations{
			Treatable:        ms.Recommendations.Treatable,
			Message:          ms.Recommendations.Message,
			MonitoringAdvice: ms.Recommendations.MonitoringAdvice,
		},
	}
}
