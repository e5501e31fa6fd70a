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

const complianceCollection = "compliance"

type ComplianceRepository struct {
	coll *mongo.Collection
}

func NewComplianceRepository(db *mongo.Database) *ComplianceRepository {
	return &ComplianceRepository{coll: db.Collection(complianceCollection)}
}

type mongoCompliance struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description,omitempty"`
	Category     string             `bson:"category"`
	DocumentPath string             `bson:"document_path,omitempty"`
	Timestamp    time.Time          `bson:"timestamp"`
	Status       string             `bson:"status"`
	ReviewedBy   string             `bson:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time         `bson:"reviewed_at,omitempty"`
}

func (r *ComplianceRepository) Create(ctx context.Context, record *domain.ComplianceRecord) error {
	doc := mongoCompliance{
		UserID:       record.UserID,
		Title:        record.Title,
		Description:  record.Description,
		Category:     record.Category,
		DocumentPath: record.DocumentPath,
		Timestamp:    record.Timestamp,
		Status:       string(record.Status),
		ReviewedBy:   record.ReviewedBy,
		ReviewedAt:   record.ReviewedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert compliance record: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid.Hex()
	}
	return nil
}

func (r *ComplianceRepository) List(ctx context.Context, ownerID string) ([]*domain.ComplianceRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, ownerFilter(ownerID), opts)
	if err != nil {
		return nil, fmt.Errorf("list compliance records: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.ComplianceRecord
	for cursor.Next(ctx) {
		var mc mongoCompliance
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode compliance record: %w", err)
		}
		out = append(out, fromMongoCompliance(mc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate compliance records: %w", err)
	}
	return out, nil
}

func (r *ComplianceRepository) CountByStatus(ctx context.Context, ownerID string, status domain.ComplianceStatus) (int64, error) {
	filter := ownerFilter(ownerID)
	filter["status"] = string(status)
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count compliance records: %w", err)
	}
	return count, nil
}

func fromMongoCompliance(mc mongoCompliance) *domain.ComplianceRecord {
	return &domain.ComplianceRecord{
		ID:           mc.ID.Hex(),
		UserID:       mc.UserID,
		Title:        mc.Title,
		Description:  mc.Description,
		Category:     mc.Category,
		DocumentPath: mc.DocumentPath,
		Timestamp:    mc.Timestamp.UTC(),
		Status:       domain.ComplianceStatus(mc.Status),
		ReviewedBy:   mc.ReviewedBy,
		ReviewedAt:   mc.ReviewedAt,
	}
}
