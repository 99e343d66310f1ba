package repository

import (
	"context"
	"errors"
	"time"

	"flightmate-service/internal/domain/entity"
	"flightmate-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationLogRepository implements NotificationLogRepository
type MongoNotificationLogRepository struct {
	collection *mongo.Collection
}

// NewMongoNotificationLogRepository creates a new notification log repository
func NewMongoNotificationLogRepository(db *mongo.Database) repository.NotificationLogRepository {
	collection := db.Collection("notification_log")

	// Unique index so a recipient is recorded at most once per flight
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "flightId", Value: 1}, {Key: "recipientSlackId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoNotificationLogRepository{
		collection: collection,
	}
}

// WasNotified reports whether a delivery for this flight and recipient is
// already on record
func (r *MongoNotificationLogRepository) WasNotified(ctx context.Context, flightID int64, slackID string) (bool, error) {
	filter := bson.M{"flightId": flightID, "recipientSlackId": slackID}
	err := r.collection.FindOne(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Record stores a delivery record
func (r *MongoNotificationLogRepository) Record(ctx context.Context, record *entity.NotificationRecord) error {
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}
	record.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, record)
	return err
}
