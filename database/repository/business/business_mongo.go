package businessRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	businessColl *mongo.Collection
}

// NewMongoBusinessRepo constructs a new instance of MongoBusinessRepo.
func NewMongoBusinessRepo() BusinessRepository {
	return &MongoBusinessRepo{
		businessColl: database.DB().Collection("businesses"),
	}
}

// GetByID retrieves a business by ID.
func (repo *MongoBusinessRepo) GetByID(ctx context.Context, businessID string) (*models.Business, error) {
	var business models.Business
	if err := repo.businessColl.FindOne(ctx, bson.M{"id": businessID}).Decode(&business); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("business with id %s not found", businessID)
		}
		return nil, fmt.Errorf("error fetching business %s: %w", businessID, err)
	}
	return &business, nil
}

// List returns every tenant, newest first.
func (repo *MongoBusinessRepo) List(ctx context.Context) ([]models.Business, error) {
	cursor, err := repo.businessColl.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing businesses: %w", err)
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, fmt.Errorf("error decoding businesses: %w", err)
	}
	return businesses, nil
}

// Create inserts a new business document.
func (repo *MongoBusinessRepo) Create(ctx context.Context, business *models.Business) error {
	if _, err := repo.businessColl.InsertOne(ctx, business); err != nil {
		return fmt.Errorf("error creating business: %w", err)
	}
	return nil
}

// Update replaces a business document by ID.
func (repo *MongoBusinessRepo) Update(ctx context.Context, business *models.Business) error {
	res, err := repo.businessColl.UpdateOne(ctx, bson.M{"id": business.ID}, bson.M{"$set": business})
	if err != nil {
		return fmt.Errorf("error updating business %s: %w", business.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", business.ID)
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the businesses collection.
func (repo *MongoBusinessRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "vertical", Value: 1}, {Key: "active", Value: 1}},
			Options: options.Index().SetName("vertical_active_idx"),
		},
	}

	if _, err := repo.businessColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create business indexes: %w", err)
	}
	return nil
}
