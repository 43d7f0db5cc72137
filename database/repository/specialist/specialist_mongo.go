package specialistRepo

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

// MongoSpecialistRepo implements SpecialistRepository using MongoDB.
type MongoSpecialistRepo struct {
	specialistColl *mongo.Collection
	serviceColl    *mongo.Collection
}

// NewMongoSpecialistRepo constructs a new instance of MongoSpecialistRepo.
func NewMongoSpecialistRepo() SpecialistRepository {
	db := database.DB()
	return &MongoSpecialistRepo{
		specialistColl: db.Collection("specialists"),
		serviceColl:    db.Collection("services"),
	}
}

// GetByID retrieves a specialist by ID.
func (repo *MongoSpecialistRepo) GetByID(ctx context.Context, specialistID string) (*models.Specialist, error) {
	var specialist models.Specialist
	if err := repo.specialistColl.FindOne(ctx, bson.M{"id": specialistID}).Decode(&specialist); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("specialist with id %s not found", specialistID)
		}
		return nil, fmt.Errorf("error fetching specialist %s: %w", specialistID, err)
	}
	return &specialist, nil
}

// ListByBusiness returns all specialists belonging to a business.
func (repo *MongoSpecialistRepo) ListByBusiness(ctx context.Context, businessID string) ([]models.Specialist, error) {
	return repo.list(ctx, bson.M{"business_id": businessID})
}

// ListByVertical returns active specialists across a vertical.
func (repo *MongoSpecialistRepo) ListByVertical(ctx context.Context, businessType string) ([]models.Specialist, error) {
	return repo.list(ctx, bson.M{"business_type": businessType, "active": true})
}

func (repo *MongoSpecialistRepo) list(ctx context.Context, filter bson.M) ([]models.Specialist, error) {
	cursor, err := repo.specialistColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing specialists: %w", err)
	}
	defer cursor.Close(ctx)

	var specialists []models.Specialist
	if err := cursor.All(ctx, &specialists); err != nil {
		return nil, fmt.Errorf("error decoding specialists: %w", err)
	}
	return specialists, nil
}

// Create inserts a new specialist document.
func (repo *MongoSpecialistRepo) Create(ctx context.Context, specialist *models.Specialist) error {
	if _, err := repo.specialistColl.InsertOne(ctx, specialist); err != nil {
		return fmt.Errorf("error creating specialist: %w", err)
	}
	return nil
}

// Update replaces a specialist document by ID.
func (repo *MongoSpecialistRepo) Update(ctx context.Context, specialist *models.Specialist) error {
	res, err := repo.specialistColl.UpdateOne(ctx, bson.M{"id": specialist.ID}, bson.M{"$set": specialist})
	if err != nil {
		return fmt.Errorf("error updating specialist %s: %w", specialist.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("specialist with id %s not found", specialist.ID)
	}
	return nil
}

// Delete removes a specialist by ID.
func (repo *MongoSpecialistRepo) Delete(ctx context.Context, specialistID string) error {
	res, err := repo.specialistColl.DeleteOne(ctx, bson.M{"id": specialistID})
	if err != nil {
		return fmt.Errorf("error deleting specialist %s: %w", specialistID, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("specialist with id %s not found", specialistID)
	}
	return nil
}

// GetService retrieves a service offering by ID.
func (repo *MongoSpecialistRepo) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	var service models.Service
	if err := repo.serviceColl.FindOne(ctx, bson.M{"id": serviceID}).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("service with id %s not found", serviceID)
		}
		return nil, fmt.Errorf("error fetching service %s: %w", serviceID, err)
	}
	return &service, nil
}

// ListServices returns a business's service offerings.
func (repo *MongoSpecialistRepo) ListServices(ctx context.Context, businessID string) ([]models.Service, error) {
	cursor, err := repo.serviceColl.Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("error listing services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

// UpsertService inserts or replaces a service offering.
func (repo *MongoSpecialistRepo) UpsertService(ctx context.Context, service models.Service) error {
	opts := options.Update().SetUpsert(true)
	if _, err := repo.serviceColl.UpdateOne(ctx, bson.M{"id": service.ID}, bson.M{"$set": service}, opts); err != nil {
		return fmt.Errorf("error upserting service %s: %w", service.ID, err)
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on both collections.
func (repo *MongoSpecialistRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	specialistIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "business_id", Value: 1}},
			Options: options.Index().SetName("business_idx"),
		},
		{
			Keys:    bson.D{{Key: "business_type", Value: 1}, {Key: "active", Value: 1}},
			Options: options.Index().SetName("vertical_active_idx"),
		},
	}
	if _, err := repo.specialistColl.Indexes().CreateMany(ctx, specialistIndexes); err != nil {
		return fmt.Errorf("failed to create specialist indexes: %w", err)
	}

	serviceIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "business_id", Value: 1}},
			Options: options.Index().SetName("business_idx"),
		},
	}
	if _, err := repo.serviceColl.Indexes().CreateMany(ctx, serviceIndexes); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}
