package availabilityRepo

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

// MongoWorkingHoursRepo implements WorkingHoursRepository using MongoDB.
type MongoWorkingHoursRepo struct {
	windowColl *mongo.Collection
}

// NewMongoWorkingHoursRepo constructs a new instance of MongoWorkingHoursRepo.
func NewMongoWorkingHoursRepo() WorkingHoursRepository {
	return &MongoWorkingHoursRepo{
		windowColl: database.DB().Collection("availability_windows"),
	}
}

// Query returns all windows for a specialist whose date falls in
// [startDate, endDate]. Dates are "YYYY-MM-DD" strings compared lexically,
// which matches calendar order. Both available and override windows are
// returned; callers filter.
func (repo *MongoWorkingHoursRepo) Query(ctx context.Context, specialistID, businessType, startDate, endDate string) ([]models.AvailabilityWindow, error) {
	filter := bson.M{
		"specialist_id": specialistID,
		"date":          bson.M{"$gte": startDate, "$lte": endDate},
	}
	if businessType != "" {
		filter["business_type"] = businessType
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := repo.windowColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching availability windows for specialist %s: %w", specialistID, err)
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("error decoding availability windows: %w", err)
	}
	return windows, nil
}

// Upsert inserts or replaces a window by ID.
func (repo *MongoWorkingHoursRepo) Upsert(ctx context.Context, window models.AvailabilityWindow) error {
	filter := bson.M{"id": window.ID}
	update := bson.M{"$set": window}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.windowColl.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting availability window %s: %w", window.ID, err)
	}
	return nil
}

// ReplaceForDate atomically swaps a specialist's windows for one date.
func (repo *MongoWorkingHoursRepo) ReplaceForDate(ctx context.Context, specialistID, date string, windows []models.AvailabilityWindow) error {
	if _, err := repo.windowColl.DeleteMany(ctx, bson.M{"specialist_id": specialistID, "date": date}); err != nil {
		return fmt.Errorf("error clearing windows for specialist %s on %s: %w", specialistID, date, err)
	}
	if len(windows) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(windows))
	for _, w := range windows {
		docs = append(docs, w)
	}
	if _, err := repo.windowColl.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error inserting windows for specialist %s on %s: %w", specialistID, date, err)
	}
	return nil
}

// Delete removes a window by ID.
func (repo *MongoWorkingHoursRepo) Delete(ctx context.Context, windowID string) error {
	res, err := repo.windowColl.DeleteOne(ctx, bson.M{"id": windowID})
	if err != nil {
		return fmt.Errorf("error deleting availability window %s: %w", windowID, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("availability window %s not found", windowID)
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the windows collection.
func (repo *MongoWorkingHoursRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: specialist + date range.
		{
			Keys:    bson.D{{Key: "specialist_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("specialist_date_idx"),
		},
	}

	if _, err := repo.windowColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create availability window indexes: %w", err)
	}
	return nil
}
