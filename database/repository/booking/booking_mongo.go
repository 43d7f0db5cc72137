package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/database"
	"slotify/models"
	"slotify/services/availability"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	return &MongoBookingRepo{
		bookingColl: database.DB().Collection("bookings"),
	}
}

// QueryByDate returns bookings for a date, optionally narrowed to a specialist
// or business vertical. Confirmed and cancelled bookings are both returned;
// callers filter by status.
func (repo *MongoBookingRepo) QueryByDate(ctx context.Context, date, specialistID, businessType string) ([]models.Booking, error) {
	filter := bson.M{"date": date}
	if specialistID != "" {
		filter["specialist_id"] = specialistID
	}
	if businessType != "" {
		filter["business_type"] = businessType
	}

	cursor, err := repo.bookingColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// GetByID retrieves a booking by ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking with id %s not found", bookingID)
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

// ListByUser returns a user's bookings, newest date first.
func (repo *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	cursor, err := repo.bookingColl.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// ListBySpecialist returns a specialist's bookings over a date range.
func (repo *MongoBookingRepo) ListBySpecialist(ctx context.Context, specialistID, startDate, endDate string) ([]models.Booking, error) {
	filter := bson.M{
		"specialist_id": specialistID,
		"date":          bson.M{"$gte": startDate, "$lte": endDate},
	}
	cursor, err := repo.bookingColl.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for specialist %s: %w", specialistID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// Create inserts a booking inside a transaction that re-checks for overlapping
// confirmed bookings. This is the authoritative guard against the race between
// slot computation and submission: a conflicting insert in the gap makes the
// transaction fail with availability.ErrSlotConflict, and the caller must
// re-fetch slots rather than retry the same one.
func (repo *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	newEnd := booking.End()

	txnFn := func(sc mongo.SessionContext) error {
		// Half-open overlap: existing.start < new.end AND existing.end > new.start.
		// End is derived, so the second arm uses an $expr on start+duration.
		filter := bson.M{
			"specialist_id": booking.SpecialistID,
			"date":          booking.Date,
			"status":        models.BookingStatusConfirmed,
			"start":         bson.M{"$lt": newEnd},
			"$expr": bson.M{
				"$gt": bson.A{bson.M{"$add": bson.A{"$start", "$duration_minutes"}}, booking.Start},
			},
		}
		count, err := repo.bookingColl.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if count > 0 {
			return availability.ErrSlotConflict
		}

		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}

// Cancel flips a booking to cancelled. It refuses once the appointment has
// already started; cancelled bookings stop blocking availability immediately.
func (repo *MongoBookingRepo) Cancel(ctx context.Context, bookingID string) error {
	var booking models.Booking
	filter := bson.M{"id": bookingID}
	if err := repo.bookingColl.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("booking with id %s not found", bookingID)
		}
		return fmt.Errorf("error fetching booking with id %s: %w", bookingID, err)
	}

	bookingDate, err := time.Parse("2006-01-02", booking.Date)
	if err != nil {
		return fmt.Errorf("invalid booking date %q: %w", booking.Date, err)
	}
	bookingStartTime := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, time.Local).
		Add(time.Duration(booking.Start) * time.Minute)
	if time.Now().After(bookingStartTime) {
		return fmt.Errorf("cannot cancel booking %s: appointment has already started", bookingID)
	}

	update := bson.M{"$set": bson.M{"status": models.BookingStatusCancelled}}
	if _, err := repo.bookingColl.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("error cancelling booking %s: %w", bookingID, err)
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (repo *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Conflict check and availability query pattern.
		{
			Keys:    bson.D{{Key: "specialist_id", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().SetName("specialist_date_status_start_idx"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("user_date_idx"),
		},
	}

	if _, err := repo.bookingColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
