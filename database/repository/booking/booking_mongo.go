package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"vendora/database"
	"vendora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const repoTimeout = 5 * time.Second

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl    *mongo.Collection
	occurrenceColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &MongoBookingRepo{
		bookingColl:    db.Collection("bookings"),
		occurrenceColl: db.Collection("occurrences"),
	}
}

// Create inserts the booking and its occurrences. The unique index on
// (serviceId, date, startTime, endTime) rejects double-booked slots; a
// duplicate-key failure rolls the booking back and surfaces ErrSlotConflict.
func (repo *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking, occurrences []models.Occurrence) error {
	ctx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	if _, err := repo.bookingColl.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("insert booking failed: %w", err)
	}

	docs := make([]any, 0, len(occurrences))
	for _, occ := range occurrences {
		docs = append(docs, occ)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := repo.occurrenceColl.InsertMany(ctx, docs); err != nil {
		// Undo the booking so a slot conflict leaves no half-written record.
		_, _ = repo.bookingColl.DeleteOne(ctx, bson.M{"id": booking.ID})
		_, _ = repo.occurrenceColl.DeleteMany(ctx, bson.M{"bookingId": booking.ID})
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotConflict
		}
		return fmt.Errorf("insert occurrences failed: %w", err)
	}
	return nil
}

// GetByID retrieves a booking document by ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	var booking models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// UpdateStatus sets a booking's status and refreshes its updatedAt stamp.
func (repo *MongoBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	ctx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	res, err := repo.bookingColl.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating booking status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByService returns all bookings for a service, newest first.
func (repo *MongoBookingRepo) ListByService(ctx context.Context, serviceID string) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{"serviceId": serviceID})
}

// ListByUser returns all bookings made by a user, newest first.
func (repo *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{"userId": userID})
}

func (repo *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// ListOccurrences returns the persisted occurrences for a service on a date.
func (repo *MongoBookingRepo) ListOccurrences(ctx context.Context, serviceID, date string) ([]models.Occurrence, error) {
	ctx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	cursor, err := repo.occurrenceColl.Find(ctx, bson.M{"serviceId": serviceID, "date": date})
	if err != nil {
		return nil, fmt.Errorf("error listing occurrences: %w", err)
	}
	defer cursor.Close(ctx)

	var occurrences []models.Occurrence
	if err := cursor.All(ctx, &occurrences); err != nil {
		return nil, fmt.Errorf("error decoding occurrences: %w", err)
	}
	return occurrences, nil
}

// DeleteOccurrences releases a booking's slot claims, used when a booking
// is rejected or canceled so the slots become bookable again.
func (repo *MongoBookingRepo) DeleteOccurrences(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, repoTimeout)
	defer cancel()

	if _, err := repo.occurrenceColl.DeleteMany(ctx, bson.M{"bookingId": bookingID}); err != nil {
		return fmt.Errorf("error deleting occurrences for booking %s: %w", bookingID, err)
	}
	return nil
}
