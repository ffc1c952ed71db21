package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HotelRepository struct {
	coll *mongo.Collection
}

func NewHotelRepo(db *DB) *HotelRepository {
	return &HotelRepository{coll: db.Database.Collection(hotelsCollection)}
}

// GetByID loads the hotel without its embedded bookings.
func (r *HotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	opts := options.FindOne().SetProjection(bson.M{"bookings": 0})

	var doc hotelDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get hotel: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *HotelRepository) HasOverlap(ctx context.Context, hotelID string, stay domain.StayRange) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": hotelID})
	if err != nil {
		return false, fmt.Errorf("count hotel: %w", err)
	}
	if n == 0 {
		return false, domain.ErrHotelNotFound
	}

	filter := bson.M{"_id": hotelID, "bookings": overlapMatch(stay)}
	n, err = r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	return n > 0, nil
}

// overlapMatch selects an active booking intersecting stay. Intervals are
// half-open, so a checkout on the new check-in day is not a conflict.
func overlapMatch(stay domain.StayRange) bson.M {
	return bson.M{"$elemMatch": bson.M{
		"status":   bson.M{"$ne": string(domain.BookingStatusCancelled)},
		"checkIn":  bson.M{"$lt": stay.CheckOut.UTC()},
		"checkOut": bson.M{"$gt": stay.CheckIn.UTC()},
	}}
}
