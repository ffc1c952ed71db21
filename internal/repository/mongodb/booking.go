package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository struct {
	hotels *mongo.Collection
	users  *mongo.Collection
}

func NewBookingRepo(db *DB) *BookingRepository {
	return &BookingRepository{
		hotels: db.Database.Collection(hotelsCollection),
		users:  db.Database.Collection(usersCollection),
	}
}

// Create pushes the booking onto its hotel in one conditional update, so two
// overlapping creates cannot both match. A card booking's intent is part of
// the same filter; an intent can only settle on the hotel named in its
// metadata, so guarding the hotel document is enough.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	n, err := r.users.CountDocuments(ctx, bson.M{"_id": b.UserID})
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}

	filter := bson.M{
		"_id":      b.HotelID,
		"bookings": bson.M{"$not": overlapMatch(b.Stay())},
	}
	if b.PaymentIntentID != nil {
		n, err = r.hotels.CountDocuments(ctx, bson.M{"bookings.paymentIntentId": *b.PaymentIntentID})
		if err != nil {
			return fmt.Errorf("check payment intent: %w", err)
		}
		if n > 0 {
			return domain.ErrPaymentMismatch
		}
		filter["bookings.paymentIntentId"] = bson.M{"$ne": *b.PaymentIntentID}
	}
	update := bson.M{"$push": bson.M{"bookings": newBookingDoc(b)}}

	res, err := r.hotels.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	n, err = r.hotels.CountDocuments(ctx, bson.M{"_id": b.HotelID})
	if err != nil {
		return fmt.Errorf("check hotel: %w", err)
	}
	if n == 0 {
		return domain.ErrHotelNotFound
	}
	if b.PaymentIntentID != nil {
		n, err = r.hotels.CountDocuments(ctx, bson.M{"_id": b.HotelID, "bookings.paymentIntentId": *b.PaymentIntentID})
		if err != nil {
			return fmt.Errorf("check payment intent: %w", err)
		}
		if n > 0 {
			return fmt.Errorf("%w: intent already settled", domain.ErrPaymentMismatch)
		}
	}
	return domain.ErrSlotUnavailable
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.findOne(ctx, bson.M{"bookings._id": id})
}

func (r *BookingRepository) GetByPaymentIntent(ctx context.Context, intentID string) (*domain.Booking, error) {
	return r.findOne(ctx, bson.M{"bookings.paymentIntentId": intentID})
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus, reason *string) error {
	set := bson.M{
		"bookings.$.status":    string(to),
		"bookings.$.updatedAt": time.Now().UTC(),
	}
	if reason != nil {
		set["bookings.$.cancellationReason"] = *reason
	}

	filter := bson.M{"bookings": bson.M{"$elemMatch": bson.M{"_id": id, "status": string(from)}}}
	res, err := r.hotels.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	n, err := r.hotels.CountDocuments(ctx, bson.M{"bookings._id": id})
	if err != nil {
		return fmt.Errorf("check booking: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingNotFound
	}
	return domain.ErrInvalidTransition
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return r.aggregate(ctx,
		bson.M{"bookings.userId": userID},
		bson.M{"bookings.userId": userID},
		bson.D{{Key: "bookings.checkIn", Value: -1}},
	)
}

func (r *BookingRepository) ListDueReminders(ctx context.Context, from, to time.Time, maxAttempts int) ([]*domain.Booking, error) {
	match := bson.M{
		"bookings.status":           string(domain.BookingStatusCompleted),
		"bookings.reminderSent":     false,
		"bookings.reminderAttempts": bson.M{"$lt": maxAttempts},
		"bookings.checkIn":          bson.M{"$gte": from.UTC(), "$lt": to.UTC()},
	}
	return r.aggregate(ctx,
		bson.M{"bookings.checkIn": bson.M{"$gte": from.UTC(), "$lt": to.UTC()}},
		match,
		bson.D{{Key: "bookings.checkIn", Value: 1}},
	)
}

// MarkReminderSent only flips an unset flag. Marking twice is a no-op.
func (r *BookingRepository) MarkReminderSent(ctx context.Context, id string) error {
	filter := bson.M{"bookings": bson.M{"$elemMatch": bson.M{"_id": id, "reminderSent": false}}}
	res, err := r.hotels.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"bookings.$.reminderSent": true,
		"bookings.$.updatedAt":    time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	n, err := r.hotels.CountDocuments(ctx, bson.M{"bookings._id": id})
	if err != nil {
		return fmt.Errorf("check booking: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) IncReminderAttempts(ctx context.Context, id string) error {
	return r.updateOne(ctx, id, bson.M{"$inc": bson.M{"bookings.$.reminderAttempts": 1}})
}

func (r *BookingRepository) updateOne(ctx context.Context, id string, update bson.M) error {
	res, err := r.hotels.UpdateOne(ctx, bson.M{"bookings._id": id}, update)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// bookingRow is one unwound booking with its hotel id.
type bookingRow struct {
	HotelID string     `bson:"_id"`
	Booking bookingDoc `bson:"bookings"`
}

func (r *BookingRepository) findOne(ctx context.Context, match bson.M) (*domain.Booking, error) {
	res, err := r.aggregate(ctx, match, match, nil)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, domain.ErrBookingNotFound
	}
	return res[0], nil
}

// aggregate narrows hotels with pre, unwinds their bookings and keeps the
// ones matching post.
func (r *BookingRepository) aggregate(ctx context.Context, pre, post bson.M, sort bson.D) ([]*domain.Booking, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: pre}},
		{{Key: "$project", Value: bson.M{"bookings": 1}}},
		{{Key: "$unwind", Value: "$bookings"}},
		{{Key: "$match", Value: post}},
	}
	if len(sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})
	}

	cur, err := r.hotels.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var res []*domain.Booking
	for cur.Next(ctx) {
		var row bookingRow
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		res = append(res, row.Booking.toDomain(row.HotelID))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return res, nil
}
