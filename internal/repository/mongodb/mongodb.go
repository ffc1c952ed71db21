package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	hotelsCollection      = "hotels"
	usersCollection       = "users"
	couponsCollection     = "coupons"
	redemptionsCollection = "coupon_redemptions"
)

// DB wraps the client and database. Transactions need a replica set.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func Connect(ctx context.Context, uri, dbName string) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := &DB{Client: client, Database: client.Database(dbName)}
	if err = db.CreateIndexes(ctx); err != nil {
		return nil, fmt.Errorf("create indexes: %w", err)
	}

	return db, nil
}

func (d *DB) CreateIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("user_email_unique"),
			},
			{
				Keys:    bson.D{{Key: "referralCode", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("user_referral_code_unique"),
			},
		},
		hotelsCollection: {
			{
				Keys:    bson.D{{Key: "bookings._id", Value: 1}},
				Options: options.Index().SetName("booking_id"),
			},
			{
				Keys:    bson.D{{Key: "bookings.userId", Value: 1}},
				Options: options.Index().SetName("booking_user"),
			},
			// not unique: wallet bookings index a null key per hotel document
			{
				Keys:    bson.D{{Key: "bookings.paymentIntentId", Value: 1}},
				Options: options.Index().SetName("booking_intent"),
			},
			{
				Keys:    bson.D{{Key: "bookings.checkIn", Value: 1}},
				Options: options.Index().SetName("booking_check_in"),
			},
		},
	}

	for coll, models := range indexes {
		if _, err := d.Database.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}

func (d *DB) Disconnect(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}

// Transactor runs fn inside a session transaction. The session context is
// what repositories receive, so their operations join it.
type Transactor struct {
	client *mongo.Client
}

func NewTransactor(db *DB) *Transactor {
	return &Transactor{client: db.Client}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mongo.SessionFromContext(ctx) != nil {
		return fn(ctx)
	}

	session, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
