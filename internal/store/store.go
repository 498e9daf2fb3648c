package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sentinel errors returned by lookup/update operations so handlers can map
// them to status codes without inspecting driver error types.
var (
	ErrNotFound  = errors.New("reservation not found")
	ErrInvalidID = errors.New("invalid reservation id")
)

// Status is the reservation lifecycle state. There are no automatic
// transitions; it only changes through explicit update requests.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Reservation is one borrowing record. The id is assigned by Mongo on insert
// and rendered as hex on the wire.
type Reservation struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID             string             `bson:"userId" json:"userId"`
	BookID             string             `bson:"bookId" json:"bookId"`
	ReservationDate    time.Time          `bson:"reservationDate" json:"reservationDate"`
	ExpectedReturnDate time.Time          `bson:"expectedReturnDate" json:"expectedReturnDate"`
	Status             Status             `bson:"status" json:"status"`
}

const collectionName = "reservations"

// Store is the Mongo-backed reservation collection.
type Store struct {
	client *mongo.Client
	col    *mongo.Collection
}

// Open connects to Mongo, verifies the connection with a ping, and returns a
// Store bound to the reservations collection of the given database.
func Open(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &Store{
		client: client,
		col:    client.Database(database).Collection(collectionName),
	}, nil
}

func (s *Store) Close(ctx context.Context) error { return s.client.Disconnect(ctx) }

// EnsureIndexes creates the lookup indexes for the by-user and by-book
// queries. Safe to call on every startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "bookId", Value: 1}}},
	})
	return err
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
