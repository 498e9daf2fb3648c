package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Insert persists r with a fresh id and returns the stored form.
func (s *Store) Insert(ctx context.Context, r Reservation) (Reservation, error) {
	res, err := s.col.InsertOne(ctx, r)
	if err != nil {
		return Reservation{}, err
	}
	r.ID = res.InsertedID.(primitive.ObjectID)
	return r, nil
}

// FindByID returns the reservation with the given hex id.
// Returns ErrInvalidID for malformed ids and ErrNotFound when no record matches.
func (s *Store) FindByID(ctx context.Context, id string) (Reservation, error) {
	oid, err := parseID(id)
	if err != nil {
		return Reservation{}, err
	}
	var r Reservation
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Reservation{}, ErrNotFound
	}
	if err != nil {
		return Reservation{}, err
	}
	return r, nil
}

// FindByField returns every reservation whose named field equals value.
// The cursor is drained before returning; an unmatched value yields an empty
// slice, not an error.
func (s *Store) FindByField(ctx context.Context, field, value string) ([]Reservation, error) {
	cur, err := s.col.Find(ctx, bson.M{field: value})
	if err != nil {
		return nil, err
	}
	out := []Reservation{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll returns every stored reservation. Order is unspecified.
func (s *Store) ListAll(ctx context.Context) ([]Reservation, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := []Reservation{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the record with the given id by r (the id itself is kept).
// Returns ErrNotFound when no record matches.
func (s *Store) Update(ctx context.Context, id string, r Reservation) (Reservation, error) {
	oid, err := parseID(id)
	if err != nil {
		return Reservation{}, err
	}
	r.ID = oid
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": oid}, r)
	if err != nil {
		return Reservation{}, err
	}
	if res.MatchedCount == 0 {
		return Reservation{}, ErrNotFound
	}
	return r, nil
}

// DeleteByID removes the record with the given id. Returns true if a record
// existed, false when nothing matched.
func (s *Store) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
