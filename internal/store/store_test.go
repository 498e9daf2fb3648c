package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore connects to a local Mongo instance, or skips the test when
// none is reachable. The test collection is dropped afterwards.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	s, err := Open(ctx, uri, "library_test")
	if err != nil {
		t.Skipf("mongo not available, skipping integration test: %v", err)
	}
	t.Cleanup(func() {
		_ = s.col.Drop(context.Background())
		_ = s.Close(context.Background())
	})
	return s
}

func testReservation(userID, bookID string) Reservation {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return Reservation{
		UserID:             userID,
		BookID:             bookID,
		ReservationDate:    now,
		ExpectedReturnDate: now.Add(14 * 24 * time.Hour),
		Status:             StatusActive,
	}
}

func TestInsertFindRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := testReservation("u1", "b1")
	created, err := s.Insert(ctx, in)
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	got, err := s.FindByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, in.UserID, got.UserID)
	assert.Equal(t, in.BookID, got.BookID)
	assert.True(t, got.ReservationDate.Equal(in.ReservationDate))
	assert.True(t, got.ExpectedReturnDate.Equal(in.ExpectedReturnDate))
	assert.Equal(t, in.Status, got.Status)
}

func TestFindByIDMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.FindByID(context.Background(), "65b000000000000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByField(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, r := range []Reservation{
		testReservation("alice", "b1"),
		testReservation("alice", "b2"),
		testReservation("bob", "b1"),
	} {
		_, err := s.Insert(ctx, r)
		require.NoError(t, err)
	}

	byUser, err := s.FindByField(ctx, "userId", "alice")
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	for _, r := range byUser {
		assert.Equal(t, "alice", r.UserID)
	}

	byBook, err := s.FindByField(ctx, "bookId", "b1")
	require.NoError(t, err)
	assert.Len(t, byBook, 2)

	none, err := s.FindByField(ctx, "userId", "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListAll(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, testReservation("u1", "b1"))
	require.NoError(t, err)
	_, err = s.Insert(ctx, testReservation("u2", "b2"))
	require.NoError(t, err)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateReplacesRecord(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created, err := s.Insert(ctx, testReservation("u1", "b1"))
	require.NoError(t, err)

	changed := created
	changed.UserID = "u2"
	changed.Status = StatusCompleted
	updated, err := s.Update(ctx, created.ID.Hex(), changed)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := s.FindByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "u2", got.UserID)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, "b1", got.BookID)
}

func TestUpdateMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Update(context.Background(), "65b000000000000000000000", testReservation("u1", "b1"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteByID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created, err := s.Insert(ctx, testReservation("u1", "b1"))
	require.NoError(t, err)

	ok, err := s.DeleteByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.FindByID(ctx, created.ID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err = s.DeleteByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnsureIndexesIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureIndexes(ctx))
	require.NoError(t, s.EnsureIndexes(ctx))
}

// Malformed-id classification happens before any I/O, so a zero Store is fine.
func TestMalformedID(t *testing.T) {
	s := &Store{}
	ctx := context.Background()

	_, err := s.FindByID(ctx, "not-hex")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = s.Update(ctx, "not-hex", Reservation{})
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = s.DeleteByID(ctx, "not-hex")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestStatusValid(t *testing.T) {
	for _, st := range []Status{StatusActive, StatusCompleted, StatusCancelled} {
		assert.True(t, st.Valid())
	}
	assert.False(t, Status("OVERDUE").Valid())
	assert.False(t, Status("").Valid())
}

func TestParseIDErrors(t *testing.T) {
	_, err := parseID("zzz")
	assert.True(t, errors.Is(err, ErrInvalidID))

	oid, err := parseID("65b000000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "65b000000000000000000000", oid.Hex())
}
