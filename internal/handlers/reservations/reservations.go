package reservations

import (
	"context"
	"time"

	"github.com/feri-library/reservation-api/internal/store"
)

// Package reservations provides the reservation HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type, its dependencies and the shared
// request shape. The HTTP methods are implemented in dedicated files:
// - create.go: Handler.Create
// - list.go:   Handler.List
// - get.go:    Handler.Get
// - update.go: Handler.Update
// - delete.go: Handler.Delete
// - find.go:   Handler.ListByUser, Handler.ListByBook

// Store is the persistence surface the handlers delegate to.
type Store interface {
	Insert(ctx context.Context, r store.Reservation) (store.Reservation, error)
	FindByID(ctx context.Context, id string) (store.Reservation, error)
	FindByField(ctx context.Context, field, value string) ([]store.Reservation, error)
	ListAll(ctx context.Context) ([]store.Reservation, error)
	Update(ctx context.Context, id string, r store.Reservation) (store.Reservation, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// Publisher sends the post-create notification text. Failures are logged and
// never surfaced to the API caller.
type Publisher interface {
	Publish(ctx context.Context, text string) error
}

// Handler wires reservation endpoints to the store and the notifier.
type Handler struct {
	store    Store
	notifier Publisher
}

// NewHandler returns a new reservations handler.
func NewHandler(s Store, n Publisher) *Handler { return &Handler{store: s, notifier: n} }

// reservationInput is the partial record accepted by Create and Update.
// Pointer dates distinguish "absent" from an explicit value.
type reservationInput struct {
	UserID             string       `json:"userId"`
	BookID             string       `json:"bookId"`
	ReservationDate    *time.Time   `json:"reservationDate"`
	ExpectedReturnDate *time.Time   `json:"expectedReturnDate"`
	Status             store.Status `json:"status"`
}
