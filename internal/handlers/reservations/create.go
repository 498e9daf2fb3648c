package reservations

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/feri-library/reservation-api/internal/store"
	"github.com/gin-gonic/gin"
)

// loanPeriod is how far out the expected return date defaults to.
const loanPeriod = 14 * 24 * time.Hour

// notifyTimeLayout is the textual date form used in notification messages.
const notifyTimeLayout = "2006-01-02 15:04:05"

// Create persists a new reservation and publishes a notification.
// KISS flow:
// 1) Validate payload (userId and bookId required)
// 2) Fill defaults: reservationDate=now, expectedReturnDate=+14 days, status=ACTIVE
// 3) Insert
// 4) Best-effort publish; a failed publish is logged, never rolls back the create
func (h *Handler) Create(c *gin.Context) {
	var in reservationInput
	if err := c.ShouldBindJSON(&in); err != nil ||
		strings.TrimSpace(in.UserID) == "" ||
		strings.TrimSpace(in.BookID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "userId and bookId are required"})
		return
	}
	if in.Status != "" && !in.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "unknown status: " + string(in.Status)})
		return
	}

	r := store.Reservation{
		UserID:          in.UserID,
		BookID:          in.BookID,
		ReservationDate: time.Now().UTC(),
		Status:          store.StatusActive,
	}
	if in.ReservationDate != nil {
		r.ReservationDate = *in.ReservationDate
	}
	r.ExpectedReturnDate = r.ReservationDate.Add(loanPeriod)
	if in.ExpectedReturnDate != nil {
		r.ExpectedReturnDate = *in.ExpectedReturnDate
	}
	if in.Status != "" {
		r.Status = in.Status
	}

	created, err := h.store.Insert(c.Request.Context(), r)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "create_failed", "message": "Error creating reservation: " + err.Error()})
		return
	}

	msg := fmt.Sprintf(
		"New reservation created for bookId: %s, userId: %s, reservationDate: %s, expectedReturnDate: %s",
		created.BookID,
		created.UserID,
		created.ReservationDate.Format(notifyTimeLayout),
		created.ExpectedReturnDate.Format(notifyTimeLayout),
	)
	if err := h.notifier.Publish(c.Request.Context(), msg); err != nil {
		log.Printf("notify: publish failed for reservation %s: %v", created.ID.Hex(), err)
	}

	c.JSON(http.StatusCreated, created)
}
