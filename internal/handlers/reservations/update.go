package reservations

import (
	"errors"
	"net/http"
	"strings"

	"github.com/feri-library/reservation-api/internal/store"
	"github.com/gin-gonic/gin"
)

// Update overlays the supplied fields onto an existing reservation and
// persists the result as a full replacement.
// - userId/bookId are overwritten when present (non-empty) on the input
// - dates only when the input supplies them
// - status only when supplied, and it must be a known value
// Date ordering is deliberately not validated; caller-supplied dates are
// trusted as-is.
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var in reservationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Malformed request body"})
		return
	}
	if in.Status != "" && !in.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "unknown status: " + string(in.Status)})
		return
	}

	existing, err := h.store.FindByID(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Malformed reservation id: " + id})
		return
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "message": "Error updating reservation: " + err.Error()})
		return
	}

	if strings.TrimSpace(in.UserID) != "" {
		existing.UserID = in.UserID
	}
	if strings.TrimSpace(in.BookID) != "" {
		existing.BookID = in.BookID
	}
	if in.ReservationDate != nil {
		existing.ReservationDate = *in.ReservationDate
	}
	if in.ExpectedReturnDate != nil {
		existing.ExpectedReturnDate = *in.ExpectedReturnDate
	}
	if in.Status != "" {
		existing.Status = in.Status
	}

	updated, err := h.store.Update(c.Request.Context(), id, existing)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// Record vanished between the fetch and the replace.
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "message": "Error updating reservation: " + err.Error()})
	default:
		c.JSON(http.StatusOK, updated)
	}
}
