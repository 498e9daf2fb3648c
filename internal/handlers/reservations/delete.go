package reservations

import (
	"errors"
	"net/http"

	"github.com/feri-library/reservation-api/internal/store"
	"github.com/gin-gonic/gin"
)

// Delete removes a reservation by id. 204 on success, 404 when nothing
// matched. Deleting an already-deleted id is a 404, not an error.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	ok, err := h.store.DeleteByID(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Malformed reservation id: " + id})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "message": "Error deleting reservation: " + err.Error()})
	case !ok:
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Reservation not found."})
	default:
		c.Status(http.StatusNoContent)
	}
}
