package reservations

import (
	"errors"
	"net/http"

	"github.com/feri-library/reservation-api/internal/store"
	"github.com/gin-gonic/gin"
)

// Get returns a single reservation by id.
// A malformed id is a 400, a missing record a 404; anything else is a 500.
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")

	r, err := h.store.FindByID(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Malformed reservation id: " + id})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "message": "Error retrieving reservation: " + err.Error()})
	default:
		c.JSON(http.StatusOK, r)
	}
}
