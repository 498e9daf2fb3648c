package reservations

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListByUser returns the reservations made by one user.
// An unknown user yields an empty array, never a 404.
func (h *Handler) ListByUser(c *gin.Context) {
	h.listByField(c, "userId", c.Param("userId"))
}

// ListByBook returns the reservations held on one book.
func (h *Handler) ListByBook(c *gin.Context) {
	h.listByField(c, "bookId", c.Param("bookId"))
}

func (h *Handler) listByField(c *gin.Context, field, value string) {
	out, err := h.store.FindByField(c.Request.Context(), field, value)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "message": "Error retrieving reservations: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
