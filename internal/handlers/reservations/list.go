package reservations

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// List returns every stored reservation. Order is whatever the store yields.
func (h *Handler) List(c *gin.Context) {
	out, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "message": "Error retrieving reservations: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
