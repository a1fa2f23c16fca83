package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parseIDParam reads the :id path segment; on failure it writes the 400
// response itself and reports false.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// notFoundMessage prefers the service's wrapped detail ("project 5: record
// not found") over the bare GORM message.
func notFoundMessage(err error, fallback string) string {
	if err == nil || err.Error() == gorm.ErrRecordNotFound.Error() {
		return fallback
	}
	return err.Error()
}
