package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rhuselid/gmcareer/pkg/utils"
)

// idParam parses the :id path parameter, writing a validation error when it
// is not a positive integer.
func idParam(c *gin.Context, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		detail := "must be a positive integer"
		if err != nil {
			detail = err.Error()
		}
		utils.SendValidationError(c, "Invalid "+what+" ID", detail)
		return 0, false
	}
	return uint(id), true
}
