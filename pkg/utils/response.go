package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *AppError   `json:"error,omitempty"`
}

func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

func SendError(c *gin.Context, statusCode int, err *AppError) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   err,
	})
}

func SendValidationError(c *gin.Context, message string, details string) {
	SendError(c, http.StatusBadRequest, NewAppError(ErrCodeValidation, message, details))
}

func SendNotFound(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, NewAppError(ErrCodeNotFound, message))
}

func SendInternalError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, NewAppError(ErrCodeInternal, message))
}

func SendConflict(c *gin.Context, message string) {
	SendError(c, http.StatusConflict, NewAppError(ErrCodeConflict, message))
}

func SendTooManyRequests(c *gin.Context, message string) {
	SendError(c, http.StatusTooManyRequests, NewAppError(ErrCodeRateLimited, message))
}

// SendServiceError maps the package sentinel errors onto HTTP statuses.
// Anything unrecognized is reported as an internal error without detail.
func SendServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		SendNotFound(c, err.Error())
	case errors.Is(err, ErrInvalidInput):
		SendValidationError(c, "Invalid request", err.Error())
	case errors.Is(err, ErrSeasonComplete):
		SendError(c, http.StatusConflict, NewAppError(ErrCodeSeasonComplete, "Season is complete"))
	case errors.Is(err, ErrWeekInProgress), errors.Is(err, ErrConflict):
		SendConflict(c, err.Error())
	default:
		SendInternalError(c, "Internal server error")
	}
}
