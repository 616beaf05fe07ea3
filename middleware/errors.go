package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shoplite/ecommerce-api/apperr"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Details   string    `json:"details"`
}

// ErrorHandler translates errors recorded on the gin context into HTTP
// statuses: NotFound→404, Duplicate→409, Validation→400, anything
// else→500. Handlers record errors via c.Error and return.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		status := http.StatusInternalServerError
		switch {
		case apperr.IsNotFound(err):
			status = http.StatusNotFound
		case apperr.IsDuplicate(err):
			status = http.StatusConflict
		case apperr.IsValidation(err):
			status = http.StatusBadRequest
		default:
			logger.Error("unhandled error",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
		}

		c.JSON(status, ErrorResponse{
			Timestamp: time.Now(),
			Message:   err.Error(),
			Details:   c.Request.Method + " " + c.Request.URL.Path,
		})
	}
}
