package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/knowgrow/agency-backend/errors"
	"github.com/knowgrow/agency-backend/logger"
	"github.com/knowgrow/agency-backend/types"
)

// ErrorHandler renders the last error attached to the context as the
// {"error": ..., "details": ...} envelope. Details are only written for
// errors that carry a client-facing detail.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		if appError, ok := err.(*errors.AppError); ok {
			statusCode := appError.GetHTTPStatus()
			logger.LogHTTPError(c, err, statusCode, fmt.Sprintf("%s error", appError.Type))

			if appError.RetryAfter > 0 {
				c.Header("Retry-After", strconv.Itoa(appError.RetryAfter))
			}

			response := types.ContactErrorResponse{Error: appError.Message}
			if appError.ExposesDetail() {
				response.Details = appError.Detail
			}

			c.JSON(statusCode, response)
			return
		}

		// Handle unknown errors
		logger.LogHTTPError(c, err, http.StatusInternalServerError, "Unexpected server error")

		response := types.ContactErrorResponse{Error: "Internal Server Error"}
		if gin.IsDebugging() {
			response.Details = err.Error()
		}

		c.JSON(http.StatusInternalServerError, response)
	}
}
