package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tvilalai/jsd9-catsudon-backend/apperrors"
)

// ErrorHandler is the single place failures become responses. Handlers call
// c.Error and return; this middleware maps known error kinds onto
// status + envelope and degrades everything else to a generic 500 with the
// detail kept in the server log.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			c.JSON(appErr.Status, gin.H{
				"error":   true,
				"code":    appErr.Code,
				"message": appErr.Message,
			})
			return
		}

		log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   true,
			"code":    apperrors.CodeInternal,
			"message": "server error",
		})
	}
}
