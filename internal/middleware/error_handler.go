package middleware

import (
	"errors"

	apperrors "parkside-realty/internal/errors"
	"parkside-realty/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler catches errors attached to the context and renders the
// structured response: validation errors carry their field map, everything
// else its mapped status and message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		appErr := apperrors.MapError(err)

		logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, error=%s",
			c.Request.URL.Path,
			c.Request.Method,
			c.ClientIP(),
			appErr.TechnicalMessage)

		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			c.JSON(appErr.HTTPStatus, gin.H{
				"error": gin.H{
					"message": appErr.UserMessage,
					"code":    appErr.Code,
					"fields":  verr.Fields,
				},
			})
			return
		}

		c.JSON(appErr.HTTPStatus, gin.H{
			"error": gin.H{
				"message": appErr.UserMessage,
				"code":    appErr.Code,
			},
		})
	}
}
