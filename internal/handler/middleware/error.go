package middleware

import (
	"log/slog"
	"net/http"

	"car-rental/internal/handler/httpresp"
	"car-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const panicStackLines = 24

// ErrorHandler renders the last public error when a handler recorded one
// without writing a body, and falls back to an enveloped 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httpresp.Envelope); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}

		if last := c.Errors.Last(); last != nil {
			slog.Error("request failed without a response",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"error", last.Error())
		}
		c.JSON(http.StatusInternalServerError, httpresp.Envelope{Message: "Internal server error"})
	}
}

// CustomRecovery turns a panic into an enveloped 500 and logs where it came from.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := errs.Newf("panic: %v", rec)
				slog.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"error", err.Error(),
					"stack", errs.ExtractStackLines(err, panicStackLines))

				c.AbortWithStatusJSON(http.StatusInternalServerError, httpresp.Envelope{
					Status:  http.StatusInternalServerError,
					Message: "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
