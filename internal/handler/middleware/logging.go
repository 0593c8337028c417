package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"car-rental/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	ctxRequestIDKey = "request_id"
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 64
)

// resource ids worth carrying on every request line
var loggedParams = map[string]string{
	"id":        "resource_id",
	"rental_id": "rental_id",
}

// NewLogger builds the process logger and installs it as the slog default.
// Release mode logs JSON, anything else logs text.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	zone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(zone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// RequestLogging stamps each request with an id and logs its start and end.
// The caller is only known once the route's auth middleware has run, so user
// attributes appear on the completion line.
func RequestLogging(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := incomingRequestID(c)
		if requestID == "" {
			requestID = newRequestID(startTime)
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		logAttrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		if key := c.GetHeader(idempotencyHeader); key != "" {
			logAttrs = append(logAttrs, slog.String("idempotency_key", key))
		}

		logger.LogAttrs(context.Background(), slog.LevelInfo, "Request started", logAttrs...)

		c.Next()

		statusCode := c.Writer.Status()
		doneAttrs := append(logAttrs,
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(startTime)),
		)
		if route := c.FullPath(); route != "" {
			doneAttrs = append(doneAttrs, slog.String("route", route))
		}
		for param, attr := range loggedParams {
			if v := c.Param(param); v != "" {
				doneAttrs = append(doneAttrs, slog.String(attr, v))
			}
		}
		if principal, ok := GetPrincipal(c); ok {
			doneAttrs = append(doneAttrs,
				slog.String("user_id", principal.ID.String()),
				slog.String("role", principal.Role.String()),
			)
		}
		if c.Writer.Header().Get(replayedHeader) == "true" {
			doneAttrs = append(doneAttrs, slog.Bool("replayed", true))
		}
		if size := c.Writer.Size(); size > 0 {
			doneAttrs = append(doneAttrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			doneAttrs = append(doneAttrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case statusCode >= 500:
			level = slog.LevelError
		case statusCode >= 400:
			level = slog.LevelWarn
		}

		logger.LogAttrs(context.Background(), level, "Request completed", doneAttrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

// incomingRequestID accepts a caller-supplied id only when it is short and
// printable.
func incomingRequestID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(requestIDHeader))
	if id == "" || len(id) > maxRequestIDLen {
		return ""
	}
	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return ""
		}
	}
	return id
}

func newRequestID(now time.Time) string {
	timestamp := now.UTC().Format("20060102150405")

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("%s-fallback-%d", timestamp, now.UnixNano()%100000000)
	}
	return timestamp + "-" + hex.EncodeToString(randomBytes)
}
