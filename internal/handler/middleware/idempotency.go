package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"car-rental/internal/handler/httpresp"
	"car-rental/internal/infra/cache"

	"github.com/gin-gonic/gin"
)

const (
	idempotencyHeader = "Idempotency-Key"
	replayedHeader    = "Idempotent-Replayed"
)

type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (*cache.StoredResponse, error)
	Reserve(ctx context.Context, key string) (bool, error)
	Complete(ctx context.Context, key string, resp *cache.StoredResponse) error
	Release(ctx context.Context, key string) error
}

// responseWriter wraps gin.ResponseWriter to capture the response.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the first non-5xx response for a given Idempotency-Key,
// caller, method and path. It must run after RequireAuth. A nil store
// disables it.
func Idempotency(store IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(idempotencyHeader)
		if store == nil || header == "" {
			c.Next()
			return
		}

		scope := "anonymous"
		if userID, ok := GetUserID(c); ok {
			scope = userID.String()
		}
		key := cache.Key(scope, c.Request.Method, c.Request.URL.Path, header)
		ctx := c.Request.Context()

		stored, err := store.Lookup(ctx, key)
		switch {
		case errors.Is(err, cache.ErrInFlight):
			httpresp.AbortWithError(c, http.StatusConflict, err, "A request with this Idempotency-Key is already in progress")
			return
		case err != nil:
			// Redis error - proceed without idempotency.
			slog.Warn("idempotency lookup failed", "error", err.Error())
			c.Next()
			return
		case stored != nil:
			for k, v := range stored.Headers {
				for _, val := range v {
					c.Header(k, val)
				}
			}
			c.Header(replayedHeader, "true")
			c.Data(stored.StatusCode, "application/json; charset=utf-8", stored.Body)
			c.Abort()
			return
		}

		reserved, err := store.Reserve(ctx, key)
		if err != nil {
			slog.Warn("idempotency reserve failed", "error", err.Error())
			c.Next()
			return
		}
		if !reserved {
			httpresp.AbortWithError(c, http.StatusConflict, cache.ErrInFlight, "A request with this Idempotency-Key is already in progress")
			return
		}

		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = w

		// The request context may be cancelled by the time the handler returns.
		bg := context.WithoutCancel(ctx)
		completed := false
		// also runs when the handler panics
		defer func() {
			if completed {
				return
			}
			if err := store.Release(bg, key); err != nil {
				slog.Warn("idempotency release failed", "error", err.Error())
			}
		}()

		c.Next()

		status := c.Writer.Status()
		if status >= http.StatusInternalServerError {
			return
		}
		resp := &cache.StoredResponse{
			StatusCode: status,
			Body:       w.body.Bytes(),
			Headers:    extractResponseHeaders(c),
		}
		if err := store.Complete(bg, key, resp); err != nil {
			slog.Warn("idempotency store failed", "error", err.Error())
			return
		}
		completed = true
	}
}

func extractResponseHeaders(c *gin.Context) http.Header {
	headers := make(http.Header)
	if loc := c.Writer.Header().Get("Location"); loc != "" {
		headers.Set("Location", loc)
	}
	return headers
}
