package middleware

import (
	"log/slog"
	"slices"

	"car-rental/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware applies the configured policy. Browsers must always be
// able to send an idempotency key and read back the replay and request-id
// headers, so those are added when the config leaves them out.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	allowHeaders := withHeaders(cfg.AllowHeaders, idempotencyHeader, requestIDHeader)
	exposeHeaders := withHeaders(cfg.ExposeHeaders, replayedHeader, requestIDHeader)

	logger.Info("CORS policy loaded",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", cfg.AllowCredentials,
	)

	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    exposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func withHeaders(configured []string, required ...string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
