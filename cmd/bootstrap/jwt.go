package bootstrap

import (
	"time"

	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	ttl, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid JWT_DURATION %q", cfg.JWT.Duration)
	}
	if ttl <= 0 {
		return nil, errs.Newf("JWT_DURATION must be positive, got %s", ttl)
	}
	return jwt.NewService(cfg.JWT.Secret, ttl), nil
}
