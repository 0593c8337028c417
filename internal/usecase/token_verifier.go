package usecase

import (
	"car-rental/internal/domain/customer"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/jwt"
)

var ErrUnknownTokenRole = errs.New("token carries an unknown role")

// TokenVerifier turns a bearer or cookie token into the acting principal.
type TokenVerifier interface {
	Verify(token string) (Principal, error)
}

type jwtVerifier struct {
	jwtService *jwt.Service
}

func NewTokenVerifier(jwtService *jwt.Service) TokenVerifier {
	return &jwtVerifier{jwtService: jwtService}
}

func (v *jwtVerifier) Verify(token string) (Principal, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return Principal{}, err
	}

	role, err := customer.NewRole(claims.Role)
	if err != nil {
		return Principal{}, errs.Mark(errs.Wrapf(err, "role %q", claims.Role), ErrUnknownTokenRole)
	}

	return Principal{ID: claims.UserID, Role: role}, nil
}
