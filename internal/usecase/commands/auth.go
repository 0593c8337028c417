package commands

import (
	"context"
	"log/slog"

	"car-rental/internal/domain/customer"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/jwt"
	"car-rental/internal/pkg/password"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrCustomerInactive     = errs.New("customer inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	Customer    *queries.AuthorizedCustomerView
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.CustomerReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.CustomerReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := customer.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.validateCustomer(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := customer.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, view.Email, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Customers().UpdateLastLogin(ctx, view.ID)
	})
	if err != nil {
		// login already succeeded
		slog.Warn("failed to update last login", "customer_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		Customer:    view,
		AccessToken: token,
	}, nil
}

func (a *authCommandsImpl) validateCustomer(ctx context.Context, credentials customer.Credentials) (*queries.AuthorizedCustomerView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same answer as a wrong password so emails cannot be probed
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !view.IsActive {
		return nil, ErrCustomerInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}
