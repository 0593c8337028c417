package components

import (
	"car-rental/internal/handler"
	"car-rental/internal/handler/api"
	"car-rental/internal/handler/dto/request"
	"car-rental/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRentalHandler,
		api.NewPaymentHandler,
		api.NewCarHandler,
		api.NewDiscountHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			rental *api.RentalHandler,
			payment *api.PaymentHandler,
			car *api.CarHandler,
			discount *api.DiscountHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:     auth,
				Rental:   rental,
				Payment:  payment,
				Car:      car,
				Discount: discount,
			}
		},
	),
	fx.Invoke(request.RegisterValidators),
	fx.Invoke(handler.NewRouter),
)
