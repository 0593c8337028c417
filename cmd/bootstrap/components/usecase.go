package components

import (
	"time"

	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/config"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewPermissionChecker,
	func(cfg config.Config) *time.Location {
		return cfg.Rental.Location()
	},
	func(cfg config.Config) *shared.AvailabilityChecker {
		return shared.NewAvailabilityChecker(cfg.Rental)
	},
	shared.NewDiscountValidator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRentalUseCase,
		commands.NewPaymentUseCase,
		commands.NewCarUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCustomerQueries,
		queries.NewRentalQueries,
		queries.NewPaymentQueries,
		queries.NewCarQueries,
		queries.NewDiscountQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenVerifier,
	),
)
