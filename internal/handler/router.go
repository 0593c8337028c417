package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"car-rental/internal/handler/api"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/pkg/config"
	"car-rental/internal/usecase"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Rental   *api.RentalHandler
	Payment  *api.PaymentHandler
	Car      *api.CarHandler
	Discount *api.DiscountHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, idempotency middleware.IdempotencyStore) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, idempotency)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.RequestLogging(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, store middleware.IdempotencyStore) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	fleetOnly := authMiddleware.RequireCapability(usecase.ManageFleet)
	idempotent := middleware.Idempotency(store)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		rentals := apiGroup.Group("/rentals")
		rentals.Use(requireAuth)
		{
			addRoutes(rentals, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Rental.CreateRental, Mw: []gin.HandlerFunc{idempotent}},
				{Method: http.MethodGet, Path: "/my-bookings", Handler: h.Rental.ListMyRentals},
				{Method: http.MethodGet, Path: "/owner/bookings", Handler: h.Rental.ListFleetRentals, Mw: []gin.HandlerFunc{fleetOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Rental.GetRental},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Rental.UpdateStatus},
				{Method: http.MethodPost, Path: "/:id/return", Handler: h.Rental.ReturnCar},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(requireAuth)
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Payment.ProcessPayment, Mw: []gin.HandlerFunc{idempotent}},
				{Method: http.MethodGet, Path: "/history", Handler: h.Payment.ListPaymentHistory},
				{Method: http.MethodGet, Path: "/rental/:rental_id", Handler: h.Payment.GetPaymentByRental},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Payment.GetPayment},
				{Method: http.MethodPost, Path: "/:id/refund", Handler: h.Payment.ProcessRefund},
			})
		}

		cars := apiGroup.Group("/cars")
		{
			addRoutes(cars, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Car.GetCar},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Car.CheckAvailability},
			})

			fleet := cars.Group("")
			fleet.Use(requireAuth, fleetOnly)
			addRoutes(fleet, []route{
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Car.UpdateCar},
				{Method: http.MethodPatch, Path: "/:id/availability", Handler: h.Car.UpdateCarStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Car.DeleteCar},
			})
		}

		discounts := apiGroup.Group("/discounts")
		{
			addRoutes(discounts, []route{
				{Method: http.MethodGet, Path: "/validate", Handler: h.Discount.Validate},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// addRoutes registers per-route middleware as part of gin's chain so that
// middleware calling c.Next wraps the handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		chain := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		chain = append(chain, r.Mw...)
		chain = append(chain, r.Handler)
		g.Handle(r.Method, r.Path, chain...)
	}
}
