package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/peoplecore/hris-api/docs"
	"github.com/peoplecore/hris-api/internal/api/handler"
	"github.com/peoplecore/hris-api/internal/api/middleware"
	"github.com/peoplecore/hris-api/internal/core/domain"
	"github.com/peoplecore/hris-api/internal/core/service"
	hrismongo "github.com/peoplecore/hris-api/internal/infrastructure/db/mongo"
	hrisredis "github.com/peoplecore/hris-api/internal/infrastructure/db/redis"
	"github.com/peoplecore/hris-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hris"))

	// --- Dependencies ---
	userRepo := hrismongo.NewUserRepository(db)
	employeeRepo := hrismongo.NewEmployeeRepository(db)
	requestRepo := hrismongo.NewChangeRequestRepository(db)
	pendingCache := hrisredis.NewPendingCountCache(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	employeeService := service.NewEmployeeService(employeeRepo, log)
	requestService := service.NewChangeRequestService(requestRepo, employeeRepo, pendingCache, log)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	requestHandler := handler.NewChangeRequestHandler(requestService)

	authMiddleware := middleware.Auth(jwtSecret)
	privileged := middleware.RBAC(domain.RoleAdmin, domain.RoleHR)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- v1 API (authenticated) ---
	v1 := e.Group("/v1", authMiddleware)

	employees := v1.Group("/employees")
	employees.POST("", employeeHandler.Create, privileged)
	employees.GET("", employeeHandler.List, privileged)
	employees.GET("/:id", employeeHandler.Get) // self-or-privileged enforced in service

	requests := v1.Group("/change-requests")
	requests.POST("", requestHandler.Submit)
	requests.POST("/bulk", requestHandler.BulkSubmit)
	requests.GET("", requestHandler.List)
	requests.GET("/pending/count", requestHandler.PendingCount, privileged)
	requests.PATCH("/bulk/approve", requestHandler.BulkApprove, privileged)
	requests.PATCH("/:id/approve", requestHandler.Approve, privileged)
	requests.PATCH("/:id/reject", requestHandler.Reject, privileged)

	return e
}
