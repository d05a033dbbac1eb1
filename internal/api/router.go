package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/sps-group/user-api/internal/api/handler"
	"github.com/sps-group/user-api/internal/api/middleware"
	"github.com/sps-group/user-api/internal/core/ports"
)

// Deps carries everything the router needs wired in from main.
type Deps struct {
	AuthService ports.AuthService
	UserService ports.UserService
	Verifier    ports.TokenVerifier
	Repo        ports.UserRepository
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userapi"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.AuthService)
	userHandler := handler.NewUserHandler(d.UserService)
	healthHandler := handler.NewHealthHandler()

	guard := middleware.Auth(d.Verifier, d.Repo)
	adminOnly := middleware.AdminOnly()

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes (session guard on all; admin gate where noted) ---
	users := e.Group("/users", guard)
	users.GET("/me", userHandler.Me)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get, adminOnly)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Observability ---
	e.GET("/health", healthHandler.Liveness) // liveness – is the process alive?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
