package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"
	"go.uber.org/zap"

	"nyumbani/internal/caching"
	"nyumbani/internal/common"
	"nyumbani/internal/config"
	"nyumbani/internal/handlers"
	"nyumbani/internal/middleware"
	"nyumbani/internal/repositories"
	"nyumbani/internal/resource"
	"nyumbani/internal/resources"
	"nyumbani/internal/services"
	"nyumbani/pkg/database"
)

const version = "1.0.0"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" && cfg.AuthJWKSURL == "" {
		jwtSecret = random.String(32)
		logger.Warn("JWT_SECRET not set, using a generated development secret")
	}

	tokenStore := caching.NewRedisTokenStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	userRepo := repositories.NewUserRepository(pool)
	authService := services.NewAuthService(tokenStore, logger, jwtSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authHandlers := handlers.NewAuthHandlers(authService, userRepo)

	authMiddleware, err := middleware.NewAuthMiddleware(jwtSecret, cfg.AuthJWKSURL)
	if err != nil {
		logger.Fatal("failed to initialize auth middleware", zap.Error(err))
	}

	// One generic CRUD group per entity; only the field schema differs.
	tenantGroup := resource.NewGroup(pool, resources.Tenants)
	buildingGroup := resource.NewGroup(pool, resources.Buildings)
	buildingOwnerGroup := resource.NewGroup(pool, resources.BuildingOwners)
	houseGroup := resource.NewGroup(pool, resources.Houses)
	unitGroup := resource.NewGroup(pool, resources.Units)

	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Everything, including framework-level failures, goes out in the
	// {error: ...} envelope.
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := "internal server error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		}
		if jsonErr := c.JSON(code, common.ErrorResponse{Error: msg}); jsonErr != nil {
			logger.Error("failed to write error response", zap.Error(jsonErr))
		}
	}

	e.GET("/health", handlers.HealthCheck)
	e.GET("/health/ready", func(c echo.Context) error {
		return handlers.ReadinessCheck(c, pool)
	})

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", authHandlers.Signup)
	auth.POST("/login", authHandlers.Login)
	auth.POST("/refresh", authHandlers.Refresh)
	auth.POST("/logout", authHandlers.Logout, authMiddleware)
	auth.GET("/me", authHandlers.Me, authMiddleware)

	protected := api.Group("", authMiddleware)
	tenantGroup.Handlers.Register(protected.Group("/tenants"))
	buildingGroup.Handlers.Register(protected.Group("/building"))
	buildingOwnerGroup.Handlers.Register(protected.Group("/building-owner"))
	houseGroup.Handlers.Register(protected.Group("/houses"))
	unitGroup.Handlers.Register(protected.Group("/unit"))

	logger.Info("server starting",
		zap.String("version", version),
		zap.Int("port", cfg.Port),
	)
	if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
