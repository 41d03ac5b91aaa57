package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/snstore/backend/internal/server/http/handlers"
	"github.com/snstore/backend/internal/server/http/middleware"
)

// HealthChecker reports backing store connectivity for the health endpoint.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, health HealthChecker, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade, facade)
	accountHandler := handlers.NewAccountHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	addressHandler := handlers.NewAddressHandler(facade)

	engine.GET("/health", func(c *gin.Context) {
		if err := health.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	api.POST("/account/recover", authHandler.ForgotPassword)
	api.POST("/account/reset", authHandler.ResetPassword)

	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/featured", productHandler.Featured)
	products.GET("/:id", productHandler.Get)

	api.GET("/orders/shipping/:cep", orderHandler.Shipping)

	authorized := api.Group("")
	authorized.Use(middleware.AuthRequired(facade))

	authorized.GET("/auth/verify", authHandler.Verify)

	authorized.GET("/users/profile", accountHandler.Profile)
	authorized.GET("/users/profile/full", accountHandler.ProfileFull)
	authorized.PUT("/users/profile", accountHandler.UpdateProfile)
	authorized.POST("/account/password", accountHandler.ChangePassword)
	authorized.DELETE("/account", accountHandler.Close)

	authorized.POST("/orders", orderHandler.Checkout)
	authorized.GET("/orders", orderHandler.List)
	authorized.GET("/orders/:id", orderHandler.Get)
	authorized.PUT("/orders/:id/cancel", orderHandler.Cancel)

	authorized.POST("/addresses", addressHandler.Create)
	authorized.GET("/addresses", addressHandler.List)
	authorized.GET("/addresses/:id", addressHandler.Get)
	authorized.PUT("/addresses/:id", addressHandler.Update)
	authorized.DELETE("/addresses/:id", addressHandler.Delete)
	authorized.PUT("/addresses/:id/default", addressHandler.SetDefault)

	return engine
}
