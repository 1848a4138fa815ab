package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vporoshin/solace/internal/server/http/handlers"
	"github.com/vporoshin/solace/internal/server/http/middleware"
	"github.com/vporoshin/solace/internal/server/http/web"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.JournalFacade, health handlers.HealthChecker, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.SetHTMLTemplate(web.Templates())

	authHandler := handlers.NewAuthHandler(facade)
	entryHandler := handlers.NewEntryHandler(facade)
	healthHandler := handlers.NewHealthHandler(health)

	engine.GET("/register", authHandler.RegisterPage)
	engine.POST("/register", authHandler.Register)
	engine.GET("/login", authHandler.LoginPage)
	engine.POST("/login", authHandler.Login)
	engine.GET("/health", healthHandler.Health)

	authed := engine.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/", entryHandler.Index)
	authed.POST("/", entryHandler.Submit)
	authed.GET("/logout", authHandler.Logout)

	return engine
}
