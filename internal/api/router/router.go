package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ytscout/ytscout/internal/api/handlers"
	"github.com/ytscout/ytscout/internal/api/middleware"
	"github.com/ytscout/ytscout/internal/config"
)

type Router struct {
	engine *gin.Engine
	server *http.Server
	config *config.Config
}

func NewRouter(cfg *config.Config, videoHandler *handlers.VideoHandler, healthHandler *handlers.HealthHandler) *Router {
	// Set Gin mode
	if cfg.Server.Host == "0.0.0.0" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Add middleware
	engine.Use(gin.Recovery())
	engine.Use(middleware.CorrelationIDMiddleware())
	if cfg.CORS.Enabled {
		engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	}

	// Info and health endpoints (no auth required)
	engine.GET("/", handlers.Root)
	engine.GET("/health", healthHandler.Health)
	engine.GET("/ready", healthHandler.Readiness)
	engine.GET("/live", healthHandler.Liveness)

	// Swagger documentation (no auth required)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Video endpoints with optional API key and rate limiting
	video := engine.Group("/video")
	video.Use(middleware.APIKeyMiddleware(&cfg.API))
	video.Use(middleware.RateLimitMiddleware(&cfg.API))
	{
		video.GET("", videoHandler.GetVideo)   // /video?url=...
		video.POST("", videoHandler.PostVideo) // /video with {"url": ...}
	}

	return &Router{
		engine: engine,
		config: cfg,
	}
}

func (r *Router) Start() error {
	addr := r.config.Server.Host + ":" + r.config.Server.Port
	r.server = &http.Server{
		Addr:    addr,
		Handler: r.engine,
	}
	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
