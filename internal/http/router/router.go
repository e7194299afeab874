package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"pathplan.app/engine/internal/http/handler"
	"pathplan.app/engine/internal/http/middleware"
	"pathplan.app/engine/internal/service"
)

type RouterConfig struct {
	ServiceName  string
	OTelEnabled  bool
	IsProduction bool
}

// New builds the engine. The returned *gin.Engine is a plain http.Handler,
// so any hosting adapter can wrap it.
func New(services *service.Services, cfg RouterConfig) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTelEnabled {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	SetupRoutes(router, services)
	return router
}

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	roadmapHandler := handler.NewRoadmapHandler(services.Roadmap())
	RoadmapRouter(router.Group(""), roadmapHandler)
}
