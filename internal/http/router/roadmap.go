package router

import (
	"github.com/gin-gonic/gin"

	"pathplan.app/engine/internal/http/handler"
)

func RoadmapRouter(router *gin.RouterGroup, handler *handler.RoadmapHandler) {
	router.POST("/generate-roadmap", handler.Generate)
}
