package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pathplan.app/engine/internal/http/dto"
	"pathplan.app/engine/internal/service"
)

type RoadmapHandler struct {
	service service.RoadmapService
}

func NewRoadmapHandler(service service.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{service: service}
}

func (h *RoadmapHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid roadmap request", "error", err)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	roadmap, err := h.service.Generate(ctx, req.ToDomain())
	if err != nil {
		var invalid *service.GoalValidationError
		switch {
		case errors.Is(err, service.ErrNoGoals):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: dto.NoGoalsDetail})
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: invalid.Error()})
		default:
			// UpstreamError carries the cause's message verbatim.
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.GenerateRoadmapResponse{Roadmap: roadmap.Text})
}
