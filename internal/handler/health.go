package handler

import (
	"context"
	"time"

	"media-quiz/internal/domain"
	"media-quiz/internal/dto"
	"media-quiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports liveness and, when configured, transcript cache health.
type HealthHandler struct {
	cache domain.Cache
}

// NewHealthHandler creates a HealthHandler. cache may be nil.
func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Message: "ok"}
	if h.cache == nil {
		return c.JSON(resp)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), healthPingTimeout)
	defer cancel()
	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Transcript cache unhealthy", zap.Error(err))
		resp.Message = "degraded"
		resp.Cache = "unavailable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	resp.Cache = "ok"
	return c.JSON(resp)
}
