package handler

import (
	"context"
	"time"

	"talentboard/internal/delivery/http/middleware"
	"talentboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store   Pinger
	timeout time.Duration
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store, timeout: 2 * time.Second}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	if h.store == nil {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Store unavailable", nil)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Store unavailable", err)
	}
	return response.JSON(c, fiber.StatusOK, fiber.Map{"status": "ok"})
}
