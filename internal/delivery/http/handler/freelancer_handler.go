package handler

import (
	"talentboard/internal/delivery/http/middleware"
	"talentboard/internal/pkg/response"
	"talentboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

const (
	msgFreelancersAdded       = "Freelancers added successfully"
	msgErrFetchingFreelancers = "Error fetching freelancers"
	msgErrInsertFreelancers   = "Error inserting freelancers"
)

type FreelancerHandler struct {
	uc     usecase.FreelancerUsecase
	logger *zap.Logger
}

func NewFreelancerHandler(uc usecase.FreelancerUsecase, logger *zap.Logger) *FreelancerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FreelancerHandler{uc: uc, logger: logger}
}

func (h *FreelancerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/freelancers", h.List)
	r.Post("/add-freelancers", h.Seed)
}

func (h *FreelancerHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListFreelancers(c.Context())
	if err != nil {
		h.logger.Error("list freelancers", zap.String("kind", usecase.Kind(err)), zap.Error(err))
		return middleware.NewAppError(fiber.StatusInternalServerError, msgErrFetchingFreelancers, err)
	}
	return response.JSON(c, fiber.StatusOK, items)
}

// Seed inserts the configured sample freelancers. The request body is ignored.
func (h *FreelancerHandler) Seed(c fiber.Ctx) error {
	items, err := h.uc.SeedFreelancers(c.Context())
	if err != nil {
		h.logger.Error("seed freelancers", zap.String("kind", usecase.Kind(err)), zap.Error(err))
		return middleware.NewAppError(fiber.StatusInternalServerError, msgErrInsertFreelancers, err)
	}
	return response.Message(c, fiber.StatusCreated, msgFreelancersAdded, items)
}
