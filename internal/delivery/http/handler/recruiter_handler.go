package handler

import (
	"talentboard/internal/delivery/http/middleware"
	"talentboard/internal/pkg/response"
	"talentboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

const (
	msgRecruitersAdded       = "Recruiters added successfully"
	msgErrFetchingRecruiters = "Error fetching recruiters"
	msgErrInsertRecruiters   = "Error inserting recruiters"
)

type RecruiterHandler struct {
	uc     usecase.RecruiterUsecase
	logger *zap.Logger
}

func NewRecruiterHandler(uc usecase.RecruiterUsecase, logger *zap.Logger) *RecruiterHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecruiterHandler{uc: uc, logger: logger}
}

func (h *RecruiterHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/recruiters", h.List)
	r.Post("/add-recruiters", h.Seed)
}

func (h *RecruiterHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListRecruiters(c.Context())
	if err != nil {
		h.logger.Error("list recruiters", zap.String("kind", usecase.Kind(err)), zap.Error(err))
		return middleware.NewAppError(fiber.StatusInternalServerError, msgErrFetchingRecruiters, err)
	}
	return response.JSON(c, fiber.StatusOK, items)
}

func (h *RecruiterHandler) Seed(c fiber.Ctx) error {
	items, err := h.uc.SeedRecruiters(c.Context())
	if err != nil {
		h.logger.Error("seed recruiters", zap.String("kind", usecase.Kind(err)), zap.Error(err))
		return middleware.NewAppError(fiber.StatusInternalServerError, msgErrInsertRecruiters, err)
	}
	return response.Message(c, fiber.StatusCreated, msgRecruitersAdded, items)
}
