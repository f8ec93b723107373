package routes

import (
	"talentboard/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health      *handler.HealthHandler
	freelancers *handler.FreelancerHandler
	recruiters  *handler.RecruiterHandler
}

func NewRegistry(health *handler.HealthHandler, freelancers *handler.FreelancerHandler, recruiters *handler.RecruiterHandler) *Registry {
	return &Registry{health: health, freelancers: freelancers, recruiters: recruiters}
}

// Register mounts every route at the root; the public paths carry no prefix.
func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}

	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
	if r.freelancers != nil {
		r.freelancers.RegisterRoutes(app)
	}
	if r.recruiters != nil {
		r.recruiters.RegisterRoutes(app)
	}
}
