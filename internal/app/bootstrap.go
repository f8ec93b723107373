package app

import (
	"context"
	"fmt"
	"strings"

	"talentboard/internal/config"
	"talentboard/internal/delivery/http/handler"
	"talentboard/internal/delivery/http/middleware"
	"talentboard/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"go.uber.org/zap"
)

type App struct {
	Fiber  *fiber.App
	Logger *zap.Logger
}

func New(cfg config.Config, c *Container) *App {
	logger := zap.NewNop()
	if c != nil && c.Logger != nil {
		logger = c.Logger
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, logger)
	registerRoutes(f, c, logger)

	return &App{Fiber: f, Logger: logger}
}

// Bootstrap builds the container and the HTTP app. The returned cleanup
// releases the store and cache handles.
func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func(context.Context) error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(cfg, c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(cors.New())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container, logger *zap.Logger) {
	if app == nil || c == nil {
		return
	}

	routes.NewRegistry(
		handler.NewHealthHandler(c.Store),
		handler.NewFreelancerHandler(c.Freelancers, logger),
		handler.NewRecruiterHandler(c.Recruiters, logger),
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
