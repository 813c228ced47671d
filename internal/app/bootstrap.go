package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"career-engine/internal/config"
	"career-engine/internal/delivery/http/handler"
	"career-engine/internal/delivery/http/middleware"
	"career-engine/internal/delivery/http/routes"
	v1 "career-engine/internal/delivery/http/routes/v1"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware(c.Logger, c.Config.IsProduction())
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	var dbPinger handler.Pinger
	if c.DB != nil {
		dbPinger = c.DB
	}
	var cachePinger handler.Pinger
	if c.Cache != nil {
		cachePinger = c.Cache
	}
	health := handler.NewHealthHandler(c.Embedder, c.Config.App.AppName, Version, dbPinger, cachePinger)

	handlers := v1.Handlers{
		Match:    handler.NewMatchHandler(c.MatchUC, c.CatalogUC),
		SkillGap: handler.NewSkillGapHandler(c.SkillGapUC),
		Analysis: handler.NewAnalysisHandler(c.AnalysisUC),
		Embed:    handler.NewEmbedHandler(c.Embedder, c.Config.IsProduction()),
	}

	var auth fiber.Handler
	if c.JWT != nil {
		auth = middleware.NewAuthMiddleware(c.JWT).Middleware()
	}

	routes.NewRegistry(health, handlers, auth).Register(app)
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
