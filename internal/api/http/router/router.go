package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/SatyaSire/corporatepm/config"
	"github.com/SatyaSire/corporatepm/internal/api/http/handler"
	"github.com/SatyaSire/corporatepm/internal/service/chat"
	"github.com/SatyaSire/corporatepm/internal/service/contact"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	ContactSvc contact.Service
	ChatSvc    chat.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Handlers
	contactH := handler.NewContactHandler(r.p.ContactSvc, r.p.Cfg.Admin.Key)
	chatH := handler.NewChatHandler(r.p.ChatSvc)

	api := app.Group("/api/v1")

	// 3. Delegate to sub-files
	r.registerContactRoutes(api, contactH)
	r.registerChatRoutes(api, chatH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
