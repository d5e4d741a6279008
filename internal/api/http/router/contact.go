package router

import (
	"github.com/SatyaSire/corporatepm/internal/api/http/handler"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerContactRoutes(api fiber.Router, h *handler.ContactHandler) {
	api.Post("/contact", h.Submit)
	api.Get("/contact", h.List)
}
