package router

import (
	"github.com/SatyaSire/corporatepm/internal/api/http/handler"
	"github.com/gofiber/fiber/v3"
)

func (r *Router) registerChatRoutes(api fiber.Router, h *handler.ChatHandler) {
	api.Post("/chat", h.Reply)
	api.Get("/chat/greeting", h.Greeting)
}
