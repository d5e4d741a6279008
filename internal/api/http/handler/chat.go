package handler

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/SatyaSire/corporatepm/internal/service/chat"
)

type ChatHandler struct {
	svc chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type chatTurn struct {
	Content string `json:"content"`
	Sender  string `json:"sender"`
}

type chatRequest struct {
	Message string     `json:"message"`
	History []chatTurn `json:"history"`
}

func (h *ChatHandler) Reply(c fiber.Ctx) error {
	var req chatRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if strings.TrimSpace(req.Message) == "" {
		return badRequest(c, "message is required")
	}

	history := make([]chat.Turn, 0, len(req.History))
	for _, t := range req.History {
		history = append(history, chat.Turn{Content: t.Content, Sender: chat.Sender(t.Sender)})
	}

	reply := h.svc.Reply(req.Message, history)

	// Typing pause: purely cosmetic, cut short on cancellation.
	select {
	case <-time.After(h.svc.TypingDelay()):
	case <-c.Context().Done():
		return c.Context().Err()
	}

	return ok(c, fiber.Map{"reply": reply})
}

func (h *ChatHandler) Greeting(c fiber.Ctx) error {
	return ok(c, fiber.Map{"reply": h.svc.Greeting()})
}
