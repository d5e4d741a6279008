package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/SatyaSire/corporatepm/internal/service/contact"
)

const submitAck = "Form submitted successfully! I'll get back to you within 24 hours."

type ContactHandler struct {
	svc      contact.Service
	adminKey string
}

func NewContactHandler(svc contact.Service, adminKey string) *ContactHandler {
	return &ContactHandler{svc: svc, adminKey: adminKey}
}

type submitContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Message     string `json:"message"`
	ProjectType string `json:"projectType"`
	Timeline    string `json:"timeline"`
	Budget      string `json:"budget"`
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req submitContactRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	sub, err := h.svc.Submit(c.Context(), contact.CreateRequest{
		Name:        req.Name,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Company:     req.Company,
		Role:        req.Role,
		Message:     req.Message,
		ProjectType: req.ProjectType,
		Timeline:    req.Timeline,
		Budget:      req.Budget,
	})
	if err != nil {
		var verr *contact.ValidationError
		if errors.As(err, &verr) {
			return badRequest(c, verr.Message)
		}
		return internalError(c, "Failed to submit form. Please try again.")
	}

	return ok(c, fiber.Map{
		"success": true,
		"message": submitAck,
		"id":      sub.ID,
	})
}

// List is the admin view of stored submissions, gated by a shared
// static secret. An unconfigured key locks the endpoint entirely.
func (h *ContactHandler) List(c fiber.Ctx) error {
	if h.adminKey == "" || c.Query("admin_key") != h.adminKey {
		return unauthorized(c)
	}

	subs, err := h.svc.List(c.Context())
	if err != nil {
		return internalError(c, "Failed to fetch submissions")
	}
	return ok(c, subs)
}
