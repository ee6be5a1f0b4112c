package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/B7A9F/exercices-api/internal/apperrors"
	"github.com/B7A9F/exercices-api/internal/exercices"
	"github.com/B7A9F/exercices-api/internal/middleware"
	"github.com/B7A9F/exercices-api/internal/models"
)

// ExerciceHandler serves the exercice CRUD and aggregation endpoints.
type ExerciceHandler struct {
	svc *exercices.Service
}

func NewExerciceHandler(svc *exercices.Service) *ExerciceHandler {
	return &ExerciceHandler{svc: svc}
}

// GetAll handles GET /api/exercices.
func (h *ExerciceHandler) GetAll(c *fiber.Ctx) error {
	merged, err := h.svc.ListAll(c.Context(), middleware.CallerID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(merged)
}

// GetLocal handles GET /api/exercices/local.
func (h *ExerciceHandler) GetLocal(c *fiber.Ctx) error {
	list, err := h.svc.ListOwn(c.Context(), middleware.CallerID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(list)
}

// GetRemote handles GET /api/exercices/remote.
func (h *ExerciceHandler) GetRemote(c *fiber.Ctx) error {
	list, err := h.svc.ListRemote(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(list)
}

// Create handles POST /api/exercices.
func (h *ExerciceHandler) Create(c *fiber.Ctx) error {
	var input models.ExerciceInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.Validation("name, type and muscle fields are mandatory !")
	}
	ex, err := h.svc.Create(c.Context(), middleware.CallerID(c), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(ex)
}

// Get handles GET /api/exercices/:id.
func (h *ExerciceHandler) Get(c *fiber.Ctx) error {
	ex, err := h.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(ex)
}

// Update handles PUT /api/exercices/:id.
func (h *ExerciceHandler) Update(c *fiber.Ctx) error {
	var input models.ExerciceInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.Validation("name, type and muscle fields are mandatory !")
	}
	ex, err := h.svc.Update(c.Context(), c.Params("id"), middleware.CallerID(c), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(ex)
}

// Delete handles DELETE /api/exercices/:id. The response body is the
// pre-deletion snapshot, not an empty confirmation.
func (h *ExerciceHandler) Delete(c *fiber.Ctx) error {
	ex, err := h.svc.Delete(c.Context(), c.Params("id"), middleware.CallerID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(ex)
}
