package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/B7A9F/exercices-api/internal/apperrors"
	"github.com/B7A9F/exercices-api/internal/models"
)

// ErrorHandler is the shared error-reporting path, wired into
// fiber.Config. Every status kind is an independent, exclusive branch;
// expected failures (validation, auth, not-found) are reported to the
// caller without being logged as server failures.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := apperrors.As(err); ok {
		return c.Status(appErr.Status).JSON(models.ErrorResponse{
			Title:   titleFor(appErr.Status),
			Message: appErr.Message,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(models.ErrorResponse{
			Title:   titleFor(fiberErr.Code),
			Message: fiberErr.Message,
		})
	}

	// Unexpected fault: log it, report nothing internal.
	log.Printf("unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Title:   "Something went wrong",
		Message: "error",
	})
}

func titleFor(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "Validation Failed"
	case fiber.StatusUnauthorized:
		return "Unauthorized"
	case fiber.StatusForbidden:
		return "Forbidden"
	case fiber.StatusNotFound:
		return "Not Found"
	case fiber.StatusBadGateway:
		return "Upstream Error"
	case fiber.StatusInternalServerError:
		return "Server Error"
	default:
		return "Something went wrong"
	}
}
