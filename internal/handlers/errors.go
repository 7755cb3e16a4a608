package handlers

import (
	"errors"
	"fmt"

	"slopescout/internal/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondError maps the unified error envelope to an HTTP status and JSON
// body. Anything that is not an AppError is a downstream failure and surfaces
// as a generic 500 without internal detail.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(appErr.Err, apperror.ErrUnauthenticated):
			status = fiber.StatusUnauthorized
		case errors.Is(appErr.Err, apperror.ErrForbidden):
			status = fiber.StatusForbidden
		case errors.Is(appErr.Err, apperror.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(appErr.Err, apperror.ErrValidation):
			status = fiber.StatusBadRequest
		case errors.Is(appErr.Err, apperror.ErrConflict):
			status = fiber.StatusConflict
		}

		resp := fiber.Map{"message": appErr.Message}
		if len(appErr.Fields) > 0 {
			resp["errors"] = appErr.Fields
		}
		return c.Status(status).JSON(resp)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}

// validationFields flattens validator.ValidationErrors into the per-field
// detail map of the error envelope.
func validationFields(err error) map[string]string {
	fields := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return fields
}
